package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/burgerclub/burger-tracker-api/internal/badges"
	"github.com/burgerclub/burger-tracker-api/internal/models"
)

// Notifier announces app events to the club channel. Both methods are
// best effort: callers log failures and move on.
type Notifier interface {
	NewBurger(user models.User, burger models.Burger) error
	BadgeUnlocked(user models.User, badge badges.Badge) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NewBurger(user models.User, burger models.Burger) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	priceStr := ""
	if burger.Price != nil {
		priceStr = fmt.Sprintf(" ($%.0f)", *burger.Price)
	}

	message := fmt.Sprintf("🍔 **%s** comió en **%s**%s — %s\n%s",
		user.FullName,
		burger.PlaceName,
		priceStr,
		stars(burger.Rating),
		burger.PhotoURL,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		logrus.Errorf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func (n *DiscordNotifier) BadgeUnlocked(user models.User, badge badges.Badge) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("%s **%s** desbloqueó **%s**\n%s",
		badge.Icon,
		user.FullName,
		badge.Title,
		badge.Description,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		logrus.Errorf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func stars(rating int) string {
	s := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			s += "⭐"
		} else {
			s += "☆"
		}
	}
	return s
}
