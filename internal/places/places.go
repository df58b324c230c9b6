// Package places maps user-entered venue names to canonical display
// strings, so that repeat visits to the same place count as one entity
// in rankings and statistics.
package places

import (
	"errors"
	"strings"
	"unicode"
)

const HomeCooked = "Hecha en Casa"

var ErrEmptyPlace = errors.New("place name is empty")

// homeSynonyms are the ways people write "I made it myself".
var homeSynonyms = map[string]bool{
	"casa":    true,
	"mi casa": true,
	"casera":  true,
	"home":    true,
	"de casa": true,
}

// brandAliases maps common abbreviations to the brand's canonical name.
var brandAliases = map[string]string{
	"mc":           "McDonald's",
	"mcd":          "McDonald's",
	"mcdonalds":    "McDonald's",
	"mc donalds":   "McDonald's",
	"bk":           "Burger King",
	"burguer king": "Burger King",
}

// Normalize returns the canonical display name for a raw venue string.
// Comparison is done on the trimmed, lowercased input; the fallback
// capitalizes the first letter of every word of the trimmed original,
// leaving every other character untouched.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyPlace
	}

	lower := strings.ToLower(trimmed)
	if homeSynonyms[lower] {
		return HomeCooked, nil
	}
	if brand, ok := brandAliases[lower]; ok {
		return brand, nil
	}

	return capitalizeWords(trimmed), nil
}

func capitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
