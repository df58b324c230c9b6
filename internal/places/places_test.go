package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHomeSynonyms(t *testing.T) {
	for _, raw := range []string{
		"casa", "Casa", "CASA", "  casa  ",
		"mi casa", "Mi Casa", " MI CASA ",
		"casera", "home", "De Casa",
	} {
		got, err := Normalize(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, HomeCooked, got, "input %q", raw)
	}
}

func TestNormalizeBrandAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"mcd", "McDonald's"},
		{"MCD", "McDonald's"},
		{"mc", "McDonald's"},
		{"mcdonalds", "McDonald's"},
		{"McDonald's", "McDonald's"}, // already canonical, via capitalization
		{"bk", "Burger King"},
		{" BK ", "Burger King"},
		{"burguer king", "Burger King"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		require.NoError(t, err, "input %q", tt.raw)
		assert.Equal(t, tt.want, got, "input %q", tt.raw)
	}
}

func TestNormalizeCapitalizesWords(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"la birra bar", "La Birra Bar"},
		{"  el gordo  ", "El Gordo"},
		{"PATAGONIA burgers", "PATAGONIA Burgers"}, // only first letters change
		{"tío bigotes", "Tío Bigotes"},
		{"dean & dennys", "Dean & Dennys"},
		{"x", "X"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.raw)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrEmptyPlace, "input %q", raw)
	}
}
