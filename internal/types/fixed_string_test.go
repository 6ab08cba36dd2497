package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedStringTruncatesAndPads(t *testing.T) {
	t.Run("short string is NUL padded", func(t *testing.T) {
		f := NewFixedString("usdt")
		assert.Equal(t, "usdt", f.String())
		assert.Equal(t, byte(0), f[4])
	})

	t.Run("long string is truncated to 16 bytes", func(t *testing.T) {
		f := NewFixedString("abcdefghijklmnopqrstuvwxyz")
		require.Len(t, f, FixedStringSize)
		assert.Equal(t, "abcdefghijklmnop", f.String())
	})

	t.Run("empty string is the empty sentinel", func(t *testing.T) {
		f := NewFixedString("")
		assert.True(t, f.IsEmpty())
	})
}

func TestIsValidID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"plain letters", "usdt", true},
		{"mixed case letters", "UsdT", true},
		{"punctuation in the middle", "us.dt", true},
		{"punctuation leading", ".usdt", false},
		{"dash leading", "-usdt", false},
		{"underscore leading", "_usdt", false},
		{"digit rejected", "usdt1", false},
		{"empty rejected", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := IsValidID(NewFixedString(c.in))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName(NewFixedString("")))
	assert.True(t, IsValidName(NewFixedString("pool")))
	assert.False(t, IsValidName(NewFixedString(".pool")))
}
