package types

import (
	"testing"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected Style
	}{
		{"UNC", StyleUNC},
		{"unc", StyleUNC},
		{"DriveLetter", StyleDriveLetter},
		{"driveletter", StyleDriveLetter},
		{"Posix", StylePosix},
		{"URI", StyleURI},
		{"LogicalURI", StyleURI},
		{" RFS ", StyleRFS},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseStyle("Amiga")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestStyleStringRoundTrip(t *testing.T) {
	for _, s := range AllStyles() {
		parsed, err := ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.True(t, s.IsValid())
	}
	assert.False(t, StyleUnknown.IsValid())
	assert.Equal(t, "Unknown", StyleUnknown.String())
}

func TestAllStylesOrder(t *testing.T) {
	assert.Equal(t, []Style{StyleUNC, StyleDriveLetter, StylePosix, StyleURI, StyleRFS}, AllStyles())
}

func TestStyleText(t *testing.T) {
	var s Style
	require.NoError(t, s.UnmarshalText([]byte("logicaluri")))
	assert.Equal(t, StyleURI, s)

	text, err := StyleDriveLetter.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "DriveLetter", string(text))

	assert.Error(t, s.UnmarshalText([]byte("nope")))
}
