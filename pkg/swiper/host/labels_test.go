package host

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLabels(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
		expand string
		step   string
	}{
		{"", language.English, "Expand", "Step 2 of 3"},
		{"en-US", language.English, "Expand", "Step 2 of 3"},
		{"de-AT", language.German, "Ausklappen", "Stufe 2 von 3"},
		{"fr", language.English, "Expand", "Step 2 of 3"},
		{"not a locale!", language.English, "Expand", "Step 2 of 3"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			l, err := NewLabels(tt.locale, slog.Default())
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Language())
			assert.Equal(t, tt.expand, l.Get(LabelExpand))
			assert.Equal(t, tt.step, l.Step(1, 3))
		})
	}
}

func TestMissingLabelFallsBackToID(t *testing.T) {
	l, err := NewLabels("en", slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "no-such-label", l.Get("no-such-label"))
}
