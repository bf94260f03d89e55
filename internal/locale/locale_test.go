package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundleLoadsEmbeddedMessages(t *testing.T) {
	b, err := Bundle()
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.GreaterOrEqual(t, len(Languages()), 4)
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.English, "-Select-"},
		{language.German, "-Auswählen-"},
		{language.French, "-Sélectionner-"},
		{language.Spanish, "-Seleccionar-"},
		{language.Japanese, "-Select-"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Placeholder(tt.tag))
		})
	}
}

func TestPlaceholderRegionalVariant(t *testing.T) {
	assert.Equal(t, "-Auswählen-", Placeholder(language.MustParse("de-AT")))
}
