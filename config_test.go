package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/dropdown/internal/locale"
)

func TestDefaultEqual(t *testing.T) {
	assert.True(t, defaultEqual("a", "a"))
	assert.False(t, defaultEqual("a", "b"))
	assert.True(t, defaultEqual(3, 3))

	type pair struct{ A, B int }
	assert.True(t, defaultEqual(pair{1, 2}, pair{1, 2}))

	assert.True(t, defaultEqual[any]([]int{1, 2}, []int{1, 2}))
	assert.False(t, defaultEqual[any]([]int{1}, []int{2}))
	assert.True(t, defaultEqual[any](map[string]any{"k": 1}, map[string]any{"k": 1}))
	assert.False(t, defaultEqual[any]("1", 1))

	assert.True(t, defaultEqual[any](nil, nil))
	assert.False(t, defaultEqual[any](nil, "a"))
}

func TestApplyDefaults(t *testing.T) {
	var c Config[string]
	c.applyDefaults()

	assert.Equal(t, locale.DefaultLanguage, c.Language)
	assert.Equal(t, "-Select-", c.Placeholder)
	assert.Equal(t, DefaultStyle(), c.Style)
	assert.Equal(t, MenuPosition{Gap: DefaultStyle().MenuGap}, c.Position)
	assert.NotNil(t, c.Equal)
	assert.NotNil(t, c.Logger)

	c = Config[string]{Language: language.German, Placeholder: "pick"}
	c.applyDefaults()
	assert.Equal(t, "pick", c.Placeholder, "an explicit placeholder wins")
}
