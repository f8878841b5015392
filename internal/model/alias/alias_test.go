package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
)

func TestIsValidShortcut(t *testing.T) {
	for _, valid := range []string{"lf", "show", "am2"} {
		assert.True(t, IsValidShortcut(valid), valid)
	}
	for _, invalid := range []string{"", " ", "list all", "listf", "exit"} {
		assert.False(t, IsValidShortcut(invalid), invalid)
	}
}

func TestIsValidCommandWord(t *testing.T) {
	for _, word := range BuiltinWords {
		assert.True(t, IsValidCommandWord(word), word)
	}
	for _, invalid := range []string{"", "list", "LISTF", "lf"} {
		assert.False(t, IsValidCommandWord(invalid), invalid)
	}
}

func TestNewAlias(t *testing.T) {
	shortcut, err := NewShortcut("lf")
	require.NoError(t, err)
	word, err := NewCommandWord("listf")
	require.NoError(t, err)

	a := New(shortcut, word)
	assert.Equal(t, "lf -> listf", a.String())
	assert.True(t, a.Equals(New(shortcut, word)))

	_, err = NewShortcut("addm")
	require.Error(t, err)
	assert.True(t, spaerror.IsValidation(err))
	assert.Equal(t, ShortcutConstraints, err.Error())

	_, err = NewCommandWord("foo")
	assert.Equal(t, CommandWordConstraints, err.Error())
}
