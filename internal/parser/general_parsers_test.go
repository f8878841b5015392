package parser

import (
	"fmt"
	"testing"

	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model/alias"
)

func newAlias(shortcut, word string) alias.Alias {
	return alias.New(mustValue(alias.NewShortcut(shortcut)), mustValue(alias.NewCommandWord(word)))
}

func TestParseCreateAlias(t *testing.T) {
	expected := command.NewCreateAlias(newAlias("lf", alias.WordListFacilities))
	assertParseSuccess(t, ParseCreateAlias, " s/lf cw/listf", expected)
	assertParseSuccess(t, ParseCreateAlias, " cw/listf s/lf", expected)
	assertParseSuccess(t, ParseCreateAlias, " s/xx s/lf cw/listf", expected)

	formatError := fmt.Sprintf(command.MessageInvalidCommandFormat, command.AliasUsage)
	for _, input := range []string{"", " s/lf", " cw/listf", " lf listf", " junk s/lf cw/listf"} {
		assertParseFailure(t, ParseCreateAlias, input, formatError)
	}

	assertParseFailure(t, ParseCreateAlias, " s/l f cw/listf", alias.ShortcutConstraints)
	assertParseFailure(t, ParseCreateAlias, " s/listm cw/listf", alias.ShortcutConstraints)
	assertParseFailure(t, ParseCreateAlias, " s/lf cw/dance", alias.CommandWordConstraints)
}

func TestParseRemoveAlias(t *testing.T) {
	expected := command.NewRemoveAlias(mustValue(alias.NewShortcut("lf")))
	assertParseSuccess(t, ParseRemoveAlias, " lf", expected)
	assertParseSuccess(t, ParseRemoveAlias, " \t lf  ", expected)

	assertParseFailure(t, ParseRemoveAlias, "  ",
		fmt.Sprintf(command.MessageInvalidCommandFormat, command.UnaliasUsage))
	assertParseFailure(t, ParseRemoveAlias, " l f", alias.ShortcutConstraints)
}
