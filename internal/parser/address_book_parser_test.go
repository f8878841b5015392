package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/index"
	"github.com/msto63/sportspa/internal/model"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/parser/mocks"
	"github.com/msto63/sportspa/internal/testutil"
)

func TestParseCommandDispatch(t *testing.T) {
	p := NewAddressBookParser()
	first := index.FromOneBased(1)

	tests := []struct {
		input    string
		expected command.Command
	}{
		{"addm" + nameDescAmy + phoneDescAmy + emailDescAmy + addressDescAmy + tagDescFriend, command.NewAddMember(testutil.Amy())},
		{"editm 1" + nameDescAmy, newDescriptor().name(testutil.ValidNameAmy).edit(1)},
		{"deletem 1", command.NewDeleteMember(first)},
		{"findm foo bar baz", command.NewFindMember([]string{"foo", "bar", "baz"})},
		{"listm", &command.ListMembers{}},
		{"listm 3", &command.ListMembers{}},
		{"setm 1 d/MON", command.NewSetMemberAvailability(first, mustValue(ParseAvailability("MON")))},
		{"addf" + nameDescCourt + locationDescCourt + timeDescCourt + capacityDescCourt, command.NewAddFacility(testutil.Court())},
		{"deletef 1", command.NewDeleteFacility(first)},
		{"listf", &command.ListFacilities{}},
		{"alias s/lf cw/listf", command.NewCreateAlias(newAlias("lf", "listf"))},
		{"unalias lf", command.NewRemoveAlias(mustValue(alias.NewShortcut("lf")))},
		{"clear", &command.Clear{}},
		{"clear 3", &command.Clear{}},
		{"help", &command.Help{}},
		{"help 3", &command.Help{}},
		{"exit", &command.Exit{}},
		{"  exit  ", &command.Exit{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := p.ParseCommand(tt.input, nil)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equals(cmd), "got %#v", cmd)
		})
	}
}

func TestParseCommandUsesAliases(t *testing.T) {
	p := NewAddressBookParser()
	m := model.New()
	m.AddAlias(newAlias("lf", alias.WordListFacilities))
	m.AddAlias(newAlias("del", alias.WordDeleteMember))

	cmd, err := p.ParseCommand("lf", m)
	require.NoError(t, err)
	assert.True(t, (&command.ListFacilities{}).Equals(cmd))

	cmd, err = p.ParseCommand("del 2", m)
	require.NoError(t, err)
	assert.True(t, command.NewDeleteMember(index.FromOneBased(2)).Equals(cmd))

	// arguments are still checked against the resolved command
	_, err = p.ParseCommand("del x", m)
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessageInvalidCommandFormat, command.DeleteMemberUsage), err.Error())

	// without a resolver the shortcut is unknown
	_, err = p.ParseCommand("lf", nil)
	require.Error(t, err)
	assert.Equal(t, command.MessageUnknownCommand, err.Error())
}

func TestParseCommandFailures(t *testing.T) {
	p := NewAddressBookParser()

	_, err := p.ParseCommand("", nil)
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessageInvalidCommandFormat, command.HelpUsage), err.Error())
	assert.True(t, spaerror.IsFormat(err))

	_, err = p.ParseCommand(" \t ", nil)
	require.Error(t, err)
	assert.True(t, spaerror.IsFormat(err))

	_, err = p.ParseCommand("unknownCommand", nil)
	require.Error(t, err)
	assert.Equal(t, command.MessageUnknownCommand, err.Error())
	assert.True(t, spaerror.IsFormat(err))

	// command words are case sensitive
	_, err = p.ParseCommand("LISTM", nil)
	require.Error(t, err)
	assert.Equal(t, command.MessageUnknownCommand, err.Error())
}

func TestParseCommandErrorKinds(t *testing.T) {
	p := NewAddressBookParser()

	_, err := p.ParseCommand("addm n/Amy", nil)
	assert.True(t, spaerror.IsFormat(err))

	_, err = p.ParseCommand("addf n/Court l/Hall t/99:99 c/5", nil)
	assert.True(t, spaerror.IsValidation(err))

	_, err = p.ParseCommand("editm 1", nil)
	assert.True(t, spaerror.IsSemantic(err))
}

func TestCommandWords(t *testing.T) {
	words := NewAddressBookParser().CommandWords()
	assert.ElementsMatch(t, alias.BuiltinWords, words)
	assert.IsIncreasing(t, words)
}

func TestParseCommandResolverContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewAddressBookParser()

	t.Run("built-in words skip the resolver", func(t *testing.T) {
		resolver := mocks.NewMockAliasResolver(ctrl)
		resolver.EXPECT().ResolveAlias(gomock.Any()).Times(0)

		_, err := p.ParseCommand("listm", resolver)
		require.NoError(t, err)
	})

	t.Run("unknown words are resolved once", func(t *testing.T) {
		resolver := mocks.NewMockAliasResolver(ctrl)
		resolver.EXPECT().ResolveAlias("ls").Return(alias.WordListFacilities, true).Times(1)

		cmd, err := p.ParseCommand("ls", resolver)
		require.NoError(t, err)
		assert.True(t, (&command.ListFacilities{}).Equals(cmd))
	})

	t.Run("unresolved words are unknown", func(t *testing.T) {
		resolver := mocks.NewMockAliasResolver(ctrl)
		resolver.EXPECT().ResolveAlias("zz").Return("", false).Times(1)

		_, err := p.ParseCommand("zz 1 2", resolver)
		require.Error(t, err)
		assert.Equal(t, command.MessageUnknownCommand, err.Error())
	})
}

func TestParseCommandPassesArgumentsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := mocks.NewMockCommandParser(ctrl)
	parser.EXPECT().Parse(" n/Amy  t/friend").Return(&command.Clear{}, nil).Times(1)

	p := NewAddressBookParser()
	p.Register("probe", parser)

	cmd, err := p.ParseCommand("  probe n/Amy  t/friend  ", nil)
	require.NoError(t, err)
	assert.True(t, (&command.Clear{}).Equals(cmd))
}
