package logic

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	spalog "github.com/msto63/sportspa/foundation/core/log"
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model"
	"github.com/msto63/sportspa/internal/testutil"
)

const addAmy = "addm n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1 t/friend"

// syncBuffer lets the concurrency test share one log sink
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) entries(t *testing.T) []map[string]interface{} {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(bytes.NewReader(b.buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func newTestManager(t *testing.T) (*Manager, *syncBuffer) {
	t.Helper()
	sink := &syncBuffer{}
	logger := spalog.NewWithConfig(spalog.Config{
		Level:  spalog.LevelTrace,
		Format: spalog.FormatJSON,
		Output: sink,
		Name:   "test",
	})
	return NewManager(Config{Logger: logger}), sink
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

func TestExecuteAddMember(t *testing.T) {
	mgr, sink := newTestManager(t)

	result, err := mgr.Execute(addAmy)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(command.MessageAddMemberSuccess, testutil.Amy()), result.Feedback)
	assert.False(t, result.Exit)
	assert.True(t, mgr.Model().HasMember(testutil.Amy()))

	entries := sink.entries(t)
	received := findEntry(entries, "command received")
	require.NotNil(t, received)
	assert.Equal(t, addAmy, received["input"])
	assert.NotEmpty(t, received["request_id"])

	audit := findEntry(entries, result.Feedback)
	require.NotNil(t, audit, "successful addm should be audited")
	assert.Equal(t, "audit", audit["level"])
	assert.Equal(t, received["request_id"], audit["request_id"])
}

func TestExecuteRequestIDsDiffer(t *testing.T) {
	mgr, sink := newTestManager(t)
	ids := []string{"first", "second"}
	mgr.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	_, _ = mgr.Execute("listm")
	_, _ = mgr.Execute("listf")

	var seen []interface{}
	for _, e := range sink.entries(t) {
		if e["message"] == "command received" {
			seen = append(seen, e["request_id"])
		}
	}
	assert.Equal(t, []interface{}{"first", "second"}, seen)
}

func TestExecuteParseFailure(t *testing.T) {
	mgr, sink := newTestManager(t)

	_, err := mgr.Execute("addm n/Amy")
	require.Error(t, err)
	assert.True(t, spaerror.IsFormat(err))
	assert.Equal(t, fmt.Sprintf(command.MessageInvalidCommandFormat, command.AddMemberUsage), err.Error())

	logged := findEntry(sink.entries(t), err.Error())
	require.NotNil(t, logged)
	assert.Equal(t, "info", logged["level"])
	assert.Equal(t, "parse", logged["stage"])
	assert.Equal(t, string(spaerror.CodeInvalidFormat), logged["error_code"])
}

func TestExecuteExecutionFailure(t *testing.T) {
	mgr, sink := newTestManager(t)

	_, err := mgr.Execute(addAmy)
	require.NoError(t, err)

	_, err = mgr.Execute(addAmy)
	require.Error(t, err)
	assert.Equal(t, model.MessageDuplicateMember, err.Error())

	logged := findEntry(sink.entries(t), model.MessageDuplicateMember)
	require.NotNil(t, logged)
	assert.Equal(t, "warn", logged["level"])
	assert.Equal(t, "execute", logged["stage"])
	assert.Equal(t, "addm", logged["command"])
}

func TestExecuteReadOnlyCommandIsNotAudited(t *testing.T) {
	mgr, sink := newTestManager(t)

	_, err := mgr.Execute("listm")
	require.NoError(t, err)

	for _, e := range sink.entries(t) {
		assert.NotEqual(t, "audit", e["level"], "listm should not be audited: %v", e)
	}
}

func TestExecuteSlowCommand(t *testing.T) {
	mgr, sink := newTestManager(t)
	mgr.slowCommand = 1 // any real execution is slower than a nanosecond

	_, err := mgr.Execute("listm")
	require.NoError(t, err)
	assert.NotNil(t, findEntry(sink.entries(t), "slow command"))
}

func TestExecuteSession(t *testing.T) {
	mgr, _ := newTestManager(t)

	steps := []struct {
		input   string
		wantErr string
	}{
		{addAmy, ""},
		{"addm n/Bob Choo p/22222222 e/bob@example.com a/Block 123, Bobby Street 3 t/husband t/friend", ""},
		{"addf n/Court 1 l/University Sports Hall t/11:30 c/5", ""},
		{"alias s/lm cw/listm", ""},
		{"findm bob", ""},
		{"lm", ""},
		{"editm 2 n/Bob Choo Jr", ""},
		{"setm 1 d/mon wed", ""},
		{"deletem 3", command.MessageInvalidMemberIndex},
		{"deletef 1", ""},
		{"unalias lm", ""},
		{"lm", command.MessageUnknownCommand},
	}

	for _, step := range steps {
		_, err := mgr.Execute(step.input)
		if step.wantErr == "" {
			require.NoError(t, err, step.input)
		} else {
			require.Error(t, err, step.input)
			assert.Equal(t, step.wantErr, err.Error(), step.input)
		}
	}

	members := mgr.Model().Members()
	require.Len(t, members, 2)
	assert.Equal(t, "MON WED", members[0].Availability().String())
	assert.Equal(t, "Bob Choo Jr", members[1].Name().String())
	assert.Empty(t, mgr.Model().Facilities())
	assert.Empty(t, mgr.Model().Aliases())
}

func TestExecuteExit(t *testing.T) {
	mgr, _ := newTestManager(t)

	result, err := mgr.Execute("exit")
	require.NoError(t, err)
	assert.True(t, result.Exit)
}

func TestExecuteConcurrent(t *testing.T) {
	mgr, sink := newTestManager(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = mgr.Execute(fmt.Sprintf("addm n/Member %d p/%08d e/m%d@example.com a/Street %d", i, i+100, i, i))
			_, _ = mgr.Execute("listm")
		}(i)
	}
	wg.Wait()

	assert.Len(t, mgr.Model().Members(), 20)
	assert.NotEmpty(t, sink.entries(t))
}

func TestNewManagerDefaults(t *testing.T) {
	mgr := NewManager(Config{})
	require.NotNil(t, mgr.Model())

	_, err := mgr.Execute("listm")
	assert.NoError(t, err)
	assert.Contains(t, mgr.CommandWords(), "addm")
}
