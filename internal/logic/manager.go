// File: manager.go
// Title: Command Execution Manager
// Description: Ties the command parser to the model. Every input line gets
//              a request ID, parse and execution failures are logged by
//              severity and state changes are written to the audit log.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package logic

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	spalog "github.com/msto63/sportspa/foundation/core/log"
	"github.com/msto63/sportspa/internal/command"
	"github.com/msto63/sportspa/internal/model"
	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/parser"
)

// mutatingWords are the command words whose success is audited
var mutatingWords = []string{
	alias.WordAddMember,
	alias.WordEditMember,
	alias.WordDeleteMember,
	alias.WordSetMember,
	alias.WordAddFacility,
	alias.WordDeleteFacility,
	alias.WordAlias,
	alias.WordUnalias,
	alias.WordClear,
}

// Config holds the dependencies of a Manager. Zero values are replaced
// with an empty model and a discarding logger.
type Config struct {
	Model  *model.Model
	Logger *spalog.Logger

	// SlowCommand is the execution time above which a warning is logged.
	// Zero disables the warning.
	SlowCommand time.Duration
}

// Manager executes user input against a model. It is safe for concurrent
// use because the model serializes access.
type Manager struct {
	model       *model.Model
	parser      *parser.AddressBookParser
	logger      *spalog.Logger
	slowCommand time.Duration
	newID       func() string
}

// NewManager creates a manager
func NewManager(cfg Config) *Manager {
	m := cfg.Model
	if m == nil {
		m = model.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = spalog.Discard()
	}

	return &Manager{
		model:       m,
		parser:      parser.NewAddressBookParser(),
		logger:      logger.WithName("logic"),
		slowCommand: cfg.SlowCommand,
		newID:       uuid.NewString,
	}
}

// Model returns the model the manager executes against
func (m *Manager) Model() *model.Model {
	return m.model
}

// CommandWords returns every built-in command word
func (m *Manager) CommandWords() []string {
	return m.parser.CommandWords()
}

// Execute parses and runs one line of input. Errors are returned unchanged
// so their message can be shown to the user.
func (m *Manager) Execute(input string) (command.Result, error) {
	logger := m.logger.WithRequestID(m.newID())
	logger.Info("command received", spalog.Field("input", input))

	cmd, err := m.parser.ParseCommand(input, m.model)
	if err != nil {
		logger.LogError(err, spalog.Fields{"input": input, "stage": "parse"})
		return command.Result{}, err
	}

	timer := logger.StartTimer(cmd.Word()).WithField("command", cmd.Word())
	result, err := cmd.Execute(m.model)
	if err != nil {
		logger.LogError(err, spalog.Fields{"command": cmd.Word(), "stage": "execute"})
		return command.Result{}, err
	}
	elapsed := timer.Stop()

	if m.slowCommand > 0 && elapsed > m.slowCommand {
		logger.Warn("slow command", spalog.Fields{
			"command":      cmd.Word(),
			"elapsed_ms":   elapsed.Milliseconds(),
			"threshold_ms": m.slowCommand.Milliseconds(),
		})
	}
	if lo.Contains(mutatingWords, cmd.Word()) {
		logger.Audit(result.Feedback, spalog.Field("command", cmd.Word()))
	}
	return result, nil
}
