// File: command.go
// Title: Executable Commands
// Description: The Command interface, the result returned to the user
//              interface and the messages shared by several commands.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package command

import (
	"fmt"

	spaerror "github.com/msto63/sportspa/foundation/core/error"
	"github.com/msto63/sportspa/internal/index"
	"github.com/msto63/sportspa/internal/model"
)

// Messages shown for failures that do not depend on a single command
const (
	MessageInvalidCommandFormat  = "Invalid command format! \n%s"
	MessageUnknownCommand        = "Unknown command"
	MessageInvalidMemberIndex    = "The member index provided is invalid"
	MessageInvalidFacilityIndex  = "The facility index provided is invalid"
	MessageMembersListedOverview = "%d members listed!"
)

// Command is a parsed user command ready to run against a model
type Command interface {
	// Word returns the built-in command word that produced the command
	Word() string

	// Execute applies the command and returns the feedback for the user
	Execute(m *model.Model) (Result, error)

	// Equals reports whether other is the same command with the same
	// arguments
	Equals(other Command) bool
}

// Result is what a command reports back
type Result struct {
	Feedback string
	Exit     bool
}

// NewResult creates a result with feedback only
func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

// invalidIndex builds the execution error for an index past the end of
// the displayed list
func invalidIndex(message string, idx index.Index, size int) error {
	return spaerror.New(message).
		WithCode(spaerror.CodeIndexOutOfRange).
		WithDetail("index", idx.OneBased()).
		WithDetail("listSize", size)
}

// listedOverview renders the "n items listed" line followed by a table
func listedOverview(format string, count int, table string) string {
	summary := fmt.Sprintf(format, count)
	if count == 0 {
		return summary
	}
	return summary + "\n" + table
}
