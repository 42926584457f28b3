package engine

import (
	"fmt"
	"strings"
	"time"
)

// Action represents the different operations a user can request
type Action string

const (
	ActionAnalyze  Action = "analyze"  // Summarize metrics about the pasted code
	ActionWrite    Action = "write"    // Produce code from a natural-language prompt
	ActionImprove  Action = "improve"  // Suggest quality improvements
	ActionRefactor Action = "refactor" // Propose a restructuring plan
	ActionDebug    Action = "debug"    // Walk through common bug sources
	ActionExpand   Action = "expand"   // Extend the pasted code per the prompt
)

// Actions returns all supported actions in display order.
func Actions() []Action {
	return []Action{
		ActionAnalyze,
		ActionWrite,
		ActionImprove,
		ActionRefactor,
		ActionDebug,
		ActionExpand,
	}
}

// ParseAction converts a user-supplied string into an Action.
// It returns an error for anything outside the six supported kinds,
// so the engine itself never sees an unknown action.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionAnalyze:
		return ActionAnalyze, nil
	case ActionWrite:
		return ActionWrite, nil
	case ActionImprove:
		return ActionImprove, nil
	case ActionRefactor:
		return ActionRefactor, nil
	case ActionDebug:
		return ActionDebug, nil
	case ActionExpand:
		return ActionExpand, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Report is the immutable result of one dispatch. A new dispatch
// produces a fresh Report; callers replace, never merge.
type Report struct {
	Action    Action    `json:"action"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
