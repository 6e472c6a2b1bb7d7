package order

import (
	"fmt"
	"strings"
)

// transition defines a valid state change in the fulfillment lifecycle.
type transition struct {
	From Status
	To   Status
}

// validTransitions is the authoritative state machine definition.
// paid and deny are terminal.
var validTransitions = []transition{
	{From: StatusPending, To: StatusCompleted},
	{From: StatusCompleted, To: StatusPaid},
	{From: StatusPending, To: StatusDeny},
}

var transitionMap = func() map[transition]bool {
	m := make(map[transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusPaid, StatusDeny:
		return true
	}
	return false
}

func ValidType(t Type) bool {
	switch t {
	case TypeDineIn, TypeTakeAway, TypeDelivery:
		return true
	}
	return false
}

// NextStatuses returns all valid next states from a given state.
func NextStatuses(from Status) []Status {
	var nexts []Status
	for _, t := range validTransitions {
		if t.From == from {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) error {
	if transitionMap[transition{From: from, To: to}] {
		return nil
	}

	nexts := NextStatuses(from)
	if len(nexts) == 0 {
		return fmt.Errorf("%w: %s is a terminal status", ErrInvalidTransition, from)
	}

	names := make([]string, 0, len(nexts))
	for _, s := range nexts {
		names = append(names, string(s))
	}
	return fmt.Errorf("%w: %s -> %s (valid: %s)", ErrInvalidTransition, from, to, strings.Join(names, ", "))
}
