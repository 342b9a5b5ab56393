package domain

// State represents the lifecycle state of a task.
type State string

const (
	StateActive    State = "active"    // Created, in play
	StateCompleted State = "completed" // Explicitly marked done
	StateArchived  State = "archived"  // Aged out of the recently-completed window
	StateDormant   State = "dormant"   // Archived and over a year past creation; terminal
)

// AllStates returns all valid state values in lifecycle order.
func AllStates() []State {
	return []State{StateActive, StateCompleted, StateArchived, StateDormant}
}

// IsValid returns true if the state is a known value.
func (s State) IsValid() bool {
	switch s {
	case StateActive, StateCompleted, StateArchived, StateDormant:
		return true
	default:
		return false
	}
}

// ordinal returns the position of the state in the lifecycle progression.
// Unknown states sort as active so a later evaluation can still advance them.
func (s State) ordinal() int {
	switch s {
	case StateCompleted:
		return 1
	case StateArchived:
		return 2
	case StateDormant:
		return 3
	default:
		return 0
	}
}

// Before returns true if s precedes other in the lifecycle progression.
func (s State) Before(other State) bool {
	return s.ordinal() < other.ordinal()
}

// IsTerminal returns true if no automatic transition can leave the state.
func (s State) IsTerminal() bool {
	return s == StateDormant
}

// Display returns a human-readable representation of the state.
func (s State) Display() string {
	switch s {
	case StateActive:
		return "Active"
	case StateCompleted:
		return "Completed"
	case StateArchived:
		return "Archived"
	case StateDormant:
		return "Dormant"
	default:
		return string(s)
	}
}
