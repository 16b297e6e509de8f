package scaffold

import "fmt"

// State is a step of a scaffolding session.
type State int

// Session states. Transitions are strictly sequential; Failed is reachable
// from any non-terminal state.
const (
	CollectingConfig State = iota
	ResolvingPaths
	WritingEngineTree
	WritingExtensionTree
	ApplyingFeatures
	Done
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case CollectingConfig:
		return "CollectingConfig"
	case ResolvingPaths:
		return "ResolvingPaths"
	case WritingEngineTree:
		return "WritingEngineTree"
	case WritingExtensionTree:
		return "WritingExtensionTree"
	case ApplyingFeatures:
		return "ApplyingFeatures"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

// StateError records the state a session failed in.
type StateError struct {
	State State
	Err   error
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	return e.Err
}
