package service

import (
	"sync"

	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// ActionPhase is the lifecycle phase of a transition on one action target.
type ActionPhase string

const (
	PhaseIdle      ActionPhase = "Idle"
	PhasePending   ActionPhase = "Pending"
	PhaseSucceeded ActionPhase = "Succeeded"
	PhaseFailed    ActionPhase = "Failed"
)

// ActionState is the observable state of a transition target.
type ActionState struct {
	Phase  ActionPhase
	Reason string
}

// inflightTracker allows one outstanding mutation per action target, keyed
// by the derived document path. It replaces the disable-button-while-in-flight
// UI convention with an explicit state machine.
type inflightTracker struct {
	mu     sync.Mutex
	states map[string]ActionState
}

func newInflightTracker() *inflightTracker {
	return &inflightTracker{states: make(map[string]ActionState)}
}

// begin marks the target Pending. A target that is already Pending refuses
// the second mutation until the first settles.
func (t *inflightTracker) begin(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.states[path].Phase == PhasePending {
		return requestModel.ErrTransitionInFlight
	}
	t.states[path] = ActionState{Phase: PhasePending}
	return nil
}

// settle records the outcome of the mutation for the target.
func (t *inflightTracker) settle(path string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.states[path] = ActionState{Phase: PhaseFailed, Reason: err.Error()}
		return
	}
	t.states[path] = ActionState{Phase: PhaseSucceeded}
}

// state returns the current state of a target. Unknown targets are Idle.
func (t *inflightTracker) state(path string) ActionState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.states[path]; ok {
		return s
	}
	return ActionState{Phase: PhaseIdle}
}
