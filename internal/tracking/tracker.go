// Package tracking holds the in-memory GPS trail of in-flight
// assignments. The store is process-scoped and non-durable on purpose:
// location pings are advisory, and losing them on restart costs nothing
// that the durable assignment record does not already cover.
package tracking

import (
	"sync"
	"time"

	"pawnops/internal/pkg/errs"
)

// Stage describes where a tracked delivery currently is in its run.
type Stage string

const (
	StageEnRouteToPickup  Stage = "en_route_to_pickup"
	StagePickedUp         Stage = "picked_up"
	StageEnRouteToDropoff Stage = "en_route_to_dropoff"
	StageDelivered        Stage = "delivered"
)

// Coordinates is one GPS fix.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Ping is one received location update.
type Ping struct {
	Coordinates Coordinates
	At          time.Time
}

// State is the tracked position of one assignment.
type State struct {
	AssignmentID string
	Stage        Stage
	Current      *Coordinates
	Pickup       *Coordinates
	Dropoff      *Coordinates
	History      []Ping
	UpdatedAt    time.Time
}

// Tracker is a keyed in-memory store of assignment tracking state.
// Safe for concurrent use; last write wins.
type Tracker struct {
	mu     sync.RWMutex
	states map[string]*State
	now    func() time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		states: make(map[string]*State),
		now:    time.Now,
	}
}

// StartTracking registers an assignment as en route to pickup. Restarting
// an already tracked assignment resets its trail.
func (t *Tracker) StartTracking(assignmentID string, pickup, dropoff *Coordinates) *State {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := &State{
		AssignmentID: assignmentID,
		Stage:        StageEnRouteToPickup,
		Pickup:       pickup,
		Dropoff:      dropoff,
		UpdatedAt:    t.now(),
	}
	t.states[assignmentID] = state
	return snapshot(state)
}

// UpdateLocation records a GPS fix for the assignment, starting tracking
// implicitly when the assignment is not yet known.
func (t *Tracker) UpdateLocation(assignmentID string, c Coordinates) *State {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.states[assignmentID]
	if !ok {
		state = &State{
			AssignmentID: assignmentID,
			Stage:        StageEnRouteToPickup,
		}
		t.states[assignmentID] = state
	}

	now := t.now()
	state.Current = &c
	state.History = append(state.History, Ping{Coordinates: c, At: now})
	state.UpdatedAt = now

	// The first fix after pickup confirmation means the driver is moving
	// again, toward the dropoff.
	if state.Stage == StagePickedUp {
		state.Stage = StageEnRouteToDropoff
	}

	return snapshot(state)
}

// MarkPickedUp records pickup confirmation. The stage advances to the
// dropoff leg on the next location fix.
func (t *Tracker) MarkPickedUp(assignmentID string) error {
	return t.setStage(assignmentID, StagePickedUp)
}

// MarkDelivered marks the run finished. The trail stays readable until
// Clear is called.
func (t *Tracker) MarkDelivered(assignmentID string) error {
	return t.setStage(assignmentID, StageDelivered)
}

func (t *Tracker) setStage(assignmentID string, stage Stage) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.states[assignmentID]
	if !ok {
		return errs.NewObjectNotFoundError("tracked assignment", assignmentID)
	}

	state.Stage = stage
	state.UpdatedAt = t.now()
	return nil
}

// Get returns a copy of the assignment's tracking state.
func (t *Tracker) Get(assignmentID string) (*State, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state, ok := t.states[assignmentID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tracked assignment", assignmentID)
	}
	return snapshot(state), nil
}

// Active returns copies of all runs that have not been delivered yet.
func (t *Tracker) Active() []*State {
	t.mu.RLock()
	defer t.mu.RUnlock()

	active := make([]*State, 0, len(t.states))
	for _, state := range t.states {
		if state.Stage != StageDelivered {
			active = append(active, snapshot(state))
		}
	}
	return active
}

// Clear forgets the assignment's trail. Unknown ids are a no-op.
func (t *Tracker) Clear(assignmentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.states, assignmentID)
}

func snapshot(state *State) *State {
	copied := *state
	copied.History = append([]Ping(nil), state.History...)
	return &copied
}
