package active

import (
	"sync"
	"time"

	"ironlog/internal/domain"
)

// ResumeWindow is how long a just-completed workout stays resumable.
const ResumeWindow = 600 * time.Second

// Phase is the lifecycle phase of the in-process workout machine.
type Phase string

const (
	PhaseIdle                   Phase = "idle"
	PhaseInProgress             Phase = "in_progress"
	PhaseCompletedPendingResume Phase = "completed_pending_resume"
)

// nowFunc is overridable in tests to pin the clock.
var nowFunc = time.Now

// Machine tracks the single active workout for this process. All storage
// writes happen elsewhere; the machine only answers "is a workout running,
// and where is the user in it". A second Start while one is running (or
// still inside the resume window) is rejected.
type Machine struct {
	mu sync.Mutex

	activeWorkoutID string
	workoutName     string
	routineID       string
	startedAt       time.Time
	completedAt     *time.Time
	inResumeWindow  bool

	currentExerciseIndex int
	currentSetNumber     int

	// loggedSets is an append-only per-session cache keyed by workout
	// exercise id. It is never persisted and repeats are kept as-is.
	loggedSets map[string][]domain.WorkoutSet
}

// NewMachine returns a machine in the Idle phase.
func NewMachine() *Machine {
	return &Machine{loggedSets: make(map[string][]domain.WorkoutSet)}
}

// State is a read-only copy of the machine's control fields.
type State struct {
	ActiveWorkoutID      string     `json:"active_workout_id"`
	WorkoutName          string     `json:"workout_name"`
	RoutineID            string     `json:"routine_id"`
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	IsInResumeWindow     bool       `json:"is_in_resume_window"`
	CurrentExerciseIndex int        `json:"current_exercise_index"`
	CurrentSetNumber     int        `json:"current_set_number"`
}

// Phase reports the current lifecycle phase.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phaseLocked()
}

func (m *Machine) phaseLocked() Phase {
	switch {
	case m.activeWorkoutID == "":
		return PhaseIdle
	case m.inResumeWindow:
		return PhaseCompletedPendingResume
	default:
		return PhaseInProgress
	}
}

// Start claims the machine for a new workout. Returns ErrWorkoutInProgress
// if another workout is running or still within its resume window.
func (m *Machine) Start(workoutID, name, routineID string, startedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activeWorkoutID != "" {
		return domain.ErrWorkoutInProgress
	}

	m.activeWorkoutID = workoutID
	m.workoutName = name
	m.routineID = routineID
	m.startedAt = startedAt
	m.completedAt = nil
	m.inResumeWindow = false
	m.currentExerciseIndex = 0
	m.currentSetNumber = 1
	m.loggedSets = make(map[string][]domain.WorkoutSet)
	return nil
}

// Restore loads a previously persisted state without the exclusivity check.
// Used on process startup; the set cache starts empty.
func (m *Machine) Restore(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activeWorkoutID = s.ActiveWorkoutID
	m.workoutName = s.WorkoutName
	m.routineID = s.RoutineID
	m.startedAt = s.StartedAt
	m.completedAt = s.CompletedAt
	m.inResumeWindow = s.IsInResumeWindow
	m.currentExerciseIndex = s.CurrentExerciseIndex
	m.currentSetNumber = s.CurrentSetNumber
	m.loggedSets = make(map[string][]domain.WorkoutSet)
}

// AddLoggedSet appends a set to the session cache.
func (m *Machine) AddLoggedSet(workoutExerciseID string, set domain.WorkoutSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedSets[workoutExerciseID] = append(m.loggedSets[workoutExerciseID], set)
}

// LoggedSets returns a copy of the cached sets for one workout exercise.
func (m *Machine) LoggedSets(workoutExerciseID string) []domain.WorkoutSet {
	m.mu.Lock()
	defer m.mu.Unlock()

	sets := m.loggedSets[workoutExerciseID]
	out := make([]domain.WorkoutSet, len(sets))
	copy(out, sets)
	return out
}

// SetCursor positions the exercise/set cursor.
func (m *Machine) SetCursor(exerciseIndex, setNumber int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentExerciseIndex = exerciseIndex
	m.currentSetNumber = setNumber
}

// Advance moves the cursor to the next set of the current exercise.
func (m *Machine) Advance() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentSetNumber++
}

// NextExercise moves the cursor to the first set of the next exercise.
func (m *Machine) NextExercise() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentExerciseIndex++
	m.currentSetNumber = 1
}

// MarkCompleted transitions InProgress to CompletedPendingResume. The
// machine keeps its identity fields so the session can be resumed.
func (m *Machine) MarkCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activeWorkoutID == "" {
		return
	}
	now := nowFunc()
	m.completedAt = &now
	m.inResumeWindow = true
}

// Resume reopens a completed workout if it is still within the resume
// window. Returns false without mutating anything once the window expired.
func (m *Machine) Resume() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inResumeWindow || m.completedAt == nil {
		return false
	}
	if nowFunc().Sub(*m.completedAt) > ResumeWindow {
		return false
	}

	m.completedAt = nil
	m.inResumeWindow = false
	return true
}

// CheckResumeWindow reports whether the machine is still inside the resume
// window. Past expiry it resets the machine to Idle and returns false; this
// is the passive path that retires a stale session without user action.
func (m *Machine) CheckResumeWindow() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inResumeWindow || m.completedAt == nil {
		return false
	}
	if nowFunc().Sub(*m.completedAt) > ResumeWindow {
		m.resetLocked()
		return false
	}
	return true
}

// End resets the machine to Idle.
func (m *Machine) End() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

// Abandon resets the machine to Idle.
func (m *Machine) Abandon() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Machine) resetLocked() {
	m.activeWorkoutID = ""
	m.workoutName = ""
	m.routineID = ""
	m.startedAt = time.Time{}
	m.completedAt = nil
	m.inResumeWindow = false
	m.currentExerciseIndex = 0
	m.currentSetNumber = 0
	m.loggedSets = make(map[string][]domain.WorkoutSet)
}

// ActiveWorkoutID returns the id of the running workout, or "" when Idle.
func (m *Machine) ActiveWorkoutID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeWorkoutID
}

// ElapsedSeconds returns the session duration so far. For a completed
// session the clock stops at completion.
func (m *Machine) ElapsedSeconds() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activeWorkoutID == "" {
		return 0
	}
	end := nowFunc()
	if m.completedAt != nil {
		end = *m.completedAt
	}
	return int64(end.Sub(m.startedAt).Seconds())
}

// Snapshot copies the control fields. The set cache is deliberately not
// part of the snapshot.
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := State{
		ActiveWorkoutID:      m.activeWorkoutID,
		WorkoutName:          m.workoutName,
		RoutineID:            m.routineID,
		StartedAt:            m.startedAt,
		IsInResumeWindow:     m.inResumeWindow,
		CurrentExerciseIndex: m.currentExerciseIndex,
		CurrentSetNumber:     m.currentSetNumber,
	}
	if m.completedAt != nil {
		t := *m.completedAt
		s.CompletedAt = &t
	}
	return s
}
