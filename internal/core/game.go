package core

// Game is the interface the platform adapters drive.
// Implementations contain pure logic; the platform handles input mapping,
// timing and display.
type Game interface {
	// ID returns a stable identifier, used as the key for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the session to its initial state.
	Reset()

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

// ScoreSaver persists the final score of a finished session.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// SessionRecorder saves the score of each finished session exactly once.
// A session is finished when its state becomes terminal; it is recorded
// again only after the game has left the terminal state (a restart).
type SessionRecorder struct {
	saver    ScoreSaver
	gameID   string
	recorded bool
}

// NewSessionRecorder creates a recorder. A nil saver records nothing.
func NewSessionRecorder(saver ScoreSaver, gameID string) *SessionRecorder {
	return &SessionRecorder{saver: saver, gameID: gameID}
}

// Observe is called after every step with the resulting state.
// It returns true when this call stored a score.
func (r *SessionRecorder) Observe(s GameState) (bool, error) {
	if !s.Terminal() {
		r.recorded = false
		return false, nil
	}
	if r.recorded {
		return false, nil
	}
	r.recorded = true

	if r.saver == nil || s.Score <= 0 {
		return false, nil
	}
	if _, err := r.saver.SaveScore(r.gameID, s.Score); err != nil {
		return false, err
	}
	return true, nil
}
