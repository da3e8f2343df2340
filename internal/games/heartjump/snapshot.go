package heartjump

import "github.com/vovakirdan/heartjump/internal/core"

// Reason explains why a session ended in game over.
type Reason int

const (
	ReasonNone  Reason = iota
	ReasonScore        // Score threshold reached
	ReasonEnemy        // Touched an enemy without stomping it
	ReasonFell         // Fell below the bottom of the world
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonScore:
		return "score"
	case ReasonEnemy:
		return "enemy"
	case ReasonFell:
		return "fell"
	default:
		return "unknown"
	}
}

// PlayerView is the render-facing view of the player.
type PlayerView struct {
	Box      core.Box
	Facing   Direction
	Airborne bool
}

// BlockView is the render-facing view of a heart block.
type BlockView struct {
	Box    core.Box
	Active bool
}

// EnemyView is the render-facing view of an enemy.
type EnemyView struct {
	Box    core.Box
	Facing Direction
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the game, so renderers cannot mutate the session.
type Snapshot struct {
	Player    PlayerView
	Platforms []core.Box
	Blocks    []BlockView
	Enemies   []EnemyView
	Score     int
	Level     int
	GameOver  bool
	Reason    Reason
	Won       bool
	Tick      int
}

// Banner is the centered end-of-game message.
type Banner struct {
	Title    string
	Subtitle string
	Hint     string
	Color    core.Color // Title color
}

// Banner returns the message to show for a terminal state.
// The second return value is false while the game is still running.
// Any game over that was not the score ending uses the lose message.
func (s Snapshot) Banner() (Banner, bool) {
	switch {
	case s.GameOver && s.Reason == ReasonScore:
		return Banner{
			Title:    "Happy 500 days, my Babe!",
			Subtitle: "We did it! Hope you smile every day!",
			Hint:     "Press SPACE to restart",
			Color:    core.ColorBrightYellow,
		}, true
	case s.GameOver:
		return Banner{
			Title:    "Ohh! Babe hits a poop",
			Subtitle: "Please try again!",
			Hint:     "Press SPACE to restart",
			Color:    core.ColorBrightRed,
		}, true
	case s.Won:
		return Banner{
			Title: "YOU WIN!",
			Hint:  "Press SPACE to play again",
			Color: core.ColorBrightYellow,
		}, true
	}
	return Banner{}, false
}
