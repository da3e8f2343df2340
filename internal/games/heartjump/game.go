// Package heartjump implements a single-screen Mario-style platformer.
// The player collects heart blocks, stomps or avoids patrolling enemies and
// climbs to the goal platform at the top of the screen.
package heartjump

import (
	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// Identity of the game, used as the score storage key and display name.
const (
	GameID    = "heartjump"
	GameTitle = "Super Mario - Vintage Edition"
)

// Game owns the whole session: the player, the level and the score.
type Game struct {
	cfg     config.HeartJumpConfig
	pending *config.HeartJumpConfig // Tuning to apply at the next reset

	player    *Player
	platforms []Platform
	blocks    []HeartBlock
	enemies   []Enemy

	score     int
	level     int
	gameOver  bool
	won       bool
	reason    Reason
	tickCount int
}

var _ core.Game = (*Game)(nil)

// New creates a game with the given tuning, already reset to the start.
// It fails if the tuning or the level layout cannot produce a playable game.
func New(cfg config.HeartJumpConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg}
	g.Reset()

	if err := validateLayout(g.platforms, g.blocks, g.enemies); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// SetTuning queues new tuning. It takes effect at the next Reset so a running
// session never changes rules mid-play.
func (g *Game) SetTuning(cfg config.HeartJumpConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.pending = &cfg
	return nil
}

// Reset rebuilds the initial fixed layout and clears score and outcome.
func (g *Game) Reset() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	g.player = NewPlayer(playerStartX, playerStartY, g.cfg.Physics)
	g.platforms = buildPlatforms()
	g.blocks = buildBlocks()
	g.enemies = buildEnemies(g.cfg.Enemies)
	g.score = 0
	g.level = StartLevel
	g.gameOver = false
	g.won = false
	g.reason = ReasonNone
	g.tickCount = 0
}

// Step advances the game by one tick.
// Once the game is over or won the simulation is frozen and only a restart
// is accepted.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.won {
		if in.Has(core.ActionRestart) {
			g.Reset()
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Player movement
	g.player.ApplyInput(in)
	if !g.player.Advance(g.platforms) {
		g.gameOver = true
		g.reason = ReasonFell
	}

	// The remaining checks run even if the player just died this tick
	g.collectHearts()

	if g.score >= g.cfg.Scoring.ScoreThreshold {
		g.gameOver = true
		g.reason = ReasonScore
	}

	for i := range g.enemies {
		g.enemies[i].Advance(g.platforms)
	}
	g.resolveEnemyContacts()

	g.checkGoal()

	return core.StepResult{State: g.State()}
}

// collectHearts awards points for every active block the player touches.
func (g *Game) collectHearts() {
	playerBox := g.player.Box()
	for i := range g.blocks {
		if g.blocks[i].Collect(playerBox) {
			g.score += g.cfg.Scoring.HeartPoints
		}
	}
}

// resolveEnemyContacts stomps or dies on every overlapping enemy.
// Stomped enemies are dropped by compacting the roster in place after each
// has been visited exactly once. The stomp bounce applies immediately, so a
// second enemy touched in the same tick sees the player rising.
func (g *Game) resolveEnemyContacts() {
	playerBox := g.player.Box()
	stompTolerance := g.cfg.Enemies.StompTolerance

	survivors := g.enemies[:0]
	for _, enemy := range g.enemies {
		if !playerBox.Overlaps(enemy.Box()) {
			survivors = append(survivors, enemy)
			continue
		}

		if g.player.VY > 0 && g.player.Y < enemy.Y+stompTolerance {
			g.player.VY = g.cfg.Physics.StompBounce
			g.score += g.cfg.Scoring.StompPoints
			continue
		}

		g.gameOver = true
		g.reason = ReasonEnemy
		survivors = append(survivors, enemy)
	}
	g.enemies = survivors
}

// checkGoal wins the game when the player is above the goal band.
// There is no already-won guard; the terminal freeze makes it fire once.
func (g *Game) checkGoal() {
	goal := g.cfg.Goal
	p := g.player.Box()
	if p.Right() > goal.MinX && p.X < goal.MaxX && p.Y < WorldHeight-goal.Clearance {
		g.won = true
		g.score += g.cfg.Scoring.GoalPoints
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}

// Snapshot returns a read-only copy of the session for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Player: PlayerView{
			Box:      g.player.Box(),
			Facing:   g.player.Facing,
			Airborne: g.player.Jumping,
		},
		Platforms: make([]core.Box, len(g.platforms)),
		Blocks:    make([]BlockView, len(g.blocks)),
		Enemies:   make([]EnemyView, len(g.enemies)),
		Score:     g.score,
		Level:     g.level,
		GameOver:  g.gameOver,
		Reason:    g.reason,
		Won:       g.won,
		Tick:      g.tickCount,
	}

	for i, p := range g.platforms {
		s.Platforms[i] = p.Box()
	}
	for i, b := range g.blocks {
		s.Blocks[i] = BlockView{Box: b.Box(), Active: b.Active()}
	}
	for i := range g.enemies {
		s.Enemies[i] = EnemyView{Box: g.enemies[i].Box(), Facing: g.enemies[i].Facing}
	}
	return s
}
