package window

import (
	"testing"

	"github.com/vovakirdan/heartjump/internal/core"
	"github.com/vovakirdan/heartjump/internal/games/heartjump"
)

func TestPlatformStyle(t *testing.T) {
	pipe := appendPlatform(nil, core.NewBox(200, 400, 150, 16))
	if len(pipe) != 2 || pipe[0].Color != colorGreen {
		t.Errorf("narrow platform should be a green pipe, got %d shapes", len(pipe))
	}

	brick := appendPlatform(nil, core.NewBox(0, 540, 800, 60))
	// Base, 50 mortar segments and 8 horizontal courses
	if len(brick) != 1+50+8 {
		t.Errorf("brick platform has %d shapes, expected 59", len(brick))
	}
	if brick[0].Color != colorBrown {
		t.Error("wide platform should be brown brick")
	}
}

func TestSceneSkipsCollectedBlocks(t *testing.T) {
	active := heartjump.Snapshot{Blocks: []heartjump.BlockView{{Box: core.NewBox(100, 250, 32, 32), Active: true}}}
	collected := heartjump.Snapshot{Blocks: []heartjump.BlockView{{Box: core.NewBox(100, 250, 32, 32), Active: false}}}

	if len(scene(active)) <= len(scene(collected)) {
		t.Error("an active block should add shapes")
	}
}

func TestEnemyEyeFollowsFacing(t *testing.T) {
	box := core.NewBox(300, 400, 32, 32)

	left := appendEnemy(nil, heartjump.EnemyView{Box: box, Facing: heartjump.Left})
	right := appendEnemy(nil, heartjump.EnemyView{Box: box, Facing: heartjump.Right})

	eyeLeft := left[len(left)-1]
	eyeRight := right[len(right)-1]
	if eyeLeft.X != 316 || eyeRight.X != 308 {
		t.Errorf("eye x = %v / %v, expected 316 / 308", eyeLeft.X, eyeRight.X)
	}
}

func TestPlayerShapesStayInsideBox(t *testing.T) {
	p := heartjump.PlayerView{Box: core.NewBox(100, 450, 32, 48), Facing: heartjump.Right}

	for i, s := range appendPlayer(nil, p) {
		if s.kind != shapeRect {
			continue
		}
		if s.X < 100 || s.Y < 450 || s.X+s.W > 132 || s.Y+s.H > 498 {
			t.Errorf("shape %d at (%v,%v %vx%v) leaves the player box", i, s.X, s.Y, s.W, s.H)
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name  string
		snap  heartjump.Snapshot
		texts []string
	}{
		{
			name:  "playing",
			snap:  heartjump.Snapshot{Score: 100, Level: 1},
			texts: []string{"Score: 100", "Level: 1"},
		},
		{
			name:  "score ending",
			snap:  heartjump.Snapshot{Score: 3000, Level: 1, GameOver: true, Reason: heartjump.ReasonScore},
			texts: []string{"Score: 3000", "Level: 1", "Happy 500 days, my Babe!", "We did it! Hope you smile every day!", "Press SPACE to restart"},
		},
		{
			name:  "lost",
			snap:  heartjump.Snapshot{Level: 1, GameOver: true, Reason: heartjump.ReasonEnemy},
			texts: []string{"Score: 0", "Level: 1", "Ohh! Babe hits a poop", "Please try again!", "Press SPACE to restart"},
		},
		{
			name:  "won",
			snap:  heartjump.Snapshot{Score: 1000, Level: 1, Won: true},
			texts: []string{"Score: 1000", "Level: 1", "YOU WIN!", "Press SPACE to play again"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := labels(tc.snap)
			if len(got) != len(tc.texts) {
				t.Fatalf("got %d labels, expected %d", len(got), len(tc.texts))
			}
			for i, want := range tc.texts {
				if got[i].Text != want {
					t.Errorf("label %d = %q, expected %q", i, got[i].Text, want)
				}
			}
		})
	}
}

func TestLoseTitleIsRed(t *testing.T) {
	got := labels(heartjump.Snapshot{GameOver: true, Reason: heartjump.ReasonFell})
	if got[2].Color != colorRed {
		t.Error("lose title should be red")
	}
}
