package core

import (
	"errors"
	"testing"
)

type fakeSaver struct {
	saved []int
	err   error
}

func (f *fakeSaver) SaveScore(gameID string, score int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, score)
	return int64(len(f.saved)), nil
}

func TestSessionRecorderSavesOnce(t *testing.T) {
	saver := &fakeSaver{}
	r := NewSessionRecorder(saver, "heartjump")

	states := []GameState{
		{Score: 100},
		{Score: 1600, GameOver: true},
		{Score: 1600, GameOver: true},
		{Score: 1600, GameOver: true},
		{Score: 0}, // Restarted
		{Score: 1000, Won: true},
		{Score: 1000, Won: true},
	}

	saves := 0
	for _, s := range states {
		saved, err := r.Observe(s)
		if err != nil {
			t.Fatalf("Observe() failed: %v", err)
		}
		if saved {
			saves++
		}
	}

	if saves != 2 {
		t.Errorf("expected 2 saves, got %d", saves)
	}
	if len(saver.saved) != 2 || saver.saved[0] != 1600 || saver.saved[1] != 1000 {
		t.Errorf("unexpected saved scores: %v", saver.saved)
	}
}

func TestSessionRecorderSkipsZeroScore(t *testing.T) {
	saver := &fakeSaver{}
	r := NewSessionRecorder(saver, "heartjump")

	if saved, _ := r.Observe(GameState{GameOver: true}); saved {
		t.Error("zero score should not be saved")
	}
	if len(saver.saved) != 0 {
		t.Errorf("unexpected saves: %v", saver.saved)
	}
}

func TestSessionRecorderNilSaver(t *testing.T) {
	r := NewSessionRecorder(nil, "heartjump")

	saved, err := r.Observe(GameState{Score: 500, Won: true})
	if saved || err != nil {
		t.Errorf("nil saver should be a no-op, got saved=%v err=%v", saved, err)
	}
}

func TestSessionRecorderReportsError(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	r := NewSessionRecorder(saver, "heartjump")

	if _, err := r.Observe(GameState{Score: 500, GameOver: true}); err == nil {
		t.Error("expected save error to be returned")
	}

	// A failed save is not retried for the same session
	if _, err := r.Observe(GameState{Score: 500, GameOver: true}); err != nil {
		t.Errorf("unexpected retry error: %v", err)
	}
}
