package t2048

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSessionStartSpawnsInitialTiles(t *testing.T) {
	tests := []struct {
		initial int
		want    int
	}{
		{0, DefaultInitialTiles},
		{2, 2},
		{5, 5},
		{-3, DefaultInitialTiles},
		{99, CellCount},
	}

	for _, tt := range tests {
		s := NewSession(SessionOptions{Seed: 1, TwoProbability: 0.9, InitialTiles: tt.initial})
		s.Start()

		if got := CellCount - len(EmptyCells(s.Grid())); got != tt.want {
			t.Errorf("InitialTiles=%d: %d tiles on the grid, want %d", tt.initial, got, tt.want)
		}
		if s.Score() != 0 || s.Moves() != 0 {
			t.Errorf("InitialTiles=%d: score %d moves %d after Start", tt.initial, s.Score(), s.Moves())
		}
	}
}

func TestSessionSameSeedSameGame(t *testing.T) {
	play := func() (Grid, uint32) {
		s := NewSession(SessionOptions{Seed: 12345, TwoProbability: 0.9, InitialTiles: 2})
		s.Start()
		for i := 0; i < 50; i++ {
			s.Move(Directions[i%len(Directions)])
		}
		return s.Grid(), s.Score()
	}

	g1, s1 := play()
	g2, s2 := play()
	if g1 != g2 || s1 != s2 {
		t.Errorf("same seed diverged:\n%v (%d)\nvs\n%v (%d)", g1, s1, g2, s2)
	}
}

func TestSessionMoveAccumulatesScore(t *testing.T) {
	s := NewSession(SessionOptions{Source: &scriptedSource{}, TwoProbability: 1})
	s.Load(GridFromRows([Size][Size]uint32{{2, 2, 4, 4}}))

	res := s.Move(DirLeft)
	if res.Delta != 12 || !res.Changed {
		t.Errorf("Move(left) = %+v, want delta 12 changed", res)
	}
	if !res.SpawnAttempted || !res.Spawned || res.Spawn.Value != 2 {
		t.Errorf("spawn after changing move: %+v", res)
	}
	if s.Score() != 12 || s.Moves() != 1 {
		t.Errorf("score %d moves %d, want 12 and 1", s.Score(), s.Moves())
	}

	before := s.Score()
	s.Move(DirRight)
	if s.Score() < before {
		t.Errorf("score decreased from %d to %d", before, s.Score())
	}
}

func TestSessionSpawnPolicy(t *testing.T) {
	settled := GridFromRows([Size][Size]uint32{{4, 2}})

	tests := []struct {
		name      string
		afterNoop bool
		wantSpawn bool
		wantTiles int
	}{
		{"no spawn after no-op move", false, false, 2},
		{"spawn after no-op move", true, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(SessionOptions{
				Source:         &scriptedSource{},
				TwoProbability: 0.9,
				SpawnAfterNoop: tt.afterNoop,
			})
			s.Load(settled)

			res := s.Move(DirLeft)
			if res.Changed || res.Delta != 0 {
				t.Fatalf("expected a no-op move, got %+v", res)
			}
			if res.SpawnAttempted != tt.wantSpawn || res.Spawned != tt.wantSpawn {
				t.Errorf("spawn attempted=%v spawned=%v, want %v", res.SpawnAttempted, res.Spawned, tt.wantSpawn)
			}
			if got := CellCount - len(EmptyCells(s.Grid())); got != tt.wantTiles {
				t.Errorf("%d tiles after move, want %d", got, tt.wantTiles)
			}
			if s.Moves() != 0 {
				t.Errorf("no-op move counted: moves = %d", s.Moves())
			}
		})
	}
}

func TestSessionGameOver(t *testing.T) {
	// One move left: merging the bottom-right pair and spawning refills
	// the grid with no merges possible.
	s := NewSession(SessionOptions{Source: &scriptedSource{floats: []float64{0.95}}, TwoProbability: 0.9})
	s.Load(GridFromRows([Size][Size]uint32{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{16, 32, 64, 64},
	}))
	if s.Over() {
		t.Fatal("session over before the final move")
	}

	res := s.Move(DirRight)
	// Row 3 becomes [0 16 32 128]; the spawn puts a 4 in the freed cell.
	if !res.Changed || res.Delta != 128 || !res.Spawned || res.Spawn.Index != 12 || res.Spawn.Value != 4 {
		t.Fatalf("final move = %+v", res)
	}
	if !res.Over || !s.Over() {
		t.Fatalf("expected game over, grid:\n%v", s.Grid())
	}

	frozen := s.Grid()
	score := s.Score()
	after := s.Move(DirLeft)
	if !after.Over || after.Changed || s.Grid() != frozen || s.Score() != score {
		t.Errorf("move after game over changed state: %+v", after)
	}

	s.Start()
	if s.Over() || s.Score() != 0 {
		t.Error("Start did not reset a finished session")
	}
}

func TestSessionFullGridWithMergeIsNotOver(t *testing.T) {
	s := NewSession(SessionOptions{Source: &scriptedSource{}, TwoProbability: 0.9, SpawnAfterNoop: true})
	s.Load(GridFromRows([Size][Size]uint32{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}))

	// Up changes nothing; the spawn attempt fails on the full grid
	res := s.Move(DirUp)
	if res.Changed || !res.SpawnAttempted || res.Spawned {
		t.Fatalf("Move(up) = %+v", res)
	}
	if res.Over || s.Over() {
		t.Error("failed spawn ended the game while a merge remains")
	}
}

func TestSessionLogsGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s := NewSession(SessionOptions{Source: &scriptedSource{floats: []float64{0.95}}, TwoProbability: 0.9, Logger: logger})
	s.Load(GridFromRows([Size][Size]uint32{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{16, 32, 64, 64},
	}))
	s.Move(DirRight)

	out := buf.String()
	if !strings.Contains(out, "move") || !strings.Contains(out, "game over") {
		t.Errorf("log output missing events:\n%s", out)
	}
}

func TestSessionConcurrentMoves(t *testing.T) {
	s := NewSession(SessionOptions{Seed: 5, TwoProbability: 0.9, InitialTiles: 2})
	s.Start()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(dir Direction) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Move(dir)
				_ = s.Grid()
				_ = s.Score()
			}
		}(Directions[w])
	}
	wg.Wait()

	for i, v := range s.Grid() {
		if !IsTileValue(v) {
			t.Fatalf("cell %d holds %d", i, v)
		}
	}
}

func TestSessionSetters(t *testing.T) {
	s := NewSession(SessionOptions{Source: &scriptedSource{floats: []float64{0.3}}, TwoProbability: 0.9})
	s.SetTwoProbability(0.1)
	if s.TwoProbability() != 0.1 {
		t.Errorf("TwoProbability() = %v, want 0.1", s.TwoProbability())
	}

	s.SetSpawnAfterNoop(true)
	res := s.Move(DirLeft) // empty grid: no-op, but spawns now
	if !res.Spawned || res.Spawn.Value != 4 {
		t.Errorf("Move after setters = %+v, want a spawned 4", res)
	}
}

func TestSessionZeroOptionsUseDefaults(t *testing.T) {
	s := NewSession(SessionOptions{Seed: 7})
	if s.TwoProbability() != DefaultTwoProbability {
		t.Errorf("TwoProbability() = %v, want %v", s.TwoProbability(), DefaultTwoProbability)
	}

	s.Start()
	if got := CellCount - len(EmptyCells(s.Grid())); got != DefaultInitialTiles {
		t.Fatalf("%d tiles after Start, want %d", got, DefaultInitialTiles)
	}
	if s.Over() {
		t.Fatal("fresh session is over")
	}

	// Random play must end: every changing move spawns, so the board fills.
	for n := 0; n < 10000 && !s.Over(); n++ {
		s.Move(Directions[n%len(Directions)])
	}
	if !s.Over() {
		t.Errorf("game never ended after %d moves:\n%v", s.Moves(), s.Grid())
	}
}

func TestSessionEmptyGridIsOver(t *testing.T) {
	s := NewSession(SessionOptions{Source: &scriptedSource{}})
	s.Load(Grid{})
	if !s.Over() {
		t.Error("empty grid has no move but session is not over")
	}
}
