package t2048

import (
	"math/rand"
	"testing"
)

// scriptedSource replays fixed answers to Intn and Float64.
type scriptedSource struct {
	ints   []int
	floats []float64
	nCalls []int // n passed to each Intn call
}

func (s *scriptedSource) Intn(n int) int {
	s.nCalls = append(s.nCalls, n)
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestSpawnPicksEmptyCellInIndexOrder(t *testing.T) {
	src := &scriptedSource{ints: []int{2}, floats: []float64{0.5}}
	e := NewEngine(src, 0.9)
	e.Load(GridFromRows([Size][Size]uint32{
		{2, 0, 4, 0},
		{8, 8, 8, 0},
		{2, 4, 2, 4},
		{2, 4, 2, 4},
	}))

	sp, ok := e.Spawn()
	if !ok {
		t.Fatal("Spawn() = false with empty cells")
	}

	// Empty cells in order: 1, 3, 7. Pick #2 is index 7.
	if sp.Index != 7 || sp.Row() != 1 || sp.Col() != 3 {
		t.Errorf("spawn at %d (%d,%d), want 7 (1,3)", sp.Index, sp.Row(), sp.Col())
	}
	if sp.Value != 2 {
		t.Errorf("spawn value = %d, want 2", sp.Value)
	}
	if len(src.nCalls) != 1 || src.nCalls[0] != 3 {
		t.Errorf("Intn called with %v, want [3]", src.nCalls)
	}
	if e.Grid().At(1, 3) != 2 {
		t.Error("spawned value not written to the grid")
	}
}

func TestSpawnValueFollowsProbability(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		roll float64
		want uint32
	}{
		{"roll below p gives 2", 0.9, 0.89, 2},
		{"roll at p gives 4", 0.9, 0.9, 4},
		{"half and half low", 0.5, 0.1, 2},
		{"half and half high", 0.5, 0.7, 4},
		{"zero probability always 4", 0, 0, 4},
		{"one probability always 2", 1, 0.999, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(&scriptedSource{floats: []float64{tt.roll}}, tt.p)
			sp, ok := e.Spawn()
			if !ok {
				t.Fatal("Spawn() = false on empty grid")
			}
			if sp.Value != tt.want {
				t.Errorf("value = %d, want %d", sp.Value, tt.want)
			}
		})
	}
}

func TestSetTwoProbabilityClamps(t *testing.T) {
	e := NewEngine(&scriptedSource{}, 1.5)
	if e.TwoProbability() != 1 {
		t.Errorf("TwoProbability() = %v, want 1", e.TwoProbability())
	}
	e.SetTwoProbability(-0.2)
	if e.TwoProbability() != 0 {
		t.Errorf("TwoProbability() = %v, want 0", e.TwoProbability())
	}
}

func TestSpawnDecrementsEmptyCells(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(3)), DefaultTwoProbability)

	for want := CellCount - 1; want >= 0; want-- {
		if !e.SpawnRandomTile() {
			t.Fatalf("SpawnRandomTile() = false with %d empty cells", want+1)
		}
		if got := len(EmptyCells(e.Grid())); got != want {
			t.Fatalf("empty cells = %d, want %d", got, want)
		}
		for _, v := range e.Grid() {
			if v != 0 && v != 2 && v != 4 {
				t.Fatalf("spawned value %d", v)
			}
		}
	}

	if e.SpawnRandomTile() {
		t.Error("SpawnRandomTile() = true on a full grid")
	}
}

func TestSpawnIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := make(map[int]int)
	const trials = 16000

	for i := 0; i < trials; i++ {
		e := NewEngine(rng, DefaultTwoProbability)
		sp, _ := e.Spawn()
		counts[sp.Index]++
	}

	for idx := 0; idx < CellCount; idx++ {
		// Expected 1000 each; allow a generous band
		if c := counts[idx]; c < 800 || c > 1200 {
			t.Errorf("cell %d chosen %d times out of %d", idx, c, trials)
		}
	}
}

func TestEngineMoveAndClear(t *testing.T) {
	e := NewEngine(&scriptedSource{}, DefaultTwoProbability)
	e.Load(GridFromRows([Size][Size]uint32{{2, 2, 2, 2}}))

	if delta := e.Move(DirLeft); delta != 8 {
		t.Errorf("Move(left) delta = %d, want 8", delta)
	}
	if delta := e.Move(DirLeft); delta != 8 {
		t.Errorf("second Move(left) delta = %d, want 8", delta)
	}
	if e.Grid().At(0, 0) != 16 {
		t.Errorf("grid after two moves:\n%v", e.Grid())
	}

	e.Clear()
	if e.Grid() != (Grid{}) {
		t.Error("Clear() left tiles on the grid")
	}
}
