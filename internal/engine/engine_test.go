package engine

import (
	"errors"
	"testing"
)

// scriptedRand returns the queued values in order, then zeros.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.values) {
		return 0
	}
	v := r.values[r.pos] % n
	r.pos++
	return v
}

func TestNewGame(t *testing.T) {
	for seed := range int64(50) {
		e := New(WithSeed(seed))
		e.NewGame()

		if got := CountTiles(e.Grid()); got != 2 {
			t.Fatalf("seed %d: NewGame tiles = %d, want 2", seed, got)
		}
		if e.Status() != Playing {
			t.Fatalf("seed %d: status = %s, want playing", seed, e.Status())
		}
		if e.Score() != 0 || e.Moves() != 0 {
			t.Fatalf("seed %d: score/moves = %d/%d, want 0/0", seed, e.Score(), e.Moves())
		}
		for _, row := range e.Grid() {
			for _, v := range row {
				if v != 0 && v != 2 && v != 4 {
					t.Fatalf("seed %d: initial tile %d, want 2 or 4", seed, v)
				}
			}
		}
	}
}

func TestNewGameResetsTerminalState(t *testing.T) {
	e := New(WithSeed(1))
	e.NewGame()
	e.grid = Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	e.score = 120
	e.Move(Left)
	if e.Status() != Lost {
		t.Fatalf("status = %s, want lost", e.Status())
	}

	e.NewGame()
	if e.Status() != Playing || e.Score() != 0 || CountTiles(e.Grid()) != 2 {
		t.Errorf("NewGame after loss: status %s score %d tiles %d", e.Status(), e.Score(), CountTiles(e.Grid()))
	}
}

func TestSpawnPlacement(t *testing.T) {
	// First sample hits the occupied (0,0), second lands on (1,2) with a
	// roll of 95, which is a 2. Next spawn lands on (3,3) rolling 3, a 4.
	rng := &scriptedRand{values: []int{0, 0, 1, 2, 95, 3, 3, 3}}
	e := New(WithRand(rng))
	e.grid[0][0] = 8

	tile := e.spawn()
	if tile == nil || *tile != (Tile{X: 1, Y: 2, Value: 2}) {
		t.Fatalf("first spawn = %+v, want {1 2 2}", tile)
	}
	if e.grid[2][1] != 2 {
		t.Errorf("grid[2][1] = %d, want 2", e.grid[2][1])
	}

	tile = e.spawn()
	if tile == nil || *tile != (Tile{X: 3, Y: 3, Value: 4}) {
		t.Fatalf("second spawn = %+v, want {3 3 4}", tile)
	}
}

func TestSpawnFullGridNoop(t *testing.T) {
	e := New(WithSeed(1))
	e.grid = Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if tile := e.spawn(); tile != nil {
		t.Errorf("spawn on full grid = %+v, want nil", tile)
	}
}

func TestMoveMergesAndSpawns(t *testing.T) {
	e := New(WithSeed(3))
	e.NewGame()
	e.grid = Grid{
		{2, 2, 0, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := e.Move(Left)

	if !res.Moved || res.Gained != 4 {
		t.Fatalf("Move = %+v, want moved with gain 4", res)
	}
	if res.Spawned == nil {
		t.Fatal("changing move should spawn a tile")
	}
	if e.Score() != 4 || e.Moves() != 1 {
		t.Errorf("score/moves = %d/%d, want 4/1", e.Score(), e.Moves())
	}
	if got := CountTiles(e.Grid()); got != 3 {
		t.Errorf("tiles after move = %d, want 3", got)
	}
	g := e.Grid()
	if g[0][0] != 4 || g[0][1] != 4 {
		t.Errorf("row 0 = %v, want [4 4 ...]", g[0])
	}
}

func TestMoveNoChangeNoSpawn(t *testing.T) {
	e := New(WithSeed(3))
	e.NewGame()
	e.grid = Grid{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := e.Grid()

	res := e.Move(Left)

	if res.Moved || res.Spawned != nil {
		t.Errorf("no-op move = %+v, want zero result", res)
	}
	if e.Grid() != before || e.Score() != 0 || e.Moves() != 0 {
		t.Error("no-op move should not change grid, score or moves")
	}
	if e.Status() != Playing {
		t.Errorf("status = %s, want playing", e.Status())
	}
}

func TestMoveLost(t *testing.T) {
	locked := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			e := New(WithSeed(1))
			e.NewGame()
			e.grid = locked
			e.score = 300

			res := e.Move(dir)

			if e.Status() != Lost {
				t.Errorf("status = %s, want lost", e.Status())
			}
			if res.Moved || e.Grid() != locked || e.Score() != 300 {
				t.Error("lost move should not mutate grid or score")
			}
		})
	}
}

func TestMoveWinSkipsSpawn(t *testing.T) {
	e := New(WithSeed(5))
	e.NewGame()
	e.grid = Grid{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	res := e.Move(Left)

	if e.Grid()[0][0] != 2048 {
		t.Fatalf("grid[0][0] = %d, want 2048", e.Grid()[0][0])
	}
	if e.Status() != Won {
		t.Errorf("status = %s, want won", e.Status())
	}
	if res.Spawned != nil || CountTiles(e.Grid()) != 1 {
		t.Error("winning move should not spawn a tile")
	}
	if e.Score() != 2048 {
		t.Errorf("score = %d, want 2048", e.Score())
	}

	// Move is not blocked in a terminal state; the win check fires again.
	e.Move(Right)
	if e.Status() != Won || CountTiles(e.Grid()) != 1 {
		t.Errorf("move after win: status %s tiles %d", e.Status(), CountTiles(e.Grid()))
	}
}

func TestCustomWinTile(t *testing.T) {
	e := New(WithSeed(5), WithWinTile(8))
	e.NewGame()
	e.grid = Grid{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	e.Move(Left)
	if e.Status() != Won {
		t.Errorf("status = %s, want won at custom tile 8", e.Status())
	}
	if e.WinTile() != 8 {
		t.Errorf("WinTile = %d, want 8", e.WinTile())
	}

	for _, v := range []int{100, 1, 2, 4, 0, -8} {
		ignored := New(WithWinTile(v))
		if ignored.WinTile() != DefaultWinTile {
			t.Errorf("WithWinTile(%d) should be ignored, got %d", v, ignored.WinTile())
		}
	}
}

func TestNewGameWithSmallestWinTile(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		e := New(WithSeed(seed), WithWinTile(MinWinTile), WithFourPercent(100))
		e.NewGame()
		if CountTiles(e.Grid()) != 2 || e.Status() != Playing {
			t.Fatalf("seed %d: %d tiles, status %s; want 2 tiles, playing", seed, CountTiles(e.Grid()), e.Status())
		}
	}

	// A requested win tile of 4 falls back to the default, so opening
	// 4s can not end the game
	for seed := int64(1); seed <= 200; seed++ {
		e := New(WithSeed(seed), WithWinTile(4), WithFourPercent(100))
		e.NewGame()
		if CountTiles(e.Grid()) != 2 || e.Status() != Playing {
			t.Fatalf("seed %d with win tile 4: %d tiles, status %s", seed, CountTiles(e.Grid()), e.Status())
		}
	}
}

func TestFourPercent(t *testing.T) {
	always := New(WithSeed(9), WithFourPercent(100))
	always.NewGame()
	for _, row := range always.Grid() {
		for _, v := range row {
			if v != 0 && v != 4 {
				t.Fatalf("four percent 100 spawned %d", v)
			}
		}
	}

	never := New(WithSeed(9), WithFourPercent(0))
	never.NewGame()
	for _, row := range never.Grid() {
		for _, v := range row {
			if v != 0 && v != 2 {
				t.Fatalf("four percent 0 spawned %d", v)
			}
		}
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for seed := range int64(20) {
		e := New(WithSeed(seed))
		e.NewGame()
		lastScore := 0

		// Every four moves at least one spawns, so the loop bound is never hit.
		for i := 0; i < 40000 && !e.Status().Terminal(); i++ {
			res := e.Move(Directions[i%len(Directions)])

			for _, row := range e.Grid() {
				for _, v := range row {
					if v != 0 && !IsPowerOfTwo(v) {
						t.Fatalf("seed %d: invalid cell %d", seed, v)
					}
				}
			}
			if e.Score() < lastScore {
				t.Fatalf("seed %d: score decreased %d -> %d", seed, lastScore, e.Score())
			}
			if e.Score()-lastScore != res.Gained {
				t.Fatalf("seed %d: gained %d but score moved by %d", seed, res.Gained, e.Score()-lastScore)
			}
			lastScore = e.Score()

			if res.Moved && e.Status() == Playing && res.Spawned == nil {
				t.Fatalf("seed %d: changing move must spawn a tile", seed)
			}
			if e.Status() == Won && res.Spawned != nil {
				t.Fatalf("seed %d: winning move spawned a tile", seed)
			}
		}

		if !e.Status().Terminal() {
			t.Fatalf("seed %d: game did not end", seed)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	play := func() Snapshot {
		e := New(WithSeed(12345))
		e.NewGame()
		for i := range 200 {
			e.Move(Directions[i%len(Directions)])
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("same seed produced different games:\n%+v\n%+v", a, b)
	}
}

func TestSnapshot(t *testing.T) {
	e := New(WithSeed(2))
	e.NewGame()
	e.grid = Grid{
		{2, 0, 0, 0},
		{0, 16, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	e.score = 40
	e.moves = 7

	snap := e.Snapshot()
	if snap.MaxTile != 16 || snap.Score != 40 || snap.Moves != 7 || snap.Status != Playing {
		t.Errorf("Snapshot = %+v", snap)
	}
	if snap.Grid != e.Grid() {
		t.Error("Snapshot grid should match engine grid")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"up", Up},
		{"Down", Down},
		{" LEFT ", Left},
		{"r", Right},
		{"u", Up},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.input, got, tt.want)
		}
		if got.String() == "unknown" {
			t.Errorf("%v has no name", got)
		}
	}

	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(diagonal) error = %v, want ErrUnknownDirection", err)
	}
}

func TestStatusString(t *testing.T) {
	if Playing.String() != "playing" || Won.String() != "won" || Lost.String() != "lost" {
		t.Error("unexpected status names")
	}
	if Playing.Terminal() || !Won.Terminal() || !Lost.Terminal() {
		t.Error("unexpected Terminal results")
	}
}
