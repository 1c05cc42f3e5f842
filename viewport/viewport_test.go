package viewport

import (
	"math/rand"
	"testing"
)

func TestScroll(t *testing.T) {
	d := Dims{Rows: 24, Cols: 80}

	tests := []struct {
		name string
		c    Cursor
		prev Offset
		want Offset
	}{
		{"origin", Cursor{0, 0}, Offset{}, Offset{}},
		{"visible unchanged", Cursor{X: 10, Y: 30}, Offset{Row: 20, Col: 5}, Offset{Row: 20, Col: 5}},
		{"last visible row", Cursor{Y: 23}, Offset{}, Offset{}},
		{"one below", Cursor{Y: 24}, Offset{}, Offset{Row: 1}},
		{"far below", Cursor{Y: 999}, Offset{}, Offset{Row: 976}},
		{"above", Cursor{Y: 3}, Offset{Row: 10}, Offset{Row: 3}},
		{"right edge", Cursor{X: 80}, Offset{}, Offset{Col: 1}},
		{"left of view", Cursor{X: 2}, Offset{Col: 40}, Offset{Col: 2}},
		{"both axes", Cursor{X: 100, Y: 50}, Offset{}, Offset{Row: 27, Col: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scroll(tt.c, d, tt.prev); got != tt.want {
				t.Errorf("Scroll(%+v, %+v) = %+v, want %+v", tt.c, tt.prev, got, tt.want)
			}
		})
	}
}

func TestScroll_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		d := Dims{Rows: 1 + rng.Intn(60), Cols: 1 + rng.Intn(200)}
		c := Cursor{X: rng.Intn(500), Y: rng.Intn(2000)}
		prev := Offset{Row: rng.Intn(2000), Col: rng.Intn(500)}

		once := Scroll(c, d, prev)
		twice := Scroll(c, d, once)
		if once != twice {
			t.Fatalf("not idempotent for c=%+v d=%+v prev=%+v: %+v then %+v", c, d, prev, once, twice)
		}
	}
}

func TestScroll_CursorInsideWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		d := Dims{Rows: 1 + rng.Intn(60), Cols: 1 + rng.Intn(200)}
		c := Cursor{X: rng.Intn(500), Y: rng.Intn(2000)}
		prev := Offset{Row: rng.Intn(2000), Col: rng.Intn(500)}

		off := Scroll(c, d, prev)
		if c.Y < off.Row || c.Y >= off.Row+d.Rows {
			t.Fatalf("row %d outside [%d, %d)", c.Y, off.Row, off.Row+d.Rows)
		}
		if c.X < off.Col || c.X >= off.Col+d.Cols {
			t.Fatalf("col %d outside [%d, %d)", c.X, off.Col, off.Col+d.Cols)
		}
	}
}
