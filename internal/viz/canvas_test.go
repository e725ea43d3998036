package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndDotAt(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(3, 5)
	if !c.DotAt(3, 5) {
		t.Fatal("dot (3,5) not set")
	}
	if c.DotAt(2, 5) || c.DotAt(3, 4) {
		t.Error("neighboring dots set")
	}
	if got := c.Grid[1][1]; got != rune(0x2810) {
		t.Errorf("cell rune = %#x, want 0x2810", got)
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	c.SetColored(4, 0, ClassCone)
	if c.DotAt(-1, 0) || c.DotAt(4, 0) {
		t.Error("out-of-range dot reported set")
	}
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != blankBraille {
				t.Fatalf("out-of-range set touched cell %#x", cell)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.SetColored(0, 0, ClassCone)
	c.Clear()
	if c.Grid[0][0] != blankBraille || c.Class[0][0] != 0 {
		t.Error("clear left state behind")
	}
}

func TestSetColoredStampsClass(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetColored(0, 0, ClassCone)
	c.SetColored(1, 0, ClassAxis)
	if c.Class[0][0] != ClassAxis {
		t.Errorf("class = %d, want %d (last writer)", c.Class[0][0], ClassAxis)
	}
	c.Set(0, 1)
	if c.Class[0][0] != ClassAxis {
		t.Error("plain Set overwrote class")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := NewCanvas(2, 1)
	c.DrawLine(0, 0, 3, 3)
	for i := 0; i <= 3; i++ {
		if !c.DotAt(i, i) {
			t.Errorf("diagonal dot (%d,%d) not set", i, i)
		}
	}
	if c.DotAt(1, 0) {
		t.Error("off-diagonal dot set")
	}
}

func TestDrawLineDashedPattern(t *testing.T) {
	c := NewCanvas(8, 1)
	c.DrawLineDashed(0, 0, 15, 0, 1, 3, ClassGrid)
	for x := 0; x <= 15; x++ {
		want := x%4 == 0
		if got := c.DotAt(x, 0); got != want {
			t.Errorf("dash dot %d set = %v, want %v", x, got, want)
		}
	}
}

func TestDrawLineDashedZeroOn(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLineDashed(0, 0, 7, 0, 0, 2, ClassGrid)
	for x := 0; x <= 7; x++ {
		if c.DotAt(x, 0) {
			t.Fatal("on=0 drew dots")
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if n := len([]rune(line)); n != 5 {
			t.Errorf("line width = %d runes, want 5", n)
		}
	}
}

func TestStyledEmptyPaletteMatchesString(t *testing.T) {
	c := NewCanvas(6, 2)
	c.DrawLineColored(0, 0, 11, 7, ClassObserver)
	if c.Styled(nil) != c.String() {
		t.Error("unstyled render differs from plain string")
	}
}
