package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blankBraille = 0x2800

// Canvas is a Braille dot grid with one color class byte per cell. Dot
// coordinates run (Width*2) x (Height*4); the class of a cell is
// whatever was drawn into it last, so callers draw background layers
// first.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Class         [][]uint8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Class:  make([][]uint8, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Class[i] = make([]uint8, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blankBraille
		}
	}
	return c
}

// Set sets the dot at (x, y) in sub-pixel coordinates, leaving the
// cell's color class alone.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetColored sets the dot at (x, y) and assigns the cell's color class.
func (c *Canvas) SetColored(x, y int, class uint8) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Class[row][col] = class
}

// DotAt reports whether the dot at sub-pixel (x, y) is set.
func (c *Canvas) DotAt(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return false
	}

	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets every cell to the blank pattern and the zero class.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blankBraille
			c.Class[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.bresenham(x0, y0, x1, y1, func(x, y int) { c.Set(x, y) })
}

// DrawLineColored draws a line and stamps the class on every cell it
// touches.
func (c *Canvas) DrawLineColored(x0, y0, x1, y1 int, class uint8) {
	c.bresenham(x0, y0, x1, y1, func(x, y int) { c.SetColored(x, y, class) })
}

// DrawLineDashed draws a line with a repeating pattern of on set dots
// followed by off skipped dots, for cones and grid work.
func (c *Canvas) DrawLineDashed(x0, y0, x1, y1 int, on, off int, class uint8) {
	if on <= 0 {
		return
	}
	period := on + off
	step := 0
	c.bresenham(x0, y0, x1, y1, func(x, y int) {
		if step%period < on {
			c.SetColored(x, y, class)
		}
		step++
	})
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas as plain Braille text, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with the palette applied per color class,
// styling runs of equal-class cells together to keep the output small.
// Classes beyond the palette render unstyled.
func (c *Canvas) Styled(palette []lipgloss.Style) string {
	var b strings.Builder
	for row, cells := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Class[row][col] == c.Class[row][start] {
				continue
			}
			run := string(cells[start:col])
			if class := int(c.Class[row][start]); class < len(palette) {
				run = palette[class].Render(run)
			}
			b.WriteString(run)
			start = col
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
