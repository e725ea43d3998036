package export

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/GerhardMe/spacetime/internal/viz"
)

// Cell geometry matching a typical terminal font aspect.
const (
	cellW = 8
	cellH = 16
	dotW  = cellW / 2
	dotH  = cellH / 4
)

var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToImage rasterizes a Braille canvas into a bitmap, each cell
// becoming an 8x16 pixel block. colors maps class bytes to dot colors
// (viz.ClassColors output); classes past the table fall back to the
// theme's text color.
func CanvasToImage(c *viz.Canvas, th viz.Theme, colors []lipgloss.Color) *image.RGBA {
	imgW, imgH := c.Width*cellW, c.Height*cellH
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))

	bg := rgba(th.Background)
	for y := 0; y < imgH; y++ {
		for x := 0; x < imgW; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	fallback := rgba(th.Text)
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col]) - 0x2800
			if pattern <= 0 {
				continue
			}
			dot := fallback
			if class := int(c.Class[row][col]); class < len(colors) {
				dot = rgba(colors[class])
			}
			baseX, baseY := col*cellW, row*cellH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetRGBA(baseX+dx*dotW+px, baseY+dy*dotH+py, dot)
						}
					}
				}
			}
		}
	}
	return img
}

// WritePNG encodes the image to path.
func WritePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func rgba(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return r, g, b
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}
