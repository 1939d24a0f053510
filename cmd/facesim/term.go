package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock puts two pixels in one cell: the upper one in the foreground colour, the
// lower one in the background colour.
const halfBlock = '▀'

// termDisplay is a display driver that draws pixels on a terminal screen, two rows of
// pixels per text row.
type termDisplay struct {
	screen tcell.Screen
	w, h   int16
	x0, y0 int
	px     []color.RGBA
}

func newTermDisplay(screen tcell.Screen, w, h int16, x0, y0 int) *termDisplay {
	return &termDisplay{
		screen: screen,
		w:      w,
		h:      h,
		x0:     x0,
		y0:     y0,
		px:     make([]color.RGBA, int(w)*int(h)),
	}
}

func (d *termDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *termDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.px[int(y)*int(d.w)+int(x)] = c
}

// Display writes the pixels to the screen cells. The caller shows the screen.
func (d *termDisplay) Display() error {
	for row := 0; row < (int(d.h)+1)/2; row++ {
		for x := 0; x < int(d.w); x++ {
			top := d.px[2*row*int(d.w)+x]
			bottom := color.RGBA{A: 0xFF}
			if 2*row+1 < int(d.h) {
				bottom = d.px[(2*row+1)*int(d.w)+x]
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			d.screen.SetContent(d.x0+x, d.y0+row, halfBlock, nil, style)
		}
	}
	return nil
}

// Rows is the number of text rows the display covers.
func (d *termDisplay) Rows() int { return (int(d.h) + 1) / 2 }

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
