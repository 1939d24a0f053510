//go:build tinygo

package cmd

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/sh1106"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/ws2812"

	"nifri2/proto-face/face"
)

// panelLayout fits the face onto the LED matrix.
var panelLayout = face.Layout{
	EyeW:    10,
	EyeH:    9,
	Spacing: 4,
	Radius:  3,
	MouthW:  8,
	MouthH:  2,
}

// openDisplay configures the selected display once at start-up.
func openDisplay(d Display) (drivers.Displayer, int16, int16) {
	switch d {
	case Display_Panel:
		pin := machine.GP2
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p := &panel{
			strip:  ws2812.New(pin),
			pixels: make([]color.RGBA, PanelWidth*PanelHeight),
			on:     color.RGBA{R: 0x40, G: 0x10, B: 0x30},
		}
		return p, PanelWidth, PanelHeight
	}

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})

	if d == Display_SH1106 {
		dev := sh1106.NewI2C(machine.I2C0)
		dev.Configure(sh1106.Config{Width: ScreenWidth, Height: ScreenHeight, Address: 0x3C})
		dev.ClearDisplay()
		return &dev, ScreenWidth, ScreenHeight
	}

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: ScreenWidth, Height: ScreenHeight, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearDisplay()
	return &dev, ScreenWidth, ScreenHeight
}

// panel drives a serpentine ws2812 matrix as a Displayer: even rows run left to right,
// odd rows right to left.
type panel struct {
	strip  ws2812.Device
	pixels []color.RGBA
	on     color.RGBA
}

func (p *panel) Size() (int16, int16) { return PanelWidth, PanelHeight }

func (p *panel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= PanelWidth || y >= PanelHeight {
		return
	}
	if y%2 == 1 {
		x = PanelWidth - 1 - x
	}
	if c.R|c.G|c.B != 0 {
		c = p.on
	}
	p.pixels[int(y)*PanelWidth+int(x)] = c
}

func (p *panel) Display() error {
	return p.strip.WriteColors(p.pixels)
}
