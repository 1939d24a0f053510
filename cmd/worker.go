//go:build tinygo

package cmd

import (
	"fmt"
	"machine"
	"math/rand"
	"time"

	"nifri2/proto-face/face"
	"nifri2/proto-face/raster"
)

func RunWorker(config Settings, uart *machine.UART, led machine.Pin) {
	// Listen for commands from Dispatcher
	fmt.Println("Starting Worker Loop")

	packets := make(chan Packet, 4)

	// The display goroutine owns the face engine
	go displayFace(config, packets)

	var reader PacketReader
	for {
		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			p, ok, err := reader.Feed(b)
			if err != nil {
				fmt.Println("Dropped packet:", err)
				continue
			}
			if !ok || !p.For(config.Address) {
				continue
			}
			led.High()
			select {
			case packets <- p:
			default:
				fmt.Println("Display busy, dropped command", p.Command)
			}
			led.Low()
		}
		time.Sleep(time.Millisecond)
	}
}

func displayFace(config Settings, packets <-chan Packet) {
	dev, w, h := openDisplay(config.Display)
	canvas := raster.New(dev)

	cfg := DefaultConfig()
	e := face.New(canvas, face.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	cfg.Apply(e)
	if config.Display == Display_Panel {
		e.SetLayout(panelLayout)
	}
	handler := NewHandler(e)
	cfg.ApplyHandler(handler)

	e.Begin(w, h, cfg.FrameRate)

	var lastErr error
	for {
		select {
		case p := <-packets:
			resp, err := handler.HandlePacket(p)
			if err != nil {
				fmt.Println("Command failed:", err)
			} else if resp != "" {
				fmt.Println(resp)
			}
		default:
		}

		if e.Update() {
			if err := canvas.Err(); err != nil && err != lastErr {
				fmt.Println("Display error:", err)
			}
			lastErr = canvas.Err()
		}
		time.Sleep(2 * time.Millisecond)
	}
}
