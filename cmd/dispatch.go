//go:build tinygo

package cmd

import (
	"fmt"
	"machine"
	"math/rand"
	"time"
)

const (
	Radio_Pin_0 = machine.GP19
	Radio_Pin_1 = machine.GP18
	Radio_Pin_2 = machine.GP17
	Radio_Pin_3 = machine.GP16

	// how long a radio pick holds before the shuffle resumes
	radioHold = 8 * time.Second
)

var Radio_Pins = []machine.Pin{Radio_Pin_0, Radio_Pin_1, Radio_Pin_2, Radio_Pin_3}

// RunDispatcher shuffles expressions and sends them to every worker. A radio button
// code overrides the shuffle for a while.
func RunDispatcher(config Settings, uart *machine.UART, led machine.Pin) {
	fmt.Println("Starting Dispatcher Loop")

	// Configure Watchdog (5s timeout)
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 5000})
	machine.Watchdog.Start()

	// Channel to serialize UART writes
	uartChan := make(chan [PacketSize]byte, 10)
	radioChan := make(chan byte, 10)

	go readRadio(radioChan)

	// Goroutine to handle UART writes
	go func() {
		for packet := range uartChan {
			uart.Write(packet[:])
		}
	}()

	send := func(cmd Command, arg0, arg1 byte) {
		p := Packet{Address: Broadcast, Command: cmd, Arg0: arg0, Arg1: arg1}
		uartChan <- p.Encode()
	}

	cfg := DefaultConfig()
	shuffle := NewShuffler(rand.New(rand.NewSource(time.Now().UnixNano())))
	cfg.ApplyShuffle(shuffle)

	var holdUntil time.Time
	inter := 0 // Counter for 'still alive' messages

	for {
		machine.Watchdog.Update()

		select {
		case code := <-radioChan:
			fmt.Printf("Radio Packet Detected: 0x%02X\n", code)
			if x, ok := RadioExpression(code); ok {
				send(Cmd_Expression, byte(x), 0)
				holdUntil = time.Now().Add(radioHold)
				led.High()
			}
		default:
		}

		now := time.Now()
		if now.After(holdUntil) {
			led.Low()
			if cfg.Shuffle.Enabled {
				if x, ok := shuffle.Next(now); ok {
					fmt.Println("Expression:", x)
					send(Cmd_Expression, byte(x), 0)
					inter++
					fmt.Println("still alive", inter)
				}
			}
		}

		time.Sleep(20 * time.Millisecond)
	}
}

// readRadio turns presses on the four radio pins into codes. A single press sends the
// pin index (0x00-0x03). A second press within a second sends 4 + first<<2 + second
// (0x04-0x13).
func readRadio(radioChan chan<- byte) {
	for _, pin := range Radio_Pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	}

	for {
		first := waitPress(time.Time{})
		waitRelease()

		second := waitPress(time.Now().Add(time.Second))
		if second < 0 {
			radioChan <- byte(first)
			continue
		}
		waitRelease()
		radioChan <- byte(4 + first<<2 + second)
	}
}

// pressedPin returns the index of the first pressed radio pin, or -1.
func pressedPin() int {
	for i, pin := range Radio_Pins {
		if pin.Get() {
			return i
		}
	}
	return -1
}

// waitPress polls until a pin is pressed or the deadline passes. A zero deadline waits
// forever.
func waitPress(deadline time.Time) int {
	for deadline.IsZero() || time.Now().Before(deadline) {
		if p := pressedPin(); p >= 0 {
			return p
		}
		time.Sleep(10 * time.Millisecond)
	}
	return -1
}

func waitRelease() {
	for pressedPin() >= 0 {
		time.Sleep(10 * time.Millisecond)
	}
}
