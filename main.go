//go:build tinygo

package main

import (
	"fmt"
	"machine"
	"time"

	"nifri2/proto-face/cmd"
)

// buildRole, buildAddress and buildDisplay are set at compile time via -ldflags
// e.g. -ldflags="-X main.buildRole=worker -X main.buildAddress=worker-0 -X main.buildDisplay=sh1106"
var (
	buildRole    string
	buildAddress string
	buildDisplay string
)

var config = cmd.Settings{
	Role:    cmd.ParseRole(buildRole),
	Address: cmd.ParseAddress(buildAddress),
	Display: cmd.ParseDisplay(buildDisplay),
}

func main() {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 38400,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	fmt.Printf("Role: %d Address: %d Display: %d\n", config.Role, config.Address, config.Display)
	flashRole(led, config.Role)

	switch config.Role {
	case cmd.Dispatcher:
		cmd.RunDispatcher(config, uart, led)
	case cmd.Worker:
		cmd.RunWorker(config, uart, led)
	}
}

// flashRole shows the role on the LED: two slow flashes for the dispatcher, five quick
// ones for a worker.
func flashRole(led machine.Pin, role cmd.Role) {
	times, interval := 2, 200*time.Millisecond
	if role == cmd.Worker {
		times, interval = 5, 40*time.Millisecond
	}
	for range times {
		led.High()
		time.Sleep(interval)
		led.Low()
		time.Sleep(interval)
	}
}
