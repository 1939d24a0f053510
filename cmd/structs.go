package cmd

type Role int

const (
	Dispatcher Role = 0x00 + iota
	Worker
)

type Address int

const (
	Dispatch Address = 0x00 + iota
	Worker_0
	Worker_1
	Worker_2
	Worker_3
	Broadcast Address = 0xFF
)

type Command int

const (
	Cmd_NoOp       Command = 0x00 + iota
	Cmd_Expression         // arg0 = Expression
	Cmd_Mouth              // arg0 = legacy mouth code
	Cmd_Position           // arg0 = compass position
	Cmd_Toggle             // arg0 = Toggle, arg1 = 0 off / 1 on
	Cmd_Action             // arg0 = Action
	Cmd_MouthAnim          // arg0 = legacy anim code, arg1 = duration in 100ms
)

type Display int

const (
	Display_SSD1306 Display = 0x00 + iota
	Display_SH1106
	Display_Panel
)

type Settings struct {
	Role    Role
	Address Address
	Display Display
}

type Toggle byte

const (
	Toggle_Sweat Toggle = 0x00 + iota
	Toggle_Cyclops
	Toggle_Mouth
	Toggle_Idle
)

type Action byte

const (
	Action_Blink Action = 0x00 + iota
	Action_Wink
	Action_WinkRight
	Action_Laugh
	Action_Cry
)

const (
	ScreenWidth  = 128
	ScreenHeight = 64
	FrameRate    = 50

	// Panel is a serpentine ws2812 matrix
	PanelWidth  = 32
	PanelHeight = 16
)
