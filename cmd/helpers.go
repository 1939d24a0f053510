package cmd

func ParseRole(r string) Role {
	switch r {
	case "worker":
		return Worker
	default:
		return Dispatcher
	}
}

func ParseAddress(a string) Address {
	switch a {
	case "worker-0":
		return Worker_0
	case "worker-1":
		return Worker_1
	case "worker-2":
		return Worker_2
	case "worker-3":
		return Worker_3
	default:
		return Dispatch
	}
}

func ParseDisplay(d string) Display {
	switch d {
	case "sh1106":
		return Display_SH1106
	case "panel", "ws2812":
		return Display_Panel
	default:
		return Display_SSD1306
	}
}

// RadioExpression maps a radio button code (single press 0x00-0x03, double press
// 0x04-0x13) to an expression.
func RadioExpression(code byte) (Expression, bool) {
	if int(code) >= len(radioExpressions) {
		return Expr_Neutral, false
	}
	return radioExpressions[code], true
}

var radioExpressions = [...]Expression{
	// single press
	0x00: Expr_Neutral,
	0x01: Expr_Happy,
	0x02: Expr_Sad,
	0x03: Expr_Love,

	// double press, first button A
	0x04: Expr_Angry,
	0x05: Expr_Surprised,
	0x06: Expr_Confused,
	0x07: Expr_Sleepy,

	// B
	0x08: Expr_Curious,
	0x09: Expr_Nervous,
	0x0A: Expr_Knocked,
	0x0B: Expr_UwU,

	// C
	0x0C: Expr_XD,
	0x0D: Expr_Idle,
	0x0E: Expr_Happy,
	0x0F: Expr_Love,

	// D
	0x10: Expr_Sad,
	0x11: Expr_Confused,
	0x12: Expr_Knocked,
	0x13: Expr_Neutral,
}
