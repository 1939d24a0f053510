package face

import "math"

// SmoothDamp moves current toward target with an exponential approach. It never
// overshoots and is stable for any dt >= 0.
func SmoothDamp(current, target, rate, dt float32) float32 {
	if dt <= 0 || rate <= 0 {
		return current
	}
	t := 1 - expf(-rate*dt)
	return current + (target-current)*t
}

// ApproachLinear moves current toward target by at most speed*dt.
func ApproachLinear(current, target, speed, dt float32) float32 {
	diff := target - current
	step := speed * dt
	if step < 0 {
		step = 0
	}
	if absf(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp16(v, lo, hi int16) int16 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func expf(v float32) float32 { return float32(math.Exp(float64(v))) }
func sinf(v float32) float32 { return float32(math.Sin(float64(v))) }
func cosf(v float32) float32 { return float32(math.Cos(float64(v))) }
