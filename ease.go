package orbfield

// cubicEaseOut maps p in [0,1] to a curve that starts fast and settles.
func cubicEaseOut(p float32) float32 {
	q := 1.0 - p
	return 1.0 - q*q*q
}

// cubicEaseIn maps p in [0,1] to a curve that starts slow and accelerates.
func cubicEaseIn(p float32) float32 {
	return p * p * p
}

func clamp01(p float32) float32 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// approach moves current toward target by rate of the remaining distance.
// Exponential decay, frame-rate dependent by design: never overshoots.
func approach(current, target, rate float32) float32 {
	return current + (target-current)*rate
}
