package swrast

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
