package tui

// Truncate truncates string with … suffix if exceeds maxLen
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// Center pads s on both sides to width w, truncating if needed
func Center(s string, w int) string {
	s = Truncate(s, w)
	n := len([]rune(s))
	if n >= w {
		return s
	}
	left := (w - n) / 2
	right := w - n - left
	return spaces(left) + s + spaces(right)
}

func spaces(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
