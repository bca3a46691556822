package core

import "strconv"

// FormatTimes renders a call count the way failure messages phrase it:
// "never", "once", "twice", or "N times".
func FormatTimes(n int) string {
	switch n {
	case 0:
		return "never"
	case 1:
		return "once"
	case 2: //nolint:mnd // "twice" is the last irregular phrase
		return "twice"
	default:
		return strconv.Itoa(n) + " times"
	}
}

// actualCallsPhrase renders the "Actual:" line of saturation failures.
func actualCallsPhrase(n int) string {
	if n == 0 {
		return "never called"
	}

	return "called " + FormatTimes(n)
}
