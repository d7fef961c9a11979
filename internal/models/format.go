package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTime renders a duration in minutes as "HH:MM".
// Hours are not capped at 24. Negative durations keep a leading "-".
func FormatTime(minutes int) string {
	sign := ""
	// magnitude in uint64 so that math.MinInt has one
	abs := uint64(minutes)
	if minutes < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, abs/60, abs%60)
}

// ParseTime is the inverse of FormatTime. Only the whole string may carry
// a sign; hours and minutes are plain digits.
func ParseTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")

	hhText, mmText, ok := strings.Cut(body, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hh, err := strconv.ParseUint(hhText, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q", s)
	}
	mm, err := strconv.ParseUint(mmText, 10, 64)
	if err != nil || mm >= 60 || len(mmText) != 2 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}

	limit := uint64(math.MaxInt)
	if negative {
		limit++
	}
	if hh > (limit-mm)/60 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	total := hh*60 + mm
	if negative {
		return int(-total), nil
	}
	return int(total), nil
}
