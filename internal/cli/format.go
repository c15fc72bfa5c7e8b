// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatWholePercent formats an already-scaled 0-100 value with no decimals.
func FormatWholePercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatValue formats a goal quantity without trailing zeros.
// e.g., 10 -> "10", 2.5 -> "2.5", 1.126 -> "1.13"
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatQuantity formats "current/target unit".
func FormatQuantity(current, target float64, unit string) string {
	s := FormatValue(current) + "/" + FormatValue(target)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// FormatStreak formats a streak length, e.g. 3 -> "🔥 3 days".
func FormatStreak(n int) string {
	if n <= 0 {
		return "-"
	}
	if n == 1 {
		return "🔥 1 day"
	}
	return fmt.Sprintf("🔥 %d days", n)
}

// FormatDaysLeft describes the distance to a deadline.
func FormatDaysLeft(days int) string {
	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day left"
	case days > 1:
		return fmt.Sprintf("%d days left", days)
	case days == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -days)
	}
}

// FormatCheck renders a completion mark.
func FormatCheck(done bool) string {
	if done {
		return "✓"
	}
	return "·"
}

// FormatShortDate formats a date as "Jan 2".
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// ShortID returns the last 8 characters of an id for table display.
// Time-ordered ids share their leading characters, so the tail is used.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
