package report

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "Xh Ym". Minutes are floored,
// never rounded up: 59 minutes 59 seconds renders as "0h 59m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatClock renders a duration as h:mm:ss.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// FormatHours renders a duration as decimal hours with the given number
// of decimal places.
func FormatHours(d time.Duration, decimals int) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.*f", decimals, d.Hours())
}
