package notify

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"codeberg.org/mutker/meteoctl/internal/stats"
)

const noData = "no data"

// Compose formats the summary mailed at the end of a notification interval.
func Compose(kind stats.Kind, interval time.Duration, temperature, humidity float64) string {
	span := describeInterval(interval)
	label := kind.Label()

	return fmt.Sprintf("The %s temperature for the last %s is: %s\nThe %s humidity for the last %s is: %s",
		label, span, formatValue(temperature),
		label, span, formatValue(humidity))
}

// Subject is the mail subject for a summary.
func Subject(kind stats.Kind, interval time.Duration) string {
	return fmt.Sprintf("meteoctl: %s for the last %s", kind.Label(), describeInterval(interval))
}

// ComposeAlert formats the immediate system temperature alert.
func ComposeAlert(temperature float64) string {
	return "HIGH CPU TEMPERATURE!!: " + formatValue(temperature)
}

// AlertSubject is the mail subject for an alert.
const AlertSubject = "meteoctl: high CPU temperature"

// describeInterval renders whole hours above one hour and whole minutes otherwise.
func describeInterval(interval time.Duration) string {
	if interval > time.Hour {
		return fmt.Sprintf("%.0f hours", math.Round(interval.Hours()))
	}

	return fmt.Sprintf("%.0f minutes", math.Round(interval.Minutes()))
}

func formatValue(v float64) string {
	if stats.IsNoData(v) {
		return noData
	}

	return strconv.FormatFloat(v, 'f', 1, 64)
}
