package legacy

import "fmt"

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerMonth  = 2592000  // 30 days
	secondsPerYear   = 31536000 // 365 days
)

// TimeAgo formats an elapsed number of seconds.
// Every unit is computed with integer (floor) division, there is no singular form
// and negative durations are "Just now".
func TimeAgo(elapsed int64) string {
	switch {
	case elapsed < secondsPerMinute:
		return "Just now"
	case elapsed < secondsPerHour:
		return fmt.Sprintf("%d minutes ago", elapsed/secondsPerMinute)
	case elapsed < secondsPerDay:
		return fmt.Sprintf("%d hours ago", elapsed/secondsPerHour)
	case elapsed < secondsPerMonth:
		return fmt.Sprintf("%d days ago", elapsed/secondsPerDay)
	case elapsed < secondsPerYear:
		return fmt.Sprintf("%d months ago", elapsed/secondsPerMonth)
	default:
		return fmt.Sprintf("%d years ago", elapsed/secondsPerYear)
	}
}
