// Package reports provides weekly review report generation for the farflife app.
package reports

import (
	"encoding/json"
)

// FormatWeeklyJSON formats a weekly review as JSON.
func FormatWeeklyJSON(review *WeeklyReview) ([]byte, error) {
	return json.MarshalIndent(review, "", "  ")
}
