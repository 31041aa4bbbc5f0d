package report

import (
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

// ResolveDate turns an optional date argument into the report date.
// Empty input means today; anything that is not a YYYY-MM-DD date is
// rejected outright rather than falling back silently.
func ResolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(dateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected format YYYY-MM-DD", raw)
	}
	return date, nil
}
