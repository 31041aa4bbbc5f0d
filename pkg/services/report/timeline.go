package report

import (
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/emilgroup/policy-report/pkg/models/domain"
)

const defaultObjectName = "default"

// NormalizeTimeline takes the first interval of the policy's current
// version, decodes every object's summary payload into data, and
// splits off the distinguished "default" object. When the default
// object carries a start date and duration, the interval's end date is
// derived from them.
func NormalizeTimeline(policy api.Policy) (*domain.Timeline, error) {
	var current *api.PolicyVersion
	for i := range policy.Versions {
		if policy.Versions[i].IsCurrent {
			current = &policy.Versions[i]
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("current version is not found for policy %s", policy.Code)
	}
	if len(current.Timeline) == 0 {
		return nil, fmt.Errorf("timeline is empty for policy %s", policy.Code)
	}

	interval := current.Timeline[0]
	timeline := &domain.Timeline{
		From: interval.From,
		To:   interval.To,
	}

	var defaultObject *domain.InsuredObject
	for _, obj := range interval.PolicyObjects {
		data := obj.Data
		if obj.Summary != "" {
			data = make(map[string]any)
			if err := json.Unmarshal([]byte(obj.Summary), &data); err != nil {
				return nil, fmt.Errorf(
					"failed to decode summary of object %q for policy %s: %w",
					obj.InsuredObjectName, policy.Code, err,
				)
			}
		}

		insured := &domain.InsuredObject{Name: obj.InsuredObjectName, Data: data}
		if insured.Name == defaultObjectName {
			defaultObject = insured
			continue
		}
		timeline.PolicyObjects = append(timeline.PolicyObjects, insured)
	}

	if defaultObject != nil && defaultObject.Data != nil {
		timeline.DefaultPolicyObject = defaultObject

		to, ok, err := deriveEndDate(defaultObject.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to derive end date for policy %s: %w", policy.Code, err)
		}
		if ok {
			timeline.To = to
		}
	}

	return timeline, nil
}

// deriveEndDate computes start + duration from the default object's
// data. All three fields have to be present; otherwise the derivation
// is skipped without error.
func deriveEndDate(data map[string]any) (time.Time, bool, error) {
	start, okStart := data["policyStartDate"].(string)
	unit, okUnit := data["policyDurationUnit"].(string)
	value, okValue := durationValue(data["policyDurationValue"])
	if !okStart || !okUnit || !okValue {
		return time.Time{}, false, nil
	}

	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, false, err
	}

	to, err := addDuration(startDate, unit, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return to, true, nil
}

func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse(dateFormat, raw); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", raw)
	}
	return date, nil
}

func addDuration(start time.Time, unit string, value int) (time.Time, error) {
	switch unit {
	case "year", "years":
		return addMonthsClamped(start, 12*value), nil
	case "month", "months":
		return addMonthsClamped(start, value), nil
	case "week", "weeks":
		return start.AddDate(0, 0, 7*value), nil
	case "day", "days":
		return start.AddDate(0, 0, value), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration unit %q", unit)
	}
}

// addMonthsClamped advances by whole months, clamping to the last day
// of the target month instead of letting the day overflow spill into
// the next one: Jan 31 + 1 month is Feb 29, not Mar 2.
func addMonthsClamped(t time.Time, months int) time.Time {
	day := t.Day()
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// durationValue accepts the duration count as a JSON number (decoded
// as float64) or as numeric text.
func durationValue(v any) (int, bool) {
	switch value := v.(type) {
	case float64:
		return int(value), true
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
