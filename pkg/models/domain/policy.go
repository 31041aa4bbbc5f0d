package domain

import "time"

// Timeline is the normalized first interval of a policy's current
// version. Summaries are already decoded into Data, and the
// distinguished "default" object has been split off the object list.
type Timeline struct {
	From                time.Time
	To                  time.Time
	PolicyObjects       []*InsuredObject
	DefaultPolicyObject *InsuredObject
}

// InsuredObject is one insured item's state within a timeline interval.
type InsuredObject struct {
	Name string
	Data map[string]any
}
