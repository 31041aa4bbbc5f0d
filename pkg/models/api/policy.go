package api

import (
	"time"

	json "github.com/goccy/go-json"
)

// Policy is the wire representation returned by the insurance service.
// Product is kept raw and passed through to the report untouched.
type Policy struct {
	ID               int64           `json:"id"`
	Code             string          `json:"code"`
	PolicyNumber     string          `json:"policyNumber"`
	AccountCode      string          `json:"accountCode"`
	ProductVersionID int64           `json:"productVersionId"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
	PolicyStartDate  string          `json:"policyStartDate"`
	Product          json.RawMessage `json:"product,omitempty"`
	Versions         []PolicyVersion `json:"versions"`
}

type PolicyVersion struct {
	IsCurrent bool               `json:"isCurrent"`
	Timeline  []TimelineInterval `json:"timeline"`
}

// TimelineInterval is a time-bounded span within a policy version.
// Each policy object carries its state as a JSON-encoded summary that
// has to be decoded before use.
type TimelineInterval struct {
	From          time.Time      `json:"from"`
	To            time.Time      `json:"to"`
	PolicyObjects []PolicyObject `json:"policyObjects"`
}

type PolicyObject struct {
	InsuredObjectName string         `json:"insuredObjectName"`
	Summary           string         `json:"summary,omitempty"`
	Data              map[string]any `json:"data,omitempty"`
}

type ListPoliciesRequest struct {
	Filter    string
	Expand    string
	PageToken string
}

type ListPoliciesResponse struct {
	Items         []Policy `json:"items"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}
