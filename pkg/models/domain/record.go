package domain

import (
	"time"

	json "github.com/goccy/go-json"
)

// AssembledRecord is the per-policy unit written to the report: the
// reshaped policy and account plus the raw lists fetched for the
// policy's account and code. A missing account is omitted entirely,
// the remaining fields are still populated.
type AssembledRecord struct {
	Policy         PolicyData       `json:"policy"`
	Account        map[string]any   `json:"account,omitempty"`
	Payments       []map[string]any `json:"payments"`
	PaymentMethods []map[string]any `json:"paymentMethods"`
	Invoices       []map[string]any `json:"invoices"`
	BillingDates   []map[string]any `json:"billingDates"`
}

// PolicyData is the stable public shape of a policy in the report.
type PolicyData struct {
	ID              int64              `json:"id"`
	Code            string             `json:"code"`
	PolicyNumber    string             `json:"policyNumber"`
	AccountCode     string             `json:"accountCode"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
	PolicyStartDate string             `json:"policyStartDate"`
	Product         json.RawMessage    `json:"product,omitempty"`
	PolicyObjects   []FlatPolicyObject `json:"policyObjects"`
}

// FlatPolicyObject flattens an insured object against its enclosing
// interval's bounds.
type FlatPolicyObject struct {
	From time.Time      `json:"from"`
	To   time.Time      `json:"to"`
	Data map[string]any `json:"data"`
}
