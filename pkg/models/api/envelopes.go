package api

import json "github.com/goccy/go-json"

// Accounts, payments, payment methods, invoices and billing dates are
// passed through to the report without reinterpretation, so their
// items stay generic maps.

type GetAccountResponse struct {
	Account map[string]any `json:"account"`
}

type ListItemsResponse struct {
	Items []map[string]any `json:"items"`
}

type GetProductFactorValueRequest struct {
	Label            string
	Name             string
	ProductVersionID int64
	Key              string
}

type GetProductFactorValueResponse struct {
	Value ProductFactorValue `json:"value"`
}

// ProductFactorValue keeps the numeric value as json.Number since the
// product service serves it either quoted or bare depending on the
// factor type.
type ProductFactorValue struct {
	Value json.Number `json:"value"`
}
