package report

import (
	"context"

	"github.com/emilgroup/policy-report/pkg/models/api"
)

// The pipeline talks to the upstream services through these interfaces
// so each collaborator can be swapped in tests. The concrete
// implementations live in pkg/store/emil.

type AccountsAPI interface {
	GetAccount(ctx context.Context, code string) (map[string]any, error)
}

type PoliciesAPI interface {
	ListPolicies(ctx context.Context, req api.ListPoliciesRequest) (*api.ListPoliciesResponse, error)
}

type PaymentsAPI interface {
	ListPayments(ctx context.Context, filter string) ([]map[string]any, error)
}

type PaymentMethodsAPI interface {
	ListPaymentMethods(ctx context.Context, filter string) ([]map[string]any, error)
}

type InvoicesAPI interface {
	ListInvoices(ctx context.Context, filter string) ([]map[string]any, error)
	ListPoliciesBillingDates(ctx context.Context, filter string) ([]map[string]any, error)
}

type ProductsAPI interface {
	GetProductFactorValue(ctx context.Context, req api.GetProductFactorValueRequest) (string, error)
}

// Clients bundles the six upstream clients the generator depends on.
type Clients struct {
	Accounts       AccountsAPI
	Policies       PoliciesAPI
	Payments       PaymentsAPI
	PaymentMethods PaymentMethodsAPI
	Invoices       InvoicesAPI
	Products       ProductsAPI
}
