package report

import (
	"github.com/emilgroup/policy-report/pkg/services/config"
	"github.com/emilgroup/policy-report/pkg/store/emil"
)

// NewClients constructs the six Emil service clients for one resolved
// profile. The insurance service hosts both policies and products.
func NewClients(profile *config.Profile) Clients {
	return Clients{
		Accounts:       emil.NewAccountsClient(profile.AccountServiceURL, profile.APIKey),
		Policies:       emil.NewPoliciesClient(profile.InsuranceServiceURL, profile.APIKey),
		Payments:       emil.NewPaymentsClient(profile.PaymentServiceURL, profile.APIKey),
		PaymentMethods: emil.NewPaymentMethodsClient(profile.PaymentServiceURL, profile.APIKey),
		Invoices:       emil.NewInvoicesClient(profile.BillingServiceURL, profile.APIKey),
		Products:       emil.NewProductsClient(profile.InsuranceServiceURL, profile.APIKey),
	}
}
