package emil

import (
	"context"
	"net/url"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type InvoicesClient struct {
	client
}

func NewInvoicesClient(baseURL, apiKey string) *InvoicesClient {
	return &InvoicesClient{client: newClient(baseURL, apiKey)}
}

func (c *InvoicesClient) ListInvoices(ctx context.Context, filter string) ([]map[string]any, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("filter", filter).Msg("attempting to list invoices")

	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}

	var resp api.ListItemsResponse
	if err := c.get(ctx, "/invoices", query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListPoliciesBillingDates returns the billing schedule entries for the
// policies matching the filter.
func (c *InvoicesClient) ListPoliciesBillingDates(ctx context.Context, filter string) ([]map[string]any, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("filter", filter).Msg("attempting to list policy billing dates")

	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}

	var resp api.ListItemsResponse
	if err := c.get(ctx, "/policies/billing-dates", query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
