package emil

import (
	"context"
	"net/url"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type PaymentMethodsClient struct {
	client
}

func NewPaymentMethodsClient(baseURL, apiKey string) *PaymentMethodsClient {
	return &PaymentMethodsClient{client: newClient(baseURL, apiKey)}
}

func (c *PaymentMethodsClient) ListPaymentMethods(ctx context.Context, filter string) ([]map[string]any, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("filter", filter).Msg("attempting to list payment methods")

	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}

	var resp api.ListItemsResponse
	if err := c.get(ctx, "/payment-methods", query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
