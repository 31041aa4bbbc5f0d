package emil

import (
	"context"
	"net/url"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type PaymentsClient struct {
	client
}

func NewPaymentsClient(baseURL, apiKey string) *PaymentsClient {
	return &PaymentsClient{client: newClient(baseURL, apiKey)}
}

func (c *PaymentsClient) ListPayments(ctx context.Context, filter string) ([]map[string]any, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("filter", filter).Msg("attempting to list payments")

	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}

	var resp api.ListItemsResponse
	if err := c.get(ctx, "/payments", query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
