package emil

import (
	"context"
	"net/url"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type PoliciesClient struct {
	client
}

func NewPoliciesClient(baseURL, apiKey string) *PoliciesClient {
	return &PoliciesClient{client: newClient(baseURL, apiKey)}
}

// ListPolicies returns one page of policies matching the filter, with
// a continuation token when more pages follow.
func (c *PoliciesClient) ListPolicies(
	ctx context.Context,
	req api.ListPoliciesRequest,
) (*api.ListPoliciesResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("filter", req.Filter).Msg("attempting to list policies")

	query := url.Values{}
	if req.Filter != "" {
		query.Set("filter", req.Filter)
	}
	if req.Expand != "" {
		query.Set("expand", req.Expand)
	}
	if req.PageToken != "" {
		query.Set("pageToken", req.PageToken)
	}

	var resp api.ListPoliciesResponse
	if err := c.get(ctx, "/policies", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
