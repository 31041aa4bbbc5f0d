package emil

import (
	"context"
	"net/url"
	"strconv"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type ProductsClient struct {
	client
}

func NewProductsClient(baseURL, apiKey string) *ProductsClient {
	return &ProductsClient{client: newClient(baseURL, apiKey)}
}

// GetProductFactorValue looks up one product factor value keyed by
// field label, factor name and product version. The raw numeric text
// is returned; rounding is the caller's concern.
func (c *ProductsClient) GetProductFactorValue(
	ctx context.Context,
	req api.GetProductFactorValueRequest,
) (string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("label", req.Label).
		Str("name", req.Name).
		Int64("product_version_id", req.ProductVersionID).
		Msg("attempting to get product factor value")

	query := url.Values{}
	query.Set("label", req.Label)
	query.Set("name", req.Name)
	query.Set("productVersionId", strconv.FormatInt(req.ProductVersionID, 10))
	query.Set("key", req.Key)

	var resp api.GetProductFactorValueResponse
	if err := c.get(ctx, "/product-factor-values", query, &resp); err != nil {
		return "", err
	}
	return resp.Value.Value.String(), nil
}
