package emil

import (
	"context"
	"errors"
	"net/url"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/rs/zerolog"
)

type AccountsClient struct {
	client
}

func NewAccountsClient(baseURL, apiKey string) *AccountsClient {
	return &AccountsClient{client: newClient(baseURL, apiKey)}
}

// GetAccount fetches one account by code. A 404 is not an error here:
// the record assembler handles a missing account by leaving the field
// out of the report.
func (c *AccountsClient) GetAccount(ctx context.Context, code string) (map[string]any, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("code", code).Msg("attempting to get account")

	var resp api.GetAccountResponse
	err := c.get(ctx, "/accounts/"+url.PathEscape(code), nil, &resp)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp.Account, nil
}
