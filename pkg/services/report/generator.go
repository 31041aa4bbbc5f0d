package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/emilgroup/policy-report/pkg/models/domain"
)

// Generator runs the fetch-transform pipeline: it walks every page of
// policies created on the report date and assembles one record per
// policy by joining account, payment, and invoice data.
type Generator struct {
	clients Clients
}

func NewGenerator(clients Clients) *Generator {
	return &Generator{clients: clients}
}

// Generate visits every policy created on the given date exactly once,
// in server order, following continuation tokens until none remains.
// An empty page ends the walk; any upstream failure aborts the run.
func (g *Generator) Generate(ctx context.Context, date time.Time) ([]domain.AssembledRecord, error) {
	logger := zerolog.Ctx(ctx)
	day := date.Format(dateFormat)

	records := make([]domain.AssembledRecord, 0)
	pageToken := ""
	for {
		page, err := g.clients.Policies.ListPolicies(ctx, api.ListPoliciesRequest{
			Filter:    "createdAt=" + day,
			Expand:    "premiumFormulas",
			PageToken: pageToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list policies: %w", err)
		}

		if len(page.Items) == 0 {
			logger.Info().Str("date", day).Msg("no policies created for the requested date")
			return records, nil
		}

		for _, policy := range page.Items {
			record, err := g.assembleRecord(ctx, policy)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}

		if page.NextPageToken == "" {
			return records, nil
		}
		pageToken = page.NextPageToken
	}
}
