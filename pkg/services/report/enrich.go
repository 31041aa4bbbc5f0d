package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/emilgroup/policy-report/pkg/models/domain"
)

const (
	targetAttribute     = "plz"
	factorDecimalPlaces = 0
)

var factorFields = []string{"zoneErdbeben", "zoneLeitungswasser", "zoneSturmHagel"}

// Enrichment describes one product-factor enrichment pass.
type Enrichment struct {
	TargetAttribute  string
	Fields           []string
	ProductVersionID int64
	DecimalPlaces    int32
}

// EnrichProductFactors finds the first insured object carrying the
// target attribute and merges one looked-up factor value per field
// into its data. The lookups run concurrently; if any of them fails
// nothing is merged. No object carrying the attribute is a no-op.
func EnrichProductFactors(
	ctx context.Context,
	products ProductsAPI,
	timeline *domain.Timeline,
	enrichment Enrichment,
) error {
	base, factorName := findBaseObject(timeline, enrichment.TargetAttribute)
	if base == nil {
		return nil
	}

	values := make([]string, len(enrichment.Fields))
	g, ctx := errgroup.WithContext(ctx)
	for i, field := range enrichment.Fields {
		i, field := i, field
		g.Go(func() error {
			raw, err := products.GetProductFactorValue(ctx, api.GetProductFactorValueRequest{
				Label:            field,
				Name:             factorName,
				ProductVersionID: enrichment.ProductVersionID,
			})
			if err != nil {
				return fmt.Errorf("failed to get product factor value for %s: %w", field, err)
			}

			value, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("product factor value for %s is not numeric: %w", field, err)
			}
			values[i] = value.StringFixed(enrichment.DecimalPlaces)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	merged := make(map[string]any, len(enrichment.Fields))
	for i, field := range enrichment.Fields {
		merged[field] = values[i]
	}
	mergeInto(base.Data, merged)
	return nil
}

// findBaseObject returns the first non-default object with a non-empty
// value for the target attribute, together with that value as the
// product factor name.
func findBaseObject(timeline *domain.Timeline, attr string) (*domain.InsuredObject, string) {
	for _, obj := range timeline.PolicyObjects {
		if obj.Name == defaultObjectName || obj.Data == nil {
			continue
		}
		if name, ok := factorName(obj.Data[attr]); ok {
			return obj, name
		}
	}
	return nil, ""
}

func factorName(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, value != ""
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	default:
		return "", false
	}
}
