package report

import (
	"context"
	"fmt"

	"github.com/emilgroup/policy-report/pkg/models/api"
	"github.com/emilgroup/policy-report/pkg/models/domain"
)

func (g *Generator) assembleRecord(ctx context.Context, policy api.Policy) (domain.AssembledRecord, error) {
	account, err := g.clients.Accounts.GetAccount(ctx, policy.AccountCode)
	if err != nil {
		return domain.AssembledRecord{}, fmt.Errorf("failed to get account %s: %w", policy.AccountCode, err)
	}

	timeline, err := NormalizeTimeline(policy)
	if err != nil {
		return domain.AssembledRecord{}, err
	}

	err = EnrichProductFactors(ctx, g.clients.Products, timeline, Enrichment{
		TargetAttribute:  targetAttribute,
		Fields:           factorFields,
		ProductVersionID: policy.ProductVersionID,
		DecimalPlaces:    factorDecimalPlaces,
	})
	if err != nil {
		return domain.AssembledRecord{}, fmt.Errorf("failed to enrich policy %s: %w", policy.Code, err)
	}

	accountFilter := "accountCode=" + policy.AccountCode
	policyFilter := "policyCode=" + policy.Code

	payments, err := g.clients.Payments.ListPayments(ctx, accountFilter)
	if err != nil {
		return domain.AssembledRecord{}, fmt.Errorf("failed to list payments for account %s: %w", policy.AccountCode, err)
	}
	paymentMethods, err := g.clients.PaymentMethods.ListPaymentMethods(ctx, accountFilter)
	if err != nil {
		return domain.AssembledRecord{}, fmt.Errorf("failed to list payment methods for account %s: %w", policy.AccountCode, err)
	}
	invoices, err := g.clients.Invoices.ListInvoices(ctx, policyFilter)
	if err != nil {
		return domain.AssembledRecord{}, fmt.Errorf("failed to list invoices for policy %s: %w", policy.Code, err)
	}
	billingDates, err := g.clients.Invoices.ListPoliciesBillingDates(ctx, policyFilter)
	if err != nil {
		return domain.AssembledRecord{}, fmt.Errorf("failed to list billing dates for policy %s: %w", policy.Code, err)
	}

	return domain.AssembledRecord{
		Policy:         buildPolicyData(policy, timeline),
		Account:        buildAccountData(account),
		Payments:       payments,
		PaymentMethods: paymentMethods,
		Invoices:       invoices,
		BillingDates:   billingDates,
	}, nil
}

// buildPolicyData reshapes a policy into its stable report form. The
// normalized interval's objects are flattened against the interval
// bounds, one tuple per object.
func buildPolicyData(policy api.Policy, timeline *domain.Timeline) domain.PolicyData {
	objects := make([]domain.FlatPolicyObject, 0, len(timeline.PolicyObjects))
	for _, obj := range timeline.PolicyObjects {
		objects = append(objects, domain.FlatPolicyObject{
			From: timeline.From,
			To:   timeline.To,
			Data: obj.Data,
		})
	}

	return domain.PolicyData{
		ID:              policy.ID,
		Code:            policy.Code,
		PolicyNumber:    policy.PolicyNumber,
		AccountCode:     policy.AccountCode,
		CreatedAt:       policy.CreatedAt,
		UpdatedAt:       policy.UpdatedAt,
		PolicyStartDate: policy.PolicyStartDate,
		Product:         policy.Product,
		PolicyObjects:   objects,
	}
}

// buildAccountData flattens an account into a single namespace: every
// field except customFields, with the customFields pairs merged on top
// so they win on collision. A missing account stays missing.
func buildAccountData(account map[string]any) map[string]any {
	if account == nil {
		return nil
	}

	result := make(map[string]any, len(account))
	for key, value := range account {
		if key == "customFields" {
			continue
		}
		result[key] = value
	}

	if custom, ok := account["customFields"].(map[string]any); ok {
		mergeInto(result, custom)
	}
	return result
}
