package emil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilgroup/policy-report/pkg/models/api"
)

func TestPoliciesClient_ListPolicies_ShouldSendFilterExpandAndPageToken(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"filter":    r.URL.Query().Get("filter"),
			"expand":    r.URL.Query().Get("expand"),
			"pageToken": r.URL.Query().Get("pageToken"),
		}
		_, _ = w.Write([]byte(`{"items":[{"id":1,"code":"POL-1"}],"nextPageToken":"token-1"}`))
	}))
	defer srv.Close()

	c := NewPoliciesClient(srv.URL, "secret")
	resp, err := c.ListPolicies(context.Background(), api.ListPoliciesRequest{
		Filter:    "createdAt=2024-01-01",
		Expand:    "premiumFormulas",
		PageToken: "token-0",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, map[string]string{
		"filter":    "createdAt=2024-01-01",
		"expand":    "premiumFormulas",
		"pageToken": "token-0",
	}, gotQuery)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "POL-1", resp.Items[0].Code)
	assert.Equal(t, "token-1", resp.NextPageToken)
}

func TestAccountsClient_GetAccount_ShouldReturnAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/ACC-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"account":{"code":"ACC-1","customFields":{"referrer":"broker-9"}}}`))
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, "")
	account, err := c.GetAccount(context.Background(), "ACC-1")

	require.NoError(t, err)
	assert.Equal(t, "ACC-1", account["code"])
}

func TestAccountsClient_GetAccount_NotFound_ShouldReturnNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewAccountsClient(srv.URL, "")
	account, err := c.GetAccount(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestInvoicesClient_ShouldListInvoicesAndBillingDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "policyCode=POL-1", r.URL.Query().Get("filter"))
		switch r.URL.Path {
		case "/invoices":
			_, _ = w.Write([]byte(`{"items":[{"number":"INV-1"}]}`))
		case "/policies/billing-dates":
			_, _ = w.Write([]byte(`{"items":[{"dueDate":"2024-02-01"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewInvoicesClient(srv.URL, "")

	invoices, err := c.ListInvoices(context.Background(), "policyCode=POL-1")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-1", invoices[0]["number"])

	dates, err := c.ListPoliciesBillingDates(context.Background(), "policyCode=POL-1")
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "2024-02-01", dates[0]["dueDate"])
}

func TestProductsClient_GetProductFactorValue_ShouldReturnRawNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "zoneErdbeben", r.URL.Query().Get("label"))
		assert.Equal(t, "8000", r.URL.Query().Get("name"))
		assert.Equal(t, "7", r.URL.Query().Get("productVersionId"))
		_, _ = w.Write([]byte(`{"value":{"value":1.4}}`))
	}))
	defer srv.Close()

	c := NewProductsClient(srv.URL, "")
	value, err := c.GetProductFactorValue(context.Background(), api.GetProductFactorValueRequest{
		Label:            "zoneErdbeben",
		Name:             "8000",
		ProductVersionID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, "1.4", value)
}

func TestClient_UnexpectedStatus_ShouldError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPaymentsClient(srv.URL, "")
	_, err := c.ListPayments(context.Background(), "accountCode=ACC-1")

	assert.Error(t, err)
}
