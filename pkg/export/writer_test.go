package export

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilgroup/policy-report/pkg/models/domain"
)

func TestWriter_Write_NoRecords_ShouldProduceEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w := NewWriter(path)

	err := w.Write(nil)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
}

func TestWriter_Write_ShouldSerializeRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w := NewWriter(path)

	records := []domain.AssembledRecord{
		{
			Policy:   domain.PolicyData{ID: 1, Code: "POL-1"},
			Account:  map[string]any{"code": "ACC-1"},
			Payments: []map[string]any{{"amount": float64(100)}},
		},
	}

	err := w.Write(records)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Len(t, decoded, 1)

	policy := decoded[0]["policy"].(map[string]any)
	assert.Equal(t, "POL-1", policy["code"])
	assert.Equal(t, map[string]any{"code": "ACC-1"}, decoded[0]["account"])
}

func TestWriter_Write_ShouldOverwriteExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	err := NewWriter(path).Write(nil)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
}

func TestNewWriter_EmptyPath_ShouldDefault(t *testing.T) {
	assert.Equal(t, DefaultReportPath, NewWriter("").Path())
}
