package export

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/emilgroup/policy-report/pkg/models/domain"
)

// DefaultReportPath is where the report ends up when no path is given.
const DefaultReportPath = "report.json"

// Writer serializes assembled records to a JSON report file,
// overwriting whatever is there.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultReportPath
	}
	return &Writer{path: path}
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Write(records []domain.AssembledRecord) error {
	// An empty run still produces a report: an empty array, not null.
	if records == nil {
		records = []domain.AssembledRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}
