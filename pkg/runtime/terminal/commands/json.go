package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/emilgroup/policy-report/pkg/export"
	"github.com/emilgroup/policy-report/pkg/models/domain"
	"github.com/emilgroup/policy-report/pkg/services/report"
)

// ReportGenerator is the pipeline the command drives.
type ReportGenerator interface {
	Generate(ctx context.Context, date time.Time) ([]domain.AssembledRecord, error)
}

type JSONCmd struct {
	date      string
	generator ReportGenerator
	writer    *export.Writer
}

func NewJSONCmd(generator ReportGenerator, writer *export.Writer) *cobra.Command {
	jc := &JSONCmd{generator: generator, writer: writer}
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Generate the daily policy report in JSON format",
		RunE:  jc.run,
	}

	cmd.Flags().StringVarP(&jc.date, "date", "d", "", "Report date in format YYYY-MM-DD (defaults to today)")

	return cmd
}

func (jc *JSONCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	date, err := report.ResolveDate(jc.date)
	if err != nil {
		return err
	}

	records, err := jc.generator.Generate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := jc.writer.Write(records); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int("records", len(records)).
		Str("path", jc.writer.Path()).
		Msg("report written")
	return nil
}
