package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/ingest"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/render"
)

// FilingReporter handles one rendered filing; implementations are the
// plain-text and HTML reporters.
type FilingReporter interface {
	Handle(filing *domain.RenderedFiling) error
}

// NewRenderCmd renders a local analysis payload file through the full
// dispatch pipeline.
func NewRenderCmd(text FilingReporter, html FilingReporter) *cobra.Command {
	var format string
	var expand []string

	cmd := &cobra.Command{
		Use:   "render <payload.json>",
		Short: "Render an analysis payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filing, err := loadFiling(args[0])
			if err != nil {
				return err
			}

			expanded := domain.NewExpandedSections()
			for _, name := range expand {
				expanded.Toggle(strings.TrimSpace(name))
			}

			rendered, err := render.RenderFiling(filing, expanded)
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			reporter := text
			if format == "html" {
				reporter = html
			}
			return reporter.Handle(&rendered)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or html")
	cmd.Flags().StringSliceVarP(&expand, "expand", "e", nil, "Section names to mark expanded")
	return cmd
}

// NewSectionsCmd lists the sections of a payload with their display
// names.
func NewSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections <payload.json>",
		Short: "List filing sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filing, err := loadFiling(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, section := range filing.Sections {
				fmt.Fprintf(w, "%-30s %s\n", render.DisplayName(section.Name), section.Name)
			}
			return nil
		},
	}
}

func loadFiling(path string) (domain.Filing, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.Filing{}, fmt.Errorf("failed to read payload: %w", err)
	}
	filing, err := ingest.ParsePayload(payload)
	if err != nil {
		return domain.Filing{}, fmt.Errorf("failed to parse payload: %w", err)
	}
	return filing, nil
}
