package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wasmtc/internal/app"
	"go.trai.ch/zerr"
)

// ErrUnsupportedFormat is returned for an unknown --format value.
var ErrUnsupportedFormat = zerr.New("unsupported output format")

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [job]",
		Short: "Plan the compile and link actions of a job",
		Long: "Plan loads a wasmtc.yaml or wasmtc.hcl job, composes the compile and link actions of " +
			"every target and reports which of them are stale.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configuration, _ := cmd.Flags().GetString("configuration")
			optimizeForSize, _ := cmd.Flags().GetBool("optimize-for-size")
			targets, _ := cmd.Flags().GetStringSlice("target")
			write, _ := cmd.Flags().GetBool("write")
			record, _ := cmd.Flags().GetBool("record")
			format, _ := cmd.Flags().GetString("format")
			trace, _ := cmd.Flags().GetBool("trace")

			if format != "text" && format != "json" {
				return zerr.With(ErrUnsupportedFormat, "format", format)
			}

			report, err := c.app.Plan(cmd.Context(), jobPath(args), app.PlanOptions{
				Configuration:   configuration,
				OptimizeForSize: optimizeForSize,
				Targets:         targets,
				Write:           write,
				Record:          record,
				Trace:           trace,
			})
			if err != nil {
				return err
			}

			if format == "json" {
				return report.WriteJSON(cmd.OutOrStdout())
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("configuration", "c", "", "Override the job configuration: debug, development or shipping")
	cmd.Flags().Bool("optimize-for-size", false, "Optimize shipping builds for size")
	cmd.Flags().StringSliceP("target", "t", nil, "Plan only the named targets")
	cmd.Flags().BoolP("write", "w", false, "Write response files")
	cmd.Flags().Bool("record", false, "Record action fingerprints for the next plan")
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	cmd.Flags().Bool("trace", false, "Report span timings")
	return cmd
}
