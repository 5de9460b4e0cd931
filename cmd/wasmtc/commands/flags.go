package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/wasmtc/internal/app"
)

func (c *CLI) newFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags [job]",
		Short: "Print the composed compile or link flags of a target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetString("target")
			kind, _ := cmd.Flags().GetString("kind")
			source, _ := cmd.Flags().GetString("source")
			configuration, _ := cmd.Flags().GetString("configuration")
			optimizeForSize, _ := cmd.Flags().GetBool("optimize-for-size")

			lines, err := c.app.Flags(cmd.Context(), jobPath(args), app.FlagsOptions{
				Target:          target,
				Kind:            app.FlagKind(kind),
				Source:          source,
				Configuration:   configuration,
				OptimizeForSize: optimizeForSize,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().String("target", "", "Target to print flags for (default: first target by name)")
	cmd.Flags().StringP("kind", "k", string(app.FlagKindCompile), "Flag set: compile or link")
	cmd.Flags().StringP("source", "s", "", "Source file for compile flags")
	cmd.Flags().StringP("configuration", "c", "", "Override the job configuration: debug, development or shipping")
	cmd.Flags().Bool("optimize-for-size", false, "Optimize shipping builds for size")
	return cmd
}
