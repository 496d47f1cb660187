package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/probe/internal/core/domain"
)

func (c *CLI) newCaptureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture [sources...]",
		Short: "Capture source files with the configured capture command",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			sources := make([]domain.SourceFile, 0, len(args))
			for _, arg := range args {
				sources = append(sources, domain.NewSourceFile(arg))
			}
			return c.app.Capture(cmd.Context(), sources)
		},
	}
}
