package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/probe/internal/core/domain"
)

func parseProc(args []string) (domain.ProcName, error) {
	return domain.ParseProcName(args[0])
}

func (c *CLI) newWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where <proc>",
		Short: "Print the source file defining a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseProc(args)
			if err != nil {
				return err
			}
			source, err := c.app.Locate(cmd.Context(), name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), source.Path())
			return nil
		},
	}
}

func (c *CLI) newTypeEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tenv <proc>",
		Short: "Print the type environment visible to a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseProc(args)
			if err != nil {
				return err
			}
			printTypeEnv(cmd.OutOrStdout(), name, c.app.TypeEnv(cmd.Context(), name))
			return nil
		},
	}
}

func (c *CLI) newCFGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cfg <proc>",
		Short: "Print the control-flow graph of the file defining a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseProc(args)
			if err != nil {
				return err
			}
			cfg, err := c.app.CFG(cmd.Context(), name)
			if err != nil {
				return err
			}
			printCFG(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func (c *CLI) newBodyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "body <proc>",
		Short: "Print the compiled body of a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseProc(args)
			if err != nil {
				return err
			}
			body, err := c.app.Body(cmd.Context(), name)
			if err != nil {
				return err
			}
			printBody(cmd.OutOrStdout(), body)
			return nil
		},
	}
}

func (c *CLI) newProcsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "procs",
		Short: "List the procedures compiled from the primary source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			return c.app.Procedures(func(body *domain.ProcedureBody) {
				printSignature(w, body)
			})
		},
	}
}
