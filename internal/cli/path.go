package cli

import (
	"fmt"

	"github.com/nixpig/solfile/internal/platform"
	"github.com/spf13/cobra"
)

func resolvepathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolvepath [flags] PATH",
		Short:   "Resolve symbolic links, '.' and '..' in a path",
		Example: "  solfile resolvepath ../examples",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := platform.Resolvepath(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return err
		},
	}

	return cmd
}

func realpathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "realpath [flags] PATH",
		Short:   "Print the absolute, symlink-free form of a path",
		Example: "  solfile realpath ../examples",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := platform.Realpath(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return err
		},
	}

	return cmd
}
