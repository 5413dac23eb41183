package cli

import (
	"fmt"
	"os"

	"github.com/nixpig/solfile/internal/platform"
	"github.com/spf13/cobra"
)

// statFile runs byPath on path, or byFile on an open handle to it when the
// --handle flag is set.
func statFile[T any](
	cmd *cobra.Command,
	path string,
	byPath func(string) (T, error),
	byFile func(*os.File) (T, error),
) (T, error) {
	handle, _ := cmd.Flags().GetBool("handle")
	if !handle {
		return byPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return byFile(f)
}

func doorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "door [flags] FILE",
		Short:   "Print whether a file is a door",
		Example: "  solfile door /var/run/syslog_door",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			door, err := statFile(cmd, args[0], platform.IsDoor, platform.FIsDoor)
			if err != nil {
				return fmt.Errorf("failed to stat file: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), door)
			return err
		},
	}

	addHandleFlag(cmd)

	return cmd
}

func ftypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ftype [flags] FILE",
		Short:   "Print the type of a file, including 'door'",
		Example: "  solfile ftype /var/run/syslog_door",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileType, err := statFile(cmd, args[0], platform.FileType, platform.FFileType)
			if err != nil {
				return fmt.Errorf("failed to stat file: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), fileType)
			return err
		},
	}

	addHandleFlag(cmd)

	return cmd
}
