package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nixpig/solfile/internal/acl"
	"github.com/nixpig/solfile/internal/logging"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	var logCloser io.Closer

	cmd := &cobra.Command{
		Use:          "solfile",
		Short:        "Inspect and modify Solaris UFS ACLs.",
		Long:         "Inspect and modify Solaris UFS access control lists, and query door and file type information.",
		Example:      "",
		Version:      acl.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logfile, _ := cmd.Flags().GetString("log")
			debug, _ := cmd.Flags().GetBool("debug")

			if logfile != "" {
				logger, f, err := logging.NewLogger(logfile, debug)
				if err != nil {
					return fmt.Errorf("initialise logging: %w", err)
				}

				logCloser = f
				slog.SetDefault(logger)
				cmd.Root().SetErr(logging.NewErrorWriter(logger))
			} else if debug {
				slog.SetDefault(logging.New(cmd.ErrOrStderr(), true))
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser == nil {
				return nil
			}

			return logCloser.Close()
		},
	}

	cmd.AddCommand(
		countCmd(),
		readCmd(),
		readTextCmd(),
		writeTextCmd(),
		trivialCmd(),
		checkCmd(),
		backupCmd(),
		restoreCmd(),
		resolvepathCmd(),
		realpathCmd(),
		doorCmd(),
		ftypeCmd(),
	)

	cmd.PersistentFlags().StringP(
		"log",
		"l",
		"",
		"Destination to write logs (default is stderr)",
	)

	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}

// addHandleFlag adds the flag that switches a command from the path-based
// call to the call on an open file descriptor.
func addHandleFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP(
		"handle",
		"H",
		false,
		"Operate on an open handle to FILE instead of its path",
	)
}
