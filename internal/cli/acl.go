package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nixpig/solfile/internal/acl"
	"github.com/nixpig/solfile/internal/platform"
	"github.com/spf13/cobra"
)

// aclTarget is implemented by both path-based and handle-based ACL access.
type aclTarget interface {
	Count() (int, error)
	Read() ([]acl.Entry, error)
	ReadText() (string, error)
	WriteText(text string) error
	IsTrivial() (bool, error)
}

type pathTarget string

func (p pathTarget) Count() (int, error) { return acl.Count(string(p)) }
func (p pathTarget) Read() ([]acl.Entry, error) { return acl.Read(string(p)) }
func (p pathTarget) ReadText() (string, error) { return acl.ReadText(string(p)) }
func (p pathTarget) WriteText(text string) error { return acl.WriteText(string(p), text) }
func (p pathTarget) IsTrivial() (bool, error) { return acl.IsTrivial(string(p)) }

// withTarget runs fn against the ACL of path, opening path first if the
// --handle flag is set.
func withTarget(
	cmd *cobra.Command,
	path string,
	fn func(t aclTarget) error,
) error {
	handle, _ := cmd.Flags().GetBool("handle")
	if !handle {
		return fn(pathTarget(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return fn(acl.NewFile(f))
}

func countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "count [flags] FILE",
		Short:   "Print the number of ACL entries (0 for a trivial file)",
		Example: "  solfile count foo.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd, args[0], func(t aclTarget) error {
				n, err := t.Count()
				if err != nil {
					return fmt.Errorf("failed to count acl entries: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
				return err
			})
		},
	}

	addHandleFlag(cmd)

	return cmd
}

func readCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "read [flags] FILE",
		Short:   "Print the ACL entries of a file",
		Example: "  solfile read --json bar.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			return withTarget(cmd, args[0], func(t aclTarget) error {
				entries, err := t.Read()
				if err != nil {
					return fmt.Errorf("failed to read acl: %w", err)
				}

				if asJSON {
					return writeJSON(cmd, entries)
				}

				for _, e := range entries {
					if _, err := fmt.Fprintf(
						cmd.OutOrStdout(),
						"%s\t%d\t%s\n",
						e.Type,
						e.ID,
						e.Perm,
					); err != nil {
						return fmt.Errorf("failed to print acl: %w", err)
					}
				}

				return nil
			})
		},
	}

	addHandleFlag(cmd)
	cmd.Flags().BoolP("json", "j", false, "Print entries as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, entries []acl.Entry) error {
	if entries == nil {
		entries = []acl.Entry{}
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal acl: %w", err)
	}

	var formatted bytes.Buffer
	if err := json.Indent(&formatted, b, "", "  "); err != nil {
		return err
	}
	formatted.WriteByte('\n')

	if _, err := cmd.OutOrStdout().Write(formatted.Bytes()); err != nil {
		return fmt.Errorf("failed to print acl: %w", err)
	}

	return nil
}

func readTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "read-text [flags] FILE",
		Short:   "Print the ACL of a file in text form",
		Example: "  solfile read-text bar.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd, args[0], func(t aclTarget) error {
				text, err := t.ReadText()
				if err != nil {
					return fmt.Errorf("failed to read acl text: %w", err)
				}

				if text == "" {
					return nil
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			})
		},
	}

	addHandleFlag(cmd)

	return cmd
}

func writeTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "write-text [flags] FILE ACL_TEXT",
		Short:   "Replace the ACL of a file",
		Example: "  solfile write-text foo.txt user::rw-,user:nobody:r--,group::r--,mask:r--,other:r--",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd, args[0], func(t aclTarget) error {
				if err := t.WriteText(args[1]); err != nil {
					return fmt.Errorf("failed to write acl: %w", err)
				}

				return nil
			})
		},
	}

	addHandleFlag(cmd)

	return cmd
}

func trivialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trivial [flags] FILE",
		Short:   "Print whether a file has no extended ACL entries",
		Example: "  solfile trivial foo.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd, args[0], func(t aclTarget) error {
				trivial, err := t.IsTrivial()
				if err != nil {
					return fmt.Errorf("failed to check acl: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), trivial)
				return err
			})
		},
	}

	addHandleFlag(cmd)

	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [flags] ACL_TEXT",
		Short:   "Validate ACL text without applying it",
		Example: "  solfile check user::rw-,group::r--,mask:r--,other:---",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := acl.ParseText(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse acl: %w", err)
			}

			if err := acl.Check(entries); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d entries\n", len(entries))
			return err
		},
	}

	return cmd
}

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backup [flags] FILE DEST",
		Short:   "Save the ACL of a file in text form to DEST",
		Example: "  solfile backup bar.txt bar.acl",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTarget(cmd, args[0], func(t aclTarget) error {
				text, err := t.ReadText()
				if err != nil {
					return fmt.Errorf("failed to read acl text: %w", err)
				}

				if err := platform.WriteFileAtomic(
					args[1],
					[]byte(text+"\n"),
					0o644,
				); err != nil {
					return fmt.Errorf("failed to write backup: %w", err)
				}

				return nil
			})
		},
	}

	addHandleFlag(cmd)

	return cmd
}

func restoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restore [flags] FILE SRC",
		Short:   "Apply an ACL saved with backup to a file",
		Example: "  solfile restore bar.txt bar.acl",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}

			text := strings.TrimSpace(string(b))
			if text == "" {
				slog.Info("backup holds a trivial acl, nothing to restore", "src", args[1])
				return nil
			}

			return withTarget(cmd, args[0], func(t aclTarget) error {
				if err := t.WriteText(text); err != nil {
					return fmt.Errorf("failed to write acl: %w", err)
				}

				return nil
			})
		},
	}

	addHandleFlag(cmd)

	return cmd
}
