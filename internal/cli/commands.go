package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print a hex listing of every cell",
		Args:  cobra.NoArgs,
		RunE: opts.withProfile(func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			return e.Dump(cmd.OutOrStdout())
		}),
	}
}

// NewTextCommand creates the text command.
func NewTextCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "text <index>",
		Short: "Print the null-terminated text stored at index",
		Args:  cobra.ExactArgs(1),
		RunE: opts.withProfile(func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("couldn't parse index: %w", err)
			}
			if index < 0 || index >= e.Length() {
				return fmt.Errorf("index %d out of range [0, %d)", index, e.Length())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.GetString(index))
			return err
		}),
	}
}

// NewViewCommand creates the view command.
func NewViewCommand(opts *RootOptions, viewer Viewer) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open a window showing the cells",
		Args:  cobra.NoArgs,
		RunE: opts.withProfile(func(cmd *cobra.Command, args []string) error {
			e, err := opts.open()
			if err != nil {
				return err
			}
			return viewer(e)
		}),
	}
}
