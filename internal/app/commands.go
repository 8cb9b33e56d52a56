package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vahpetr/xboxdisc/internal/device"
	"github.com/vahpetr/xboxdisc/internal/sector"
)

var (
	xboxLabel    = color.New(color.FgGreen).SprintFunc()
	pcLabel      = color.New(color.FgCyan).SprintFunc()
	unknownLabel = color.New(color.FgYellow).SprintFunc()
)

// newEnumerator is swapped out by tests.
var newEnumerator = device.NewEnumerator

func modeLabel(m sector.Mode) string {
	switch m {
	case sector.ModeXbox:
		return xboxLabel(m.String())
	case sector.ModePC:
		return pcLabel(m.String())
	default:
		return unknownLabel(m.String())
	}
}

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recognized discs and their modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range newEnumerator().Enumerate(cmd.Context()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", d.Path, modeLabel(d.Mode))
			}
			return nil
		},
	}
}

func NewReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read [device-path]",
		Short: "Report the mode of one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sector.ReadMode(args[0]))
			return nil
		},
	}
}

func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [xbox|pc] [device-path]",
		Short: "Write a mode signature to one device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := sector.ParseMode(args[0])
			if err != nil {
				return err
			}
			path := args[1]
			if err := sector.WriteMode(path, mode); err != nil {
				// Write failures are reported, not fatal; the tool still
				// finishes with a normal exit.
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s mode\n", path, mode)
			return nil
		},
	}
}

func NewToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the mode of the first recognized disc",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := newEnumerator().First(cmd.Context())
			if !ok {
				// The enumerator already said there is nothing to do.
				return nil
			}
			next := d.Mode.Opposite()
			if err := sector.WriteMode(d.Path, next); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s switched from %s to %s mode\n", d.Path, d.Mode, next)
			return nil
		},
	}
}

func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [device-path]",
		Short: "Show mode, size and mount state of one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := device.Describe(cmd.Context(), args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path:  %s\n", d.Path)
			fmt.Fprintf(out, "Mode:  %s\n", modeLabel(d.Mode))
			if d.Media != "" {
				fmt.Fprintf(out, "Media: %s\n", d.Media)
			}
			if d.SizeBytes > 0 {
				fmt.Fprintf(out, "Size:  %d bytes\n", d.SizeBytes)
			}
			if d.Mounted {
				fmt.Fprintf(out, "Mount: %s\n", d.MountPoint)
			} else {
				fmt.Fprintln(out, "Mount: (not mounted)")
			}
			return nil
		},
	}
}
