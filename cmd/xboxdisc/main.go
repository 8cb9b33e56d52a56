package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vahpetr/xboxdisc/internal/app"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "xboxdisc",
	Short: "Inspect and switch the Xbox/PC mode signature on disc drives",
	Long: `xboxdisc reads and rewrites the two-byte signature at the end of the
first sector of a disc drive, switching it between Xbox and PC firmware
modes, and lists the drives on this machine that carry a recognized
signature.`,
}

func init() {
	rootCmd.Version = version
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		app.NewListCommand(),
		app.NewReadCommand(),
		app.NewSetCommand(),
		app.NewToggleCommand(),
		app.NewInfoCommand(),
	)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	// Command verbs match case-insensitively; LIST and list are the same.
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") {
		os.Args[1] = strings.ToLower(os.Args[1])
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
