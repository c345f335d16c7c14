package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arloliu/cesar/internal/report"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cesar",
		Short: "Cesar: keyed, grouped Caesar-style word encryption",
		Long: `Cesar maps each symbol of a word to a numeric code, packs the codes
into base-100 groups, shifts every group by a key modulo a number of
possibilities and prints the result as text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newEncryptCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPackCmd())
	root.AddCommand(newUnpackCmd())
	root.AddCommand(newSchemaCmd())

	return root
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [encrypt|archive]",
		Short: "Print the JSON Schema for cesar JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of cesar encrypt --format=json (default) or
cesar unpack --format=json output.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"encrypt", "archive"},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := report.Schema
			if len(args) == 1 {
				switch args[0] {
				case "encrypt":
				case "archive":
					schema = report.ArchiveSchema
				default:
					return fmt.Errorf("unknown schema %q: must be 'encrypt' or 'archive'", args[0])
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), schema)

			return err
		},
	}
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}

	return nil
}

// readWords returns args, or the non-blank lines of r when args is empty.
func readWords(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if r == nil {
		return nil, nil
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}

	return words, nil
}
