package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/internal/report"
)

// inspectParams holds the parsed flags for the inspect command.
type inspectParams struct {
	configPath  string
	overrides   overrides
	words       []string
	interactive bool
	stdout      io.Writer
}

// runInspect is the extracted, testable body of the inspect command.
func runInspect(p inspectParams) error {
	s, err := loadConfig(p.configPath, p.overrides)
	if err != nil {
		return err
	}

	enc, err := s.encoder()
	if err != nil {
		return err
	}

	traces := make([]*cipher.Trace, 0, len(p.words))
	for _, word := range p.words {
		tr, err := enc.Trace(word)
		if err != nil {
			return err
		}
		traces = append(traces, tr)
	}

	if p.interactive {
		return runInteractiveInspect(traces)
	}

	return report.WriteTraces(p.stdout, traces)
}

func newInspectCmd() *cobra.Command {
	var (
		configPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect WORD [WORD...]",
		Short: "Show every encryption stage of words",
		Long: `Encrypt words and print a table of the intermediate stages:
symbol codes, normalized indices (or the digit string for the fixed
layout), grouped values, shifted values and the final ciphertext.`,
		Args: cobra.MinimumNArgs(1),
	}

	flagOverrides := bindCipherFlags(cmd, &configPath)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing traces")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runInspect(inspectParams{
			configPath:  configPath,
			overrides:   flagOverrides(),
			words:       args,
			interactive: interactive,
			stdout:      cmd.OutOrStdout(),
		})
	}

	return cmd
}
