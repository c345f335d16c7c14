package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/internal/report"
)

// encryptParams holds the parsed flags for the encrypt command.
type encryptParams struct {
	ctx        context.Context
	configPath string
	overrides  overrides
	format     string
	words      []string
	stdin      io.Reader
	stdout     io.Writer
}

// runEncrypt is the extracted, testable body of the encrypt command.
func runEncrypt(p encryptParams) error {
	if err := validateFormat(p.format); err != nil {
		return err
	}

	s, err := loadConfig(p.configPath, p.overrides)
	if err != nil {
		return err
	}

	enc, err := s.encoder()
	if err != nil {
		return err
	}

	words, err := readWords(p.words, p.stdin)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		logger.Warn("no words to encrypt")
		return nil
	}

	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("encrypting", "words", len(words), "layout", s.layout, "workers", s.workers)
	ciphertexts, err := cipher.EncryptAll(ctx, enc, words, s.workers)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	results := report.NewEncryptResults(words, ciphertexts)
	switch p.format {
	case "json":
		return report.WriteEncryptJSON(p.stdout, report.NewConfigSummary(s.cfg, s.layout), results)
	default:
		return report.WriteEncryptText(p.stdout, results)
	}
}

func newEncryptCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "encrypt [words...]",
		Short: "Encrypt words",
		Long: `Encrypt each word and print one ciphertext per line. When no
words are given, words are read from stdin, one per line.`,
	}

	flagOverrides := bindCipherFlags(cmd, &configPath)
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runEncrypt(encryptParams{
			ctx:        cmd.Context(),
			configPath: configPath,
			overrides:  flagOverrides(),
			format:     format,
			words:      args,
			stdin:      os.Stdin,
			stdout:     cmd.OutOrStdout(),
		})
	}

	return cmd
}
