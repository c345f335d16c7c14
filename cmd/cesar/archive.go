package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/cesar/archive"
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
	"github.com/arloliu/cesar/internal/report"
)

// packParams holds the parsed flags for the pack command.
type packParams struct {
	ctx         context.Context
	configPath  string
	overrides   overrides
	out         string
	compression string
	bigEndian   bool
	words       []string
	stdin       io.Reader
}

// runPack is the extracted, testable body of the pack command.
func runPack(p packParams) error {
	if p.out == "" {
		return errors.New("missing --out: archive path is required")
	}

	s, err := loadConfig(p.configPath, p.overrides)
	if err != nil {
		return err
	}

	if p.compression != "" {
		compression, ok := format.ParseCompression(p.compression)
		if !ok {
			return fmt.Errorf("invalid compression %q: must be 'none', 'zstd', 's2', or 'lz4'", p.compression)
		}
		s.compression = compression
	}

	enc, err := s.encoder()
	if err != nil {
		return err
	}

	opts := []archive.WriterOption{
		archive.WithCompression(s.compression),
		archive.WithWorkers(s.workers),
	}
	if p.bigEndian {
		opts = append(opts, archive.WithBigEndian())
	}

	w, err := archive.NewWriter(enc, opts...)
	if err != nil {
		return err
	}

	words, err := readWords(p.words, p.stdin)
	if err != nil {
		return err
	}

	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := w.AddAll(ctx, words); err != nil {
		return fmt.Errorf("pack: %w", err)
	}

	data, err := w.Finish()
	if err != nil {
		return err
	}

	if err := os.WriteFile(p.out, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("writing archive %s: %w", p.out, err)
	}

	logger.Info("archive written", "path", p.out, "entries", len(words),
		"bytes", len(data), "compression", s.compression)

	return nil
}

func newPackCmd() *cobra.Command {
	var (
		configPath  string
		out         string
		compression string
		bigEndian   bool
	)

	cmd := &cobra.Command{
		Use:   "pack --out FILE [words...]",
		Short: "Encrypt words into a compressed archive",
		Long: `Encrypt words and store the ciphertexts in a binary archive.
When no words are given, words are read from stdin, one per line.
The archive records the alphabet fingerprint, layout and a CRC32
checksum of its payload.`,
	}

	flagOverrides := bindCipherFlags(cmd, &configPath)
	cmd.Flags().StringVarP(&out, "out", "o", "",
		"archive file to write")
	cmd.Flags().StringVar(&compression, "compression", "",
		"payload compression: none, zstd, s2, or lz4 (default zstd)")
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false,
		"write header fields big-endian")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPack(packParams{
			ctx:         cmd.Context(),
			configPath:  configPath,
			overrides:   flagOverrides(),
			out:         out,
			compression: compression,
			bigEndian:   bigEndian,
			words:       args,
			stdin:       os.Stdin,
		})
	}

	return cmd
}

// unpackParams holds the parsed flags for the unpack command.
type unpackParams struct {
	path       string
	configPath string
	overrides  overrides
	format     string
	stdout     io.Writer
}

// runUnpack is the extracted, testable body of the unpack command.
func runUnpack(p unpackParams) error {
	if err := validateFormat(p.format); err != nil {
		return err
	}

	s, err := loadConfig(p.configPath, p.overrides)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("reading archive %s: %w", p.path, err)
	}

	r, err := archive.NewReader(data)
	if err != nil {
		return fmt.Errorf("archive %s: %w", p.path, err)
	}

	match := true
	if err := r.VerifyAlphabet(s.cfg.Alphabet()); err != nil {
		if !errors.Is(err, errs.ErrAlphabetMismatch) {
			return err
		}
		match = false
		logger.Warn("archive alphabet differs from configured alphabet",
			"archive", report.FormatFingerprint(r.Fingerprint()),
			"configured", report.FormatFingerprint(s.cfg.Alphabet().Fingerprint()))
	}

	switch p.format {
	case "json":
		return report.WriteArchiveJSON(p.stdout, r, match)
	default:
		return report.WriteArchiveText(p.stdout, r, match)
	}
}

func newUnpackCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "unpack FILE",
		Short: "List the ciphertexts of an archive",
		Long: `Verify an archive and print its ciphertexts. A warning is
logged when the archive was written with a different alphabet than
the configured one.`,
		Args: cobra.ExactArgs(1),
	}

	flagOverrides := bindCipherFlags(cmd, &configPath)
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runUnpack(unpackParams{
			path:       args[0],
			configPath: configPath,
			overrides:  flagOverrides(),
			format:     format,
			stdout:     cmd.OutOrStdout(),
		})
	}

	return cmd
}
