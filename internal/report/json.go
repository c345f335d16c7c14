// Package report provides output formatters for cesar command results in
// JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/cesar/archive"
	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/endian"
	"github.com/arloliu/cesar/format"
)

// Version is the schema version written into every JSON report.
const Version = "1.0.0"

// ConfigSummary describes the cipher parameters a report was produced with.
type ConfigSummary struct {
	Key           int64  `json:"key"`
	GroupSize     int    `json:"group_size"`
	Possibilities uint64 `json:"possibilities"`
	IndexDigits   uint8  `json:"index_digits"`
	StartIndex    uint32 `json:"start_index"`
	Layout        string `json:"layout"`
	Fingerprint   string `json:"fingerprint"`
}

// NewConfigSummary summarizes cfg rendered with layout.
func NewConfigSummary(cfg cipher.Config, layout format.Layout) ConfigSummary {
	return ConfigSummary{
		Key:           cfg.KeyValue(),
		GroupSize:     cfg.GroupSize(),
		Possibilities: cfg.Possibilities(),
		IndexDigits:   cfg.IndexDigits(),
		StartIndex:    cfg.StartIndex(),
		Layout:        layout.String(),
		Fingerprint:   FormatFingerprint(cfg.Alphabet().Fingerprint()),
	}
}

// FormatFingerprint renders an alphabet fingerprint as 16 hex digits.
func FormatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}

// EncryptResult pairs a word with its ciphertext.
type EncryptResult struct {
	Word       string `json:"word"`
	Ciphertext string `json:"ciphertext"`
}

// EncryptReport is the JSON output of the encrypt command.
type EncryptReport struct {
	Version string          `json:"version"`
	Config  ConfigSummary   `json:"config"`
	Results []EncryptResult `json:"results"`
}

// ArchiveReport is the JSON output of the unpack command.
type ArchiveReport struct {
	Version       string   `json:"version"`
	Layout        string   `json:"layout"`
	Compression   string   `json:"compression"`
	Endianness    string   `json:"endianness"`
	Fingerprint   string   `json:"fingerprint"`
	AlphabetMatch bool     `json:"alphabet_match"`
	Count         int      `json:"count"`
	Ciphertexts   []string `json:"ciphertexts"`
}

// NewEncryptResults zips words with their ciphertexts.
func NewEncryptResults(words, ciphertexts []string) []EncryptResult {
	results := make([]EncryptResult, len(words))
	for i := range words {
		results[i] = EncryptResult{Word: words[i], Ciphertext: ciphertexts[i]}
	}

	return results
}

// WriteEncryptJSON writes encryption results as formatted JSON.
func WriteEncryptJSON(w io.Writer, cfg ConfigSummary, results []EncryptResult) error {
	if results == nil {
		results = []EncryptResult{}
	}

	return writeJSON(w, EncryptReport{
		Version: Version,
		Config:  cfg,
		Results: results,
	})
}

// WriteArchiveJSON writes the contents of an archive as formatted JSON.
func WriteArchiveJSON(w io.Writer, r *archive.Reader, alphabetMatch bool) error {
	ciphertexts := r.Ciphertexts()
	if ciphertexts == nil {
		ciphertexts = []string{}
	}

	return writeJSON(w, ArchiveReport{
		Version:       Version,
		Layout:        r.Layout().String(),
		Compression:   r.Compression().String(),
		Endianness:    endian.Name(r.ByteOrder()),
		Fingerprint:   FormatFingerprint(r.Fingerprint()),
		AlphabetMatch: alphabetMatch,
		Count:         r.Len(),
		Ciphertexts:   ciphertexts,
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
