package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arloliu/cesar/archive"
	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/endian"
	"github.com/arloliu/cesar/internal/pool"
)

// WriteEncryptText writes one ciphertext per line.
func WriteEncryptText(w io.Writer, results []EncryptResult) error {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	for _, r := range results {
		buf.MustWriteString(r.Ciphertext)
		buf.MustWriteByte('\n')
	}
	_, err := buf.WriteTo(w)

	return err
}

// WriteArchiveText writes a styled archive summary followed by one ciphertext per line.
func WriteArchiveText(w io.Writer, r *archive.Reader, alphabetMatch bool) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== archive: %d ciphertext(s) ===", r.Len())))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    layout=%s compression=%s endian=%s fingerprint=%s",
		r.Layout(), r.Compression(), endian.Name(r.ByteOrder()), FormatFingerprint(r.Fingerprint()))))
	if !alphabetMatch {
		fmt.Fprintln(w, s.Warn.Render("    alphabet does not match the configured alphabet"))
	}

	for _, ciphertext := range r.All() {
		if _, err := fmt.Fprintln(w, ciphertext); err != nil {
			return err
		}
	}

	return nil
}

// WriteTraces writes the per-stage tables of traces.
func WriteTraces(w io.Writer, traces []*cipher.Trace) error {
	_, err := io.WriteString(w, RenderTraces(traces, DefaultStyles()))
	return err
}

// RenderTraces renders one stage table per trace.
func RenderTraces(traces []*cipher.Trace, s Styles) string {
	var sb strings.Builder

	sb.WriteString(s.Header.Render(fmt.Sprintf("Cesar trace: %d word(s)", len(traces))))
	sb.WriteString("\n\n")

	for _, tr := range traces {
		sb.WriteString(s.Header.Render(fmt.Sprintf("=== %q ===", tr.Word)))
		sb.WriteString("\n")
		sb.WriteString(s.SubHeader.Render(fmt.Sprintf("    layout %s", tr.Layout)))
		sb.WriteString("\n")

		if tr.Word == "" {
			sb.WriteString(s.Muted.Render("    Empty word, nothing to encrypt."))
			sb.WriteString("\n\n")

			continue
		}

		rows := traceRows(tr)
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(s.Border).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return s.TableHeader
				}
				if row == len(rows)-1 && col == 1 {
					return s.Output
				}
				if col == 0 {
					return s.Stage
				}

				return lipgloss.NewStyle()
			}).
			Headers("STAGE", "VALUE").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func traceRows(tr *cipher.Trace) [][]string {
	rows := [][]string{{"codes", joinValues(tr.Codes)}}
	if tr.Normalized != nil {
		rows = append(rows, []string{"normalized", joinValues(tr.Normalized)})
	}
	if tr.Digits != "" {
		rows = append(rows, []string{"digits", tr.Digits})
	}
	rows = append(rows,
		[]string{"grouped", joinValues(tr.Grouped)},
		[]string{"shifted", joinValues(tr.Shifted)},
		[]string{"output", tr.Output},
	)

	return rows
}

func joinValues[T uint32 | uint64](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}

	return strings.Join(parts, " ")
}
