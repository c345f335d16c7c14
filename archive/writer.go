package archive

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/encoding"
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/internal/options"
	"github.com/arloliu/cesar/section"
)

// Writer encrypts words and collects the ciphertexts into an archive.
//
// Note: Writer is NOT thread-safe and NOT reusable. After Finish, a new
// Writer must be created.
type Writer struct {
	*WriterConfig

	enc      *cipher.Encoder
	data     *encoding.VarStringEncoder
	count    int // entries written by Finish
	finished bool
}

// NewWriter creates a Writer that encrypts with enc.
//
// The encoder's Config must be fully set and valid, since its alphabet
// fingerprint is stamped into the header.
//
// Parameters:
//   - enc: encoder used by Add and AddAll
//   - opts: WithCompression, WithLittleEndian, WithBigEndian, WithWorkers
//
// Returns:
//   - *Writer: writer ready for Add calls
//   - error: errs.ErrConfigNotSet / errs.ErrConfigInvalid for the encoder's
//     Config, errs.ErrInvalidOption for a rejected option
func NewWriter(enc *cipher.Encoder, opts ...WriterOption) (*Writer, error) {
	cfg := enc.Config()
	if !cfg.IsSet() {
		return nil, fmt.Errorf("%w: archive writer needs a complete config", errs.ErrConfigNotSet)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	wc := newWriterConfig(cfg.Alphabet().Fingerprint())
	wc.header.Flag.SetLayout(enc.Layout())

	if err := options.Apply(wc, opts...); err != nil {
		return nil, err
	}
	if err := wc.setCodec(); err != nil {
		return nil, err
	}

	return &Writer{
		WriterConfig: wc,
		enc:          enc,
		data:         encoding.NewVarStringEncoder(),
	}, nil
}

// Add encrypts word and appends its ciphertext.
//
// An encryption error is returned unchanged and nothing is appended.
func (w *Writer) Add(word string) error {
	if w.finished {
		return errs.ErrArchiveFinished
	}

	ciphertext, err := w.enc.EncryptWord(word)
	if err != nil {
		return err
	}

	return w.append(ciphertext)
}

// AddAll encrypts words concurrently with cipher.EncryptAll and appends the
// ciphertexts in input order. On error nothing is appended.
func (w *Writer) AddAll(ctx context.Context, words []string) error {
	if w.finished {
		return errs.ErrArchiveFinished
	}

	ciphertexts, err := cipher.EncryptAll(ctx, w.enc, words, w.workers)
	if err != nil {
		return err
	}

	if uint64(w.data.Len()+len(ciphertexts)) > section.MaxCount {
		return fmt.Errorf("%w: %d", errs.ErrTooManyEntries, w.data.Len()+len(ciphertexts))
	}

	return w.data.WriteSlice(ciphertexts)
}

func (w *Writer) append(ciphertext string) error {
	if uint64(w.data.Len()) >= section.MaxCount {
		return fmt.Errorf("%w: %d", errs.ErrTooManyEntries, w.data.Len()+1)
	}

	return w.data.Write(ciphertext)
}

// Len returns the number of ciphertexts added so far. After Finish it
// returns the number of entries in the finished archive.
func (w *Writer) Len() int {
	if w.finished {
		return w.count
	}

	return w.data.Len()
}

// Finish compresses the payload and returns the complete archive.
// An archive with no entries is valid.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrArchiveFinished
	}

	w.finished = true
	w.count = w.data.Len()
	defer w.data.Finish()

	payload := w.data.Bytes()
	if uint64(len(payload)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrTooManyEntries, len(payload))
	}

	compressed, err := w.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header := *w.header
	header.Count = uint32(w.data.Len())             //nolint:gosec
	header.PayloadSize = uint32(len(payload))       //nolint:gosec
	header.CompressedSize = uint32(len(compressed)) //nolint:gosec
	header.Checksum = crc32.ChecksumIEEE(payload)

	out := make([]byte, section.HeaderSize+len(compressed))
	copy(out, header.Bytes())
	copy(out[section.HeaderSize:], compressed)

	return out, nil
}
