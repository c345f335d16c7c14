package archive

import (
	"fmt"

	"github.com/arloliu/cesar/compress"
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
	"github.com/arloliu/cesar/internal/options"
	"github.com/arloliu/cesar/section"
)

// DefaultCompression is the payload compression used when none is configured.
const DefaultCompression = format.CompressionZstd

// WriterConfig holds the header template and payload codec of a Writer.
type WriterConfig struct {
	header  *section.Header
	codec   compress.Codec
	workers int
}

func newWriterConfig(fingerprint uint64) *WriterConfig {
	header := section.NewHeader(fingerprint)
	header.Flag.SetCompression(DefaultCompression)

	return &WriterConfig{header: header}
}

func (c *WriterConfig) setCompression(compression format.CompressionType) error {
	switch compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.header.Flag.SetCompression(compression)
		return nil
	default:
		return fmt.Errorf("%w: %w: %d", errs.ErrInvalidOption, errs.ErrInvalidCompression, compression)
	}
}

func (c *WriterConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.GetCompression(), "payload")
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithCompression selects the payload compression.
// Default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(c *WriterConfig) error {
		return c.setCompression(compression)
	})
}

// WithLittleEndian writes header fields little-endian. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian writes header fields big-endian.
func WithBigEndian() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.header.Flag.WithBigEndian()
	})
}

// WithWorkers bounds the goroutines AddAll uses. n <= 0 means no limit.
func WithWorkers(n int) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.workers = n
	})
}
