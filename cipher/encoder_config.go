package cipher

import (
	"fmt"

	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
	"github.com/arloliu/cesar/internal/options"
)

// EncoderConfig holds the output options of an Encoder.
type EncoderConfig struct {
	layout    format.Layout
	delimiter string
	trailing  bool
}

func defaultEncoderConfig() EncoderConfig {
	return EncoderConfig{
		layout:    format.LayoutDelimited,
		delimiter: DefaultDelimiter,
		trailing:  true,
	}
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLayout selects the output layout.
func WithLayout(layout format.Layout) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch layout {
		case format.LayoutDelimited, format.LayoutFixedWidth:
			c.layout = layout
			return nil
		default:
			return fmt.Errorf("%w: layout %v", errs.ErrInvalidOption, layout)
		}
	})
}

// WithDelimiter sets the group separator of the delimited layout.
func WithDelimiter(delimiter string) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if delimiter == "" {
			return fmt.Errorf("%w: delimiter must not be empty", errs.ErrInvalidOption)
		}
		c.delimiter = delimiter

		return nil
	})
}

// WithTrailingDelimiter controls whether the delimited layout ends with a
// delimiter. It is enabled by default.
func WithTrailingDelimiter(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.trailing = enabled
	})
}
