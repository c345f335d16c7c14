package cipher

import (
	"github.com/arloliu/cesar/format"
	"github.com/arloliu/cesar/internal/options"
)

// Encoder encrypts words with a fixed Config and output options.
//
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	cfg  Config
	opts EncoderConfig
}

// Trace records the intermediate values of one encryption.
//
// Normalized is only filled by the delimited layout and Digits only by the
// fixed-width layout.
type Trace struct {
	Word       string
	Layout     format.Layout
	Codes      []uint32
	Normalized []uint64
	Digits     string
	Grouped    []uint64
	Shifted    []uint64
	Output     string
}

// NewEncoder creates an Encoder for cfg.
//
// Only the options are checked here. cfg is checked on every EncryptWord call,
// so an unset or invalid Config is reported by the call that uses it.
//
// Parameters:
//   - cfg: cipher parameters
//   - opts: output options (WithLayout, WithDelimiter, WithTrailingDelimiter)
//
// Returns:
//   - *Encoder: the created encoder
//   - error: errs.ErrInvalidOption if an option is rejected
func NewEncoder(cfg Config, opts ...EncoderOption) (*Encoder, error) {
	ec := defaultEncoderConfig()
	if err := options.Apply(&ec, opts...); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, opts: ec}, nil
}

// Config returns the encoder's cipher parameters.
func (e *Encoder) Config() Config {
	return e.cfg
}

// Layout returns the encoder's output layout.
func (e *Encoder) Layout() format.Layout {
	return e.opts.layout
}

// EncryptWord encrypts word.
//
// The checks run in order: errs.ErrConfigNotSet, then errs.ErrConfigInvalid,
// then an empty word returns "" without running the pipeline. Any stage
// failure aborts the call with that stage's error.
func (e *Encoder) EncryptWord(word string) (string, error) {
	tr, err := e.Trace(word)
	if err != nil {
		return "", err
	}

	return tr.Output, nil
}

// Trace encrypts word like EncryptWord and returns every intermediate stage.
func (e *Encoder) Trace(word string) (*Trace, error) {
	if err := e.cfg.check(); err != nil {
		return nil, err
	}

	tr := &Trace{Word: word, Layout: e.opts.layout}
	if word == "" {
		return tr, nil
	}

	codes, err := EncodeSymbols(word, e.cfg.encrypt)
	if err != nil {
		return nil, err
	}
	tr.Codes = codes

	if e.opts.layout == format.LayoutFixedWidth {
		return e.traceFixedWidth(tr)
	}

	tr.Normalized, err = Normalize(codes, e.cfg.startIndex)
	if err != nil {
		return nil, err
	}
	tr.Grouped, err = Group(tr.Normalized, e.cfg.groupSize)
	if err != nil {
		return nil, err
	}
	tr.Shifted = Shift(tr.Grouped, e.cfg.keyValue, e.cfg.possibilities)
	tr.Output = FormatGroups(tr.Shifted, e.opts.delimiter, e.opts.trailing)

	return tr, nil
}

func (e *Encoder) traceFixedWidth(tr *Trace) (*Trace, error) {
	digits, groups, err := fixedWidthGroups(tr.Codes, e.cfg.groupSize, e.cfg.indexDigits)
	if err != nil {
		return nil, err
	}

	tr.Digits = digits
	tr.Grouped = groups
	tr.Shifted = Shift(groups, e.cfg.keyValue, e.cfg.possibilities)
	tr.Output = FormatFixedWidth(tr.Shifted, DecimalWidth(e.cfg.possibilities-1))

	return tr, nil
}
