package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/cesar/alphabet"
	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/format"
)

// fileConfig is the YAML layout of a cesar config file. Every field is
// optional and falls back to the cipher defaults.
type fileConfig struct {
	Key               *int64  `yaml:"key,omitempty"`
	GroupSize         *int    `yaml:"group_size,omitempty"`
	Possibilities     *uint64 `yaml:"possibilities,omitempty"`
	IndexDigits       *uint8  `yaml:"index_digits,omitempty"`
	StartIndex        *uint32 `yaml:"start_index,omitempty"`
	Alphabet          *string `yaml:"alphabet,omitempty"` // symbols coded from start_index upwards
	Layout            *string `yaml:"layout,omitempty"`
	Delimiter         *string `yaml:"delimiter,omitempty"`
	TrailingDelimiter *bool   `yaml:"trailing_delimiter,omitempty"`
	Compression       *string `yaml:"compression,omitempty"`
	Workers           *int    `yaml:"workers,omitempty"`
}

// overrides holds the cipher flags the user set explicitly. Nil means the
// flag was not given.
type overrides struct {
	key           *int64
	groupSize     *int
	possibilities *uint64
	digits        *uint8
	startIndex    *uint32
	layout        *string
	workers       *int
}

// settings is the resolved configuration of one command run.
type settings struct {
	cfg         cipher.Config
	layout      format.Layout
	delimiter   string
	trailing    bool
	compression format.CompressionType
	workers     int
}

// encoder builds the cipher.Encoder described by s.
func (s settings) encoder() (*cipher.Encoder, error) {
	return cipher.NewEncoder(s.cfg,
		cipher.WithLayout(s.layout),
		cipher.WithDelimiter(s.delimiter),
		cipher.WithTrailingDelimiter(s.trailing),
	)
}

// bindCipherFlags registers the shared cipher flags on cmd. The returned
// function reports the flags that were set once the command has parsed them.
func bindCipherFlags(cmd *cobra.Command, configPath *string) func() overrides {
	var (
		key           int64
		groupSize     int
		possibilities uint64
		digits        uint8
		startIndex    uint32
		layout        string
		workers       int
	)

	flags := cmd.Flags()
	flags.StringVarP(configPath, "config", "c", "",
		"path to a YAML config file")
	flags.Int64VarP(&key, "key", "k", cipher.DefaultKeyValue,
		"shift key (non-zero, may be negative)")
	flags.IntVarP(&groupSize, "group-size", "g", cipher.DefaultGroupSize,
		"symbols per group (at least 1)")
	flags.Uint64VarP(&possibilities, "possibilities", "p", cipher.DefaultPossibilities,
		"shift modulus")
	flags.Uint8Var(&digits, "digits", cipher.DefaultIndexDigits,
		"digits per symbol code")
	flags.Uint32Var(&startIndex, "start-index", cipher.DefaultStartIndex,
		"code of the first alphabet symbol")
	flags.StringVar(&layout, "layout", "delimited",
		"output layout: delimited or fixed")
	flags.IntVarP(&workers, "workers", "w", 0,
		"concurrent encryptions (0 = no limit)")

	return func() overrides {
		var ov overrides
		if flags.Changed("key") {
			ov.key = &key
		}
		if flags.Changed("group-size") {
			ov.groupSize = &groupSize
		}
		if flags.Changed("possibilities") {
			ov.possibilities = &possibilities
		}
		if flags.Changed("digits") {
			ov.digits = &digits
		}
		if flags.Changed("start-index") {
			ov.startIndex = &startIndex
		}
		if flags.Changed("layout") {
			ov.layout = &layout
		}
		if flags.Changed("workers") {
			ov.workers = &workers
		}

		return ov
	}
}

// loadConfig resolves the cipher settings in order: defaults, then the
// YAML file at path (if any), then explicit flag overrides.
func loadConfig(path string, ov overrides) (settings, error) {
	var fc fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return settings{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return settings{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	fc.apply(ov)

	s := settings{
		cfg:         cipher.DefaultConfig(),
		layout:      format.LayoutDelimited,
		delimiter:   cipher.DefaultDelimiter,
		trailing:    true,
		compression: format.CompressionZstd,
	}

	if fc.Key != nil {
		s.cfg = s.cfg.WithKeyValue(*fc.Key)
	}
	if fc.GroupSize != nil {
		s.cfg = s.cfg.WithGroupSize(*fc.GroupSize)
	}
	if fc.Possibilities != nil {
		s.cfg = s.cfg.WithPossibilities(*fc.Possibilities)
	}
	if fc.IndexDigits != nil {
		s.cfg = s.cfg.WithIndexDigits(*fc.IndexDigits)
	}
	if fc.StartIndex != nil {
		s.cfg = s.cfg.WithStartIndex(*fc.StartIndex)
	}

	if fc.Alphabet != nil {
		table, err := alphabet.FromSymbols(*fc.Alphabet, s.cfg.StartIndex())
		if err != nil {
			return settings{}, fmt.Errorf("config file %s: alphabet: %w", path, err)
		}
		s.cfg = s.cfg.WithAlphabet(table)
	}

	if fc.Layout != nil {
		layout, ok := format.ParseLayout(*fc.Layout)
		if !ok {
			return settings{}, fmt.Errorf("invalid layout %q: must be 'delimited' or 'fixed'", *fc.Layout)
		}
		s.layout = layout
	}
	if fc.Delimiter != nil {
		s.delimiter = *fc.Delimiter
	}
	if fc.TrailingDelimiter != nil {
		s.trailing = *fc.TrailingDelimiter
	}
	if fc.Compression != nil {
		compression, ok := format.ParseCompression(*fc.Compression)
		if !ok {
			return settings{}, fmt.Errorf("invalid compression %q: must be 'none', 'zstd', 's2', or 'lz4'", *fc.Compression)
		}
		s.compression = compression
	}
	if fc.Workers != nil {
		s.workers = *fc.Workers
	}

	if err := s.cfg.Validate(); err != nil {
		if path != "" && ov.isEmpty() {
			return settings{}, fmt.Errorf("config file %s: %w", path, err)
		}

		return settings{}, err
	}

	return s, nil
}

func (fc *fileConfig) apply(ov overrides) {
	if ov.key != nil {
		fc.Key = ov.key
	}
	if ov.groupSize != nil {
		fc.GroupSize = ov.groupSize
	}
	if ov.possibilities != nil {
		fc.Possibilities = ov.possibilities
	}
	if ov.digits != nil {
		fc.IndexDigits = ov.digits
	}
	if ov.startIndex != nil {
		fc.StartIndex = ov.startIndex
	}
	if ov.layout != nil {
		fc.Layout = ov.layout
	}
	if ov.workers != nil {
		fc.Workers = ov.workers
	}
}

func (ov overrides) isEmpty() bool {
	return ov == overrides{}
}
