package cipher

import (
	"fmt"
	"maps"
	"strings"

	"github.com/arloliu/cesar/alphabet"
	"github.com/arloliu/cesar/errs"
)

// Default configuration values.
const (
	DefaultKeyValue      = 2
	DefaultGroupSize     = 1
	DefaultPossibilities = alphabet.LatinSize
	DefaultIndexDigits   = 2
	DefaultStartIndex    = alphabet.LatinStart
)

type fieldMask uint8

const (
	fieldKeyValue fieldMask = 1 << iota
	fieldGroupSize
	fieldPossibilities
	fieldIndexDigits
	fieldStartIndex
	fieldEncryptAlphabet
	fieldDecryptAlphabet

	fieldsAll = fieldKeyValue | fieldGroupSize | fieldPossibilities | fieldIndexDigits |
		fieldStartIndex | fieldEncryptAlphabet | fieldDecryptAlphabet
)

// Config holds the cipher parameters.
//
// Config is a value type: every With* method returns an updated copy and
// never modifies the receiver. Alphabet maps are copied on the way in and are
// never written afterwards, so copies of a Config may share them safely.
type Config struct {
	keyValue      int64
	groupSize     int
	possibilities uint64
	indexDigits   uint8
	startIndex    uint32
	encrypt       map[rune]uint32
	decrypt       map[uint32]rune
	set           fieldMask
}

// NewConfig returns a Config with no field set.
func NewConfig() Config {
	return Config{}
}

// DefaultConfig returns a fully set Config over the upper-case Latin alphabet:
// key 2, group size 1, 26 possibilities, 2 index digits and start index 65.
//
// Each call builds a fresh alphabet.
func DefaultConfig() Config {
	decrypt, encrypt := alphabet.Latin()

	return Config{
		keyValue:      DefaultKeyValue,
		groupSize:     DefaultGroupSize,
		possibilities: DefaultPossibilities,
		indexDigits:   DefaultIndexDigits,
		startIndex:    DefaultStartIndex,
		encrypt:       encrypt,
		decrypt:       decrypt,
		set:           fieldsAll,
	}
}

// WithKeyValue sets the signed shift added to every group.
func (c Config) WithKeyValue(key int64) Config {
	c.keyValue = key
	c.set |= fieldKeyValue

	return c
}

// WithGroupSize sets how many symbols are folded into one group.
func (c Config) WithGroupSize(size int) Config {
	c.groupSize = size
	c.set |= fieldGroupSize

	return c
}

// WithPossibilities sets the modulus of the key shift.
func (c Config) WithPossibilities(n uint64) Config {
	c.possibilities = n
	c.set |= fieldPossibilities

	return c
}

// WithIndexDigits sets the digit width reserved per symbol by the fixed-width
// layout and the padding helpers.
func (c Config) WithIndexDigits(digits uint8) Config {
	c.indexDigits = digits
	c.set |= fieldIndexDigits

	return c
}

// WithStartIndex sets the code of the alphabet's first symbol.
func (c Config) WithStartIndex(start uint32) Config {
	c.startIndex = start
	c.set |= fieldStartIndex

	return c
}

// WithEncryptAlphabet sets a copy of the symbol → code mapping.
func (c Config) WithEncryptAlphabet(encrypt map[rune]uint32) Config {
	c.encrypt = maps.Clone(encrypt)
	if c.encrypt == nil {
		c.encrypt = map[rune]uint32{}
	}
	c.set |= fieldEncryptAlphabet

	return c
}

// WithDecryptAlphabet sets a copy of the code → symbol mapping.
func (c Config) WithDecryptAlphabet(decrypt map[uint32]rune) Config {
	c.decrypt = maps.Clone(decrypt)
	if c.decrypt == nil {
		c.decrypt = map[uint32]rune{}
	}
	c.set |= fieldDecryptAlphabet

	return c
}

// WithAlphabet sets both mappings from table.
func (c Config) WithAlphabet(table *alphabet.Table) Config {
	return c.WithEncryptAlphabet(table.EncryptMap()).WithDecryptAlphabet(table.DecryptMap())
}

// KeyValue returns the configured key.
func (c Config) KeyValue() int64 { return c.keyValue }

// GroupSize returns the configured group size.
func (c Config) GroupSize() int { return c.groupSize }

// Possibilities returns the configured modulus.
func (c Config) Possibilities() uint64 { return c.possibilities }

// IndexDigits returns the configured digit width per symbol.
func (c Config) IndexDigits() uint8 { return c.indexDigits }

// StartIndex returns the configured start index.
func (c Config) StartIndex() uint32 { return c.startIndex }

// Alphabet returns the configured mappings as a Table.
func (c Config) Alphabet() *alphabet.Table {
	return alphabet.NewTable(c.encrypt, c.decrypt)
}

// IsSet reports whether every field holds a value.
func (c Config) IsSet() bool {
	return c.set&fieldsAll == fieldsAll
}

// Validate checks the value ranges of a set Config.
//
// It does not check IsSet; unset fields hold their zero values and are
// reported as invalid.
func (c Config) Validate() error {
	if c.keyValue == 0 {
		return fmt.Errorf("%w: key value must be non-zero", errs.ErrConfigInvalid)
	}
	if c.groupSize <= 0 {
		return fmt.Errorf("%w: group size must be greater than 0, got %d", errs.ErrConfigInvalid, c.groupSize)
	}
	if c.indexDigits == 0 {
		return fmt.Errorf("%w: index digit number must be greater than 0", errs.ErrConfigInvalid)
	}
	if c.possibilities == 0 {
		return fmt.Errorf("%w: number of possibilities must be greater than 0", errs.ErrConfigInvalid)
	}
	if err := alphabet.ValidateEncrypt(c.encrypt); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrConfigInvalid, err)
	}

	return nil
}

// check runs the set and validity checks in the order EncryptWord requires.
func (c Config) check() error {
	if !c.IsSet() {
		return fmt.Errorf("%w: missing %s", errs.ErrConfigNotSet, c.missingFields())
	}

	return c.Validate()
}

func (c Config) missingFields() string {
	names := []struct {
		field fieldMask
		name  string
	}{
		{fieldKeyValue, "key value"},
		{fieldGroupSize, "group size"},
		{fieldPossibilities, "number of possibilities"},
		{fieldIndexDigits, "index digit number"},
		{fieldStartIndex, "start index"},
		{fieldEncryptAlphabet, "encrypt alphabet"},
		{fieldDecryptAlphabet, "decrypt alphabet"},
	}

	missing := make([]string, 0, len(names))
	for _, n := range names {
		if c.set&n.field == 0 {
			missing = append(missing, n.name)
		}
	}

	return strings.Join(missing, ", ")
}

// EncryptWord encrypts word with the delimited layout.
// It is shorthand for an Encoder built from c with no options.
func (c Config) EncryptWord(word string) (string, error) {
	enc := &Encoder{cfg: c, opts: defaultEncoderConfig()}
	return enc.EncryptWord(word)
}
