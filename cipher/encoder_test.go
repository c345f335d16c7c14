package cipher

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/cesar/alphabet"
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
	"github.com/stretchr/testify/require"
)

func TestEncryptWord_Default(t *testing.T) {
	out, err := DefaultConfig().EncryptWord("ABC")
	require.NoError(t, err)
	require.Equal(t, "2-3-4-", out)
}

func TestEncryptWord_EmptyInput(t *testing.T) {
	configs := map[string]Config{
		"default":   DefaultConfig(),
		"grouped":   DefaultConfig().WithGroupSize(3).WithPossibilities(999999),
		"negative":  DefaultConfig().WithKeyValue(-9),
		"start 0":   DefaultConfig().WithStartIndex(0),
		"one digit": DefaultConfig().WithIndexDigits(1),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			out, err := cfg.EncryptWord("")
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestEncryptWord_GroupOfTwo(t *testing.T) {
	cfg := DefaultConfig().WithGroupSize(2).WithPossibilities(2526)

	tr, err := mustEncoder(t, cfg).Trace("ABC")
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 2}, tr.Normalized)
	require.Equal(t, []uint64{1, 2}, tr.Grouped)
	require.Equal(t, []uint64{3, 4}, tr.Shifted)
	require.Equal(t, "3-4-", tr.Output)
}

func TestEncryptWord_LowerCaseMiss(t *testing.T) {
	out, err := DefaultConfig().EncryptWord("aBC")
	require.ErrorIs(t, err, errs.ErrAlphabetMiss)
	require.Empty(t, out)
}

func TestEncryptWord_UnsetConfig(t *testing.T) {
	for _, word := range []string{"", "ABC", "abc"} {
		_, err := NewConfig().EncryptWord(word)
		require.ErrorIs(t, err, errs.ErrConfigNotSet)
	}
}

func TestEncryptWord_KeyWraparound(t *testing.T) {
	out, err := DefaultConfig().EncryptWord("YZ")
	require.NoError(t, err)
	require.Equal(t, "0-1-", out)
}

func TestEncryptWord_NegativeKey(t *testing.T) {
	out, err := DefaultConfig().WithKeyValue(-2).EncryptWord("ABC")
	require.NoError(t, err)
	require.Equal(t, "24-25-0-", out)
}

func TestEncryptWord_CodeBelowStartIndex(t *testing.T) {
	cfg := DefaultConfig().WithStartIndex(70)

	_, err := cfg.EncryptWord("FGH")
	require.NoError(t, err)

	_, err = cfg.EncryptWord("FGE")
	require.ErrorIs(t, err, errs.ErrCodeUnderflow)
	require.ErrorIs(t, err, errs.ErrAlphabetMiss)
}

func TestEncryptWord_Deterministic(t *testing.T) {
	enc := mustEncoder(t, DefaultConfig().WithGroupSize(3).WithPossibilities(262626).WithKeyValue(-77))

	first, err := enc.EncryptWord("HELLOWORLD")
	require.NoError(t, err)
	for range 10 {
		again, err := enc.EncryptWord("HELLOWORLD")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEncryptWord_GroupCountMatchesSymbols(t *testing.T) {
	for _, word := range []string{"A", "AB", "QWERTY", strings.Repeat("Z", 100)} {
		out, err := DefaultConfig().EncryptWord(word)
		require.NoError(t, err)
		require.Equal(t, len(word), strings.Count(out, "-"))
	}
}

func TestEncryptWord_AlphabetClosure(t *testing.T) {
	table := alphabet.LatinTable()
	word := string(table.Symbols())

	for size := 1; size <= 9; size++ {
		cfg := DefaultConfig().WithGroupSize(size).WithPossibilities(1 << 62)
		_, err := cfg.EncryptWord(word)
		require.NoError(t, err, "group size %d", size)
	}
}

func TestEncryptWord_LargeGroupSize(t *testing.T) {
	cfg := DefaultConfig().WithGroupSize(10).WithPossibilities(1 << 62)

	// "AB" folds to 1, well inside uint64
	out, err := cfg.EncryptWord("AB")
	require.NoError(t, err)
	require.Equal(t, "3-", out)

	// ten 'Z' offsets fold to 25252525252525252525 > 2^64
	_, err = cfg.EncryptWord(strings.Repeat("Z", 10))
	require.ErrorIs(t, err, errs.ErrGroupOverflow)
}

func TestEncryptWord_NegativeKeyUndoesPositiveKey(t *testing.T) {
	cfg := DefaultConfig().WithGroupSize(2).WithPossibilities(2526)

	plain := mustEncoder(t, cfg)
	tr, err := plain.Trace("HELLO")
	require.NoError(t, err)

	back := Shift(tr.Shifted, -cfg.KeyValue(), cfg.Possibilities())
	require.Equal(t, tr.Grouped, back)
}

func TestEncoder_Options(t *testing.T) {
	t.Run("delimiter without trailing", func(t *testing.T) {
		enc, err := NewEncoder(DefaultConfig(), WithDelimiter("."), WithTrailingDelimiter(false))
		require.NoError(t, err)
		out, err := enc.EncryptWord("ABC")
		require.NoError(t, err)
		require.Equal(t, "2.3.4", out)
	})

	t.Run("empty delimiter", func(t *testing.T) {
		_, err := NewEncoder(DefaultConfig(), WithDelimiter(""))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})

	t.Run("unknown layout", func(t *testing.T) {
		_, err := NewEncoder(DefaultConfig(), WithLayout(format.Layout(9)))
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})

	t.Run("accessors", func(t *testing.T) {
		enc, err := NewEncoder(DefaultConfig().WithKeyValue(5), WithLayout(format.LayoutFixedWidth))
		require.NoError(t, err)
		require.Equal(t, format.LayoutFixedWidth, enc.Layout())
		require.Equal(t, int64(5), enc.Config().KeyValue())
	})

	t.Run("invalid config accepted until use", func(t *testing.T) {
		enc, err := NewEncoder(NewConfig())
		require.NoError(t, err)
		_, err = enc.EncryptWord("A")
		require.ErrorIs(t, err, errs.ErrConfigNotSet)
	})
}

func TestEncoder_FixedWidth(t *testing.T) {
	cfg := DefaultConfig().WithGroupSize(2).WithPossibilities(2526)

	t.Run("default key", func(t *testing.T) {
		enc := mustEncoder(t, cfg, WithLayout(format.LayoutFixedWidth))
		tr, err := enc.Trace("ABC")
		require.NoError(t, err)
		require.Equal(t, []uint32{65, 66, 67}, tr.Codes)
		require.Empty(t, tr.Normalized)
		require.Equal(t, "65666700", tr.Digits)
		require.Equal(t, []uint64{6566, 6700}, tr.Grouped)
		require.Equal(t, []uint64{1516, 1650}, tr.Shifted)
		require.Equal(t, "15161650", tr.Output)
	})

	t.Run("key congruent to zero", func(t *testing.T) {
		enc := mustEncoder(t, cfg.WithKeyValue(2526), WithLayout(format.LayoutFixedWidth))
		out, err := enc.EncryptWord("ABC")
		require.NoError(t, err)
		require.Equal(t, "15141648", out)
	})

	t.Run("output is zero-padded", func(t *testing.T) {
		enc := mustEncoder(t, DefaultConfig(), WithLayout(format.LayoutFixedWidth))
		out, err := enc.EncryptWord("ABC")
		require.NoError(t, err)
		// 65, 66, 67 shifted by 2 mod 26 → 15, 16, 17
		require.Equal(t, "151617", out)

		out, err = enc.EncryptWord("X")
		require.NoError(t, err)
		// 88 + 2 = 90 mod 26 = 12
		require.Equal(t, "12", out)

		out, err = mustEncoder(t, DefaultConfig().WithKeyValue(-10), WithLayout(format.LayoutFixedWidth)).EncryptWord("A")
		require.NoError(t, err)
		// 65 - 10 = 55 mod 26 = 3
		require.Equal(t, "03", out)
	})

	t.Run("code wider than digit width", func(t *testing.T) {
		enc := mustEncoder(t, DefaultConfig().WithIndexDigits(1), WithLayout(format.LayoutFixedWidth))
		_, err := enc.EncryptWord("A")
		require.ErrorIs(t, err, errs.ErrConfigInvalid)
	})

	t.Run("alphabet miss", func(t *testing.T) {
		enc := mustEncoder(t, cfg, WithLayout(format.LayoutFixedWidth))
		_, err := enc.EncryptWord("AbC")
		require.ErrorIs(t, err, errs.ErrAlphabetMiss)
	})

	t.Run("empty word", func(t *testing.T) {
		enc := mustEncoder(t, cfg, WithLayout(format.LayoutFixedWidth))
		out, err := enc.EncryptWord("")
		require.NoError(t, err)
		require.Empty(t, out)
	})
}

func TestEncoder_ConcurrentUse(t *testing.T) {
	enc := mustEncoder(t, DefaultConfig().WithGroupSize(2).WithPossibilities(2526))
	want, err := enc.EncryptWord("CONCURRENT")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errCh := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got, err := enc.EncryptWord("CONCURRENT")
				if err != nil {
					errCh <- err
					return
				}
				if got != want {
					errCh <- fmt.Errorf("got %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}

func mustEncoder(t *testing.T, cfg Config, opts ...EncoderOption) *Encoder {
	t.Helper()

	enc, err := NewEncoder(cfg, opts...)
	require.NoError(t, err)

	return enc
}
