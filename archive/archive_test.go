package archive

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cesar/alphabet"
	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/endian"
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
	"github.com/arloliu/cesar/section"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func newEncoder(t testing.TB, opts ...cipher.EncoderOption) *cipher.Encoder {
	t.Helper()

	enc, err := cipher.NewEncoder(cipher.DefaultConfig().WithGroupSize(2).WithPossibilities(2526), opts...)
	require.NoError(t, err)

	return enc
}

func sampleWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("%c%cHELLO", 'A'+rune(i%26), 'A'+rune((i/26)%26))
	}

	return words
}

func TestWriterReader_RoundTrip(t *testing.T) {
	words := []string{"HELLO", "ABC", "", "WORLD"}

	for _, compression := range allCompressions {
		t.Run(compression.String(), func(t *testing.T) {
			enc := newEncoder(t)

			w, err := NewWriter(enc, WithCompression(compression))
			require.NoError(t, err)
			for _, word := range words {
				require.NoError(t, w.Add(word))
			}
			require.Equal(t, len(words), w.Len())

			data, err := w.Finish()
			require.NoError(t, err)

			r, err := NewReader(data)
			require.NoError(t, err)
			require.Equal(t, len(words), r.Len())
			require.Equal(t, compression, r.Compression())
			require.Equal(t, format.LayoutDelimited, r.Layout())

			for i, word := range words {
				want, err := enc.EncryptWord(word)
				require.NoError(t, err)

				got, ok := r.At(i)
				require.True(t, ok)
				require.Equal(t, want, got)
			}

			first, _ := r.At(0)
			require.Equal(t, "706-1113-16-", first)
		})
	}
}

func TestWriter_AddAll(t *testing.T) {
	words := sampleWords(500)
	enc := newEncoder(t)

	w, err := NewWriter(enc, WithWorkers(4))
	require.NoError(t, err)
	require.NoError(t, w.Add("ABC"))
	require.NoError(t, w.AddAll(context.Background(), words))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	require.Equal(t, len(words)+1, r.Len())

	want, err := cipher.EncryptAll(context.Background(), enc, words, 1)
	require.NoError(t, err)
	require.Equal(t, want, r.Ciphertexts()[1:])
}

func TestWriter_AddAllError(t *testing.T) {
	w, err := NewWriter(newEncoder(t))
	require.NoError(t, err)

	err = w.AddAll(context.Background(), []string{"ABC", "abc"})
	require.ErrorIs(t, err, errs.ErrAlphabetMiss)
	require.Equal(t, 0, w.Len(), "failed batch appends nothing")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, w.AddAll(ctx, sampleWords(10)), context.Canceled)
}

func TestWriter_AddError(t *testing.T) {
	w, err := NewWriter(newEncoder(t))
	require.NoError(t, err)

	require.ErrorIs(t, w.Add("A1"), errs.ErrAlphabetMiss)
	require.Equal(t, 0, w.Len())
}

func TestWriter_Finished(t *testing.T) {
	w, err := NewWriter(newEncoder(t))
	require.NoError(t, err)

	require.NoError(t, w.Add("ABC"))
	_, err = w.Finish()
	require.NoError(t, err)
	require.Equal(t, 1, w.Len())

	require.ErrorIs(t, w.Add("ABC"), errs.ErrArchiveFinished)
	require.ErrorIs(t, w.AddAll(context.Background(), []string{"ABC"}), errs.ErrArchiveFinished)
	_, err = w.Finish()
	require.ErrorIs(t, err, errs.ErrArchiveFinished)
}

func TestNewWriter_Errors(t *testing.T) {
	enc, err := cipher.NewEncoder(cipher.NewConfig())
	require.NoError(t, err)
	_, err = NewWriter(enc)
	require.ErrorIs(t, err, errs.ErrConfigNotSet)

	enc, err = cipher.NewEncoder(cipher.DefaultConfig().WithGroupSize(0))
	require.NoError(t, err)
	_, err = NewWriter(enc)
	require.ErrorIs(t, err, errs.ErrConfigInvalid)

	_, err = NewWriter(newEncoder(t), WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestArchive_Empty(t *testing.T) {
	for _, compression := range allCompressions {
		w, err := NewWriter(newEncoder(t), WithCompression(compression))
		require.NoError(t, err)

		data, err := w.Finish()
		require.NoError(t, err)
		require.Len(t, data, section.HeaderSize)

		r, err := NewReader(data)
		require.NoError(t, err)
		require.Equal(t, 0, r.Len())
		_, ok := r.At(0)
		require.False(t, ok)
	}
}

func TestArchive_BigEndian(t *testing.T) {
	w, err := NewWriter(newEncoder(t), WithBigEndian())
	require.NoError(t, err)
	require.NoError(t, w.Add("HELLO"))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	require.True(t, r.Header().Flag.IsBigEndian())
	require.Equal(t, "big", endian.Name(r.ByteOrder()))
	require.Equal(t, []string{"706-1113-16-"}, r.Ciphertexts())

	w, err = NewWriter(newEncoder(t), WithBigEndian(), WithLittleEndian())
	require.NoError(t, err)
	data, err = w.Finish()
	require.NoError(t, err)
	r, err = NewReader(data)
	require.NoError(t, err)
	require.True(t, r.Header().Flag.IsLittleEndian())
}

func TestArchive_FixedWidthLayout(t *testing.T) {
	enc := newEncoder(t, cipher.WithLayout(format.LayoutFixedWidth))

	w, err := NewWriter(enc)
	require.NoError(t, err)
	require.NoError(t, w.Add("ABC"))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	require.Equal(t, format.LayoutFixedWidth, r.Layout())
	require.Equal(t, []string{"15161650"}, r.Ciphertexts())
}

func TestReader_All(t *testing.T) {
	w, err := NewWriter(newEncoder(t))
	require.NoError(t, err)
	require.NoError(t, w.AddAll(context.Background(), []string{"A", "B", "C"}))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)

	var indexes []int
	var got []string
	for i, c := range r.All() {
		indexes = append(indexes, i)
		got = append(got, c)
	}
	require.Equal(t, []int{0, 1, 2}, indexes)
	require.Equal(t, r.Ciphertexts(), got)

	for range r.All() {
		break
	}

	cts := r.Ciphertexts()
	cts[0] = "mutated"
	first, _ := r.At(0)
	assert.NotEqual(t, "mutated", first)
}

func TestReader_VerifyAlphabet(t *testing.T) {
	w, err := NewWriter(newEncoder(t))
	require.NoError(t, err)
	data, err := w.Finish()
	require.NoError(t, err)

	r, err := NewReader(data)
	require.NoError(t, err)
	require.Equal(t, alphabet.LatinTable().Fingerprint(), r.Fingerprint())
	require.NoError(t, r.VerifyAlphabet(alphabet.LatinTable()))

	other, err := alphabet.FromSymbols("ZYXWVUTSRQPONMLKJIHGFEDCBA", 65)
	require.NoError(t, err)
	require.ErrorIs(t, r.VerifyAlphabet(other), errs.ErrAlphabetMismatch)
}

func TestNewReader_Corruption(t *testing.T) {
	w, err := NewWriter(newEncoder(t), WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.NoError(t, w.AddAll(context.Background(), sampleWords(20)))
	data, err := w.Finish()
	require.NoError(t, err)

	t.Run("short header", func(t *testing.T) {
		_, err := NewReader(data[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad flags", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[1] = 0x00
		_, err := NewReader(bad)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := NewReader(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrArchiveCorrupted)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0xFF
		_, err := NewReader(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("count larger than payload", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		binary.LittleEndian.PutUint32(bad[12:16], 0xFFFFFFFF)
		_, err := NewReader(bad)
		require.ErrorIs(t, err, errs.ErrArchiveCorrupted)
	})

	t.Run("count mismatch", func(t *testing.T) {
		var header section.Header
		require.NoError(t, header.Parse(data[:section.HeaderSize]))
		header.Count++

		bad := append(header.Bytes(), data[section.HeaderSize:]...)
		_, err := NewReader(bad)
		require.ErrorIs(t, err, errs.ErrArchiveCorrupted)
	})
}

func TestNewReader_CorruptedCompressedPayload(t *testing.T) {
	w, err := NewWriter(newEncoder(t), WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.NoError(t, w.AddAll(context.Background(), sampleWords(50)))
	data, err := w.Finish()
	require.NoError(t, err)

	bad := append([]byte(nil), data...)
	for i := section.HeaderSize; i < len(bad); i++ {
		bad[i] = 0xFF
	}

	_, err = NewReader(bad)
	require.Error(t, err)
	require.True(t,
		errors.Is(err, errs.ErrArchiveCorrupted) || errors.Is(err, errs.ErrChecksumMismatch),
		"unexpected error: %v", err)
}
