package cipher

import (
	"context"
	"strings"
	"testing"

	"github.com/arloliu/cesar/format"
)

var benchWord = strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 8)

func BenchmarkEncryptWord(b *testing.B) {
	cases := []struct {
		name string
		cfg  Config
		opts []EncoderOption
	}{
		{"Default", DefaultConfig(), nil},
		{"Group3", DefaultConfig().WithGroupSize(3).WithPossibilities(262626), nil},
		{"NegativeKey", DefaultConfig().WithKeyValue(-11), nil},
		{"FixedWidth", DefaultConfig().WithGroupSize(2).WithPossibilities(2526), []EncoderOption{WithLayout(format.LayoutFixedWidth)}},
	}

	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			enc, err := NewEncoder(bc.cfg, bc.opts...)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := enc.EncryptWord(benchWord); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncryptAll(b *testing.B) {
	enc, err := NewEncoder(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	words := make([]string, 1024)
	for i := range words {
		words[i] = benchWord[i%len(benchWord):]
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := EncryptAll(context.Background(), enc, words, 8); err != nil {
			b.Fatal(err)
		}
	}
}
