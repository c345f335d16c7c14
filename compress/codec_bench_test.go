package compress

import (
	"testing"
)

func BenchmarkCodec(b *testing.B) {
	data := ciphertextPayload(4096)

	for _, ct := range allCompressions {
		codec, err := CreateCodec(ct, "payload")
		if err != nil {
			b.Fatal(err)
		}
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String()+"/Compress", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(ct.String()+"/Decompress", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
