package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutString(t *testing.T) {
	require.Equal(t, "Delimited", LayoutDelimited.String())
	require.Equal(t, "FixedWidth", LayoutFixedWidth.String())
	require.Equal(t, "Unknown", Layout(0xFF).String())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name   string
		want   Layout
		wantOK bool
	}{
		{"delimited", LayoutDelimited, true},
		{"fixed", LayoutFixedWidth, true},
		{"fixed-width", LayoutFixedWidth, true},
		{"columnar", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLayout(tt.name)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseCompression(t *testing.T) {
	got, ok := ParseCompression("")
	require.True(t, ok)
	require.Equal(t, CompressionNone, got)

	got, ok = ParseCompression("lz4")
	require.True(t, ok)
	require.Equal(t, CompressionLZ4, got)

	_, ok = ParseCompression("brotli")
	require.False(t, ok)
}
