package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x04, 0x03, 0x02, 0x01}},
		{"big", GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4)
			tt.engine.PutUint32(buf, 0x01020304)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(buf))
			require.Equal(t, tt.want, tt.engine.AppendUint32(nil, 0x01020304))
			require.Equal(t, tt.name, Name(tt.engine))
		})
	}
}
