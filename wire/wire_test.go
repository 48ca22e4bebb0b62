package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint16RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	require.NoError(t, PutUint16(buf, 0x0003))
	assert.Equal(t, []byte{0x00, 0x03}, buf)
	assert.Equal(t, uint32(0x0003), Uint16(buf))
}

func TestUint16TooLarge(t *testing.T) {
	buf := make([]byte, 2)
	assert.ErrorIs(t, PutUint16(buf, 0x10000), ErrValueTooLarge)
}

func TestUint32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	assert.Equal(t, uint32(0x01020304), Uint32(buf))
}

func TestCopyHash(t *testing.T) {
	h := make([]byte, 32)
	for i := range h {
		h[i] = byte(i)
	}
	out, err := CopyHash(h)
	require.NoError(t, err)
	assert.Equal(t, h, out[:])

	// mutating the source must not affect the copy
	h[0] = 0xff
	assert.NotEqual(t, h[0], out[0])
}

func TestCopyHashWrongSize(t *testing.T) {
	_, err := CopyHash(make([]byte, 31))
	assert.ErrorIs(t, err, ErrShortBuffer)
}
