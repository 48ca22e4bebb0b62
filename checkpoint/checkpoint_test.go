package checkpoint

import (
	"bytes"
	"testing"

	"github.com/forestrie/ctlog/sig"
	"github.com/forestrie/ctlog/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroRoot() [wire.HashSize]byte {
	return [wire.HashSize]byte{}
}

func TestLogSegmentCheckpointRoundTrip(t *testing.T) {
	c := LogSegmentCheckpoint{
		SequenceNumber: 7,
		SegmentSize:    128,
		Signature:      sig.DigitallySigned{HashAlgo: 1, SigAlgo: 2, Signature: []byte("sig")},
		Root:           zeroRoot(),
	}
	buf, err := c.Serialize()
	require.NoError(t, err)
	got, err := DeserializeLogSegmentCheckpoint(buf)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLogSegmentCheckpointTreeData(t *testing.T) {
	c := LogSegmentCheckpoint{SequenceNumber: 1, SegmentSize: 2, Root: zeroRoot()}
	td := c.SerializeTreeData()
	assert.Equal(t, uint8(LogSegmentTree), td[0])
	assert.Len(t, td, 1+4+4+32)
}

func TestLogSegmentCheckpointShortBuffer(t *testing.T) {
	_, err := DeserializeLogSegmentCheckpoint(make([]byte, 7))
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestLogSegmentCheckpointBadRootLength(t *testing.T) {
	d := sig.DigitallySigned{HashAlgo: 0, SigAlgo: 0}
	sigBytes, err := d.Serialize()
	require.NoError(t, err)

	buf := make([]byte, 8+len(sigBytes)+31) // one byte short of a valid root
	wire.PutUint32(buf[0:4], 1)
	wire.PutUint32(buf[4:8], 2)
	copy(buf[8:], sigBytes)

	_, err = DeserializeLogSegmentCheckpoint(buf)
	assert.ErrorIs(t, err, ErrBadRoot)
}

func TestLogHeadCheckpointEmptySigAndZeroRoot(t *testing.T) {
	// seq=7, sig=empty (hash=1,sig=1), root=32x00 -> 00 00 00 07 01 01
	// 00 00 followed by 32 zero bytes (44 bytes total).
	c := LogHeadCheckpoint{
		SequenceNumber: 7,
		Signature:      sig.DigitallySigned{HashAlgo: 1, SigAlgo: 1, Signature: []byte{}},
		Root:           zeroRoot(),
	}
	buf, err := c.Serialize()
	require.NoError(t, err)

	want := append([]byte{0x00, 0x00, 0x00, 0x07, 0x01, 0x01, 0x00, 0x00}, make([]byte, 32)...)
	assert.Equal(t, want, buf)
	assert.Len(t, buf, 44)

	got, err := DeserializeLogHeadCheckpoint(buf)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLogHeadCheckpointTreeData(t *testing.T) {
	c := LogHeadCheckpoint{SequenceNumber: 3, Root: zeroRoot()}
	td := c.SerializeTreeData()
	assert.Equal(t, uint8(SegmentInfoTree), td[0])
	assert.Len(t, td, 1+4+32)
}

func TestLogHeadCheckpointTamperRejection(t *testing.T) {
	c := LogHeadCheckpoint{
		SequenceNumber: 42,
		Signature:      sig.DigitallySigned{HashAlgo: 2, SigAlgo: 1, Signature: []byte("xyz")},
		Root:           zeroRoot(),
	}
	encoded, err := c.Serialize()
	require.NoError(t, err)

	for i := range encoded {
		tampered := bytes.Clone(encoded)
		tampered[i] ^= 0xff
		got, decErr := DeserializeLogHeadCheckpoint(tampered)
		if decErr == nil {
			assert.NotEqual(t, c, got)
		}
	}
}
