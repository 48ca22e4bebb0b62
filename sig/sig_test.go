package sig

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeEmptySignature(t *testing.T) {
	// hash=0, sig=0, sig="" -> 00 00 00 00
	d := DigitallySigned{HashAlgo: 0, SigAlgo: 0, Signature: []byte{}}
	buf, err := d.Serialize()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf)

	got, err := Deserialize(buf)
	require.NoError(t, err)
	assert.Equal(t, d.HashAlgo, got.HashAlgo)
	assert.Equal(t, d.SigAlgo, got.SigAlgo)
	assert.Empty(t, got.Signature)
}

func TestSerializeThreeByteSignature(t *testing.T) {
	// hash=4 sig=3 "ABC" -> 04 03 00 03 41 42 43
	d := DigitallySigned{HashAlgo: 4, SigAlgo: 3, Signature: []byte("ABC")}
	buf, err := d.Serialize()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x00, 0x03, 0x41, 0x42, 0x43}, buf)
}

func TestRoundTrip(t *testing.T) {
	for h := HashAlgorithm(0); h <= MaxHashAlgorithm; h++ {
		for s := SignatureAlgorithm(0); s <= MaxSignatureAlgorithm; s++ {
			d := DigitallySigned{HashAlgo: h, SigAlgo: s, Signature: []byte("payload")}
			buf, err := d.Serialize()
			require.NoError(t, err)
			got, err := Deserialize(buf)
			require.NoError(t, err)
			assert.Equal(t, d, got)
		}
	}
}

func TestEnumBoundariesRejectedOnEncode(t *testing.T) {
	_, err := DigitallySigned{HashAlgo: MaxHashAlgorithm + 1, SigAlgo: 0}.Serialize()
	assert.ErrorIs(t, err, ErrBadHashAlgorithm)

	_, err = DigitallySigned{HashAlgo: 0, SigAlgo: MaxSignatureAlgorithm + 1}.Serialize()
	assert.ErrorIs(t, err, ErrBadSignatureAlgorithm)
}

func TestEnumBoundariesRejectedOnDecode(t *testing.T) {
	// hand-craft a buffer with hash_algo = 7 (out of range)
	buf := []byte{0x07, 0x00, 0x00, 0x00}
	_, n := ReadFromString(buf)
	assert.Zero(t, n)
	_, err := Deserialize(buf)
	assert.Error(t, err)

	// sig_algo = 4 (out of range)
	buf = []byte{0x00, 0x04, 0x00, 0x00}
	_, n = ReadFromString(buf)
	assert.Zero(t, n)
}

func TestReadFromStringPrefixParseDiscipline(t *testing.T) {
	d := DigitallySigned{HashAlgo: 1, SigAlgo: 2, Signature: []byte("sig-bytes")}
	encoded, err := d.Serialize()
	require.NoError(t, err)

	suffix := []byte("trailing-garbage")
	withSuffix := append(bytes.Clone(encoded), suffix...)

	got, n := ReadFromString(withSuffix)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, d, got)

	_, err = Deserialize(withSuffix)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDeserializeShortBuffer(t *testing.T) {
	_, err := Deserialize([]byte{0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestDeserializeDeclaredLengthExceedsBuffer(t *testing.T) {
	// hash=0 sig=0 declared length 5 but only 2 bytes follow
	buf := []byte{0x00, 0x00, 0x00, 0x05, 0xaa, 0xbb}
	_, n := ReadFromString(buf)
	assert.Zero(t, n)
}

func TestTamperRejection(t *testing.T) {
	d := DigitallySigned{HashAlgo: 2, SigAlgo: 1, Signature: []byte("abcdef")}
	encoded, err := d.Serialize()
	require.NoError(t, err)

	for i := range encoded {
		tampered := bytes.Clone(encoded)
		tampered[i] ^= 0xff
		got, decErr := Deserialize(tampered)
		if decErr == nil {
			assert.NotEqual(t, d, got)
		}
	}
}
