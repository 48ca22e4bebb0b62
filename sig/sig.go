// Package sig implements DigitallySigned: the algorithm-tagged,
// length-prefixed signature envelope embedded in every checkpoint and
// audit proof record in this module.
package sig

import (
	"errors"

	"github.com/forestrie/ctlog/wire"
)

var (
	// ErrShortBuffer is returned when fewer than 4 bytes remain for the
	// fixed header, or fewer bytes remain than the declared signature
	// length requires.
	ErrShortBuffer = errors.New("sig: buffer too short for DigitallySigned")
	// ErrBadHashAlgorithm is returned when hash_algo is outside [0,6].
	ErrBadHashAlgorithm = errors.New("sig: hash algorithm out of range")
	// ErrBadSignatureAlgorithm is returned when sig_algo is outside [0,3].
	ErrBadSignatureAlgorithm = errors.New("sig: signature algorithm out of range")
	// ErrLengthMismatch is returned by Deserialize when ReadFromString
	// did not consume the entire buffer.
	ErrLengthMismatch = errors.New("sig: trailing bytes after DigitallySigned")
)

// HashAlgorithm identifies the digest algorithm a signature was
// computed over. Valid values are in [0,6]; the numeric meaning of
// each value is assigned by the surrounding protocol and is opaque to
// this package beyond range validation.
type HashAlgorithm uint8

const MaxHashAlgorithm HashAlgorithm = 6

// SignatureAlgorithm identifies the signature scheme. Valid values are
// in [0,3].
type SignatureAlgorithm uint8

const MaxSignatureAlgorithm SignatureAlgorithm = 3

// Valid reports whether h is one of the enumerated hash algorithms.
func (h HashAlgorithm) Valid() bool {
	return h <= MaxHashAlgorithm
}

// Valid reports whether s is one of the enumerated signature algorithms.
func (s SignatureAlgorithm) Valid() bool {
	return s <= MaxSignatureAlgorithm
}

// DigitallySigned is the tuple {hash_algo, sig_algo, signature}.
type DigitallySigned struct {
	HashAlgo  HashAlgorithm
	SigAlgo   SignatureAlgorithm
	Signature []byte
}

// Serialize encodes d as hash_algo(1) || sig_algo(1) || len(sig)(2) || sig.
// It fails loudly (a structural precondition violation, not an
// untrusted-input error) if either algorithm field is out of range or
// the signature exceeds the 2^16-1 byte length-prefix budget.
func (d DigitallySigned) Serialize() ([]byte, error) {
	if !d.HashAlgo.Valid() {
		return nil, ErrBadHashAlgorithm
	}
	if !d.SigAlgo.Valid() {
		return nil, ErrBadSignatureAlgorithm
	}
	buf := make([]byte, 4+len(d.Signature))
	wire.PutUint8(buf[0:1], uint8(d.HashAlgo))
	wire.PutUint8(buf[1:2], uint8(d.SigAlgo))
	if err := wire.PutUint16(buf[2:4], uint32(len(d.Signature))); err != nil {
		return nil, err
	}
	copy(buf[4:], d.Signature)
	return buf, nil
}

// ReadFromString attempts a prefix-parse of buf: it reads exactly the
// bytes belonging to one DigitallySigned record and reports how many
// bytes it consumed. It returns (DigitallySigned{}, 0) — not an error —
// on structural failure, matching the sentinel-return propagation
// policy used throughout this module's decoders; callers that need a
// hard error should use Deserialize.
func ReadFromString(buf []byte) (DigitallySigned, int) {
	if len(buf) < 4 {
		return DigitallySigned{}, 0
	}
	hashAlgo := HashAlgorithm(wire.Uint8(buf[0:1]))
	sigAlgo := SignatureAlgorithm(wire.Uint8(buf[1:2]))
	if !hashAlgo.Valid() || !sigAlgo.Valid() {
		return DigitallySigned{}, 0
	}
	sigLen := int(wire.Uint16(buf[2:4]))
	if len(buf) < 4+sigLen {
		return DigitallySigned{}, 0
	}
	signature := make([]byte, sigLen)
	copy(signature, buf[4:4+sigLen])
	return DigitallySigned{HashAlgo: hashAlgo, SigAlgo: sigAlgo, Signature: signature}, 4 + sigLen
}

// Deserialize is the strict form of ReadFromString: it succeeds only
// when the prefix-parse consumes the entire buffer.
func Deserialize(buf []byte) (DigitallySigned, error) {
	d, n := ReadFromString(buf)
	if n == 0 {
		if len(buf) >= 4 && !HashAlgorithm(buf[0]).Valid() {
			return DigitallySigned{}, ErrBadHashAlgorithm
		}
		if len(buf) >= 4 && !SignatureAlgorithm(buf[1]).Valid() {
			return DigitallySigned{}, ErrBadSignatureAlgorithm
		}
		return DigitallySigned{}, ErrShortBuffer
	}
	if n != len(buf) {
		return DigitallySigned{}, ErrLengthMismatch
	}
	return d, nil
}
