// Package signing implements the opaque signature-verification
// interface: verify(hash_algo, sig_algo, signature, tree_data,
// public_key) -> bool. The codec treats RSA/ECDSA as black boxes
// reached through this package; it never inspects signature bytes
// itself.
package signing

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/sha256"
	"errors"

	"github.com/forestrie/ctlog/sig"
)

var (
	// ErrUnsupportedHashAlgorithm is returned when hash_algo does not
	// map to a digest this package knows how to compute.
	ErrUnsupportedHashAlgorithm = errors.New("signing: unsupported hash algorithm")
	// ErrUnsupportedSignatureAlgorithm is returned when sig_algo does
	// not map to a verifier this package knows how to invoke.
	ErrUnsupportedSignatureAlgorithm = errors.New("signing: unsupported signature algorithm")
	// ErrKeyTypeMismatch is returned when the supplied public key's
	// concrete type does not match sig_algo.
	ErrKeyTypeMismatch = errors.New("signing: public key type does not match signature algorithm")
)

// The subset of the HashAlgorithm/SignatureAlgorithm enumeration this
// verifier implements, matching the values certificate-transparency-go's
// tls package assigns to the same concepts.
const (
	HashSHA256     sig.HashAlgorithm      = 4
	SignatureRSA   sig.SignatureAlgorithm = 1
	SignatureECDSA sig.SignatureAlgorithm = 3
)

// Verify checks that signature is a valid signature over treeData
// under publicKey, per the algorithm pair named in d. It is the
// concrete instantiation of the codec's opaque "verify" collaborator;
// the codec packages never call this directly — only collaborators
// that hold key material do.
func Verify(d sig.DigitallySigned, treeData []byte, publicKey crypto.PublicKey) (bool, error) {
	digest, err := digestFor(d.HashAlgo, treeData)
	if err != nil {
		return false, err
	}

	switch d.SigAlgo {
	case SignatureRSA:
		pub, ok := publicKey.(*rsa.PublicKey)
		if !ok {
			return false, ErrKeyTypeMismatch
		}
		err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest, d.Signature)
		return err == nil, nil
	case SignatureECDSA:
		pub, ok := publicKey.(*ecdsa.PublicKey)
		if !ok {
			return false, ErrKeyTypeMismatch
		}
		return ecdsa.VerifyASN1(pub, digest, d.Signature), nil
	default:
		return false, ErrUnsupportedSignatureAlgorithm
	}
}

func digestFor(h sig.HashAlgorithm, data []byte) ([]byte, error) {
	switch h {
	case HashSHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	default:
		return nil, ErrUnsupportedHashAlgorithm
	}
}
