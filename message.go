package waters

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Message is a point on the paired curve that can be encrypted and
// decrypted. It is opaque: use its byte encoding to derive symmetric key
// material (for example an AES key), rather than trying to embed plaintext.
type Message struct {
	gt bls12381.GT
}

// GenerateMessage samples a uniformly random message from rand, which must
// be a cryptographically secure randomness source.
func GenerateMessage(rand io.Reader) (Message, error) {
	gt, err := randomGT(rand)
	if err != nil {
		return Message{}, err
	}
	return Message{gt: gt}, nil
}

// Bytes encodes the message as one uncompressed GT element.
func (m *Message) Bytes() [MessageSize]byte {
	return m.gt.Bytes()
}

// SetBytes decodes a message, validating subgroup membership. On failure the
// receiver is set to the zero value and ErrInvalidEncoding is returned.
func (m *Message) SetBytes(data []byte) error {
	if len(data) != MessageSize {
		*m = Message{}
		return ErrInvalidLength
	}

	if decodeGT(&m.gt, data) == 0 {
		return ErrInvalidEncoding
	}
	return nil
}

// Equal compares two messages in constant time.
func (m *Message) Equal(other *Message) bool {
	a, b := m.Bytes(), other.Bytes()
	return ctEqual(a[:], b[:])
}
