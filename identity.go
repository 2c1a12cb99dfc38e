package waters

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

// Identity is the scalar-field image of an external identity string.
//
// Together with the public key parameters generated by the PKG it forms the
// user public key. Deriving it is deterministic, so any party can compute it
// from the identity bytes alone.
type Identity struct {
	v [chunks]fr.Element
}

// DeriveIdentity hashes a byte slice to identity parameters using SHA3-512.
// The digest is split into 16 little-endian 32-bit chunks, each promoted to
// a scalar without reduction.
func DeriveIdentity(b []byte) Identity {
	digest := sha3.Sum512(b)

	var id Identity
	for i := 0; i < chunks; i++ {
		id.v[i].SetUint64(uint64(binary.LittleEndian.Uint32(digest[i*chunkBytes : (i+1)*chunkBytes])))
	}
	return id
}

// DeriveIdentityString hashes a string to identity parameters, using its raw
// UTF-8 bytes without normalization.
func DeriveIdentityString(s string) Identity {
	return DeriveIdentity([]byte(s))
}

// Equal reports whether two identities were derived from the same input.
func (id *Identity) Equal(other *Identity) bool {
	eq := true
	for i := range id.v {
		eq = id.v[i].Equal(&other.v[i]) && eq
	}
	return eq
}
