package waters

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

const (
	// Identity hashing parameters: a SHA3-512 digest split into 32-bit chunks.
	hashByteLen = 64
	chunkBytes  = 4
	chunks      = hashByteLen / chunkBytes

	// Encoded sizes of the scheme's structures, in bytes. G1 and G2 points
	// are compressed, GT elements are uncompressed.
	parametersSize = chunks * bls12381.SizeOfG2AffineCompressed

	// PublicKeySize is the encoded size of a PublicKey: g || g1 || g2 || uprime || u.
	PublicKeySize = 2*bls12381.SizeOfG1AffineCompressed + 2*bls12381.SizeOfG2AffineCompressed + parametersSize

	// SecretKeySize is the encoded size of a SecretKey: one compressed G2 point.
	SecretKeySize = bls12381.SizeOfG2AffineCompressed

	// UserSecretKeySize is the encoded size of a UserSecretKey: d1 || d2.
	UserSecretKeySize = bls12381.SizeOfG2AffineCompressed + bls12381.SizeOfG1AffineCompressed

	// CipherTextSize is the encoded size of a CipherText: c1 || c2 || c3.
	CipherTextSize = bls12381.SizeOfGT + bls12381.SizeOfG1AffineCompressed + bls12381.SizeOfG2AffineCompressed

	// MessageSize is the encoded size of a Message: one uncompressed GT element.
	MessageSize = bls12381.SizeOfGT
)
