package waters

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CipherText is an encrypted Message. It can only be decrypted with a user
// secret key extracted for the identity it was encrypted to.
type CipherText struct {
	c1 bls12381.GT
	c2 bls12381.G1Affine
	c3 bls12381.G2Affine
}

// Bytes encodes the ciphertext as c1 || c2 || c3, with c1 uncompressed.
func (c *CipherText) Bytes() [CipherTextSize]byte {
	var res [CipherTextSize]byte
	c1 := c.c1.Bytes()
	c2 := c.c2.Bytes()
	c3 := c.c3.Bytes()
	copy(res[0:], c1[:])
	copy(res[bls12381.SizeOfGT:], c2[:])
	copy(res[bls12381.SizeOfGT+g1Len:], c3[:])
	return res
}

// SetBytes decodes a ciphertext. All three elements are decoded regardless
// of individual failures; on any failure the receiver is set to the zero
// value and ErrInvalidEncoding is returned.
func (c *CipherText) SetBytes(data []byte) error {
	if len(data) != CipherTextSize {
		*c = CipherText{}
		return ErrInvalidLength
	}

	var res CipherText
	flag := decodeGT(&res.c1, data[0:bls12381.SizeOfGT])
	flag &= decodeG1(&res.c2, data[bls12381.SizeOfGT:bls12381.SizeOfGT+g1Len])
	flag &= decodeG2(&res.c3, data[bls12381.SizeOfGT+g1Len:])

	c.c1 = selectGT(flag, &bls12381.GT{}, &res.c1)
	c.c2 = selectG1(flag, &bls12381.G1Affine{}, &res.c2)
	c.c3 = selectG2(flag, &bls12381.G2Affine{}, &res.c3)

	if flag == 0 {
		return ErrInvalidEncoding
	}
	return nil
}

// Equal reports whether two ciphertexts are identical.
func (c *CipherText) Equal(other *CipherText) bool {
	a, b := c.Bytes(), other.Bytes()
	return a == b
}
