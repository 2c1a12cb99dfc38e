package waters

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// PublicKey holds the parameters published by the PKG. It is required for
// encrypting messages and for extracting user secret keys.
type PublicKey struct {
	g      bls12381.G1Affine
	g1     bls12381.G1Affine
	g2     bls12381.G2Affine
	uprime bls12381.G2Affine
	u      parameters
}

// SecretKey is the PKG's master secret. It never leaves the PKG; only the
// user secret keys extracted with it do.
type SecretKey struct {
	g2prime bls12381.G2Affine
}

// UserSecretKey decrypts ciphertexts encrypted to the identity it was
// extracted for.
type UserSecretKey struct {
	d1 bls12381.G2Affine
	d2 bls12381.G1Affine
}

const (
	g1Len = bls12381.SizeOfG1AffineCompressed
	g2Len = bls12381.SizeOfG2AffineCompressed
)

// Bytes encodes the public key as g || g1 || g2 || uprime || u.
func (pk *PublicKey) Bytes() [PublicKeySize]byte {
	var res [PublicKeySize]byte
	g := pk.g.Bytes()
	g1 := pk.g1.Bytes()
	g2 := pk.g2.Bytes()
	uprime := pk.uprime.Bytes()
	u := pk.u.bytes()

	copy(res[0:], g[:])
	copy(res[g1Len:], g1[:])
	copy(res[2*g1Len:], g2[:])
	copy(res[2*g1Len+g2Len:], uprime[:])
	copy(res[2*g1Len+2*g2Len:], u[:])
	return res
}

// SetBytes decodes a public key. Every constituent point is decoded and
// validated regardless of whether an earlier one failed; on any failure the
// receiver is set to the zero value and ErrInvalidEncoding is returned.
func (pk *PublicKey) SetBytes(data []byte) error {
	if len(data) != PublicKeySize {
		*pk = PublicKey{}
		return ErrInvalidLength
	}

	var res PublicKey
	flag := decodeG1(&res.g, data[0:g1Len])
	flag &= decodeG1(&res.g1, data[g1Len:2*g1Len])
	flag &= decodeG2(&res.g2, data[2*g1Len:2*g1Len+g2Len])
	flag &= decodeG2(&res.uprime, data[2*g1Len+g2Len:2*g1Len+2*g2Len])

	u, uFlag := decodeParameters(data[2*g1Len+2*g2Len:])
	res.u = u
	flag &= uFlag

	pk.g = selectG1(flag, &bls12381.G1Affine{}, &res.g)
	pk.g1 = selectG1(flag, &bls12381.G1Affine{}, &res.g1)
	pk.g2 = selectG2(flag, &bls12381.G2Affine{}, &res.g2)
	pk.uprime = selectG2(flag, &bls12381.G2Affine{}, &res.uprime)
	pk.u = selectParameters(flag, &parameters{}, &res.u)

	if flag == 0 {
		return ErrInvalidEncoding
	}
	return nil
}

// Equal reports whether two public keys describe the same parameters.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	a, b := pk.Bytes(), other.Bytes()
	return a == b
}

// Bytes encodes the master secret as one compressed G2 point.
func (sk *SecretKey) Bytes() [SecretKeySize]byte {
	return sk.g2prime.Bytes()
}

// SetBytes decodes a master secret key. On failure the receiver is set to
// the zero value and ErrInvalidEncoding is returned.
func (sk *SecretKey) SetBytes(data []byte) error {
	if len(data) != SecretKeySize {
		*sk = SecretKey{}
		return ErrInvalidLength
	}

	if decodeG2(&sk.g2prime, data) == 0 {
		return ErrInvalidEncoding
	}
	return nil
}

// Equal compares two master secret keys in constant time.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	a, b := sk.Bytes(), other.Bytes()
	return ctEqual(a[:], b[:])
}

// Bytes encodes the user secret key as d1 || d2.
func (usk *UserSecretKey) Bytes() [UserSecretKeySize]byte {
	var res [UserSecretKeySize]byte
	d1 := usk.d1.Bytes()
	d2 := usk.d2.Bytes()
	copy(res[0:], d1[:])
	copy(res[g2Len:], d2[:])
	return res
}

// SetBytes decodes a user secret key. Both points are decoded regardless of
// individual failures; on any failure the receiver is set to the zero value
// and ErrInvalidEncoding is returned.
func (usk *UserSecretKey) SetBytes(data []byte) error {
	if len(data) != UserSecretKeySize {
		*usk = UserSecretKey{}
		return ErrInvalidLength
	}

	var res UserSecretKey
	flag := decodeG2(&res.d1, data[0:g2Len])
	flag &= decodeG1(&res.d2, data[g2Len:])

	usk.d1 = selectG2(flag, &bls12381.G2Affine{}, &res.d1)
	usk.d2 = selectG1(flag, &bls12381.G1Affine{}, &res.d2)

	if flag == 0 {
		return ErrInvalidEncoding
	}
	return nil
}

// Equal compares two user secret keys in constant time.
func (usk *UserSecretKey) Equal(other *UserSecretKey) bool {
	a, b := usk.Bytes(), other.Bytes()
	return ctEqual(a[:], b[:])
}
