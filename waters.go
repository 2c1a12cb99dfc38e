// Package waters implements the Waters–Naccache identity-based encryption
// scheme on the BLS12-381 pairing-friendly elliptic curve.
//
// From "Secure and Practical Identity-Based Encryption"
// (http://eprint.iacr.org/2005/369.pdf), published in IET Information
// Security, 2007.
//
// Identities are hashed with SHA3-512. The byte serialisation of the various
// data structures is not guaranteed to remain constant between releases of
// this package. All operations run in time independent of secret values.
package waters

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Setup generates a keypair for the Private Key Generator (PKG). rand must
// be a cryptographically secure randomness source; the scheme's security
// collapses if randomness is reused across calls.
func Setup(rand io.Reader) (PublicKey, SecretKey, error) {
	g, err := randomG1(rand)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}

	alpha, err := randomScalar(rand)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	alphaInt := alpha.BigInt(new(big.Int))

	var g1 bls12381.G1Affine
	g1.ScalarMultiplication(&g, alphaInt)

	g2, err := randomG2(rand)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}

	uprime, err := randomG2(rand)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}

	var u parameters
	for i := range u {
		u[i], err = randomG2(rand)
		if err != nil {
			return PublicKey{}, SecretKey{}, err
		}
	}

	var g2prime bls12381.G2Affine
	g2prime.ScalarMultiplication(&g2, alphaInt)

	pk := PublicKey{g: g, g1: g1, g2: g2, uprime: uprime, u: u}
	sk := SecretKey{g2prime: g2prime}
	return pk, sk, nil
}

// ExtractUSK extracts a user secret key for an identity.
//
// Extraction is randomized: repeated calls for the same identity yield
// different but equally valid keys.
func ExtractUSK(pk *PublicKey, sk *SecretKey, id *Identity, rand io.Reader) (UserSecretKey, error) {
	r, err := randomScalar(rand)
	if err != nil {
		return UserSecretKey{}, err
	}

	ucoll := pk.u.fold(&pk.uprime, id)
	ucoll.ScalarMultiplication(&ucoll, r.BigInt(new(big.Int)))

	var g2prime bls12381.G2Jac
	g2prime.FromAffine(&sk.g2prime)
	ucoll.AddAssign(&g2prime)

	var d1 bls12381.G2Affine
	d1.FromJacobian(&ucoll)

	var d2 bls12381.G1Affine
	d2.ScalarMultiplication(&pk.g, r.BigInt(new(big.Int)))

	return UserSecretKey{d1: d1, d2: d2}, nil
}

// Encrypt encrypts a message to an identity using the PKG public key.
//
// Every call must draw fresh randomness from rand: reusing the ephemeral
// scalar across ciphertexts breaks the scheme, and the per-call, stateless
// contract means this cannot be enforced here.
func Encrypt(pk *PublicKey, id *Identity, m *Message, rand io.Reader) (CipherText, error) {
	t, err := randomScalar(rand)
	if err != nil {
		return CipherText{}, err
	}
	tInt := t.BigInt(new(big.Int))

	var c1 bls12381.GT
	base := pair(pk.g1, pk.g2)
	c1.Exp(base, tInt)
	c1.Mul(&c1, &m.gt)

	var c2 bls12381.G1Affine
	c2.ScalarMultiplication(&pk.g, tInt)

	c3coll := pk.u.fold(&pk.uprime, id)
	c3coll.ScalarMultiplication(&c3coll, tInt)
	var c3 bls12381.G2Affine
	c3.FromJacobian(&c3coll)

	return CipherText{c1: c1, c2: c2, c3: c3}, nil
}

// Decrypt decrypts a ciphertext to a message using a user secret key.
//
// No check is made that usk matches the identity the ciphertext was
// encrypted to; a mismatched key yields a well-defined but useless message.
func Decrypt(usk *UserSecretKey, c *CipherText) Message {
	num := pair(usk.d2, c.c3)
	dem := pair(c.c2, usk.d1)

	var m bls12381.GT
	m.Inverse(&dem)
	m.Mul(&m, &num)
	m.Mul(&m, &c.c1)

	return Message{gt: m}
}
