package waters

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	_, _, g1Gen, g2Gen = bls12381.Generators()

	// gtGen generates the order-r subgroup of GT.
	gtGen = pair(g1Gen, g2Gen)
)

// randomScalar samples a uniformly random scalar from rand. Reducing twice
// the scalar width keeps the modular bias negligible.
func randomScalar(rand io.Reader) (fr.Element, error) {
	var buf [2 * fr.Bytes]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return fr.Element{}, fmt.Errorf("waters: reading randomness: %w", err)
	}

	var s fr.Element
	s.SetBytes(buf[:])
	return s, nil
}

func randomG1(rand io.Reader) (bls12381.G1Affine, error) {
	s, err := randomScalar(rand)
	if err != nil {
		return bls12381.G1Affine{}, err
	}

	var p bls12381.G1Affine
	p.ScalarMultiplication(&g1Gen, s.BigInt(new(big.Int)))
	return p, nil
}

func randomG2(rand io.Reader) (bls12381.G2Affine, error) {
	s, err := randomScalar(rand)
	if err != nil {
		return bls12381.G2Affine{}, err
	}

	var p bls12381.G2Affine
	p.ScalarMultiplication(&g2Gen, s.BigInt(new(big.Int)))
	return p, nil
}

func randomGT(rand io.Reader) (bls12381.GT, error) {
	s, err := randomScalar(rand)
	if err != nil {
		return bls12381.GT{}, err
	}

	var e bls12381.GT
	e.Exp(gtGen, s.BigInt(new(big.Int)))
	return e, nil
}
