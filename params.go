package waters

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// parameters is the fixed-size vector of G2 points published by the PKG,
// one per identity chunk.
type parameters [chunks]bls12381.G2Affine

func (u *parameters) bytes() [parametersSize]byte {
	var res [parametersSize]byte
	for i := range u {
		b := u[i].Bytes()
		copy(res[i*bls12381.SizeOfG2AffineCompressed:], b[:])
	}
	return res
}

// decodeParameters decodes all chunk points regardless of intermediate
// failures and returns the combined validity flag. On failure the result is
// the zero vector, selected without branching on the flag.
func decodeParameters(data []byte) (parameters, int) {
	var res parameters
	flag := 1
	for i := range res {
		flag &= decodeG2(&res[i], data[i*bls12381.SizeOfG2AffineCompressed:(i+1)*bls12381.SizeOfG2AffineCompressed])
	}
	res = selectParameters(flag, &parameters{}, &res)
	return res, flag
}

// selectParameters returns a if flag == 0 and b otherwise, composing the
// point-level constant-time selection element-wise.
func selectParameters(flag int, a, b *parameters) parameters {
	var res parameters
	for i := range res {
		res[i] = selectG2(flag, &a[i], &b[i])
	}
	return res
}

// fold accumulates uprime + sum(u[i] * id[i]) over all identity chunks.
//
// Extraction and encryption perform this exact accumulation on the same
// inputs; the scheme is only correct when both sides compute it identically,
// so it lives here rather than at either call site.
func (u *parameters) fold(uprime *bls12381.G2Affine, id *Identity) bls12381.G2Jac {
	var acc bls12381.G2Jac
	acc.FromAffine(uprime)

	for i := range u {
		var term bls12381.G2Jac
		term.FromAffine(&u[i])
		term.ScalarMultiplication(&term, id.v[i].BigInt(new(big.Int)))
		acc.AddAssign(&term)
	}
	return acc
}
