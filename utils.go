package waters

import (
	"crypto/subtle"
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

var (
	// ErrInvalidLength is returned by SetBytes when the input is not exactly
	// the encoded size of the structure.
	ErrInvalidLength = errors.New("waters: invalid encoding length")

	// ErrInvalidEncoding is returned by SetBytes when one or more group
	// elements in the input do not decode to valid members of their group.
	// It carries no information about which element failed.
	ErrInvalidEncoding = errors.New("waters: invalid group element encoding")
)

// pair evaluates the bilinear pairing e(p, q). bls12381.Pair only fails on
// mismatched slice lengths, which cannot happen here.
func pair(p bls12381.G1Affine, q bls12381.G2Affine) bls12381.GT {
	gt, _ := bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
	return gt
}

// ================================================================
// Validity flags
//
// Decoding combines per-element flags with & instead of returning on the
// first failure, so the time spent decoding does not depend on which
// element (if any) was malformed.

func validFlag(err error) int {
	if err != nil {
		return 0
	}
	return 1
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ================================================================
// Constant-time selection
//
// Composed coefficient-wise from the field element Select primitive so that
// no branch is taken on the flag. Each select* returns a if flag == 0 and b
// otherwise, matching fp.Element.Select.

func selectG1(flag int, a, b *bls12381.G1Affine) bls12381.G1Affine {
	var p bls12381.G1Affine
	p.X.Select(flag, &a.X, &b.X)
	p.Y.Select(flag, &a.Y, &b.Y)
	return p
}

func selectG2(flag int, a, b *bls12381.G2Affine) bls12381.G2Affine {
	var p bls12381.G2Affine
	p.X.A0.Select(flag, &a.X.A0, &b.X.A0)
	p.X.A1.Select(flag, &a.X.A1, &b.X.A1)
	p.Y.A0.Select(flag, &a.Y.A0, &b.Y.A0)
	p.Y.A1.Select(flag, &a.Y.A1, &b.Y.A1)
	return p
}

func selectGT(flag int, a, b *bls12381.GT) bls12381.GT {
	var e bls12381.GT
	e.C0.B0.A0.Select(flag, &a.C0.B0.A0, &b.C0.B0.A0)
	e.C0.B0.A1.Select(flag, &a.C0.B0.A1, &b.C0.B0.A1)
	e.C0.B1.A0.Select(flag, &a.C0.B1.A0, &b.C0.B1.A0)
	e.C0.B1.A1.Select(flag, &a.C0.B1.A1, &b.C0.B1.A1)
	e.C0.B2.A0.Select(flag, &a.C0.B2.A0, &b.C0.B2.A0)
	e.C0.B2.A1.Select(flag, &a.C0.B2.A1, &b.C0.B2.A1)
	e.C1.B0.A0.Select(flag, &a.C1.B0.A0, &b.C1.B0.A0)
	e.C1.B0.A1.Select(flag, &a.C1.B0.A1, &b.C1.B0.A1)
	e.C1.B1.A0.Select(flag, &a.C1.B1.A0, &b.C1.B1.A0)
	e.C1.B1.A1.Select(flag, &a.C1.B1.A1, &b.C1.B1.A1)
	e.C1.B2.A0.Select(flag, &a.C1.B2.A0, &b.C1.B2.A0)
	e.C1.B2.A1.Select(flag, &a.C1.B2.A1, &b.C1.B2.A1)
	return e
}

// ================================================================
// Element decoding
//
// Each decode* validates the encoding (on-curve, correct subgroup,
// canonical field representation), writes either the decoded element or the
// zero value through constant-time selection, and returns the validity flag.

func decodeG1(p *bls12381.G1Affine, data []byte) int {
	var q bls12381.G1Affine
	_, err := q.SetBytes(data)
	flag := validFlag(err)
	*p = selectG1(flag, &bls12381.G1Affine{}, &q)
	return flag
}

func decodeG2(p *bls12381.G2Affine, data []byte) int {
	var q bls12381.G2Affine
	_, err := q.SetBytes(data)
	flag := validFlag(err)
	*p = selectG2(flag, &bls12381.G2Affine{}, &q)
	return flag
}

func decodeGT(e *bls12381.GT, data []byte) int {
	var q bls12381.GT
	err := q.SetBytes(data)
	flag := validFlag(err)
	flag &= boolFlag(q.IsInSubGroup())
	*e = selectGT(flag, &bls12381.GT{}, &q)
	return flag
}

// ctEqual compares two encodings in constant time.
func ctEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
