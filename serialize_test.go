package waters

import (
	"crypto/rand"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializationRoundTrips(t *testing.T) {
	s := newTestSuite(t)

	t.Run("PublicKey", func(t *testing.T) {
		b := s.pk.Bytes()
		var pk PublicKey
		require.NoError(t, pk.SetBytes(b[:]))
		assert.True(t, s.pk.Equal(&pk))
	})

	t.Run("SecretKey", func(t *testing.T) {
		b := s.sk.Bytes()
		var sk SecretKey
		require.NoError(t, sk.SetBytes(b[:]))
		assert.True(t, s.sk.Equal(&sk))
	})

	t.Run("UserSecretKey", func(t *testing.T) {
		b := s.usk.Bytes()
		var usk UserSecretKey
		require.NoError(t, usk.SetBytes(b[:]))
		assert.True(t, s.usk.Equal(&usk))
	})

	t.Run("CipherText", func(t *testing.T) {
		b := s.c.Bytes()
		var c CipherText
		require.NoError(t, c.SetBytes(b[:]))
		assert.True(t, s.c.Equal(&c))
	})

	t.Run("Message", func(t *testing.T) {
		b := s.m.Bytes()
		var m Message
		require.NoError(t, m.SetBytes(b[:]))
		assert.True(t, s.m.Equal(&m))
	})
}

func TestSetBytesWrongLength(t *testing.T) {
	var pk PublicKey
	assert.ErrorIs(t, pk.SetBytes(make([]byte, PublicKeySize-1)), ErrInvalidLength)
	assert.Equal(t, PublicKey{}, pk)

	var sk SecretKey
	assert.ErrorIs(t, sk.SetBytes(make([]byte, SecretKeySize+1)), ErrInvalidLength)
	assert.Equal(t, SecretKey{}, sk)

	var usk UserSecretKey
	assert.ErrorIs(t, usk.SetBytes(nil), ErrInvalidLength)
	assert.Equal(t, UserSecretKey{}, usk)

	var c CipherText
	assert.ErrorIs(t, c.SetBytes(make([]byte, CipherTextSize*2)), ErrInvalidLength)
	assert.Equal(t, CipherText{}, c)

	var m Message
	assert.ErrorIs(t, m.SetBytes(make([]byte, 0)), ErrInvalidLength)
	assert.Equal(t, Message{}, m)
}

// corrupt overwrites width bytes at offset with an encoding that can never
// decode to a group element (0xff sets an undefined compression mask, and as
// a field element exceeds the modulus).
func corrupt(buf []byte, offset, width int) {
	for i := offset; i < offset+width; i++ {
		buf[i] = 0xff
	}
}

func TestPublicKeySetBytesRejectsCorruptFields(t *testing.T) {
	s := newTestSuite(t)
	valid := s.pk.Bytes()

	fields := []struct {
		name   string
		offset int
		width  int
	}{
		{"g", 0, g1Len},
		{"g1", g1Len, g1Len},
		{"g2", 2 * g1Len, g2Len},
		{"uprime", 2*g1Len + g2Len, g2Len},
		{"u[0]", 2*g1Len + 2*g2Len, g2Len},
		{"u[15]", PublicKeySize - g2Len, g2Len},
	}

	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			buf := valid
			corrupt(buf[:], f.offset, f.width)

			var pk PublicKey
			require.ErrorIs(t, pk.SetBytes(buf[:]), ErrInvalidEncoding)
			assert.Equal(t, PublicKey{}, pk, "failed decode must not leave a partial structure")
		})
	}
}

func TestUserSecretKeySetBytesRejectsCorruptFields(t *testing.T) {
	s := newTestSuite(t)
	valid := s.usk.Bytes()

	for _, f := range []struct {
		name   string
		offset int
		width  int
	}{
		{"d1", 0, g2Len},
		{"d2", g2Len, g1Len},
	} {
		t.Run(f.name, func(t *testing.T) {
			buf := valid
			corrupt(buf[:], f.offset, f.width)

			var usk UserSecretKey
			require.ErrorIs(t, usk.SetBytes(buf[:]), ErrInvalidEncoding)
			assert.Equal(t, UserSecretKey{}, usk)
		})
	}
}

func TestCipherTextSetBytesRejectsCorruptFields(t *testing.T) {
	s := newTestSuite(t)
	valid := s.c.Bytes()

	for _, f := range []struct {
		name   string
		offset int
		width  int
	}{
		{"c1", 0, bls12381.SizeOfGT},
		{"c2", bls12381.SizeOfGT, g1Len},
		{"c3", bls12381.SizeOfGT + g1Len, g2Len},
	} {
		t.Run(f.name, func(t *testing.T) {
			buf := valid
			corrupt(buf[:], f.offset, f.width)

			var c CipherText
			require.ErrorIs(t, c.SetBytes(buf[:]), ErrInvalidEncoding)
			assert.Equal(t, CipherText{}, c)
		})
	}
}

func TestSecretKeyAndMessageRejectCorruptInput(t *testing.T) {
	s := newTestSuite(t)

	skBuf := s.sk.Bytes()
	corrupt(skBuf[:], 0, g2Len)
	var sk SecretKey
	require.ErrorIs(t, sk.SetBytes(skBuf[:]), ErrInvalidEncoding)
	assert.Equal(t, SecretKey{}, sk)

	mBuf := s.m.Bytes()
	corrupt(mBuf[:], 0, chunkBytes)
	var m Message
	require.ErrorIs(t, m.SetBytes(mBuf[:]), ErrInvalidEncoding)
	assert.Equal(t, Message{}, m)
}

func TestMessageSetBytesRejectsOutOfSubgroup(t *testing.T) {
	// The constant 2 is a canonical field element of E12 but lies outside
	// the order-r subgroup, so it survives byte-level validation and must be
	// caught by the subgroup check.
	var e bls12381.GT
	e.C0.B0.A0.SetUint64(2)
	buf := e.Bytes()

	var m Message
	require.ErrorIs(t, m.SetBytes(buf[:]), ErrInvalidEncoding)
	assert.Equal(t, Message{}, m)
}

func TestDecodedKeysStillDecrypt(t *testing.T) {
	s := newTestSuite(t)

	pkBytes := s.pk.Bytes()
	var pk PublicKey
	require.NoError(t, pk.SetBytes(pkBytes[:]))

	// A freshly extracted key from the deserialized public key must work
	// against a ciphertext from the original.
	usk, err := ExtractUSK(&pk, &s.sk, &s.id, rand.Reader)
	require.NoError(t, err)

	m := Decrypt(&usk, &s.c)
	assert.True(t, s.m.Equal(&m))
}
