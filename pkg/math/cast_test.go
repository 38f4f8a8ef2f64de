package math_test

import (
	"math"
	"testing"

	pkgMath "github.com/javimudi/coap/pkg/math"
	"github.com/stretchr/testify/require"
)

func TestSafeCastToUint16(t *testing.T) {
	_, err := pkgMath.SafeCastTo[uint16](0)
	require.NoError(t, err)
	v, err := pkgMath.SafeCastTo[uint16](math.MaxUint16)
	require.NoError(t, err)
	require.Equal(t, uint16(math.MaxUint16), v)
	_, err = pkgMath.SafeCastTo[uint16](math.MaxUint16 + 1)
	require.ErrorIs(t, err, pkgMath.ErrOutOfRange)
	_, err = pkgMath.SafeCastTo[uint16](-1)
	require.ErrorIs(t, err, pkgMath.ErrOutOfRange)
	_, err = pkgMath.SafeCastTo[uint16](uint64(math.MaxUint64))
	require.Error(t, err)
}

func TestSafeCastToInt8(t *testing.T) {
	_, err := pkgMath.SafeCastTo[int8](uint8(math.MaxUint8))
	require.Error(t, err)
	_, err = pkgMath.SafeCastTo[int8](math.MinInt8)
	require.NoError(t, err)
	_, err = pkgMath.SafeCastTo[int8](uint64(math.MaxInt8))
	require.NoError(t, err)
	_, err = pkgMath.SafeCastTo[int8](int64(math.MaxInt64))
	require.Error(t, err)
}

func TestMustSafeCastTo(t *testing.T) {
	require.Equal(t, uint32(65804), pkgMath.MustSafeCastTo[uint32](65804))
	require.Panics(t, func() {
		pkgMath.MustSafeCastTo[uint8](256)
	})
}
