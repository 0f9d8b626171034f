package parcel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/parcel"
)

func TestParcel_WriteRead(t *testing.T) {
	t.Run("reads back primitives in order", func(t *testing.T) {
		p := parcel.New()
		p.WriteInt32(-7)
		p.WriteInt64(math.MaxInt64)
		p.WriteFloat32(1.25)
		p.WriteFloat64(-2.5)

		assert.Equal(t, 24, p.Len())
		require.NoError(t, p.SetPosition(0))

		i32, err := p.ReadInt32()
		require.NoError(t, err)
		assert.Equal(t, int32(-7), i32)

		i64, err := p.ReadInt64()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), i64)

		f32, err := p.ReadFloat32()
		require.NoError(t, err)
		assert.Equal(t, float32(1.25), f32)

		f64, err := p.ReadFloat64()
		require.NoError(t, err)
		assert.Equal(t, -2.5, f64)

		assert.Equal(t, 0, p.Remaining())
	})

	t.Run("encodes little endian", func(t *testing.T) {
		p := parcel.New()
		p.WriteInt32(0x01020304)

		assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, p.Bytes())
	})

	t.Run("overwrites at a rewound position", func(t *testing.T) {
		p := parcel.New()
		p.WriteInt32(0)
		p.WriteInt32(5)

		require.NoError(t, p.SetPosition(0))
		p.WriteInt32(9)
		assert.Equal(t, 8, p.Len())

		require.NoError(t, p.SetPosition(0))
		v, err := p.ReadInt32()
		require.NoError(t, err)
		assert.Equal(t, int32(9), v)
	})

	t.Run("preserves float bit patterns", func(t *testing.T) {
		nan := math.Float64frombits(0x7ff0000000000001)
		p := parcel.New()
		p.WriteFloat64(nan)
		p.WriteFloat64(math.Copysign(0, -1))

		require.NoError(t, p.SetPosition(0))
		a, err := p.ReadFloat64()
		require.NoError(t, err)
		b, err := p.ReadFloat64()
		require.NoError(t, err)

		assert.Equal(t, uint64(0x7ff0000000000001), math.Float64bits(a))
		assert.True(t, math.Signbit(b))
	})
}

func TestParcel_Errors(t *testing.T) {
	t.Run("returns ErrTruncated on short read", func(t *testing.T) {
		p := parcel.FromBytes([]byte{1, 2, 3})

		_, err := p.ReadInt32()
		assert.ErrorIs(t, err, parcel.ErrTruncated)
		assert.Equal(t, 0, p.Position())
	})

	t.Run("rejects position outside the buffer", func(t *testing.T) {
		p := parcel.FromBytes(make([]byte, 4))

		assert.ErrorIs(t, p.SetPosition(5), parcel.ErrInvalidPosition)
		assert.ErrorIs(t, p.SetPosition(-1), parcel.ErrInvalidPosition)
		assert.NoError(t, p.SetPosition(4))
	})
}
