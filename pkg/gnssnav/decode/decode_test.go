package decode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"
)

func TestFrameDecodesPlainFields(t *testing.T) {
	l := layout.Layout{
		"iode": {Start: 60, Len: 8, Sign: bitfield.Unsigned},
		"crs":  {Start: 68, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -5)},
	}
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 60, 8, 7)
	bitfield.SetBits(frame, 68, 16, uint64(uint16(-10))) // two's complement -10

	fields, err := Frame(frame, l, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 7, fields["iode"])
	assert.InDelta(t, -10*math.Pow(2, -5), fields["crs"], 1e-12)
}

func TestFrameRecombinesMSBLSBPair(t *testing.T) {
	l := layout.Layout{
		"m_zero_msb": {Start: 106, Len: 8, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: layout.MSB},
		"m_zero_lsb": {Start: 122, Len: 24, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: layout.LSB},
	}
	pairs := map[string]layout.Field{
		"m_zero": {Len: 32, Sign: bitfield.TwosComplement, Scale: 1},
	}
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 106, 8, 0x02)
	bitfield.SetBits(frame, 122, 24, 0x000003)

	fields, err := Frame(frame, l, pairs)
	require.NoError(t, err)
	_, hasMsb := fields["m_zero_msb"]
	_, hasLsb := fields["m_zero_lsb"]
	assert.False(t, hasMsb, "msb half must not leak into decoded output")
	assert.False(t, hasLsb, "lsb half must not leak into decoded output")
	assert.EqualValues(t, 0x02000003, fields["m_zero"])
}

func TestFrameRejectsDanglingPair(t *testing.T) {
	l := layout.Layout{
		"m_zero_msb": {Start: 106, Len: 8, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: layout.MSB},
	}
	_, err := Frame(make([]byte, 38), l, map[string]layout.Field{"m_zero": {Len: 32}})
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestFrameDecodeIsIdempotent(t *testing.T) {
	l := layout.GPSLNavSubframe2
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 60, 8, 9)

	first, err := Frame(frame, l, layout.PairsFor(layout.LNavGpsSubframe2))
	require.NoError(t, err)
	second, err := Frame(frame, l, layout.PairsFor(layout.LNavGpsSubframe2))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
