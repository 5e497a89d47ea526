package bitfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSignedMagnitude(t *testing.T) {
	// 16-bit GLONASS signed-magnitude field, raw bits 0x8001: top bit (sign)
	// is 1 -> positive per spec convention (0-sign = negative, 1-sign =
	// positive), magnitude is 0x0001 = 1.
	got := FromSignedMagnitude(0x8001, 16)
	assert.EqualValues(t, 1, got)

	// Flip the sign bit: 0x0001 -> sign 0 -> negative.
	got = FromSignedMagnitude(0x0001, 16)
	assert.EqualValues(t, -1, got)
}

func TestFromTwosComplement(t *testing.T) {
	// Same raw bits (0x8001) interpreted as two's complement must differ
	// from the signed-magnitude interpretation.
	got := FromTwosComplement(0x8001, 16)
	assert.EqualValues(t, -32767, got)
}

func TestAppendMSBLSB(t *testing.T) {
	// msb.len=8, lsb.len=14; msb raw = 0b00000010, lsb raw = 0b00000000000011
	msb := uint64(0b00000010)
	lsb := uint64(0b00000000000011)
	combined := Append(msb, lsb, 14)
	assert.EqualValues(t, 0b00000010_00000000000011, combined)

	scale := math.Pow(2, -19)
	value := float64(FromTwosComplement(combined, 22)) * scale
	assert.InDelta(t, float64(32771)*scale, value, 1e-12)
}

func TestExtractBitsRoundTripsWithSetBits(t *testing.T) {
	frame := make([]byte, 38) // 300 bits
	SetBits(frame, 50, 3, 0b010)
	got := ExtractBits(frame, 50, 3)
	assert.EqualValues(t, 0b010, got)

	SetBits(frame, 63, 6, 57)
	assert.EqualValues(t, 57, ExtractBits(frame, 63, 6))
}

func TestPackBitsExtractBitsInverse(t *testing.T) {
	packed := PackBits(0b101101, 6)
	assert.EqualValues(t, 0b101101, ExtractBits(packed, 0, 6))
}

func TestExtractBeyondBufferTreatedAsZero(t *testing.T) {
	frame := make([]byte, 1)
	assert.EqualValues(t, 0, ExtractBits(frame, 4, 8))
}
