// Package layout holds the declarative field-layout tables for every
// supported constellation and message kind (C2 of the decoder design). A
// Layout is pure data: bit offset, width, sign convention and scale factor
// per field name. Nothing in this package inspects a frame; pkg/gnssnav/decode
// does that, driven by the tables defined here.
package layout

import "github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"

// Field describes where a value lives in a frame and how to turn the raw
// bits into a physical quantity.
type Field struct {
	Start int           // bit offset from the MSB of the frame
	Len   int           // width in bits
	Sign  bitfield.Sign // Unsigned, TwosComplement or SignedMagnitude
	Scale float64       // multiplied into the signed/unsigned integer; 0 means 1 (no scaling)
	// PairWith names the combined field this half recombines into, and
	// PairRole says which half it is, mirroring the original's
	// "<n>_msb"/"<n>_lsb" naming convention. Empty/NoPair for fields that
	// decode standalone.
	PairWith string
	PairRole PairRole
}

// PairRole distinguishes the high-order half of a split field from the
// low-order half; decode collects both halves of every pair and recombines
// them after all fields have been extracted, in whatever order they came.
type PairRole int

const (
	NoPair PairRole = iota
	MSB
	LSB
)

func scaleOf(f Field) float64 {
	if f.Scale == 0 {
		return 1
	}
	return f.Scale
}

// Apply decodes a single field out of a frame, returning the raw unsigned
// bits and the scaled physical value (sign applied, then multiplied by
// Scale). Callers combine paired fields themselves; Apply only handles one
// field at a time (spec §4.1/§4.3 step 1-2).
func Apply(frame []byte, f Field) (raw uint64, value float64) {
	raw = bitfield.ExtractBits(frame, f.Start, f.Len)
	return raw, ApplyValue(raw, f.Len, f.Sign, f.Scale)
}

// ApplyValue applies sign extension and scaling to a raw bit pattern that
// has already been extracted (or recombined from an msb/lsb pair), without
// touching a frame.
func ApplyValue(raw uint64, width int, sign bitfield.Sign, scale float64) float64 {
	s := scale
	if s == 0 {
		s = 1
	}
	switch sign {
	case bitfield.TwosComplement:
		return float64(bitfield.FromTwosComplement(raw, width)) * s
	case bitfield.SignedMagnitude:
		return float64(bitfield.FromSignedMagnitude(raw, width)) * s
	default:
		return float64(raw) * s
	}
}

// Layout is a named set of fields decoded out of one frame kind. Map key is
// the field name exposed in the decoded output (spec §4.2's field_name).
type Layout map[string]Field

// Bank indexes every Layout this package knows about by a layout key, the
// string C4 (identify) resolves a frame to and C3 (decode) looks up.
type Bank map[string]Layout

// Lookup returns the layout registered under key and whether it exists.
func (b Bank) Lookup(key string) (Layout, bool) {
	l, ok := b[key]
	return l, ok
}
