// Package decode implements C3, the frame decoder: given a frame and the
// layout it was identified as, extract every field and recombine any
// MSB/LSB-split fields. Packed substructures are not decoded here. It
// never inspects gnss_id or satellite identity; that's identify's job.
package decode

import (
	"errors"
	"fmt"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"
)

// ErrMalformedFrame is returned when a layout references a pair that never
// completes (an msb field with no matching lsb, or vice versa) — the frame
// decoder's only failure mode, since extraction itself can't fail on a
// correctly-sized frame.
var ErrMalformedFrame = errors.New("decode: malformed frame")

// Fields maps a decoded field name to its scaled physical value. No
// "_msb"/"_lsb" keys ever appear here: they're consumed during recombination
// (spec §4.3 step 2-3).
type Fields map[string]float64

// Frame decodes every field in l out of raw, resolving split fields via
// pairs (the combined-width/sign/scale table for this layout, from
// layout.PairsFor). pairs may be nil when the layout has no split fields.
func Frame(raw []byte, l layout.Layout, pairs map[string]layout.Field) (Fields, error) {
	out := make(Fields, len(l))
	type half struct {
		raw   uint64
		width int
		seen  bool
	}
	msbs := map[string]half{}
	lsbs := map[string]half{}

	for name, f := range l {
		rawVal, value := layout.Apply(raw, f)
		switch f.PairRole {
		case layout.MSB:
			msbs[f.PairWith] = half{raw: rawVal, width: f.Len, seen: true}
		case layout.LSB:
			lsbs[f.PairWith] = half{raw: rawVal, width: f.Len, seen: true}
		default:
			out[name] = value
		}
	}

	pairNames := map[string]bool{}
	for name := range msbs {
		pairNames[name] = true
	}
	for name := range lsbs {
		pairNames[name] = true
	}
	for name := range pairNames {
		msb, ok := msbs[name]
		if !ok {
			return nil, fmt.Errorf("%w: field %q has lsb with no msb", ErrMalformedFrame, name)
		}
		lsb, ok := lsbs[name]
		if !ok {
			return nil, fmt.Errorf("%w: field %q has msb with no lsb", ErrMalformedFrame, name)
		}
		combined, err := recombine(name, msb.raw, lsb.raw, lsb.width, pairs)
		if err != nil {
			return nil, err
		}
		out[name] = combined
	}

	return out, nil
}

func recombine(name string, msb, lsb uint64, lsbWidth int, pairs map[string]layout.Field) (float64, error) {
	spec, ok := pairs[name]
	if !ok {
		return 0, fmt.Errorf("%w: no pair table entry for %q", ErrMalformedFrame, name)
	}
	combined := (msb << uint(lsbWidth)) | lsb
	return layout.ApplyValue(combined, spec.Len, spec.Sign, spec.Scale), nil
}
