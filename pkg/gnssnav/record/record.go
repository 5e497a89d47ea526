package record

import (
	"errors"
	"fmt"
)

// ErrIncomplete marks a record that could not be fully assembled from the
// fields accumulated so far: some required key was never decoded. Per spec
// §7 this is never surfaced as a logged error; callers see it only as a nil
// record (record, ok := Build...(); !ok).
var ErrIncomplete = errors.New("record: incomplete")

// ErrCrossCheckFailed names disagreement between two messages that describe
// the same epoch (GPS CNAV msg10/msg11 toe), the condition of the original's
// assert on t_oe equality in _build_ephemeris. No builder returns it:
// BuildCNavGPSEphemeris reports a toe mismatch only as ok=false, the same
// as an incomplete record, so callers cannot tell the two apart.
var ErrCrossCheckFailed = errors.New("record: cross-check failed")

func get(bucket map[string]float64, tag, sub int, field string) (float64, bool) {
	v, ok := bucket[fmt.Sprintf("%d_%d_%s", tag, sub, field)]
	return v, ok
}

func require(bucket map[string]float64, tag, sub int, field string, dst *float64, missing *bool) {
	v, ok := get(bucket, tag, sub, field)
	if !ok {
		*missing = true
		return
	}
	*dst = v
}
