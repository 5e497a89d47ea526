// Package accumulate implements C5, the message accumulator: a per
// (constellation, satellite, message-kind) store of the latest decoded
// field values, merged atomically (a failed decode never partially
// overwrites state) with late writes winning ties (spec §4.4).
package accumulate

import (
	"fmt"
	"sync"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/decode"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/identify"
)

// Key identifies one accumulator bucket: a satellite within a constellation,
// narrowed to one message kind (e.g. GPS ephemeris vs GPS almanac).
type Key struct {
	GnssID    identify.GnssID
	SvID      int
	LayoutKey string
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%s", k.GnssID, k.SvID, k.LayoutKey)
}

// Store holds every accumulated bucket. The zero value is ready to use.
// Mutex-guarded rather than partitioned, since spec §5 only requires that
// external callers partition by (gnss_id, sv_id) to get parallelism; the
// store itself stays simple and correct under concurrent access.
type Store struct {
	mu      sync.Mutex
	buckets map[Key]map[string]float64 // "{tag}_{sub}_{field_name}" -> value
}

// Merge writes every field in fields into the bucket for key, tagged by fp
// (so two different subframes/words never collide on field name), with
// later calls overwriting earlier ones field-by-field. fields is assumed
// already-successful output of decode.Frame; accumulate never sees a
// partial decode (spec's atomicity requirement is enforced by the
// dispatcher only calling Merge after decode.Frame returns nil error).
func (s *Store) Merge(key Key, fp identify.Fingerprint, fields decode.Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets == nil {
		s.buckets = map[Key]map[string]float64{}
	}
	bucket, ok := s.buckets[key]
	if !ok {
		bucket = map[string]float64{}
		s.buckets[key] = bucket
	}
	for name, value := range fields {
		bucket[fieldKey(fp, name)] = value
	}
}

// Snapshot returns a defensive copy of one bucket's raw fields, keyed the
// same way Merge stored them. Returns nil, false if the bucket has never
// been written to.
func (s *Store) Snapshot(key Key) (map[string]float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, ok := s.buckets[key]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(bucket))
	for k, v := range bucket {
		out[k] = v
	}
	return out, true
}

// Keys returns every bucket key currently populated, for iteration by
// dispatch.Snapshot.
func (s *Store) Keys() []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Key, 0, len(s.buckets))
	for k := range s.buckets {
		out = append(out, k)
	}
	return out
}

// Reset clears one bucket entirely (the per-satellite reset supplemented
// feature).
func (s *Store) Reset(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
}

func fieldKey(fp identify.Fingerprint, name string) string {
	return fmt.Sprintf("%d_%d_%s", fp.Tag, fp.Sub, name)
}
