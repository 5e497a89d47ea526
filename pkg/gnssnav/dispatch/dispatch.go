// Package dispatch implements C7: stitch raw 32-bit data words into one
// constellation-specific frame, route it through identify -> decode ->
// accumulate, and expose a lazy read path that rebuilds ephemeris/almanac
// records on demand rather than maintaining them incrementally (spec's
// Design Notes: derived caches are cheap to rebuild on every read).
package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/accumulate"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/decode"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/identify"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/record"
)

var (
	// ErrUnsupported names the condition of a (gnss_id, signal_id) pair with
	// no identification path at all (spec §7, e.g. BeiDou D2 or IRNSS/SBAS).
	// Ingest does not return it: such input is logged at Warn and Ingest
	// returns nil.
	ErrUnsupported = errors.New("dispatch: unsupported constellation or signal")
	// ErrMalformedFrame is returned when stitching or identification finds
	// the input internally inconsistent (wrong word count, GLONASS almanac
	// string with no frame_number supplied).
	ErrMalformedFrame = errors.New("dispatch: malformed frame")
	// ErrDecodingFailed wraps a failure inside decode.Frame (a dangling
	// msb/lsb pair); always reported to the caller, never silent.
	ErrDecodingFailed = errors.New("dispatch: decoding failed")
)

// Ingest is the external interface's single entry point (spec §6.1): one
// inbound navigation subframe/word group for one satellite on one signal.
type Ingest struct {
	GnssID      identify.GnssID
	SvID        int
	SignalID    int
	DataWords   []uint32
	FreqID      int // accepted but not read; Galileo stitching goes by word count alone
	FrameNumber int // required for GLONASS strings 6-15 (almanac); ignored otherwise
}

// Dispatcher owns the accumulator and the layout bank, and is the only
// exported entry point client code needs.
type Dispatcher struct {
	store accumulate.Store
	bank  layout.Bank
	log   *logrus.Logger
}

// New returns a ready-to-use Dispatcher. A nil logger falls back to
// logrus.StandardLogger(), mirroring cmd/ntrip-server's construction of a
// dedicated logger but tolerating callers who don't configure one.
func New(log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{bank: layout.Default(), log: log}
}

// Ingest stitches in.DataWords into a frame, identifies it, decodes it and
// merges the result into the accumulator. Unsupported signals and unknown
// layouts are not errors (spec §7): Ingest returns nil for both, logging at
// Warn/Debug respectively. Only a genuinely malformed frame or a decode
// failure produce a non-nil error.
func (d *Dispatcher) Ingest(in Ingest) error {
	traceID := uuid.New().String()
	fields := logrus.Fields{
		"trace_id": traceID,
		"gnss_id":  in.GnssID,
		"sv_id":    in.SvID,
	}

	if !identify.SupportedSignal(in.GnssID, in.SignalID) {
		d.log.WithFields(fields).Warn("unsupported constellation or signal")
		return nil
	}

	frame, err := stitch(in)
	if err != nil {
		d.log.WithFields(fields).WithError(err).Warn("malformed frame")
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	fp, ok, err := identifyFrame(in, frame)
	if err != nil {
		d.log.WithFields(fields).WithError(err).Warn("malformed frame")
		return fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if !ok {
		d.log.WithFields(fields).Debug("unknown layout, dropped")
		return nil
	}
	fields["layout_key"] = fp.LayoutKey
	fields["tag"] = fp.Tag

	l, ok := d.bank.Lookup(fp.LayoutKey)
	if !ok {
		d.log.WithFields(fields).Debug("unknown layout, dropped")
		return nil
	}

	decoded, err := decode.Frame(frame, l, layout.PairsFor(fp.LayoutKey))
	if err != nil {
		d.log.WithFields(fields).WithError(err).Error("decoding failed")
		return fmt.Errorf("%w: %v", ErrDecodingFailed, err)
	}

	key := accumulate.Key{GnssID: in.GnssID, SvID: in.SvID, LayoutKey: layoutGroup(fp.LayoutKey)}
	d.store.Merge(key, fp, decoded)

	// GPS CNAV msg12/31 reduced almanacs are self-contained within a single
	// frame (no sibling frame needed), so they're built straight off the raw
	// frame here and merged into the almanac bucket alongside the paged
	// L-NAV almanac, keyed by message_type (tag) and target PRN (sub).
	if fp.LayoutKey == layout.CNavGps12 || fp.LayoutKey == layout.CNavGps31 {
		ends := layout.ReducedAlmanacEnds12
		if fp.LayoutKey == layout.CNavGps31 {
			ends = layout.ReducedAlmanacEnds31
		}
		almanacKey := accumulate.Key{GnssID: in.GnssID, SvID: in.SvID, LayoutKey: "almanac"}
		for _, slot := range record.BuildCNavGPSReducedAlmanac(frame, ends) {
			slotFields := decode.Fields{
				"delta_a": slot.DeltaA, "omega_dot": slot.OmegaDot, "omega_zero": slot.OmegaZero,
				"m_zero": slot.MZero, "omega": slot.Omega, "af_0": slot.Af0, "sv_health": slot.SvHealth,
			}
			d.store.Merge(almanacKey, identify.Fingerprint{Tag: fp.Tag, Sub: slot.SvID}, slotFields)
		}
	}
	return nil
}

// Decoded returns the lazily-built record for one (gnss, sv, layout group)
// bucket: the raw accumulated fields plus whatever ephemeris/almanac the
// fields so far are sufficient to build, mirroring the original's
// decode_nav_msgs() lookup augmented with gnss_msg.ephemeris/.almanac
// (spec §4.7's decoded() -> snapshot).
func (d *Dispatcher) Decoded(gnssID identify.GnssID, svID int, layoutGroupKey string) (SatelliteRecord, bool) {
	fields, ok := d.store.Snapshot(accumulate.Key{GnssID: gnssID, SvID: svID, LayoutKey: layoutGroupKey})
	if !ok {
		return SatelliteRecord{}, false
	}
	ephemeris, almanac := buildRecords(gnssID, layoutGroupKey, svID, fields)
	return SatelliteRecord{
		GnssID: gnssID, SvID: svID, LayoutKey: layoutGroupKey,
		RawFields: fields, Ephemeris: ephemeris, Almanac: almanac,
	}, true
}

// Reset clears one (gnss, sv, layout group) bucket (the per-satellite reset
// supplemented feature).
func (d *Dispatcher) Reset(gnssID identify.GnssID, svID int, layoutGroupKey string) {
	d.store.Reset(accumulate.Key{GnssID: gnssID, SvID: svID, LayoutKey: layoutGroupKey})
}

// SatelliteRecord is one flattened row of Snapshot's output: the raw
// accumulated fields for one (gnss, sv, layout group) bucket, plus whatever
// Ephemeris (a single constellation-specific struct, or nil if incomplete)
// and Almanac (one entry per satellite slot the bucket has enough fields
// for) that bucket currently builds into.
type SatelliteRecord struct {
	GnssID    identify.GnssID
	SvID      int
	LayoutKey string
	RawFields map[string]float64
	Ephemeris any
	Almanac   []any
}

// Snapshot walks every populated bucket and returns it, ephemeris/almanac
// built lazily per bucket, the Go analogue of the original's nested
// gnss/sv/msg_type dict walk in test_ubx_nav_msg_parser.py.
func (d *Dispatcher) Snapshot() []SatelliteRecord {
	keys := d.store.Keys()
	out := make([]SatelliteRecord, 0, len(keys))
	for _, k := range keys {
		fields, ok := d.store.Snapshot(k)
		if !ok {
			continue
		}
		ephemeris, almanac := buildRecords(k.GnssID, k.LayoutKey, k.SvID, fields)
		out = append(out, SatelliteRecord{
			GnssID: k.GnssID, SvID: k.SvID, LayoutKey: k.LayoutKey,
			RawFields: fields, Ephemeris: ephemeris, Almanac: almanac,
		})
	}
	return out
}

// buildRecords invokes the one record builder (C6) that matches a bucket's
// layout group, per spec's per-constellation ephemeris/almanac build rules
// (§4.6). Unrecognized layout groups (e.g. a lone CNAV msg37 bucket with no
// almanac builder yet) build nothing, which is not an error: callers still
// get RawFields.
func buildRecords(gnssID identify.GnssID, layoutGroupKey string, svID int, fields map[string]float64) (ephemeris any, almanac []any) {
	switch layoutGroupKey {
	case "gps_lnav_ephemeris":
		if r, ok := record.BuildGPSEphemeris(svID, fields); ok {
			ephemeris = r
		}
	case "gps_cnav_ephemeris":
		if r, ok := record.BuildCNavGPSEphemeris(svID, fields); ok {
			ephemeris = r
		}
	case "gal_ephemeris":
		if r, ok := record.BuildGalileoEphemeris(svID, fields); ok {
			ephemeris = r
		}
	case "glo_ephemeris":
		if r, ok := record.BuildGlonassEphemeris(svID, fields); ok {
			ephemeris = r
		}
	case "bds_ephemeris":
		if r, ok := record.BuildBDSEphemeris(svID, fields); ok {
			ephemeris = r
		}
	case "almanac":
		subs := distinctSubs(fields)
		switch gnssID {
		case identify.GPS:
			for _, a := range record.BuildGPSAlmanac(fields, subs) {
				almanac = append(almanac, a)
			}
			for _, a := range record.BuildCNavGPSReducedAlmanacFromBucket(fields, []int{12, 31}, subs) {
				almanac = append(almanac, a)
			}
		case identify.Galileo:
			for _, a := range record.BuildGalileoAlmanac(fields, subs) {
				almanac = append(almanac, a)
			}
		case identify.GLONASS:
			for _, a := range record.BuildGlonassAlmanac(fields, subs) {
				almanac = append(almanac, a)
			}
		case identify.BeiDou:
			for _, a := range record.BuildBDSAlmanac(fields, subs) {
				almanac = append(almanac, a)
			}
		}
	}
	return ephemeris, almanac
}

// distinctSubs extracts every distinct "sub" component (almanac page,
// iod_a, GLONASS slot, reduced-almanac PRN) present across a bucket's
// "{tag}_{sub}_{field}" keys, so Snapshot/Decoded can hand each almanac
// builder the candidate list it expects without the dispatcher needing to
// track page/slot bookkeeping itself.
func distinctSubs(fields map[string]float64) []int {
	seen := map[int]bool{}
	var out []int
	for k := range fields {
		parts := strings.SplitN(k, "_", 3)
		if len(parts) < 2 {
			continue
		}
		sub, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if !seen[sub] {
			seen[sub] = true
			out = append(out, sub)
		}
	}
	sort.Ints(out)
	return out
}

// layoutGroup collapses a specific layout key (e.g. one GPS almanac page's
// key) down to the bucket family record builders read from. Ephemeris
// layouts already group at the subframe/word granularity the builders
// expect; almanac layouts across pages all merge into one "almanac" bucket
// per satellite so BuildXAlmanac can see every page it has been given.
func layoutGroup(layoutKey string) string {
	switch layoutKey {
	case layout.LNavGpsAlmanac, layout.BeidouD1Almanac, layout.BeidouD1AlmanacExt, layout.GlonassString5:
		return "almanac"
	case layout.LNavGpsSubframe2, layout.LNavGpsSubframe3:
		return "gps_lnav_ephemeris"
	case layout.CNavGps10, layout.CNavGps11:
		return "gps_cnav_ephemeris"
	case layout.INavGalWord1, layout.INavGalWord2, layout.INavGalWord3, layout.INavGalWord4:
		return "gal_ephemeris"
	case layout.INavGalWord7, layout.INavGalWord8, layout.INavGalWord9, layout.INavGalWord10:
		return "almanac"
	case layout.GlonassString1, layout.GlonassString2, layout.GlonassString3, layout.GlonassString4:
		return "glo_ephemeris"
	case layout.BeidouD1Subframe1, layout.BeidouD1Subframe2, layout.BeidouD1Subframe3:
		return "bds_ephemeris"
	default:
		return layoutKey
	}
}

func identifyFrame(in Ingest, frame []byte) (identifyFingerprint, bool, error) {
	switch in.GnssID {
	case identify.GPS:
		if in.SignalID == cnavSignalID {
			fp, ok, err := identify.GPSCNav(frame)
			return fp, ok, err
		}
		return identify.GPSLNav(frame, in.SvID)
	case identify.Galileo:
		return identify.GalileoINav(frame)
	case identify.GLONASS:
		return identify.GlonassString(frame, in.FrameNumber)
	case identify.BeiDou:
		return identify.BeidouD1(frame, in.SvID)
	default:
		return identifyFingerprint{}, false, nil
	}
}

type identifyFingerprint = identify.Fingerprint

// cnavSignalID is the ublox signal_id value identifying GPS L2C/L5 CNAV
// broadcasts, distinguishing them from L1 C/A L-NAV on the same PRN.
const cnavSignalID = 3
