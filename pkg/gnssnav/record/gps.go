package record

import "github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"

// BuildCNavGPSReducedAlmanac decodes every PRN slot packed into a message
// 12 or 31 frame directly, since the slots are a repeated run of fixed-width
// records rather than a single field decode.Frame's msb/lsb machinery
// handles. ends gives each slot's end-bit-position (layout.ReducedAlmanacEnds12
// or ReducedAlmanacEnds31).
//
// The original Python (uuid_to_payload) looked this table up by the full
// joined-PRN uuid rather than the bare message_type, which could never
// match a "message_31"-keyed table entry; this builder is keyed by
// message_type directly, a deliberate correction rather than a literal
// port.
func BuildCNavGPSReducedAlmanac(frame []byte, ends []int) []ReducedAlmanacRecord {
	var out []ReducedAlmanacRecord
	for _, end := range ends {
		start := end - layout.ReducedAlmanacRecordWidth
		if start < 0 {
			continue
		}
		slot := make([]byte, (layout.ReducedAlmanacRecordWidth+7)/8+1)
		for i := 0; i < layout.ReducedAlmanacRecordWidth; i++ {
			bit := bitAt(frame, start+i)
			byteIdx := i / 8
			bitIdx := uint(7 - i%8)
			if bit == 1 {
				slot[byteIdx] |= 1 << bitIdx
			}
		}
		fields := map[string]float64{}
		for name, f := range layout.ReducedAlmanacRecord {
			_, value := layout.Apply(slot, f)
			fields[name] = value
		}
		if fields["prn"] == 0 {
			continue // slot not assigned a PRN, nothing broadcast this cycle
		}
		out = append(out, ReducedAlmanacRecord{
			SvID:      int(fields["prn"]),
			DeltaA:    fields["delta_a"],
			OmegaDot:  fields["omega_dot"],
			OmegaZero: fields["omega_zero"],
			MZero:     fields["m_zero"],
			Omega:     fields["omega"],
			Af0:       fields["af_0"],
			SvHealth:  fields["sv_health"],
		})
	}
	return out
}

// BuildCNavGPSReducedAlmanacFromBucket reassembles reduced-almanac slots
// that the dispatcher has already decoded (via BuildCNavGPSReducedAlmanac)
// and merged into the accumulator, keyed by message_type (tag: 12 or 31)
// and target PRN (sub). Unlike the other almanac builders this never fails
// partial: a slot is present in full or not at all, since
// BuildCNavGPSReducedAlmanac only ever writes complete slots.
func BuildCNavGPSReducedAlmanacFromBucket(bucket map[string]float64, tags, svIDs []int) []ReducedAlmanacRecord {
	var out []ReducedAlmanacRecord
	for _, tag := range tags {
		for _, svID := range svIDs {
			deltaA, ok := get(bucket, tag, svID, "delta_a")
			if !ok {
				continue
			}
			r := ReducedAlmanacRecord{SvID: svID, DeltaA: deltaA}
			missing := false
			require(bucket, tag, svID, "omega_dot", &r.OmegaDot, &missing)
			require(bucket, tag, svID, "omega_zero", &r.OmegaZero, &missing)
			require(bucket, tag, svID, "m_zero", &r.MZero, &missing)
			require(bucket, tag, svID, "omega", &r.Omega, &missing)
			require(bucket, tag, svID, "af_0", &r.Af0, &missing)
			require(bucket, tag, svID, "sv_health", &r.SvHealth, &missing)
			if missing {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

func bitAt(frame []byte, pos int) byte {
	byteIdx := pos / 8
	if byteIdx >= len(frame) {
		return 0
	}
	return (frame[byteIdx] >> uint(7-pos%8)) & 1
}

// BuildGPSEphemeris assembles a GPSEphemeris from a bucket holding both
// subframe 2 (tag 2) and subframe 3 (tag 3) fields, keyed as accumulate
// stores them. All-or-nothing: any missing field leaves ok=false (spec's
// Incomplete ephemeris case, grounded on the original's "50_*"/"75_*" key
// lookups in LNavGpsMessage._build_ephemeris).
func BuildGPSEphemeris(svID int, bucket map[string]float64) (GPSEphemeris, bool) {
	var r GPSEphemeris
	r.SvID = svID
	r.GnssID = 0
	missing := false
	require(bucket, 2, 0, "iode", &r.IODE, &missing)
	require(bucket, 2, 0, "crs", &r.Crs, &missing)
	require(bucket, 2, 0, "delta_n", &r.DeltaN, &missing)
	require(bucket, 2, 0, "m_zero", &r.MZero, &missing)
	require(bucket, 2, 0, "cuc", &r.Cuc, &missing)
	require(bucket, 2, 0, "e", &r.E, &missing)
	require(bucket, 2, 0, "cus", &r.Cus, &missing)
	require(bucket, 2, 0, "sqrt_a", &r.SqrtA, &missing)
	require(bucket, 2, 0, "toe", &r.Toe, &missing)
	require(bucket, 3, 0, "cic", &r.Cic, &missing)
	require(bucket, 3, 0, "omega_zero", &r.OmegaZero, &missing)
	require(bucket, 3, 0, "cis", &r.Cis, &missing)
	require(bucket, 3, 0, "i_zero", &r.IZero, &missing)
	require(bucket, 3, 0, "crc", &r.Crc, &missing)
	require(bucket, 3, 0, "omega", &r.Omega, &missing)
	require(bucket, 3, 0, "omega_dot", &r.OmegaDot, &missing)
	require(bucket, 3, 0, "idot", &r.IDot, &missing)
	if missing {
		return GPSEphemeris{}, false
	}
	return r, true
}

// BuildGPSAlmanac assembles one GPSAlmanac per PRN slot found across
// subframe 4/5 almanac pages (tag 4 or 5, sub = page number). Unlike
// ephemeris, a slot missing a field is simply skipped rather than failing
// the whole almanac (spec's per-PRN partial-assembly rule).
func BuildGPSAlmanac(bucket map[string]float64, pages []int) []GPSAlmanac {
	var out []GPSAlmanac
	for _, tag := range []int{4, 5} {
		for _, page := range pages {
			svID, ok := get(bucket, tag, page, "sv_id")
			if !ok {
				continue
			}
			var a GPSAlmanac
			a.SvID = int(svID)
			a.GnssID = 0
			missing := false
			require(bucket, tag, page, "e", &a.E, &missing)
			require(bucket, tag, page, "toa", &a.Toa, &missing)
			require(bucket, tag, page, "delta_i", &a.DeltaI, &missing)
			require(bucket, tag, page, "omega_dot", &a.OmegaDot, &missing)
			require(bucket, tag, page, "sqrt_a", &a.SqrtA, &missing)
			require(bucket, tag, page, "omega_zero", &a.OmegaZero, &missing)
			require(bucket, tag, page, "omega", &a.Omega, &missing)
			require(bucket, tag, page, "m_zero", &a.MZero, &missing)
			require(bucket, tag, page, "af_0", &a.Af0, &missing)
			require(bucket, tag, page, "af_1", &a.Af1, &missing)
			if missing {
				continue
			}
			if health, ok := get(bucket, tag, page, "sv_health"); ok {
				_ = health // not modeled on GPSAlmanac (matches original dataclass)
			}
			out = append(out, a)
		}
	}
	return out
}

// BuildCNavGPSEphemeris cross-checks msg10 (tag 10) and msg11 (tag 11) toe
// before assembling, mirroring the original's assert that both messages
// describe the same epoch.
func BuildCNavGPSEphemeris(svID int, bucket map[string]float64) (CNavGPSEphemeris, bool) {
	toe10, ok1 := get(bucket, 10, 0, "toe")
	toe11, ok2 := get(bucket, 11, 0, "toe")
	if !ok1 || !ok2 || toe10 != toe11 {
		return CNavGPSEphemeris{}, false
	}
	var r CNavGPSEphemeris
	r.SvID = svID
	missing := false
	require(bucket, 10, 0, "wn", &r.WN, &missing)
	require(bucket, 10, 0, "ura_ed", &r.URAed, &missing)
	require(bucket, 10, 0, "sig_health_l1", &r.SigHealthL1, &missing)
	require(bucket, 10, 0, "sig_health_l2", &r.SigHealthL2, &missing)
	require(bucket, 10, 0, "sig_health_l5", &r.SigHealthL5, &missing)
	require(bucket, 10, 0, "top", &r.Top, &missing)
	require(bucket, 10, 0, "delta_a", &r.DeltaA, &missing)
	require(bucket, 10, 0, "a_dot", &r.ADot, &missing)
	require(bucket, 10, 0, "delta_n", &r.DeltaN, &missing)
	require(bucket, 10, 0, "delta_n_zero_dot", &r.DeltaNZeroDot, &missing)
	require(bucket, 10, 0, "m_zero", &r.MZero, &missing)
	require(bucket, 10, 0, "e", &r.E, &missing)
	require(bucket, 10, 0, "omega", &r.Omega, &missing)
	require(bucket, 11, 0, "omega_zero", &r.OmegaZero, &missing)
	require(bucket, 11, 0, "i_zero_dot", &r.IZeroDot, &missing)
	require(bucket, 11, 0, "i_zero", &r.IZero, &missing)
	require(bucket, 11, 0, "crs", &r.Crs, &missing)
	require(bucket, 11, 0, "cis", &r.Cis, &missing)
	require(bucket, 11, 0, "cus", &r.Cus, &missing)
	require(bucket, 11, 0, "crc", &r.Crc, &missing)
	require(bucket, 11, 0, "cic", &r.Cic, &missing)
	require(bucket, 11, 0, "cuc", &r.Cuc, &missing)
	require(bucket, 11, 0, "omega_dot", &r.OmegaDot, &missing)
	require(bucket, 11, 0, "idot", &r.IDot, &missing)
	if missing {
		return CNavGPSEphemeris{}, false
	}
	r.Toe = toe10
	return r, true
}
