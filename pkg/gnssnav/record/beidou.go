package record

import "github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"

// BuildBDSEphemeris assembles BeiDou D1 ephemeris from subframes 1-3 (tags
// 1-3). toe and m_zero are split across subframes 2 and 3 (cross-frame,
// unlike every other constellation's within-word splits) so they are
// recombined here rather than in decode, using the same msb<<lsbWidth|lsb
// concatenation as the other conventions (spec's worked MSB/LSB
// recombination example, where toe's 2-bit msb and 10-bit lsb are joined
// then multiplied by 2^3).
func BuildBDSEphemeris(svID int, bucket map[string]float64) (BDSEphemeris, bool) {
	var r BDSEphemeris
	r.SvID = svID
	r.GnssID = 3
	missing := false
	require(bucket, 1, 0, "aode", &r.Aode, &missing)
	require(bucket, 1, 0, "a_2", &r.A2, &missing)
	require(bucket, 1, 0, "a_0", &r.A0, &missing)
	require(bucket, 1, 0, "a_1", &r.A1, &missing)
	require(bucket, 1, 0, "t_oc", &r.Toc, &missing)
	require(bucket, 2, 0, "delta_n", &r.DeltaN, &missing)
	require(bucket, 2, 0, "cuc", &r.Cuc, &missing)
	require(bucket, 2, 0, "e", &r.E, &missing)
	require(bucket, 2, 0, "cus", &r.Cus, &missing)
	require(bucket, 2, 0, "crc", &r.Crc, &missing)
	require(bucket, 2, 0, "crs", &r.Crs, &missing)
	require(bucket, 2, 0, "sqrt_a", &r.SqrtA, &missing)
	require(bucket, 3, 0, "i_zero", &r.IZero, &missing)
	require(bucket, 3, 0, "cic", &r.Cic, &missing)
	require(bucket, 3, 0, "omega_dot", &r.OmegaDot, &missing)
	require(bucket, 3, 0, "cis", &r.Cis, &missing)
	require(bucket, 3, 0, "idot", &r.IDot, &missing)
	require(bucket, 3, 0, "omega_zero", &r.OmegaZero, &missing)
	require(bucket, 3, 0, "omega", &r.Omega, &missing)
	if missing {
		return BDSEphemeris{}, false
	}

	toeMsb, ok1 := get(bucket, 2, 0, "t_oe_msb_raw")
	toeLsb, ok2 := get(bucket, 3, 0, "t_oe_lsb_raw")
	mZeroMsb, ok3 := get(bucket, 2, 0, "m_zero_msb_raw")
	mZeroLsb, ok4 := get(bucket, 3, 0, "m_zero_lsb_raw")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return BDSEphemeris{}, false
	}
	pairs := layout.BeidouPairs()
	toeSpec := pairs["t_oe"]
	mZeroSpec := pairs["m_zero"]
	r.Toe = layout.ApplyValue(combine(uint64(toeMsb), uint64(toeLsb), 10), toeSpec.Len, toeSpec.Sign, toeSpec.Scale)
	r.MZero = layout.ApplyValue(combine(uint64(mZeroMsb), uint64(mZeroLsb), 12), mZeroSpec.Len, mZeroSpec.Sign, mZeroSpec.Scale)
	return r, true
}

func combine(msb, lsb uint64, lsbWidth int) uint64 {
	return (msb << uint(lsbWidth)) | lsb
}

// BuildBDSAlmanac assembles one almanac per page (tag 4 or 5, sub=page),
// using the expanded layout (PRN 31-63) only for pages the dispatcher
// identified as AmEpId==3 (identify.BeidouD1 already gated this at the
// layout-key level, so the bucket only ever holds the fields that apply).
func BuildBDSAlmanac(bucket map[string]float64, pages []int) []BDSAlmanac {
	var out []BDSAlmanac
	for _, tag := range []int{4, 5} {
		for _, page := range pages {
			amID, ok := get(bucket, tag, page, "am_id")
			if !ok {
				continue
			}
			var a BDSAlmanac
			a.AmID = amID
			a.GnssID = 3
			missing := false
			require(bucket, tag, page, "t_oa", &a.Toa, &missing)
			require(bucket, tag, page, "sqrt_a", &a.SqrtA, &missing)
			require(bucket, tag, page, "e", &a.E, &missing)
			require(bucket, tag, page, "omega", &a.Omega, &missing)
			require(bucket, tag, page, "delta_i", &a.DeltaI, &missing)
			require(bucket, tag, page, "omega_zero", &a.OmegaZero, &missing)
			require(bucket, tag, page, "omega_dot", &a.OmegaDot, &missing)
			require(bucket, tag, page, "m_zero", &a.MZero, &missing)
			require(bucket, tag, page, "a_zero", &a.A0, &missing)
			require(bucket, tag, page, "a_one", &a.A1, &missing)
			if missing {
				continue
			}
			if health, ok := get(bucket, tag, page, "sv_health"); ok {
				a.SvHealth = int(health)
			}
			out = append(out, a)
		}
	}
	return out
}
