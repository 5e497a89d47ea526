package record

// BuildGalileoEphemeris assembles ephemeris from words 1-4 (tags 1-4), all
// required (spec's all-or-nothing ephemeris rule).
func BuildGalileoEphemeris(svID int, bucket map[string]float64) (GalileoEphemeris, bool) {
	var r GalileoEphemeris
	r.SvID = svID
	r.GnssID = 2
	missing := false
	require(bucket, 1, 0, "toe", &r.Toe, &missing)
	require(bucket, 1, 0, "m_zero", &r.MZero, &missing)
	require(bucket, 1, 0, "e", &r.E, &missing)
	require(bucket, 1, 0, "sqrt_a", &r.SqrtA, &missing)
	require(bucket, 2, 0, "omega_zero", &r.OmegaZero, &missing)
	require(bucket, 2, 0, "i_zero", &r.IZero, &missing)
	require(bucket, 2, 0, "omega", &r.Omega, &missing)
	require(bucket, 2, 0, "i_dot", &r.IDot, &missing)
	require(bucket, 3, 0, "omega_dot", &r.OmegaDot, &missing)
	require(bucket, 3, 0, "delta_n", &r.DeltaN, &missing)
	require(bucket, 3, 0, "cuc", &r.Cuc, &missing)
	require(bucket, 3, 0, "cus", &r.Cus, &missing)
	require(bucket, 3, 0, "crc", &r.Crc, &missing)
	require(bucket, 3, 0, "crs", &r.Crs, &missing)
	require(bucket, 4, 0, "cic", &r.Cic, &missing)
	require(bucket, 4, 0, "cis", &r.Cis, &missing)
	if missing {
		return GalileoEphemeris{}, false
	}
	return r, true
}

// BuildGalileoAlmanac scans words 7-10 (tags 7-10) for words sharing the
// same iod_a (Sub, stored as the middle key component), mirroring the
// original's scan for (word7,word8,word9,word10) sharing iod_a. Words 7-9
// are required; word 10 only supplies the optional E5aHS. It assembles one
// almanac per iod_a, for the satellite named by word 7's alm_sv_id; the
// other satellites a page set carries are not decoded.
func BuildGalileoAlmanac(bucket map[string]float64, iodACandidates []int) []GalileoAlmanac {
	var out []GalileoAlmanac
	for _, iodA := range iodACandidates {
		svID, ok := get(bucket, 7, iodA, "alm_sv_id")
		if !ok {
			continue
		}
		var a GalileoAlmanac
		a.SvID = int(svID)
		a.GnssID = 2
		a.IODA = float64(iodA)
		missing := false
		require(bucket, 7, iodA, "delta_sqrt_a", &a.DeltaSqrtA, &missing)
		require(bucket, 7, iodA, "e", &a.E, &missing)
		require(bucket, 7, iodA, "omega", &a.Omega, &missing)
		require(bucket, 7, iodA, "delta_i", &a.DeltaI, &missing)
		require(bucket, 7, iodA, "omega_zero", &a.OmegaZero, &missing)
		require(bucket, 8, iodA, "omega_dot", &a.OmegaDot, &missing)
		require(bucket, 8, iodA, "m_zero", &a.MZero, &missing)
		require(bucket, 8, iodA, "af_0", &a.Af0, &missing)
		require(bucket, 8, iodA, "af_1", &a.Af1, &missing)
		require(bucket, 9, iodA, "t_oa", &a.Toa, &missing)
		require(bucket, 9, iodA, "wn_a", &a.WNa, &missing)
		require(bucket, 9, iodA, "e5b_hs", &a.E5bHS, &missing)
		require(bucket, 9, iodA, "e1b_hs", &a.E1bHS, &missing)
		if missing {
			continue
		}
		if e5aHS, ok := get(bucket, 10, iodA, "e5a_hs"); ok {
			a.E5aHS = &e5aHS
		}
		out = append(out, a)
	}
	return out
}
