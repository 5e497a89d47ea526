package record

// BuildGlonassEphemeris assembles ephemeris from strings 1-4 (tags 1-4),
// all required.
func BuildGlonassEphemeris(svID int, bucket map[string]float64) (GlonassEphemeris, bool) {
	var r GlonassEphemeris
	r.SvID = svID
	r.GnssID = 6
	missing := false
	require(bucket, 1, 0, "t_k_hour", &r.TkHour, &missing)
	require(bucket, 1, 0, "t_k_min", &r.TkMin, &missing)
	require(bucket, 1, 0, "t_k_sec", &r.TkSec, &missing)
	require(bucket, 1, 0, "x_dot_n", &r.XDotN, &missing)
	require(bucket, 1, 0, "x_dot_dot_n", &r.XDotDotN, &missing)
	require(bucket, 1, 0, "x_n", &r.Xn, &missing)
	require(bucket, 2, 0, "b_n", &r.Bn, &missing)
	require(bucket, 2, 0, "t_b", &r.Tb, &missing)
	require(bucket, 2, 0, "y_dot_n", &r.YDotN, &missing)
	require(bucket, 2, 0, "y_dot_dot_n", &r.YDotDotN, &missing)
	require(bucket, 2, 0, "y_n", &r.Yn, &missing)
	require(bucket, 3, 0, "gamma_n", &r.GammaN, &missing)
	require(bucket, 3, 0, "p", &r.P, &missing)
	require(bucket, 3, 0, "l_3rd_n", &r.L3rdN, &missing)
	require(bucket, 3, 0, "z_dot_n", &r.ZDotN, &missing)
	require(bucket, 3, 0, "z_dot_dot_n", &r.ZDotDotN, &missing)
	require(bucket, 3, 0, "z_n", &r.Zn, &missing)
	require(bucket, 4, 0, "tau_n", &r.TauN, &missing)
	require(bucket, 4, 0, "delta_tau_n", &r.DeltaTauN, &missing)
	require(bucket, 4, 0, "e_n", &r.En, &missing)
	require(bucket, 4, 0, "f_t", &r.Ft, &missing)
	require(bucket, 4, 0, "n_t", &r.Nt, &missing)
	require(bucket, 4, 0, "n", &r.N, &missing)
	if p1, ok := get(bucket, 1, 0, "p1"); ok {
		r.P1 = p1
	}
	if p2, ok := get(bucket, 2, 0, "p2"); ok {
		r.P2 = p2
	}
	if p3, ok := get(bucket, 3, 0, "p3"); ok {
		r.P3 = p3
	}
	if p4, ok := get(bucket, 4, 0, "p4"); ok {
		r.P4 = p4
	}
	if missing {
		return GlonassEphemeris{}, false
	}
	return r, true
}

// BuildGlonassAlmanac assembles one almanac per (frame,string) slot
// (tag 5, sub=slot), iterating the slots the dispatcher has actually seen.
func BuildGlonassAlmanac(bucket map[string]float64, slots []int) []GlonassAlmanac {
	var out []GlonassAlmanac
	for _, slot := range slots {
		na, ok := get(bucket, 5, slot, "n_a")
		if !ok {
			continue
		}
		var a GlonassAlmanac
		a.Na = na
		a.GnssID = 6
		missing := false
		require(bucket, 5, slot, "h_n_a", &a.HnA, &missing)
		require(bucket, 5, slot, "lambda_n_a", &a.LambdaNa, &missing)
		require(bucket, 5, slot, "t_lambda_n_a", &a.TLambdaNa, &missing)
		require(bucket, 5, slot, "delta_i_n_a", &a.DeltaINa, &missing)
		require(bucket, 5, slot, "delta_t_n_a", &a.DeltaTNa, &missing)
		require(bucket, 5, slot, "delta_t_dot_n_a", &a.DeltaTDotNa, &missing)
		require(bucket, 5, slot, "epsilon_n_a", &a.EpsilonNa, &missing)
		require(bucket, 5, slot, "omega_n_a", &a.OmegaNa, &missing)
		require(bucket, 5, slot, "m_n_a", &a.MNa, &missing)
		require(bucket, 5, slot, "tau_n_a", &a.TauNa, &missing)
		require(bucket, 5, slot, "c_n_a", &a.CNa, &missing)
		if missing {
			continue
		}
		a.SvID = int(na)
		out = append(out, a)
	}
	return out
}
