// Package record implements C6: building ephemeris and almanac records out
// of accumulated fields. Ephemeris assembly is all-or-nothing (a missing
// key leaves the whole record Incomplete, per spec §4.5/§7); almanac
// assembly is per-PRN-slot partial, skipping only the slots missing data.
package record

// BaseEphemeris mirrors original_source's BaseEphemeris dataclass.
type BaseEphemeris struct {
	SvID   int
	GnssID int
}

// BaseAlmanac mirrors original_source's BaseAlmanac dataclass.
type BaseAlmanac struct {
	SvID     int
	SvHealth int
	GnssID   int
}

// GPSEphemeris mirrors the original's LNavGpsEphemeris (GpsEphemeris plus
// the L-NAV-specific fields): iode, sqrt_a, omega_dot, idot live only on
// the L-NAV variant, not the shared GpsEphemeris base, matching the
// original's subclassing.
type GPSEphemeris struct {
	BaseEphemeris
	DeltaN    float64
	MZero     float64
	Crs       float64
	Cuc       float64
	E         float64
	Cus       float64
	Toe       float64
	Cic       float64
	OmegaZero float64
	Cis       float64
	IZero     float64
	Crc       float64
	Omega     float64
	IODE      float64
	SqrtA     float64
	OmegaDot  float64
	IDot      float64
}

// CNavGPSEphemeris mirrors the original's CNavGpsEphemeris.
type CNavGPSEphemeris struct {
	BaseEphemeris
	DeltaN         float64
	MZero          float64
	Crs            float64
	Cuc            float64
	E              float64
	Cus            float64
	Toe            float64
	Cic            float64
	OmegaZero      float64
	Cis            float64
	IZero          float64
	Crc            float64
	Omega          float64
	DeltaOmegaDot  float64
	IZeroDot       float64
	WN             float64
	URAed          float64
	SigHealthL1    float64
	SigHealthL2    float64
	SigHealthL5    float64
	Top            float64
	DeltaA         float64
	ADot           float64
	DeltaNZeroDot  float64
	OmegaDot       float64
	IDot           float64
}

// ReducedAlmanacRecord is one PRN slot of a GPS CNAV message 12/31 packed
// almanac (spec's reduced/MIDI almanac, msg type carried separately since
// several slots share one message).
type ReducedAlmanacRecord struct {
	SvID      int
	DeltaA    float64
	OmegaDot  float64
	OmegaZero float64
	MZero     float64
	Omega     float64
	Af0       float64
	SvHealth  float64
}

// GPSAlmanac mirrors the original's GpsAlmanac.
type GPSAlmanac struct {
	BaseAlmanac
	E         float64
	Toa       float64
	DeltaI    float64
	OmegaDot  float64
	SqrtA     float64
	OmegaZero float64
	Omega     float64
	MZero     float64
	Af0       float64
	Af1       float64
}

// GalileoEphemeris mirrors the original's GalileoEphemeris.
type GalileoEphemeris struct {
	BaseEphemeris
	MZero     float64
	DeltaN    float64
	E         float64
	SqrtA     float64
	OmegaZero float64
	IZero     float64
	Omega     float64
	OmegaDot  float64
	IDot      float64
	Cuc       float64
	Cus       float64
	Crc       float64
	Crs       float64
	Cic       float64
	Cis       float64
	Toe       float64
}

// GalileoAlmanac mirrors the original's GalileoAlmanac.
type GalileoAlmanac struct {
	BaseAlmanac
	DeltaSqrtA float64
	E          float64
	DeltaI     float64
	OmegaZero  float64
	OmegaDot   float64
	Omega      float64
	MZero      float64
	Af0        float64
	Af1        float64
	IODA       float64
	Toa        float64
	WNa        float64
	E5bHS      float64
	E1bHS      float64
	E5aHS      *float64
}

// GlonassEphemeris mirrors the original's GlonassEphemeris (a much larger
// field set than the other constellations, since GLONASS broadcasts
// Cartesian state vectors rather than Keplerian elements).
type GlonassEphemeris struct {
	BaseEphemeris
	StringNumber float64
	TkHour       float64
	TkMin        float64
	TkSec        float64
	Tb           float64
	M            float64
	GammaN       float64
	TauN         float64
	Xn           float64
	Yn           float64
	Zn           float64
	XDotN        float64
	YDotN        float64
	ZDotN        float64
	XDotDotN     float64
	YDotDotN     float64
	ZDotDotN     float64
	Bn           float64
	P            float64
	Nt           float64
	Ft           float64
	N            float64
	DeltaTauN    float64
	En           float64
	P1           float64
	P2           float64
	P3           float64
	P4           float64
	L3rdN        float64
}

// GlonassAlmanac mirrors the original's GlonassAlmanac.
type GlonassAlmanac struct {
	BaseAlmanac
	Na           float64
	HnA          float64
	LambdaNa     float64
	TLambdaNa    float64
	DeltaINa     float64
	DeltaTNa     float64
	DeltaTDotNa  float64
	EpsilonNa    float64
	OmegaNa      float64
	MNa          float64
	TauNa        float64
	CNa          float64
}

// BDSEphemeris mirrors the original's BdsEphemeris.
type BDSEphemeris struct {
	BaseEphemeris
	Toe       float64
	SqrtA     float64
	E         float64
	Omega     float64
	DeltaN    float64
	MZero     float64
	OmegaZero float64
	OmegaDot  float64
	IZero     float64
	IDot      float64
	Cuc       float64
	Cus       float64
	Crc       float64
	Crs       float64
	Cic       float64
	Cis       float64
	Toc       float64
	A0        float64
	A1        float64
	A2        float64
	Aode      float64
}

// BDSAlmanac mirrors the original's BdsAlmanac.
type BDSAlmanac struct {
	BaseAlmanac
	Toa       float64
	SqrtA     float64
	E         float64
	Omega     float64
	MZero     float64
	OmegaZero float64
	OmegaDot  float64
	DeltaI    float64
	A0        float64
	A1        float64
	AmID      float64
}
