package layout

import (
	"math"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
)

// GPS L-NAV frames are 300 bits (10 words x 30 bits), word 1 and 2 are
// TLM/HOW and never carry ephemeris/almanac payload; data starts at bit 60.
// Fields split across a word boundary are modeled as two entries
// (`<name>_msb`/`<name>_lsb`) joined by decode via PairWith, mirroring the
// original's int_append_int recombination step.

const (
	LNavGpsSubframe2 = "gps_lnav_sf2"
	LNavGpsSubframe3 = "gps_lnav_sf3"
	LNavGpsAlmanac   = "gps_lnav_almanac"

	CNavGps10 = "gps_cnav_msg10"
	CNavGps11 = "gps_cnav_msg11"
	CNavGps12 = "gps_cnav_msg12"
	CNavGps31 = "gps_cnav_msg31"
	CNavGps37 = "gps_cnav_msg37"
)

func piScale(exp int) float64 { return math.Pow(2, float64(exp)) * math.Pi }

// GPSLNavSubframe2 carries iode, crs, delta_n, m_zero, cuc, e, cus, sqrt_a, toe.
var GPSLNavSubframe2 = Layout{
	"iode":        {Start: 60, Len: 8, Sign: bitfield.Unsigned},
	"crs":         {Start: 68, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -5)},
	"delta_n":     {Start: 90, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"m_zero_msb":  {Start: 106, Len: 8, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: MSB},
	"m_zero_lsb":  {Start: 122, Len: 24, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: LSB},
	"cuc":         {Start: 150, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"e_msb":       {Start: 166, Len: 8, Sign: bitfield.Unsigned, PairWith: "e", PairRole: MSB},
	"e_lsb":       {Start: 182, Len: 24, Sign: bitfield.Unsigned, PairWith: "e", PairRole: LSB},
	"cus":         {Start: 210, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"sqrt_a_msb":  {Start: 226, Len: 8, Sign: bitfield.Unsigned, PairWith: "sqrt_a", PairRole: MSB},
	"sqrt_a_lsb":  {Start: 242, Len: 24, Sign: bitfield.Unsigned, PairWith: "sqrt_a", PairRole: LSB},
	"toe":         {Start: 270, Len: 16, Sign: bitfield.Unsigned, Scale: 16},
}

// m_zero/e/sqrt_a pair widths and sign/scale applied at recombination time
// (decode.go), since the combined width (32 bits) exceeds either half.
var gpsLNav32BitPairs = map[string]Field{
	"m_zero": {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"e":      {Len: 32, Sign: bitfield.Unsigned, Scale: math.Pow(2, -33)},
	"sqrt_a": {Len: 32, Sign: bitfield.Unsigned, Scale: math.Pow(2, -19)},
}

// GPSLNavSubframe3 carries cic, omega_zero, cis, i_zero, crc, omega,
// omega_dot, iode (repeat, dropped by the builder per spec's t_oe cross
// check analogue), idot.
var GPSLNavSubframe3 = Layout{
	"cic":             {Start: 60, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"omega_zero_msb":  {Start: 76, Len: 8, Sign: bitfield.Unsigned, PairWith: "omega_zero", PairRole: MSB},
	"omega_zero_lsb":  {Start: 84, Len: 24, Sign: bitfield.Unsigned, PairWith: "omega_zero", PairRole: LSB},
	"cis":             {Start: 120, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"i_zero_msb":      {Start: 136, Len: 8, Sign: bitfield.Unsigned, PairWith: "i_zero", PairRole: MSB},
	"i_zero_lsb":      {Start: 144, Len: 24, Sign: bitfield.Unsigned, PairWith: "i_zero", PairRole: LSB},
	"crc":             {Start: 180, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -5)},
	"omega_msb":       {Start: 196, Len: 8, Sign: bitfield.Unsigned, PairWith: "omega", PairRole: MSB},
	"omega_lsb":       {Start: 204, Len: 24, Sign: bitfield.Unsigned, PairWith: "omega", PairRole: LSB},
	"omega_dot":       {Start: 240, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"iode":            {Start: 270, Len: 8, Sign: bitfield.Unsigned},
	"idot":             {Start: 278, Len: 14, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
}

var gpsLNavSubframe3Pairs = map[string]Field{
	"omega_zero": {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"i_zero":     {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"omega":      {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
}

// GPSLNavAlmanac carries one PRN slot of a subframe 4/5 almanac page.
var GPSLNavAlmanac = Layout{
	"data_id":        {Start: 61, Len: 2, Sign: bitfield.Unsigned},
	"sv_id":          {Start: 63, Len: 6, Sign: bitfield.Unsigned},
	"e":              {Start: 56, Len: 16, Sign: bitfield.Unsigned, Scale: math.Pow(2, -21)},
	"toa":            {Start: 72, Len: 8, Sign: bitfield.Unsigned, Scale: math.Pow(2, 12)},
	"delta_i":        {Start: 80, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-19)},
	"omega_dot":      {Start: 96, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-38)},
	"sv_health":      {Start: 112, Len: 8, Sign: bitfield.Unsigned},
	"sqrt_a":         {Start: 120, Len: 24, Sign: bitfield.Unsigned, Scale: math.Pow(2, -11)},
	"omega_zero":     {Start: 144, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-23)},
	"omega":          {Start: 168, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-23)},
	"m_zero":         {Start: 192, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-23)},
	"af_0_msb":       {Start: 216, Len: 8, Sign: bitfield.Unsigned, PairWith: "af_0", PairRole: MSB},
	"af_1":           {Start: 224, Len: 11, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -38)},
	"af_0_lsb":       {Start: 235, Len: 3, Sign: bitfield.Unsigned, PairWith: "af_0", PairRole: LSB},
}

var gpsLNavAlmanacPairs = map[string]Field{
	"af_0": {Len: 11, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -20)},
}

// --- GPS CNAV (L2C/L5) messages ---
//
// CNAV messages are 300-bit packets (not 30-bit words); message_type
// occupies bits 15-20 and discriminates the layouts below (spec's worked
// identification examples).

// CNavGps10Fields carries top, wn, ura_ed, sig_health (L1/L2/L5), top (clock/ephemeris 1).
var CNavGps10Fields = Layout{
	"wn":              {Start: 38, Len: 13, Sign: bitfield.Unsigned},
	"ura_ed":          {Start: 51, Len: 5, Sign: bitfield.TwosComplement},
	"sig_health_l1":   {Start: 56, Len: 1, Sign: bitfield.Unsigned},
	"sig_health_l2":   {Start: 57, Len: 1, Sign: bitfield.Unsigned},
	"sig_health_l5":   {Start: 58, Len: 1, Sign: bitfield.Unsigned},
	"top":             {Start: 59, Len: 11, Sign: bitfield.Unsigned, Scale: 300},
	"toe":             {Start: 70, Len: 11, Sign: bitfield.Unsigned, Scale: 300},
	"delta_a":         {Start: 81, Len: 26, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -9)},
	"a_dot":           {Start: 107, Len: 25, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -21)},
	"delta_n":         {Start: 132, Len: 17, Sign: bitfield.TwosComplement, Scale: piScale(-44)},
	"delta_n_zero_dot": {Start: 149, Len: 23, Sign: bitfield.TwosComplement, Scale: piScale(-57)},
	"m_zero":          {Start: 172, Len: 33, Sign: bitfield.TwosComplement, Scale: piScale(-32)},
	"e":               {Start: 205, Len: 33, Sign: bitfield.Unsigned, Scale: math.Pow(2, -34)},
	"omega":           {Start: 238, Len: 33, Sign: bitfield.TwosComplement, Scale: piScale(-32)},
}

// CNavGps11Fields carries the remaining orbital terms (cross-checked against
// msg10's toe by the record builder).
var CNavGps11Fields = Layout{
	"toe":             {Start: 38, Len: 11, Sign: bitfield.Unsigned, Scale: 300},
	"omega_zero":      {Start: 49, Len: 33, Sign: bitfield.TwosComplement, Scale: piScale(-32)},
	"i_zero_dot":      {Start: 82, Len: 15, Sign: bitfield.TwosComplement, Scale: piScale(-44)},
	"i_zero":          {Start: 97, Len: 33, Sign: bitfield.TwosComplement, Scale: piScale(-32)},
	"crs":             {Start: 130, Len: 24, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -8)},
	"cis":             {Start: 154, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -30)},
	"cus":             {Start: 170, Len: 21, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -30)},
	"crc":             {Start: 191, Len: 24, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -8)},
	"cic":             {Start: 215, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -30)},
	"cuc":              {Start: 231, Len: 21, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -30)},
	"omega_dot":        {Start: 252, Len: 17, Sign: bitfield.TwosComplement, Scale: piScale(-44)},
	"idot":             {Start: 269, Len: 15, Sign: bitfield.TwosComplement, Scale: piScale(-44)},
}

// CNavGps12 / CNavGps31 pack a reduced (MIDI) almanac: a run of fixed-width
// records, each ending at one of the offsets in ReducedAlmanacEnds12/31, keyed
// by the leading prn field inside each record. record.BuildCNavGPSReducedAlmanac
// decodes each slot directly off the raw frame bytes rather than through a
// generic packed-substructure field, since the slots are a repeated run at
// computed offsets rather than a single split field.
var ReducedAlmanacRecord = Layout{
	"prn":        {Start: 0, Len: 6, Sign: bitfield.Unsigned},
	"delta_a":    {Start: 6, Len: 8, Sign: bitfield.TwosComplement, Scale: math.Pow(2, 9)},
	"omega_dot":  {Start: 14, Len: 7, Sign: bitfield.TwosComplement, Scale: piScale(-14)},
	"omega_zero": {Start: 21, Len: 7, Sign: bitfield.TwosComplement, Scale: piScale(-6)},
	"m_zero":     {Start: 28, Len: 7, Sign: bitfield.TwosComplement, Scale: piScale(-6)},
	"omega":      {Start: 35, Len: 7, Sign: bitfield.TwosComplement, Scale: piScale(-6)},
	"af_0":       {Start: 42, Len: 11, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -20)},
	"sv_health":  {Start: 53, Len: 3, Sign: bitfield.Unsigned},
}

const ReducedAlmanacRecordWidth = 56

// ReducedAlmanacEnds12/31 mirror the original's hard-coded end-bit-position
// tuples for message types 12 and 31 respectively (6 and 4 PRN slots).
var ReducedAlmanacEnds12 = []int{65 + 56*0, 65 + 56, 65 + 56*2, 65 + 56*3, 65 + 56*4, 65 + 56*5}
var ReducedAlmanacEnds31 = []int{154, 154 + 56, 154 + 56*2, 154 + 56*3}

// CNavGps37 carries the EOP/midi almanac for one PRN (message type 37).
var CNavGps37Fields = Layout{
	"almanac_prn": {Start: 149, Len: 6, Sign: bitfield.Unsigned},
	"toa":         {Start: 38, Len: 8, Sign: bitfield.Unsigned, Scale: math.Pow(2, 12)},
}

// CNavGps12Fields/CNavGps31Fields expose only the message-level fields
// (prn, message_type); the packed per-PRN reduced-almanac records
// (ReducedAlmanacRecord, ReducedAlmanacEnds12/31) are decoded separately by
// record.BuildCNavGPSReducedAlmanac rather than through decode.Frame's
// generic msb/lsb path, since they're a repeated run of sub-records rather
// than a single split field.
var CNavGps12Fields = Layout{
	"prn":          {Start: 9, Len: 6, Sign: bitfield.Unsigned},
	"message_type": {Start: 15, Len: 6, Sign: bitfield.Unsigned},
}

var CNavGps31Fields = Layout{
	"prn":          {Start: 9, Len: 6, Sign: bitfield.Unsigned},
	"message_type": {Start: 15, Len: 6, Sign: bitfield.Unsigned},
}

// LNavPairs exposes the L-NAV msb/lsb combined-width tables decode.go needs
// when recombining a split field.
func LNavPairs() map[string]Field {
	out := map[string]Field{}
	for k, v := range gpsLNav32BitPairs {
		out[k] = v
	}
	for k, v := range gpsLNavSubframe3Pairs {
		out[k] = v
	}
	for k, v := range gpsLNavAlmanacPairs {
		out[k] = v
	}
	return out
}
