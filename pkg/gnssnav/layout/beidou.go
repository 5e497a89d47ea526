package layout

import (
	"math"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
)

// BeiDou D1 frames are 300 bits (10 words x 30 bits, same shape as GPS
// L-NAV). subframe_id occupies bits 16-18 and page_number occupies bits
// 44-50 for subframes 4/5. No D2 layouts are defined.

const (
	BeidouD1Subframe1 = "bds_d1_sf1"
	BeidouD1Subframe2 = "bds_d1_sf2"
	BeidouD1Subframe3 = "bds_d1_sf3"
	BeidouD1Almanac   = "bds_d1_almanac"
	BeidouD1AlmanacExt = "bds_d1_almanac_ext"
)

var BeidouSubframeID = Field{Start: 16, Len: 3, Sign: bitfield.Unsigned}
var BeidouPageNumber = Field{Start: 44, Len: 7, Sign: bitfield.Unsigned}

// AmEpId (almanac epoch id) gates whether subframe 5 pages 11-24 carry the
// expanded almanac (PRN 31-63). Per spec.md's literal bit positions: bits
// 8-9 for pages 11-23, bits 83-84 for page 24.
var BeidouAmEpIdPages11to23 = Field{Start: 8, Len: 2, Sign: bitfield.Unsigned}
var BeidouAmEpIdPage24 = Field{Start: 83, Len: 2, Sign: bitfield.Unsigned}

var BeidouD1Subframe1Fields = Layout{
	"sv_health": {Start: 42, Len: 1, Sign: bitfield.Unsigned},
	"aode":      {Start: 61, Len: 5, Sign: bitfield.Unsigned},
	"a_2":       {Start: 91, Len: 11, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -66)},
	"a_0":       {Start: 106, Len: 24, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -33)},
	"a_1":       {Start: 134, Len: 22, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -50)},
	"t_oc":      {Start: 162, Len: 17, Sign: bitfield.Unsigned, Scale: 8},
}

// m_zero and t_oe are split across subframes 2 and 3 (cross-frame, unlike
// GPS/Galileo's within-word splits), so decode leaves each half as a plain
// raw field here; record.BuildBDSEphemeris does the recombination once
// both subframes have been accumulated for the same satellite (spec's
// worked MSB/LSB recombination example).
var BeidouD1Subframe2Fields = Layout{
	"delta_n":        {Start: 43, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"cuc":            {Start: 59, Len: 18, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -31)},
	"m_zero_msb_raw": {Start: 77, Len: 20, Sign: bitfield.Unsigned},
	"e":              {Start: 97, Len: 32, Sign: bitfield.Unsigned, Scale: math.Pow(2, -33)},
	"cus":            {Start: 129, Len: 18, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -31)},
	"crc":            {Start: 147, Len: 18, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -6)},
	"crs":            {Start: 165, Len: 18, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -6)},
	"sqrt_a":         {Start: 183, Len: 32, Sign: bitfield.Unsigned, Scale: math.Pow(2, -19)},
	"t_oe_msb_raw":   {Start: 215, Len: 2, Sign: bitfield.Unsigned},
}

var BeidouD1Subframe3Fields = Layout{
	"t_oe_lsb_raw":   {Start: 13, Len: 10, Sign: bitfield.Unsigned},
	"m_zero_lsb_raw": {Start: 0, Len: 12, Sign: bitfield.Unsigned},
	"i_zero":     {Start: 23, Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"cic":        {Start: 57, Len: 18, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -31)},
	"omega_dot":  {Start: 75, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"cis":        {Start: 99, Len: 18, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -31)},
	"idot":       {Start: 117, Len: 14, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"omega_zero": {Start: 131, Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"omega":      {Start: 163, Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
}

// t_oe is recombined from subframe 2's 2-bit MSB and subframe 3's 10-bit LSB
// then multiplied by 2^3 (spec's worked MSB/LSB recombination example).
var BeidouTOe = Field{Len: 12, Sign: bitfield.Unsigned, Scale: 8}
var BeidouMZero = Field{Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)}

func BeidouPairs() map[string]Field {
	return map[string]Field{"t_oe": BeidouTOe, "m_zero": BeidouMZero}
}

var BeidouD1AlmanacFields = Layout{
	"am_id":     {Start: 50, Len: 2, Sign: bitfield.Unsigned},
	"sv_health": {Start: 52, Len: 8, Sign: bitfield.Unsigned},
	"t_oa":      {Start: 60, Len: 8, Sign: bitfield.Unsigned, Scale: math.Pow(2, 12)},
	"sqrt_a":    {Start: 68, Len: 24, Sign: bitfield.Unsigned, Scale: math.Pow(2, -11)},
	"e":         {Start: 92, Len: 17, Sign: bitfield.Unsigned, Scale: math.Pow(2, -21)},
	"omega":     {Start: 109, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-23)},
	"delta_i":   {Start: 133, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-19)},
	"omega_zero": {Start: 149, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-23)},
	"omega_dot": {Start: 173, Len: 17, Sign: bitfield.TwosComplement, Scale: piScale(-38)},
	"m_zero":    {Start: 190, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-23)},
	"a_zero":    {Start: 214, Len: 11, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -20)},
	"a_one":     {Start: 225, Len: 11, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -38)},
}

// BeidouD1AlmanacExtFields is the expanded almanac page carrying PRN 31-63,
// only present when AmEpId == 3 on pages 11-24 of subframe 5 (spec's
// BeiDou expanded-almanac gating edge case).
var BeidouD1AlmanacExtFields = BeidouD1AlmanacFields
