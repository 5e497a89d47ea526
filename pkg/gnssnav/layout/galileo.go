package layout

import (
	"math"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
)

// Galileo I-NAV words are 128 bits (even+odd page pair already concatenated
// by the dispatcher before decode sees them). word_type occupies bits 0-5.

const (
	INavGalWord1 = "gal_inav_word1" // ephemeris (1/4)
	INavGalWord2 = "gal_inav_word2" // ephemeris (2/4)
	INavGalWord3 = "gal_inav_word3" // ephemeris (3/4)
	INavGalWord4 = "gal_inav_word4" // ephemeris (4/4) + clock
	INavGalWord7 = "gal_inav_word7" // almanac (1/4)
	INavGalWord8 = "gal_inav_word8" // almanac (2/4)
	INavGalWord9 = "gal_inav_word9" // almanac (3/4)
	INavGalWord10 = "gal_inav_word10" // almanac (4/4)
)

// GalWordType / GalNavIOD / GalAlmIODA are identification-only fields; kept
// here (rather than in identify) because their bit positions are as much a
// property of the wire layout as any payload field.
var GalWordType = Field{Start: 0, Len: 6, Sign: bitfield.Unsigned}
var GalNavIOD = Field{Start: 6, Len: 10, Sign: bitfield.Unsigned}
var GalAlmIODA = Field{Start: 6, Len: 4, Sign: bitfield.Unsigned}

var INavGalileoWord1 = Layout{
	"toe":          {Start: 16, Len: 14, Sign: bitfield.Unsigned, Scale: 60},
	"m_zero_msb":   {Start: 30, Len: 32 - 24, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: MSB},
	"m_zero_lsb":   {Start: 38, Len: 24, Sign: bitfield.Unsigned, PairWith: "m_zero", PairRole: LSB},
	"e_msb":        {Start: 62, Len: 32 - 24, Sign: bitfield.Unsigned, PairWith: "e", PairRole: MSB},
	"e_lsb":        {Start: 70, Len: 24, Sign: bitfield.Unsigned, PairWith: "e", PairRole: LSB},
	"sqrt_a_msb":   {Start: 94, Len: 32 - 24, Sign: bitfield.Unsigned, PairWith: "sqrt_a", PairRole: MSB},
	"sqrt_a_lsb":   {Start: 102, Len: 24, Sign: bitfield.Unsigned, PairWith: "sqrt_a", PairRole: LSB},
}

var INavGalileoWord2 = Layout{
	"omega_zero_msb": {Start: 16, Len: 8, Sign: bitfield.Unsigned, PairWith: "omega_zero", PairRole: MSB},
	"omega_zero_lsb": {Start: 24, Len: 24, Sign: bitfield.Unsigned, PairWith: "omega_zero", PairRole: LSB},
	"i_zero_msb":     {Start: 48, Len: 8, Sign: bitfield.Unsigned, PairWith: "i_zero", PairRole: MSB},
	"i_zero_lsb":     {Start: 56, Len: 24, Sign: bitfield.Unsigned, PairWith: "i_zero", PairRole: LSB},
	"omega_msb":      {Start: 80, Len: 8, Sign: bitfield.Unsigned, PairWith: "omega", PairRole: MSB},
	"omega_lsb":      {Start: 88, Len: 24, Sign: bitfield.Unsigned, PairWith: "omega", PairRole: LSB},
	"i_dot":          {Start: 112, Len: 14, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
}

var INavGalileoWord3 = Layout{
	"omega_dot": {Start: 16, Len: 24, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"delta_n":   {Start: 40, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-43)},
	"cuc":       {Start: 56, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"cus":       {Start: 72, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"crc":       {Start: 88, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -5)},
	"crs":       {Start: 104, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -5)},
	"sisa":      {Start: 120, Len: 8, Sign: bitfield.Unsigned},
}

var INavGalileoWord4 = Layout{
	"cic": {Start: 16, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
	"cis": {Start: 32, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -29)},
}

var galWordPairs = map[string]Field{
	"m_zero":     {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"e":          {Len: 32, Sign: bitfield.Unsigned, Scale: math.Pow(2, -33)},
	"sqrt_a":     {Len: 32, Sign: bitfield.Unsigned, Scale: math.Pow(2, -19)},
	"omega_zero": {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"i_zero":     {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
	"omega":      {Len: 32, Sign: bitfield.TwosComplement, Scale: piScale(-31)},
}

func GalileoPairs() map[string]Field { return galWordPairs }

// Almanac words 7-10 share one iod_a (bits 6-9); the record is only built
// once words 7, 8 and 9 have been seen with a matching iod_a (word 10 is
// optional, see record.BuildGalileoAlmanac).
var INavGalileoWord7 = Layout{
	"alm_sv_id":  {Start: 10, Len: 6, Sign: bitfield.Unsigned},
	"delta_sqrt_a": {Start: 16, Len: 13, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -9)},
	"e":          {Start: 29, Len: 11, Sign: bitfield.Unsigned, Scale: math.Pow(2, -16)},
	"omega":      {Start: 40, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-15)},
	"delta_i":    {Start: 56, Len: 11, Sign: bitfield.TwosComplement, Scale: piScale(-14)},
	"omega_zero": {Start: 67, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-15)},
}

var INavGalileoWord8 = Layout{
	"omega_dot": {Start: 10, Len: 11, Sign: bitfield.TwosComplement, Scale: piScale(-33)},
	"m_zero":    {Start: 21, Len: 16, Sign: bitfield.TwosComplement, Scale: piScale(-15)},
	"af_0":      {Start: 37, Len: 16, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -19)},
	"af_1":      {Start: 53, Len: 13, Sign: bitfield.TwosComplement, Scale: math.Pow(2, -38)},
}

var INavGalileoWord9 = Layout{
	"t_oa":     {Start: 10, Len: 10, Sign: bitfield.Unsigned, Scale: 600},
	"wn_a":     {Start: 20, Len: 2, Sign: bitfield.Unsigned},
	"e5b_hs":   {Start: 22, Len: 2, Sign: bitfield.Unsigned},
	"e1b_hs":   {Start: 24, Len: 2, Sign: bitfield.Unsigned},
}

var INavGalileoWord10 = Layout{
	"e5a_hs": {Start: 10, Len: 2, Sign: bitfield.Unsigned},
}
