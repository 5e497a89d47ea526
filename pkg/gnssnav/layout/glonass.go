package layout

import (
	"math"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
)

// GLONASS strings are 85 bits (after Hamming/time-mark bits are stripped by
// the dispatcher); string_number occupies bits 81-84. Unlike GPS/Galileo,
// most signed fields here use signed-magnitude (sign bit is the MSB of the
// field, 0 = negative, 1 = positive) rather than two's complement.

const (
	GlonassString1 = "glo_string1"
	GlonassString2 = "glo_string2"
	GlonassString3 = "glo_string3"
	GlonassString4 = "glo_string4"
	GlonassString5 = "glo_almanac_string5"
)

var GlonassStringNumber = Field{Start: 81, Len: 4, Sign: bitfield.Unsigned}

var GlonassString1Fields = Layout{
	"p1":             {Start: 9, Len: 2, Sign: bitfield.Unsigned},
	"t_k_hour":       {Start: 11, Len: 5, Sign: bitfield.Unsigned},
	"t_k_min":        {Start: 16, Len: 6, Sign: bitfield.Unsigned},
	"t_k_sec":        {Start: 22, Len: 1, Sign: bitfield.Unsigned, Scale: 30},
	"x_dot_n":        {Start: 23, Len: 24, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -20)},
	"x_dot_dot_n":    {Start: 47, Len: 5, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -30)},
	"x_n":            {Start: 52, Len: 27, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -11)},
}

var GlonassString2Fields = Layout{
	"b_n":          {Start: 9, Len: 3, Sign: bitfield.Unsigned},
	"p2":           {Start: 12, Len: 1, Sign: bitfield.Unsigned},
	"t_b":          {Start: 13, Len: 7, Sign: bitfield.Unsigned, Scale: 15},
	"y_dot_n":      {Start: 23, Len: 24, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -20)},
	"y_dot_dot_n":  {Start: 47, Len: 5, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -30)},
	"y_n":          {Start: 52, Len: 27, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -11)},
}

var GlonassString3Fields = Layout{
	"p3":           {Start: 9, Len: 1, Sign: bitfield.Unsigned},
	"gamma_n":      {Start: 10, Len: 11, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -40)},
	"p":            {Start: 23, Len: 2, Sign: bitfield.Unsigned},
	"l_3rd_n":      {Start: 25, Len: 1, Sign: bitfield.Unsigned},
	"z_dot_n":      {Start: 26, Len: 24, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -20)},
	"z_dot_dot_n":  {Start: 50, Len: 5, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -30)},
	"z_n":          {Start: 55, Len: 27, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -11)},
}

var GlonassString4Fields = Layout{
	"tau_n":      {Start: 9, Len: 22, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -30)},
	"delta_tau_n": {Start: 31, Len: 5, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -30)},
	"e_n":        {Start: 36, Len: 5, Sign: bitfield.Unsigned},
	"p4":         {Start: 48, Len: 1, Sign: bitfield.Unsigned},
	"f_t":        {Start: 49, Len: 4, Sign: bitfield.Unsigned},
	"n_t":        {Start: 58, Len: 11, Sign: bitfield.Unsigned},
	"n":          {Start: 69, Len: 5, Sign: bitfield.Unsigned},
	"m":          {Start: 74, Len: 2, Sign: bitfield.Unsigned},
}

// GlonassAlmanacFields carries one PRN slot (n_a identifies which). Strings
// 6,8,10,... carry even slots and 7,9,11,... carry odd slots in the real
// wire format; the dispatcher presents them pre-split by frame/string so
// this layout only needs to describe one slot's fields.
var GlonassAlmanacFields = Layout{
	"n_a":             {Start: 9, Len: 5, Sign: bitfield.Unsigned},
	"h_n_a":           {Start: 14, Len: 5, Sign: bitfield.Unsigned},
	"lambda_n_a":      {Start: 20, Len: 21, Sign: bitfield.SignedMagnitude, Scale: piScale(-20)},
	"t_lambda_n_a":    {Start: 41, Len: 21, Sign: bitfield.Unsigned, Scale: math.Pow(2, -5)},
	"delta_i_n_a":     {Start: 62, Len: 18, Sign: bitfield.SignedMagnitude, Scale: piScale(-20)},
	"delta_t_n_a":     {Start: 9, Len: 22, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -9)},
	"delta_t_dot_n_a": {Start: 31, Len: 7, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -14)},
	"epsilon_n_a":     {Start: 38, Len: 15, Sign: bitfield.Unsigned, Scale: math.Pow(2, -20)},
	"omega_n_a":       {Start: 53, Len: 16, Sign: bitfield.SignedMagnitude, Scale: piScale(-15)},
	"m_n_a":           {Start: 9, Len: 2, Sign: bitfield.Unsigned},
	"tau_n_a":         {Start: 11, Len: 10, Sign: bitfield.SignedMagnitude, Scale: math.Pow(2, -18)},
	"c_n_a":           {Start: 21, Len: 1, Sign: bitfield.Unsigned},
}
