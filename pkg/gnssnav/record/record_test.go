package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"
)

func gpsEphemerisBucket() map[string]float64 {
	return map[string]float64{
		"2_0_iode": 10, "2_0_crs": 1.5, "2_0_delta_n": 2, "2_0_m_zero": 3,
		"2_0_cuc": 4, "2_0_e": 5, "2_0_cus": 6, "2_0_sqrt_a": 7, "2_0_toe": 8,
		"3_0_cic": 9, "3_0_omega_zero": 10, "3_0_cis": 11, "3_0_i_zero": 12,
		"3_0_crc": 13, "3_0_omega": 14, "3_0_omega_dot": 15, "3_0_idot": 16,
	}
}

func TestBuildGPSEphemerisComplete(t *testing.T) {
	r, ok := BuildGPSEphemeris(5, gpsEphemerisBucket())
	assert.True(t, ok)
	assert.Equal(t, 5, r.SvID)
	assert.EqualValues(t, 10, r.IODE)
	assert.EqualValues(t, 16, r.IDot)
}

func TestBuildGPSEphemerisIncompleteWhenFieldMissing(t *testing.T) {
	bucket := gpsEphemerisBucket()
	delete(bucket, "3_0_idot")
	_, ok := BuildGPSEphemeris(5, bucket)
	assert.False(t, ok)
}

func TestBuildGPSAlmanacSkipsIncompleteSlotsOnly(t *testing.T) {
	bucket := map[string]float64{
		"4_1_sv_id": 3, "4_1_e": 1, "4_1_toa": 2, "4_1_delta_i": 3,
		"4_1_omega_dot": 4, "4_1_sqrt_a": 5, "4_1_omega_zero": 6,
		"4_1_omega": 7, "4_1_m_zero": 8, "4_1_af_0": 9, "4_1_af_1": 10,
		// page 2 deliberately missing toa: should be skipped, not fail page 1
		"4_2_sv_id": 9, "4_2_e": 1,
	}
	almanacs := BuildGPSAlmanac(bucket, []int{1, 2})
	assert.Len(t, almanacs, 1)
	assert.Equal(t, 3, almanacs[0].SvID)
}

func TestBuildCNavGPSEphemerisRequiresMatchingToe(t *testing.T) {
	bucket := map[string]float64{
		"10_0_toe": 100, "11_0_toe": 200,
	}
	_, ok := BuildCNavGPSEphemeris(7, bucket)
	assert.False(t, ok, "mismatched toe between msg10 and msg11 must fail the cross-check")
}

func TestBuildBDSEphemerisRecombinesCrossFrameToe(t *testing.T) {
	bucket := map[string]float64{
		"1_0_aode": 1, "1_0_a_2": 2, "1_0_a_0": 3, "1_0_a_1": 4, "1_0_t_oc": 5,
		"2_0_delta_n": 6, "2_0_cuc": 7, "2_0_e": 8, "2_0_cus": 9, "2_0_crc": 10,
		"2_0_crs": 11, "2_0_sqrt_a": 12,
		"3_0_i_zero": 13, "3_0_cic": 14, "3_0_omega_dot": 15, "3_0_cis": 16,
		"3_0_idot": 17, "3_0_omega_zero": 18, "3_0_omega": 19,
		"2_0_t_oe_msb_raw": 0b01, "3_0_t_oe_lsb_raw": 0b0000000011,
		"2_0_m_zero_msb_raw": 2, "3_0_m_zero_lsb_raw": 3,
	}
	r, ok := BuildBDSEphemeris(42, bucket)
	assert.True(t, ok)
	assert.EqualValues(t, (0b01<<10|0b0000000011)*8, r.Toe)
}

func TestBuildCNavGPSReducedAlmanacSkipsUnassignedSlots(t *testing.T) {
	frame := make([]byte, 38)
	end := layout.ReducedAlmanacEnds12[0]
	start := end - layout.ReducedAlmanacRecordWidth
	bitfield.SetBits(frame, start, 6, 11) // prn field at the start of the record

	slots := BuildCNavGPSReducedAlmanac(frame, layout.ReducedAlmanacEnds12[:2])
	assert.Len(t, slots, 1)
	assert.Equal(t, 11, slots[0].SvID)
}
