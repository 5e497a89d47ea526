package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"
)

func TestGPSLNavRejectsDummySvID(t *testing.T) {
	frame := make([]byte, 38)
	_, ok, err := GPSLNav(frame, 0)
	require.NoError(t, err)
	assert.False(t, ok, "sv_id 0 is a dummy satellite and must be rejected")

	_, ok, err = GPSLNav(frame, 33)
	require.NoError(t, err)
	assert.False(t, ok, "sv_id above 32 must be rejected")
}

func TestGPSLNavIdentifiesSubframe2And3(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 50, 3, 2)
	fp, ok, err := GPSLNav(frame, 12)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, layout.LNavGpsSubframe2, fp.LayoutKey)

	bitfield.SetBits(frame, 50, 3, 3)
	fp, ok, err = GPSLNav(frame, 12)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, layout.LNavGpsSubframe3, fp.LayoutKey)
}

func TestGPSLNavAlmanacRequiresDataID1(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 50, 3, 4)
	bitfield.SetBits(frame, 61, 2, 0) // wrong data_id
	_, ok, err := GPSLNav(frame, 12)
	require.NoError(t, err)
	assert.False(t, ok)

	bitfield.SetBits(frame, 61, 2, 1)
	bitfield.SetBits(frame, 63, 6, 57) // sv_id 57 on subframe 4 -> page 1
	fp, ok, err := GPSLNav(frame, 12)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, fp.Sub, "sv_id 57 must translate to page 1 via page_lookup")
}

func TestGPSLNavAlmanacRejectsDummySvIDAndUnknownSlot(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 50, 3, 4)
	bitfield.SetBits(frame, 61, 2, 1)

	bitfield.SetBits(frame, 63, 6, 0) // dummy SV
	_, ok, err := GPSLNav(frame, 12)
	require.NoError(t, err)
	assert.False(t, ok)

	bitfield.SetBits(frame, 63, 6, 33) // not in the subframe 4 page_lookup table
	_, ok, err = GPSLNav(frame, 12)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGPSCNavDiscardsUnknownMessageTypes(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 15, 6, 99)
	_, ok, err := GPSCNav(frame)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGPSCNavIdentifiesKnownMessageTypes(t *testing.T) {
	cases := []struct {
		name      string
		msgType   uint64
		layoutKey string
	}{
		{"msg10", 10, layout.CNavGps10},
		{"msg11", 11, layout.CNavGps11},
		{"msg12", 12, layout.CNavGps12},
		{"msg31", 31, layout.CNavGps31},
		{"msg37", 37, layout.CNavGps37},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			frame := make([]byte, 38)
			bitfield.SetBits(frame, 15, 6, c.msgType)
			fp, ok, err := GPSCNav(frame)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, c.layoutKey, fp.LayoutKey)
		})
	}
}

func TestGalileoINavRejectsSpareAndSARWords(t *testing.T) {
	frame := make([]byte, 16)
	bitfield.SetBits(frame, 0, 6, 0)
	_, ok, err := GalileoINav(frame)
	require.NoError(t, err)
	assert.False(t, ok)

	bitfield.SetBits(frame, 0, 6, 5) // SAR-only word type
	_, ok, err = GalileoINav(frame)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGlonassStringRequiresFrameNumberForAlmanac(t *testing.T) {
	frame := make([]byte, 16)
	bitfield.SetBits(frame, 81, 4, 6)
	_, ok, err := GlonassString(frame, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedFrame)

	fp, ok, err := GlonassString(frame, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, fp.Tag, "every almanac string must share Tag 5, the GlonassString5 bucket family")
}

func TestBeidouD1ExpandedAlmanacGating(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 16, 3, 5)
	bitfield.SetBits(frame, 44, 7, 12) // page 12, within 11-23 AmEpId window

	bitfield.SetBits(frame, 8, 2, 1) // AmEpId != 3 -> ordinary almanac
	fp, ok, err := BeidouD1(frame, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, layout.BeidouD1Almanac, fp.LayoutKey)

	bitfield.SetBits(frame, 8, 2, 3) // AmEpId == 3 -> expanded almanac
	fp, ok, err = BeidouD1(frame, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, layout.BeidouD1AlmanacExt, fp.LayoutKey)
}

func TestSupportedSignalExcludesBeidouD2(t *testing.T) {
	assert.True(t, SupportedSignal(BeiDou, 0))
	assert.False(t, SupportedSignal(BeiDou, 1))
	assert.False(t, SupportedSignal(SBAS, 0))
}
