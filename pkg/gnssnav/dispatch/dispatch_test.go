package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/identify"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/record"
)

func wordsFromFrame(frame []byte, count, bitsPerWord int) []uint32 {
	words := make([]uint32, count)
	for i := range words {
		words[i] = uint32(bitfield.ExtractBits(frame, i*bitsPerWord, bitsPerWord))
	}
	return words
}

func TestIngestUnsupportedSignalIsNotAnError(t *testing.T) {
	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.BeiDou, SvID: 1, SignalID: 1, DataWords: make([]uint32, 10)})
	assert.NoError(t, err)
}

func TestIngestMalformedWordCount(t *testing.T) {
	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.GPS, SvID: 5, DataWords: make([]uint32, 3)})
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestIngestGPSSubframe2ThenSnapshot(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 50, 3, 2) // subframe 2
	bitfield.SetBits(frame, 60, 8, 9) // iode
	words := wordsFromFrame(frame, 10, 30)

	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.GPS, SvID: 5, DataWords: words})
	require.NoError(t, err)

	rec, ok := d.Decoded(identify.GPS, 5, "gps_lnav_ephemeris")
	require.True(t, ok)
	assert.EqualValues(t, 9, rec.RawFields["2_0_iode"])
	assert.Nil(t, rec.Ephemeris, "subframe 3 hasn't arrived yet, ephemeris must stay Incomplete")

	snap := d.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 5, snap[0].SvID)
}

func TestIngestIsIdempotentForSameFrame(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 50, 3, 2)
	bitfield.SetBits(frame, 60, 8, 9)
	words := wordsFromFrame(frame, 10, 30)

	d := New(nil)
	in := Ingest{GnssID: identify.GPS, SvID: 5, DataWords: words}
	require.NoError(t, d.Ingest(in))
	require.NoError(t, d.Ingest(in))

	rec, ok := d.Decoded(identify.GPS, 5, "gps_lnav_ephemeris")
	require.True(t, ok)
	assert.EqualValues(t, 9, rec.RawFields["2_0_iode"])
}

func TestResetClearsBucket(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 50, 3, 2)
	words := wordsFromFrame(frame, 10, 30)

	d := New(nil)
	require.NoError(t, d.Ingest(Ingest{GnssID: identify.GPS, SvID: 5, DataWords: words}))
	d.Reset(identify.GPS, 5, "gps_lnav_ephemeris")
	_, ok := d.Decoded(identify.GPS, 5, "gps_lnav_ephemeris")
	assert.False(t, ok)
}

func TestIngestUnknownCNavMessageTypeIsDropped(t *testing.T) {
	frame := make([]byte, 38)
	bitfield.SetBits(frame, 15, 6, 99)
	words := wordsFromFrame(frame, 10, 30)

	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.GPS, SvID: 5, SignalID: cnavSignalID, DataWords: words})
	assert.NoError(t, err)
	_, ok := d.Decoded(identify.GPS, 5, "gps_cnav_ephemeris")
	assert.False(t, ok)
}

// TestIngestGPSEphemerisBuildsOnceBothSubframesArrive exercises C6 wired
// through the dispatcher end to end: subframe 2 alone leaves Ephemeris nil,
// and only once subframe 3 lands does Decoded's lazily-built Ephemeris
// populate (spec §4.7/§8's build-on-read property).
func TestIngestGPSEphemerisBuildsOnceBothSubframesArrive(t *testing.T) {
	sf2 := make([]byte, 38)
	bitfield.SetBits(sf2, 50, 3, 2)
	bitfield.SetBits(sf2, 60, 8, 9) // iode
	sf3 := make([]byte, 38)
	bitfield.SetBits(sf3, 50, 3, 3)
	bitfield.SetBits(sf3, 270, 8, 9) // iode (subframe 3's own field)

	d := New(nil)
	require.NoError(t, d.Ingest(Ingest{GnssID: identify.GPS, SvID: 5, DataWords: wordsFromFrame(sf2, 10, 30)}))
	rec, ok := d.Decoded(identify.GPS, 5, "gps_lnav_ephemeris")
	require.True(t, ok)
	assert.Nil(t, rec.Ephemeris)

	require.NoError(t, d.Ingest(Ingest{GnssID: identify.GPS, SvID: 5, DataWords: wordsFromFrame(sf3, 10, 30)}))
	rec, ok = d.Decoded(identify.GPS, 5, "gps_lnav_ephemeris")
	require.True(t, ok)
	require.NotNil(t, rec.Ephemeris)
	eph, ok := rec.Ephemeris.(record.GPSEphemeris)
	require.True(t, ok)
	assert.Equal(t, 5, eph.SvID)
	assert.EqualValues(t, 9, eph.IODE)
}

func TestIngestGalileoRejectsAlertPage(t *testing.T) {
	words := make([]uint32, 8)
	words[0] = 1 << 30 // page-type bit set on the even half: alert page
	words[4] = 1 << 31 // otherwise-valid odd half

	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.Galileo, SvID: 3, DataWords: words})
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestIngestGalileoRejectsOddEvenMismatch(t *testing.T) {
	words := make([]uint32, 8)
	words[0] = 1 << 31 // even half's odd/even bit should be 0
	words[4] = 1 << 31

	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.Galileo, SvID: 3, DataWords: words})
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestIngestGalileoAcceptsValidEvenOddPair(t *testing.T) {
	words := make([]uint32, 8)
	words[4] = 1 << 31 // even half already zero; odd half's bit set correctly

	d := New(nil)
	err := d.Ingest(Ingest{GnssID: identify.Galileo, SvID: 3, DataWords: words})
	assert.NoError(t, err, "word_type 0 (spare) is dropped silently, not an error")
}
