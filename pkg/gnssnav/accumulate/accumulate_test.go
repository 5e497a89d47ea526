package accumulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/decode"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/identify"
)

func TestMergeLateWriteWins(t *testing.T) {
	var s Store
	key := Key{GnssID: identify.GPS, SvID: 5, LayoutKey: "gps_lnav_ephemeris"}
	fp := identify.Fingerprint{Tag: 2}

	s.Merge(key, fp, decode.Fields{"iode": 1})
	s.Merge(key, fp, decode.Fields{"iode": 2})

	bucket, ok := s.Snapshot(key)
	assert.True(t, ok)
	assert.EqualValues(t, 2, bucket["2_0_iode"])
}

func TestMergeIsOrderIndependentAcrossDisjointFields(t *testing.T) {
	var a, b Store
	key := Key{GnssID: identify.GPS, SvID: 5, LayoutKey: "gps_lnav_ephemeris"}
	fpSF2 := identify.Fingerprint{Tag: 2}
	fpSF3 := identify.Fingerprint{Tag: 3}

	a.Merge(key, fpSF2, decode.Fields{"iode": 1})
	a.Merge(key, fpSF3, decode.Fields{"cic": 2})

	b.Merge(key, fpSF3, decode.Fields{"cic": 2})
	b.Merge(key, fpSF2, decode.Fields{"iode": 1})

	snapA, _ := a.Snapshot(key)
	snapB, _ := b.Snapshot(key)
	assert.Equal(t, snapA, snapB)
}

func TestSnapshotMissingBucket(t *testing.T) {
	var s Store
	_, ok := s.Snapshot(Key{GnssID: identify.GPS, SvID: 1, LayoutKey: "x"})
	assert.False(t, ok)
}

func TestResetClearsBucket(t *testing.T) {
	var s Store
	key := Key{GnssID: identify.GLONASS, SvID: 3, LayoutKey: "glo_ephemeris"}
	s.Merge(key, identify.Fingerprint{Tag: 1}, decode.Fields{"t_k_hour": 5})
	s.Reset(key)
	_, ok := s.Snapshot(key)
	assert.False(t, ok)
}
