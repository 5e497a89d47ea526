package dispatch

import (
	"fmt"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/identify"
)

// stitch concatenates in.DataWords into one big-endian bit string per
// constellation's wire format (spec §6.1's word-count table), mirroring
// int_append_int's role in the original's _preprocess_ubx_* functions.
func stitch(in Ingest) ([]byte, error) {
	switch in.GnssID {
	case identify.GPS, identify.BeiDou:
		return packWords(in.DataWords, 10, 30)
	case identify.GLONASS:
		return packWords(in.DataWords, 4, 32)
	case identify.Galileo:
		return stitchGalileo(in.DataWords)
	default:
		return packWords(in.DataWords, len(in.DataWords), 32)
	}
}

func packWords(words []uint32, wantCount, bitsPerWord int) ([]byte, error) {
	if len(words) != wantCount {
		return nil, fmt.Errorf("expected %d words, got %d", wantCount, len(words))
	}
	totalBits := wantCount * bitsPerWord
	frame := make([]byte, (totalBits+7)/8)
	for i, w := range words {
		bitfield.SetBits(frame, i*bitsPerWord, bitsPerWord, uint64(w)&mask(bitsPerWord))
	}
	return frame, nil
}

// stitchGalileo handles the even/odd I-NAV page pairing: 8 data words means
// the page was broadcast on E5b-I (freq_id 5), 9 means E1-B (freq_id 1),
// mirroring _preprocess_ubx_gal's word-count-based band inference. The band
// itself is not recorded: both word counts are stitched the same way. Each
// half-page occupies four words; the 128-bit word handed to identification
// is the even half's 112 data bits followed by the odd half's first 16 data
// bits, with each half's even/odd and page-type bits dropped.
//
// Before stitching, it validates the even/odd and alert-page invariant the
// original checks on the first word of each half-page: bit 31 (the MSB) of
// word[0] must be 0 (even half) and bit 31 of word[4] must be 1 (odd half);
// bit 30 of either word set (the page-type bit) being 1 marks an alert page,
// which carries no navigation payload and is rejected outright.
func stitchGalileo(words []uint32) ([]byte, error) {
	if len(words) != 8 && len(words) != 9 {
		return nil, fmt.Errorf("%w: expected 8 or 9 Galileo data words, got %d", identify.ErrMalformedFrame, len(words))
	}
	evenFirst, oddFirst := words[0], words[4]
	oddEven1, oddEven2 := (evenFirst>>31)&1, (oddFirst>>31)&1
	pageType1, pageType2 := (evenFirst>>30)&1, (oddFirst>>30)&1
	if pageType1 == 1 || pageType2 == 1 {
		return nil, fmt.Errorf("%w: Galileo alert page", identify.ErrMalformedFrame)
	}
	if oddEven1 != 0 || oddEven2 != 1 {
		return nil, fmt.Errorf("%w: Galileo even/odd page stitching invariant violated", identify.ErrMalformedFrame)
	}

	even := make([]byte, 16)
	odd := make([]byte, 16)
	for i := 0; i < 4; i++ {
		bitfield.SetBits(even, i*32, 32, uint64(words[i]))
		bitfield.SetBits(odd, i*32, 32, uint64(words[4+i]))
	}
	frame := make([]byte, 16) // 128 bits
	bitfield.SetBits(frame, 0, 56, bitfield.ExtractBits(even, 2, 56))
	bitfield.SetBits(frame, 56, 56, bitfield.ExtractBits(even, 58, 56))
	bitfield.SetBits(frame, 112, 16, bitfield.ExtractBits(odd, 2, 16))
	return frame, nil
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}
