// Package identify implements C4: given a stitched frame and the ingest
// metadata that produced it, decide which constellation/message-kind
// layout (if any) the frame should be decoded with, and compute a
// Fingerprint distinguishing it from other frames of the same kind for the
// same satellite (e.g. GPS subframe 2 vs 3, Galileo word 7 vs 8).
package identify

import (
	"errors"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/bitfield"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/layout"
)

// GnssID mirrors the original's GnssId enum (gnss_base_basetypes.py) and the
// u-blox wire values used to route an Ingest call (ubx_base_types.py).
type GnssID int

const (
	GPS GnssID = iota
	SBAS
	Galileo
	BeiDou
	IMES
	QZSS
	GLONASS
)

// Identification errors. GlonassString returns ErrMalformedFrame; no
// function in this package returns ErrUnsupported (dispatch checks
// SupportedSignal before identifying). Unknown layouts are not an error: they are
// reported via the ok=false return and logged at Debug by the dispatcher
// per spec §7 (UnknownLayout is silently dropped, never surfaced).
var (
	ErrUnsupported    = errors.New("identify: unsupported constellation or signal")
	ErrMalformedFrame = errors.New("identify: malformed frame")
)

// Fingerprint is the struct form of the spec's "UUID (frame fingerprint)"
// concept (§9's redesign note: a small record, not a decimal-packed
// integer or a google/uuid.UUID). Tag is the component compared for
// accumulator-key equality; the rest are descriptive metadata useful for
// logging and for record builders that need to tell slots/PRNs apart.
type Fingerprint struct {
	LayoutKey string // resolves to a layout.Bank entry
	Tag       int    // subframe/page/word-type/message-type, used as the accumulator key component
	Sub       int    // PRN slot, almanac page, or other disambiguator; 0 when not applicable
}

// BeidouD2LayoutKey is a reserved key: BeiDou D2 identification is out of
// scope (spec §1 Non-goals), mirroring the original's BdsD2NavMessage stub
// class. No code path resolves a frame to it; D2 signals are rejected by
// SupportedSignal.
const BeidouD2LayoutKey = "bds_d2_unsupported"

// SupportedSignal formalizes the original's UbxSignalGnssNavMsgMap lookup:
// which (gnss, signal) combinations this package can identify at all. BeiDou
// D2 (signalID 1, the B1I-on-geostationary-D2 signal) is deliberately
// excluded.
func SupportedSignal(gnssID GnssID, signalID int) bool {
	switch gnssID {
	case GPS, Galileo, GLONASS:
		return true
	case BeiDou:
		return signalID != 1
	default:
		return false
	}
}

// gpsLNavPage4/5Lookup translate the raw SV-id field broadcast at the head
// of a subframe 4/5 page into its page number (1-25), mirroring the
// original's LNavGpsMessage.page_lookup table. Not every SV-id is a valid
// multiplex slot (e.g. subframe 4's id 33-51 dummy-SV range); ids absent
// from the table identify a page this package does not carry a layout for.
var gpsLNavPage4Lookup = map[int]int{
	57: 1, 25: 2, 26: 3, 27: 4, 28: 5, 29: 7, 30: 8, 31: 9, 32: 10, 62: 12,
	52: 13, 53: 14, 54: 15, 55: 17, 56: 18, 58: 19, 59: 20, 60: 22, 61: 23, 63: 25,
}

var gpsLNavPage5Lookup = map[int]int{
	1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 7, 8: 8, 9: 9, 10: 10,
	11: 11, 12: 12, 13: 13, 14: 14, 15: 15, 16: 16, 17: 17, 18: 18,
	19: 19, 20: 20, 21: 21, 22: 22, 23: 23, 24: 24, 51: 25,
}

// GPSLNav identifies a 300-bit GPS L-NAV subframe. Dummy/invalid SV ids (0
// and >32) and unrecognized subframe numbers are rejected per spec's worked
// GPS L-NAV identification examples.
func GPSLNav(frame []byte, svID int) (Fingerprint, bool, error) {
	if svID <= 0 || svID > 32 {
		return Fingerprint{}, false, nil
	}
	subframe := bitfield.ExtractBits(frame, 50, 3)
	switch subframe {
	case 2:
		return Fingerprint{LayoutKey: layout.LNavGpsSubframe2, Tag: 2}, true, nil
	case 3:
		return Fingerprint{LayoutKey: layout.LNavGpsSubframe3, Tag: 3}, true, nil
	case 4, 5:
		dataID := bitfield.ExtractBits(frame, 61, 2)
		pageSvID := int(bitfield.ExtractBits(frame, 63, 6))
		if dataID != 1 || pageSvID == 0 { // dataID must be 0b01; 0 is the dummy SV
			return Fingerprint{}, false, nil
		}
		lookup := gpsLNavPage4Lookup
		if subframe == 5 {
			lookup = gpsLNavPage5Lookup
		}
		page, ok := lookup[pageSvID]
		if !ok {
			return Fingerprint{}, false, nil
		}
		return Fingerprint{LayoutKey: layout.LNavGpsAlmanac, Tag: int(subframe), Sub: page}, true, nil
	default:
		return Fingerprint{}, false, nil
	}
}

// GPSCNav identifies a 300-bit GPS CNAV message by message_type (bits
// 15-20). Message types this package doesn't carry a layout for are
// UnknownLayout, not an error (spec's CNAV discard examples).
func GPSCNav(frame []byte) (Fingerprint, bool, error) {
	msgType := bitfield.ExtractBits(frame, 15, 6)
	switch msgType {
	case 10:
		return Fingerprint{LayoutKey: layout.CNavGps10, Tag: 10}, true, nil
	case 11:
		return Fingerprint{LayoutKey: layout.CNavGps11, Tag: 11}, true, nil
	case 12:
		return Fingerprint{LayoutKey: layout.CNavGps12, Tag: 12}, true, nil
	case 31:
		return Fingerprint{LayoutKey: layout.CNavGps31, Tag: 31}, true, nil
	case 37:
		prn := bitfield.ExtractBits(frame, 149, 6)
		return Fingerprint{LayoutKey: layout.CNavGps37, Tag: 37, Sub: int(prn)}, true, nil
	default:
		return Fingerprint{}, false, nil
	}
}

// GalileoINav identifies an I-NAV word pair. Even/odd mismatches and
// alert-page words are rejected earlier, in dispatch.stitchGalileo (C7,
// mirroring _preprocess_ubx_gal's even/odd+alert rejection): by the time a
// frame reaches here it has already passed that check.
func GalileoINav(frame []byte) (Fingerprint, bool, error) {
	wordType := bitfield.ExtractBits(frame, 0, 6)
	switch wordType {
	case 1:
		return Fingerprint{LayoutKey: layout.INavGalWord1, Tag: 1}, true, nil
	case 2:
		return Fingerprint{LayoutKey: layout.INavGalWord2, Tag: 2}, true, nil
	case 3:
		return Fingerprint{LayoutKey: layout.INavGalWord3, Tag: 3}, true, nil
	case 4:
		return Fingerprint{LayoutKey: layout.INavGalWord4, Tag: 4}, true, nil
	case 7:
		iodA := int(bitfield.ExtractBits(frame, 6, 4))
		return Fingerprint{LayoutKey: layout.INavGalWord7, Tag: 7, Sub: iodA}, true, nil
	case 8:
		iodA := int(bitfield.ExtractBits(frame, 6, 4))
		return Fingerprint{LayoutKey: layout.INavGalWord8, Tag: 8, Sub: iodA}, true, nil
	case 9:
		iodA := int(bitfield.ExtractBits(frame, 6, 4))
		return Fingerprint{LayoutKey: layout.INavGalWord9, Tag: 9, Sub: iodA}, true, nil
	case 10:
		iodA := int(bitfield.ExtractBits(frame, 6, 4))
		return Fingerprint{LayoutKey: layout.INavGalWord10, Tag: 10, Sub: iodA}, true, nil
	default:
		// word types 0 (spare), 5 (SAR-only), 6 (GST-UTC), 0x3f (dummy) carry
		// no ephemeris/almanac payload this package builds records from.
		return Fingerprint{}, false, nil
	}
}

// GlonassString identifies one 85-bit GLONASS string by string_number
// (bits 81-84). Strings without an explicit frame_number (6-15, almanac
// strings) require the caller to have supplied one out-of-band (spec's
// GLONASS frame-number-absence open question, resolved per Decision
// GLO-1 in DESIGN.md: Ingest requires frame_number for GLONASS). Tag is
// fixed at 5 (the layout's accumulator-key family, matching
// layout.GlonassString5) for every almanac string 6-15; Sub carries the
// slot so record.BuildGlonassAlmanac can tell slots apart.
func GlonassString(frame []byte, frameNumber int) (Fingerprint, bool, error) {
	n := bitfield.ExtractBits(frame, 81, 4)
	switch n {
	case 1:
		return Fingerprint{LayoutKey: layout.GlonassString1, Tag: 1}, true, nil
	case 2:
		return Fingerprint{LayoutKey: layout.GlonassString2, Tag: 2}, true, nil
	case 3:
		return Fingerprint{LayoutKey: layout.GlonassString3, Tag: 3}, true, nil
	case 4:
		return Fingerprint{LayoutKey: layout.GlonassString4, Tag: 4}, true, nil
	default:
		if n < 6 || n > 15 {
			return Fingerprint{}, false, nil
		}
		if frameNumber <= 0 {
			return Fingerprint{}, false, ErrMalformedFrame
		}
		slot := (frameNumber-1)*10 + int(n) - 6
		return Fingerprint{LayoutKey: layout.GlonassString5, Tag: 5, Sub: slot}, true, nil
	}
}

// BeidouD1 identifies a 300-bit BeiDou D1 subframe. Subframes 4/5 pages are
// gated on AmEpId (the expanded-almanac edge case): only pages actually
// carrying the PRN 31-63 payload resolve to BeidouD1AlmanacExt.
func BeidouD1(frame []byte, svID int) (Fingerprint, bool, error) {
	if svID <= 0 || svID > 63 {
		return Fingerprint{}, false, nil
	}
	subframe := bitfield.ExtractBits(frame, 16, 3)
	switch subframe {
	case 1:
		return Fingerprint{LayoutKey: layout.BeidouD1Subframe1, Tag: 1}, true, nil
	case 2:
		return Fingerprint{LayoutKey: layout.BeidouD1Subframe2, Tag: 2}, true, nil
	case 3:
		return Fingerprint{LayoutKey: layout.BeidouD1Subframe3, Tag: 3}, true, nil
	case 4, 5:
		page := bitfield.ExtractBits(frame, 44, 7)
		if page < 1 || page > 24 {
			return Fingerprint{}, false, nil
		}
		if subframe == 5 && page >= 11 && page <= 24 {
			amEpID := amEpIDFor(frame, int(page))
			if amEpID == 3 {
				return Fingerprint{LayoutKey: layout.BeidouD1AlmanacExt, Tag: int(subframe), Sub: int(page)}, true, nil
			}
		}
		return Fingerprint{LayoutKey: layout.BeidouD1Almanac, Tag: int(subframe), Sub: int(page)}, true, nil
	default:
		return Fingerprint{}, false, nil
	}
}

func amEpIDFor(frame []byte, page int) int {
	if page == 24 {
		return int(bitfield.ExtractBits(frame, layout.BeidouAmEpIdPage24.Start, layout.BeidouAmEpIdPage24.Len))
	}
	return int(bitfield.ExtractBits(frame, layout.BeidouAmEpIdPages11to23.Start, layout.BeidouAmEpIdPages11to23.Len))
}
