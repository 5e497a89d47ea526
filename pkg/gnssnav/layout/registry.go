package layout

// Default returns the Bank populated with every layout this package knows
// about, keyed the same way identify resolves a frame to a layout key.
func Default() Bank {
	return Bank{
		LNavGpsSubframe2: GPSLNavSubframe2,
		LNavGpsSubframe3: GPSLNavSubframe3,
		LNavGpsAlmanac:   GPSLNavAlmanac,

		CNavGps10: CNavGps10Fields,
		CNavGps11: CNavGps11Fields,
		CNavGps12: CNavGps12Fields,
		CNavGps31: CNavGps31Fields,
		CNavGps37: CNavGps37Fields,

		INavGalWord1: INavGalileoWord1,
		INavGalWord2: INavGalileoWord2,
		INavGalWord3: INavGalileoWord3,
		INavGalWord4: INavGalileoWord4,
		INavGalWord7: INavGalileoWord7,
		INavGalWord8: INavGalileoWord8,
		INavGalWord9: INavGalileoWord9,
		INavGalWord10: INavGalileoWord10,

		GlonassString1: GlonassString1Fields,
		GlonassString2: GlonassString2Fields,
		GlonassString3: GlonassString3Fields,
		GlonassString4: GlonassString4Fields,
		GlonassString5: GlonassAlmanacFields,

		BeidouD1Subframe1:  BeidouD1Subframe1Fields,
		BeidouD1Subframe2:  BeidouD1Subframe2Fields,
		BeidouD1Subframe3:  BeidouD1Subframe3Fields,
		BeidouD1Almanac:    BeidouD1AlmanacFields,
		BeidouD1AlmanacExt: BeidouD1AlmanacExtFields,
	}
}

// PairsFor returns the combined-width pair table relevant to a given layout
// key, used by decode.go when recombining an msb/lsb split field. Returns
// nil if the layout has no split fields.
func PairsFor(layoutKey string) map[string]Field {
	switch layoutKey {
	case LNavGpsSubframe2, LNavGpsSubframe3, LNavGpsAlmanac:
		return LNavPairs()
	case INavGalWord1, INavGalWord2:
		return GalileoPairs()
	default:
		return nil
	}
}
