package scene

// MetadataKeyDistanceUnit is the metadata key carrying the scene's native
// distance unit.
const MetadataKeyDistanceUnit = "distance unit"

// UnitScale derives the scalar converting scene-native distances to meters
// from the scene metadata. Unknown unit tokens, a missing key, or a
// non-string value all resolve to 1.0; the scene is then treated as already
// being in meters. Token matching is exact and case-sensitive.
func UnitScale(md Metadata) float64 {
	entry, ok := md[MetadataKeyDistanceUnit]
	if !ok {
		return 1.0
	}
	unit, ok := entry.Value.(string)
	if !ok {
		return 1.0
	}
	switch unit {
	case "centimeter", "cm":
		return 0.01
	case "millimeter", "mm":
		return 0.001
	case "foot", "ft":
		return 0.3048
	case "inch", "in":
		return 0.0254
	default:
		return 1.0
	}
}
