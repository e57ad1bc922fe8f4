package normalize

// ReferencePoint is a named Bali coordinate used when a record carries no
// usable GPS fix. Spreading unlocated records across these points keeps
// the dashboard map readable instead of stacking everything at (0,0).
type ReferencePoint struct {
	Name string
	Lat  float64
	Lng  float64
}

// ReferencePoints are the fallback anchors, in fallback-index order.
var ReferencePoints = []ReferencePoint{
	{Name: "Lovina Beach", Lat: -8.1580, Lng: 115.0250},
	{Name: "Kuta", Lat: -8.7170, Lng: 115.1680},
	{Name: "Sanur", Lat: -8.6880, Lng: 115.2620},
	{Name: "Ubud", Lat: -8.5070, Lng: 115.2630},
	{Name: "Amed", Lat: -8.3360, Lng: 115.6480},
}

// JitterBound is the maximum absolute offset, in degrees, applied to a
// fallback reference point.
const JitterBound = 0.01

// Location resolves a record's map position. If both coordinates are
// finite numbers and neither is exactly zero they are used verbatim with
// the supplied label (or a generic one when absent). Otherwise the record
// is assigned to a reference point chosen by fallbackIndex, offset by a
// jitter derived from the same index so the result stays deterministic,
// and labelled as an estimate.
func Location(rawLat, rawLng any, label string, fallbackIndex int) (lat, lng float64, name string, estimated bool) {
	la, okLa := FloatField(rawLat)
	ln, okLn := FloatField(rawLng)
	if okLa && okLn && la != 0 && ln != 0 {
		if label == "" {
			label = "Lokasi Akurat (GPS)"
		}
		return la, ln, label, false
	}

	if fallbackIndex < 0 {
		fallbackIndex = -fallbackIndex
	}
	ref := ReferencePoints[fallbackIndex%len(ReferencePoints)]
	return ref.Lat + jitter(fallbackIndex, 0x9e37), ref.Lng + jitter(fallbackIndex, 0x79b9),
		ref.Name + " (Estimasi)", true
}

// jitter returns a pseudo-random offset in [-JitterBound, +JitterBound)
// fully determined by the index, so re-normalizing the same dataset plots
// every record in the same place.
func jitter(index, salt int) float64 {
	h := uint64(index)*2654435761 + uint64(salt)
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return (float64(h%2000)/1000 - 1) * JitterBound
}
