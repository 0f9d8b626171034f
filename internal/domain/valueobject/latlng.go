package valueobject

import (
	"math"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// CurrentVersionCode is the encoding revision written by NewLatLng.
	CurrentVersionCode int32 = 1
)

// LatLng is an immutable latitude/longitude pair in degrees.
//
// Values built with NewLatLng have latitude in [-90, 90] and longitude in
// [-180, 180). Values decoded from a parcel carry whatever the producer
// wrote.
type LatLng struct {
	versionCode int32
	latitude    float64
	longitude   float64
}

// NewLatLng clamps latitude to [-90, 90] and wraps longitude into
// [-180, 180).
//
// NaN propagates to the affected field. An infinite latitude clamps to the
// pole; an infinite longitude has no wrapped value and becomes NaN.
func NewLatLng(latitude, longitude float64) LatLng {
	return LatLng{
		versionCode: CurrentVersionCode,
		latitude:    clampLatitude(latitude),
		longitude:   wrapLongitude(longitude),
	}
}

func clampLatitude(lat float64) float64 {
	return math.Max(MinLatitude, math.Min(MaxLatitude, lat))
}

// math.Mod is a truncating remainder: the result takes the sign of the
// dividend, which the wrap formula relies on for negative inputs.
func wrapLongitude(lng float64) float64 {
	if MinLongitude <= lng && lng < MaxLongitude {
		return lng
	}
	return math.Mod(360+math.Mod(lng-180, 360), 360) - 180
}

func (l LatLng) VersionCode() int32 {
	return l.versionCode
}

func (l LatLng) Latitude() float64 {
	return l.latitude
}

func (l LatLng) Longitude() float64 {
	return l.longitude
}

// Equal reports whether both coordinates are bitwise equal. All NaNs compare
// equal to each other; 0.0 and -0.0 do not. Points that are geometrically
// indistinguishable but differ in the last bit are not equal.
func (l LatLng) Equal(other LatLng) bool {
	return canonicalBits(l.latitude) == canonicalBits(other.latitude) &&
		canonicalBits(l.longitude) == canonicalBits(other.longitude)
}

func (l LatLng) HashCode() int32 {
	h := 31 + foldBits(canonicalBits(l.latitude))
	return h*31 + foldBits(canonicalBits(l.longitude))
}

func (l LatLng) String() string {
	return "lat/lng: (" + formatDegrees(l.latitude) + "," + formatDegrees(l.longitude) + ")"
}

const canonicalNaN = 0x7ff8000000000000

func canonicalBits(f float64) uint64 {
	if math.IsNaN(f) {
		return canonicalNaN
	}
	return math.Float64bits(f)
}

func foldBits(b uint64) int32 {
	return int32(uint32(b ^ b>>32))
}
