package valueobject

import (
	"fmt"

	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/parcel"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/safeparcel"
)

const (
	fieldVersionCode = 1
	fieldLatitude    = 2
	fieldLongitude   = 3
)

// latLngRecord collects decoded fields before the LatLng is built.
type latLngRecord struct {
	versionCode int32
	latitude    float64
	longitude   float64
}

var latLngSchema = safeparcel.NewSchema(
	safeparcel.Int32(fieldVersionCode,
		LatLng.VersionCode,
		func(r *latLngRecord, v int32) { r.versionCode = v }),
	safeparcel.Float64(fieldLatitude,
		LatLng.Latitude,
		func(r *latLngRecord, v float64) { r.latitude = v }),
	safeparcel.Float64(fieldLongitude,
		LatLng.Longitude,
		func(r *latLngRecord, v float64) { r.longitude = v }),
)

func (l LatLng) WriteToParcel(p *parcel.Parcel) error {
	if err := latLngSchema.Write(p, l); err != nil {
		return fmt.Errorf("writing latlng: %w", err)
	}
	return nil
}

// ReadLatLng decodes one LatLng at the parcel's current position. Values are
// taken verbatim; fields missing from the stream keep the placeholders
// versionCode -1, latitude 0 and longitude 0.
func ReadLatLng(p *parcel.Parcel) (LatLng, error) {
	rec := latLngRecord{versionCode: -1}
	if err := latLngSchema.Read(p, &rec); err != nil {
		return LatLng{}, fmt.Errorf("reading latlng: %w", err)
	}
	return LatLng{
		versionCode: rec.versionCode,
		latitude:    rec.latitude,
		longitude:   rec.longitude,
	}, nil
}

func (l LatLng) MarshalBinary() ([]byte, error) {
	p := parcel.New()
	if err := l.WriteToParcel(p); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

func DecodeLatLng(data []byte) (LatLng, error) {
	return ReadLatLng(parcel.FromBytes(data))
}
