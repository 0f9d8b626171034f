package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
)

// Parcel is an archived, encoded coordinate. Coordinate always mirrors what
// Payload decodes to.
type Parcel struct {
	ID         uuid.UUID
	Payload    []byte
	Coordinate valueobject.LatLng
	BlobKey    string
	CreatedAt  time.Time
}

func NewParcel(coord valueobject.LatLng, payload []byte) *Parcel {
	return &Parcel{
		ID:         uuid.New(),
		Payload:    payload,
		Coordinate: coord,
		CreatedAt:  time.Now().UTC(),
	}
}

func (p *Parcel) BlobName() string {
	return "parcels/" + p.ID.String() + ".parcel"
}

func (p *Parcel) HasBlob() bool {
	return p.BlobKey != ""
}
