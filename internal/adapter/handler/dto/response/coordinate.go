package response

import (
	"encoding/base64"
	"math"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
)

// CoordinateResponse carries the numeric fields only when they are finite;
// Text always holds the full rendering, including NaN.
type CoordinateResponse struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	VersionCode int32    `json:"version_code"`
	Text        string   `json:"text"`
	Hash        int32    `json:"hash"`
}

type EncodeResponse struct {
	Coordinate CoordinateResponse `json:"coordinate"`
	Payload    string             `json:"payload"`
}

type CompareResponse struct {
	Equal bool  `json:"equal"`
	HashA int32 `json:"hash_a"`
	HashB int32 `json:"hash_b"`
}

func CoordinateFromValue(l valueobject.LatLng) CoordinateResponse {
	return CoordinateResponse{
		Latitude:    finite(l.Latitude()),
		Longitude:   finite(l.Longitude()),
		VersionCode: l.VersionCode(),
		Text:        l.String(),
		Hash:        l.HashCode(),
	}
}

func EncodePayload(payload []byte) string {
	return base64.StdEncoding.EncodeToString(payload)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
