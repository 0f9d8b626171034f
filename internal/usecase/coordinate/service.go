package coordinate

import (
	"fmt"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
)

const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// Recorder observes codec outcomes. err is nil on success.
type Recorder interface {
	Observe(op string, err error)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, error) {}

type Service struct {
	recorder Recorder
}

func NewService(recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{recorder: recorder}
}

func (s *Service) Normalize(lat, lng float64) valueobject.LatLng {
	return valueobject.NewLatLng(lat, lng)
}

type EncodeResult struct {
	Coordinate valueobject.LatLng
	Payload    []byte
}

func (s *Service) Encode(lat, lng float64) (*EncodeResult, error) {
	coord := valueobject.NewLatLng(lat, lng)

	payload, err := coord.MarshalBinary()
	s.recorder.Observe(OpEncode, err)
	if err != nil {
		return nil, fmt.Errorf("encoding coordinate: %w", err)
	}

	return &EncodeResult{Coordinate: coord, Payload: payload}, nil
}

// Decode trusts the payload: values are returned exactly as encoded.
func (s *Service) Decode(payload []byte) (valueobject.LatLng, error) {
	coord, err := valueobject.DecodeLatLng(payload)
	s.recorder.Observe(OpDecode, err)
	if err != nil {
		return valueobject.LatLng{}, fmt.Errorf("%w: %v", domain.ErrInvalidParcel, err)
	}
	return coord, nil
}
