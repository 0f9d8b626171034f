package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/entity"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/pagination"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/archive"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/coordinate"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type CoordinateService interface {
	Normalize(lat, lng float64) valueobject.LatLng
	Encode(lat, lng float64) (*coordinate.EncodeResult, error)
	Decode(payload []byte) (valueobject.LatLng, error)
}

type ArchiveService interface {
	Create(ctx context.Context, input archive.CreateInput) (*archive.Result, error)
	Import(ctx context.Context, payload []byte) (*archive.Result, error)
	Get(ctx context.Context, id uuid.UUID) (*archive.Result, error)
	List(ctx context.Context, page, perPage int) ([]entity.Parcel, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
