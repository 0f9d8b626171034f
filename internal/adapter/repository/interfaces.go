package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/entity"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type ParcelRepository interface {
	Create(ctx context.Context, p *entity.Parcel) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Parcel, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Parcel, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
