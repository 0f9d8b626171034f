package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/repository"
	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/storage"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/entity"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/pagination"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/coordinate"
)

const ParcelContentType = "application/vnd.safeparcel"

type Service struct {
	parcelRepo repository.ParcelRepository
	blobs      storage.BlobStorage
	codec      *coordinate.Service
}

// NewService builds the archive. blobs may be nil, in which case parcels are
// only stored in the repository.
func NewService(parcelRepo repository.ParcelRepository, blobs storage.BlobStorage, codec *coordinate.Service) *Service {
	return &Service{
		parcelRepo: parcelRepo,
		blobs:      blobs,
		codec:      codec,
	}
}

type CreateInput struct {
	Latitude  float64
	Longitude float64
}

type Result struct {
	Parcel  *entity.Parcel
	BlobURL string
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Result, error) {
	encoded, err := s.codec.Encode(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, entity.NewParcel(encoded.Coordinate, encoded.Payload))
}

// Import archives a parcel produced elsewhere. The payload must decode but is
// stored as given, without renormalizing.
func (s *Service) Import(ctx context.Context, payload []byte) (*Result, error) {
	coord, err := s.codec.Decode(payload)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, entity.NewParcel(coord, bytes.Clone(payload)))
}

func (s *Service) store(ctx context.Context, p *entity.Parcel) (*Result, error) {
	if s.blobs != nil {
		key := p.BlobName()
		if err := s.blobs.Put(ctx, key, bytes.NewReader(p.Payload), ParcelContentType, int64(len(p.Payload))); err != nil {
			return nil, fmt.Errorf("mirroring parcel: %w", err)
		}
		p.BlobKey = key
	}

	if err := s.parcelRepo.Create(ctx, p); err != nil {
		if p.HasBlob() {
			_ = s.blobs.Delete(ctx, p.BlobKey)
		}
		return nil, fmt.Errorf("creating parcel: %w", err)
	}

	return s.result(p), nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	p, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.result(p), nil
}

func (s *Service) List(ctx context.Context, page, perPage int) ([]entity.Parcel, *pagination.Info, error) {
	parcels, info, err := s.parcelRepo.List(ctx, pagination.NewParams(page, perPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing parcels: %w", err)
	}
	return parcels, info, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.parcelRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrInvalidParcel) {
		return err
	}

	if err := s.parcelRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting parcel: %w", err)
	}

	if p != nil && p.HasBlob() && s.blobs != nil {
		if err := s.blobs.Delete(ctx, p.BlobKey); err != nil {
			return fmt.Errorf("deleting mirrored parcel: %w", err)
		}
	}

	return nil
}

func (s *Service) result(p *entity.Parcel) *Result {
	r := &Result{Parcel: p}
	if p.HasBlob() && s.blobs != nil {
		r.BlobURL = s.blobs.GetURL(p.BlobKey)
	}
	return r
}
