package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/entity"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/pagination"
)

type ParcelRepo struct {
	pool *pgxpool.Pool
}

func NewParcelRepo(pool *pgxpool.Pool) *ParcelRepo {
	return &ParcelRepo{pool: pool}
}

func (r *ParcelRepo) Create(ctx context.Context, p *entity.Parcel) error {
	query := `
		INSERT INTO parcels (id, payload, version_code, latitude, longitude, blob_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Payload,
		p.Coordinate.VersionCode(), p.Coordinate.Latitude(), p.Coordinate.Longitude(),
		nullableString(p.BlobKey), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting parcel: %w", err)
	}
	return nil
}

func (r *ParcelRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Parcel, error) {
	query := `
		SELECT id, payload, blob_key, created_at
		FROM parcels
		WHERE id = $1
	`
	p, err := scanParcel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParcelNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ParcelRepo) List(ctx context.Context, params pagination.Params) ([]entity.Parcel, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM parcels").Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting parcels: %w", err)
	}

	query := `
		SELECT id, payload, blob_key, created_at
		FROM parcels
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying parcels: %w", err)
	}
	defer rows.Close()

	parcels := make([]entity.Parcel, 0, params.Limit())
	for rows.Next() {
		p, err := scanParcel(rows)
		if err != nil {
			return nil, nil, err
		}
		parcels = append(parcels, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating parcels: %w", err)
	}

	return parcels, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

func (r *ParcelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM parcels WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting parcel: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrParcelNotFound
	}
	return nil
}

// scanParcel rebuilds the coordinate from the stored payload; the numeric
// columns exist for querying only.
func scanParcel(row pgx.Row) (*entity.Parcel, error) {
	var p entity.Parcel
	var blobKey *string

	if err := row.Scan(&p.ID, &p.Payload, &blobKey, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning parcel: %w", err)
	}

	coord, err := valueobject.DecodeLatLng(p.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: stored parcel %s: %v", domain.ErrInvalidParcel, p.ID, err)
	}
	p.Coordinate = coord
	if blobKey != nil {
		p.BlobKey = *blobKey
	}

	return &p, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
