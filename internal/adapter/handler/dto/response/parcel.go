package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/entity"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/pagination"
)

type ParcelResponse struct {
	ID         uuid.UUID          `json:"id"`
	Coordinate CoordinateResponse `json:"coordinate"`
	Payload    string             `json:"payload"`
	BlobURL    string             `json:"blob_url,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type ParcelsListResponse struct {
	Parcels    []ParcelResponse   `json:"parcels"`
	Pagination PaginationResponse `json:"pagination"`
}

func ParcelFromEntity(p *entity.Parcel, blobURL string) ParcelResponse {
	return ParcelResponse{
		ID:         p.ID,
		Coordinate: CoordinateFromValue(p.Coordinate),
		Payload:    EncodePayload(p.Payload),
		BlobURL:    blobURL,
		CreatedAt:  p.CreatedAt,
	}
}

func ParcelsFromEntities(parcels []entity.Parcel) []ParcelResponse {
	result := make([]ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		result = append(result, ParcelFromEntity(&p, ""))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
