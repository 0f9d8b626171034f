package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/apperror"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/httputil"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/archive"
)

const MaxParcelSize = 64 << 10

type ParcelHandler struct {
	archiveSvc ArchiveService
}

func NewParcelHandler(archiveSvc ArchiveService) *ParcelHandler {
	return &ParcelHandler{archiveSvc: archiveSvc}
}

func (h *ParcelHandler) Create(c *gin.Context) {
	var req request.CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.archiveSvc.Create(c.Request.Context(), archive.CreateInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.Created(c, response.ParcelFromEntity(result.Parcel, result.BlobURL))
}

// Import accepts a raw parcel body, or a base64 body when the request is not
// sent as application/vnd.safeparcel.
func (h *ParcelHandler) Import(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxParcelSize+1))
	if err != nil {
		httputil.HandleError(c, apperror.New("INVALID_BODY", "could not read request body", http.StatusBadRequest))
		return
	}
	if len(body) > MaxParcelSize {
		httputil.HandleError(c, apperror.TooLarge(MaxParcelSize))
		return
	}

	payload := body
	if c.ContentType() != archive.ParcelContentType {
		payload, err = base64.StdEncoding.DecodeString(strings.TrimSpace(string(body)))
		if err != nil {
			respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err))
			return
		}
	}

	result, err := h.archiveSvc.Import(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.Created(c, response.ParcelFromEntity(result.Parcel, result.BlobURL))
}

func (h *ParcelHandler) List(c *gin.Context) {
	var req request.ListParcelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	parcels, pageInfo, err := h.archiveSvc.List(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ParcelsListResponse{
		Parcels:    response.ParcelsFromEntities(parcels),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *ParcelHandler) Get(c *gin.Context) {
	id, ok := parseParcelID(c)
	if !ok {
		return
	}

	result, err := h.archiveSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ParcelFromEntity(result.Parcel, result.BlobURL))
}

func (h *ParcelHandler) GetRaw(c *gin.Context) {
	id, ok := parseParcelID(c)
	if !ok {
		return
	}

	result, err := h.archiveSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.Bytes(c, archive.ParcelContentType, result.Parcel.Payload)
}

func (h *ParcelHandler) Delete(c *gin.Context) {
	id, ok := parseParcelID(c)
	if !ok {
		return
	}

	if err := h.archiveSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	httputil.NoContent(c)
}

func parseParcelID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid parcel id")
		return uuid.Nil, false
	}
	return id, true
}
