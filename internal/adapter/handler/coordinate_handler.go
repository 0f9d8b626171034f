package handler

import (
	"encoding/base64"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/httputil"
)

type CoordinateHandler struct {
	coordSvc CoordinateService
}

func NewCoordinateHandler(coordSvc CoordinateService) *CoordinateHandler {
	return &CoordinateHandler{coordSvc: coordSvc}
}

func (h *CoordinateHandler) Normalize(c *gin.Context) {
	var req request.CoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	l := h.coordSvc.Normalize(*req.Latitude, *req.Longitude)

	httputil.OK(c, response.CoordinateFromValue(l))
}

func (h *CoordinateHandler) Encode(c *gin.Context) {
	var req request.CoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.coordSvc.Encode(*req.Latitude, *req.Longitude)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.EncodeResponse{
		Coordinate: response.CoordinateFromValue(result.Coordinate),
		Payload:    response.EncodePayload(result.Payload),
	})
}

func (h *CoordinateHandler) Decode(c *gin.Context) {
	var req request.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	payload, err := base64.StdEncoding.DecodeString(req.Payload)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err))
		return
	}

	l, err := h.coordSvc.Decode(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.CoordinateFromValue(l))
}

func (h *CoordinateHandler) Compare(c *gin.Context) {
	var req request.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	a := h.coordSvc.Normalize(*req.A.Latitude, *req.A.Longitude)
	b := h.coordSvc.Normalize(*req.B.Latitude, *req.B.Longitude)

	httputil.OK(c, response.CompareResponse{
		Equal: a.Equal(b),
		HashA: a.HashCode(),
		HashB: b.HashCode(),
	})
}
