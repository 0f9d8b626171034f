package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/apperror"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/httputil"
)

func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrParcelNotFound):
		return apperror.NotFound("parcel")
	case errors.Is(err, domain.ErrInvalidPayload):
		return apperror.BadRequest("INVALID_PAYLOAD", "payload is not valid base64")
	case errors.Is(err, domain.ErrInvalidParcel):
		return apperror.Unprocessable("INVALID_PARCEL", err)
	default:
		return apperror.Internal(err)
	}
}

func respondError(c *gin.Context, err error) {
	httputil.HandleError(c, toAppError(err))
}
