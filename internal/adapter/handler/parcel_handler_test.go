package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/entity"
	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
	"github.com/marcos-nsantos/latlng-parcel/internal/mocks"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/pagination"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/parcel"
	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/safeparcel"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/archive"
)

// nanParcel builds a parcel whose latitude is NaN, which NewLatLng can
// produce but which is easier to express on the wire.
func nanParcel(t *testing.T) []byte {
	t.Helper()
	p := parcel.New()
	start := safeparcel.BeginObject(p)
	safeparcel.WriteHeader(p, 1, 4)
	p.WriteInt32(1)
	safeparcel.WriteHeader(p, 2, 8)
	p.WriteFloat64(math.NaN())
	safeparcel.WriteHeader(p, 3, 8)
	p.WriteFloat64(0)
	require.NoError(t, safeparcel.EndObject(p, start))
	return p.Bytes()
}

func newParcel(t *testing.T, lat, lng float64) *entity.Parcel {
	t.Helper()
	coord := valueobject.NewLatLng(lat, lng)
	payload, err := coord.MarshalBinary()
	require.NoError(t, err)
	return entity.NewParcel(coord, payload)
}

func TestParcelHandler_Create(t *testing.T) {
	t.Run("creates parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels", h.Create)

		p := newParcel(t, 1.5, -2.25)
		archiveSvc.EXPECT().
			Create(gomock.Any(), archive.CreateInput{Latitude: 1.5, Longitude: -2.25}).
			Return(&archive.Result{Parcel: p, BlobURL: "http://blobs/x"}, nil)

		w := postJSON(router, "/parcels", `{"latitude":1.5,"longitude":-2.25}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, p.ID.String(), resp["id"])
		assert.Equal(t, base64.StdEncoding.EncodeToString(p.Payload), resp["payload"])
		assert.Equal(t, "http://blobs/x", resp["blob_url"])
	})

	t.Run("returns validation error for missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels", h.Create)

		w := postJSON(router, "/parcels", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParcelHandler_Import(t *testing.T) {
	t.Run("imports raw parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels/import", h.Import)

		p := newParcel(t, 10, 20)
		archiveSvc.EXPECT().Import(gomock.Any(), p.Payload).Return(&archive.Result{Parcel: p}, nil)

		req := httptest.NewRequest(http.MethodPost, "/parcels/import", bytes.NewReader(p.Payload))
		req.Header.Set("Content-Type", archive.ParcelContentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("imports base64 body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels/import", h.Import)

		p := newParcel(t, 10, 20)
		archiveSvc.EXPECT().Import(gomock.Any(), p.Payload).Return(&archive.Result{Parcel: p}, nil)

		body := base64.StdEncoding.EncodeToString(p.Payload) + "\n"
		req := httptest.NewRequest(http.MethodPost, "/parcels/import", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels/import", h.Import)

		req := httptest.NewRequest(http.MethodPost, "/parcels/import", bytes.NewBufferString("%%%"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_PAYLOAD", resp["code"])
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels/import", h.Import)

		req := httptest.NewRequest(http.MethodPost, "/parcels/import", bytes.NewReader(make([]byte, handler.MaxParcelSize+1)))
		req.Header.Set("Content-Type", archive.ParcelContentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("returns unprocessable for corrupt parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.POST("/parcels/import", h.Import)

		archiveSvc.EXPECT().Import(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidParcel)

		req := httptest.NewRequest(http.MethodPost, "/parcels/import", bytes.NewBufferString("abcd"))
		req.Header.Set("Content-Type", archive.ParcelContentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestParcelHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	archiveSvc := mocks.NewMockArchiveService(ctrl)
	h := handler.NewParcelHandler(archiveSvc)

	router := setupRouter()
	router.GET("/parcels", h.List)

	parcels := []entity.Parcel{*newParcel(t, 1, 2), *newParcel(t, 3, 4)}
	archiveSvc.EXPECT().List(gomock.Any(), 2, 10).Return(parcels, &pagination.Info{
		Page: 2, PerPage: 10, TotalItems: 12, TotalPages: 2, HasPrev: true,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/parcels?page=2&per_page=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["parcels"], 2)
	page := resp["pagination"].(map[string]any)
	assert.Equal(t, 12.0, page["total_items"])
	assert.Equal(t, true, page["has_prev"])
}

func TestParcelHandler_Get(t *testing.T) {
	t.Run("returns parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.GET("/parcels/:id", h.Get)

		p := newParcel(t, 5, 6)
		archiveSvc.EXPECT().Get(gomock.Any(), p.ID).Return(&archive.Result{Parcel: p}, nil)

		req := httptest.NewRequest(http.MethodGet, "/parcels/"+p.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		_, hasBlob := resp["blob_url"]
		assert.False(t, hasBlob)
	})

	t.Run("returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.GET("/parcels/:id", h.Get)

		id := uuid.New()
		archiveSvc.EXPECT().Get(gomock.Any(), id).Return(nil, domain.ErrParcelNotFound)

		req := httptest.NewRequest(http.MethodGet, "/parcels/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns bad request for invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.GET("/parcels/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/parcels/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParcelHandler_GetRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	archiveSvc := mocks.NewMockArchiveService(ctrl)
	h := handler.NewParcelHandler(archiveSvc)

	router := setupRouter()
	router.GET("/parcels/:id/raw", h.GetRaw)

	p := newParcel(t, 1.5, -2.25)
	archiveSvc.EXPECT().Get(gomock.Any(), p.ID).Return(&archive.Result{Parcel: p}, nil)

	req := httptest.NewRequest(http.MethodGet, "/parcels/"+p.ID.String()+"/raw", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, archive.ParcelContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, p.Payload, w.Body.Bytes())
}

func TestParcelHandler_Delete(t *testing.T) {
	t.Run("deletes parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.DELETE("/parcels/:id", h.Delete)

		id := uuid.New()
		archiveSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/parcels/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		archiveSvc := mocks.NewMockArchiveService(ctrl)
		h := handler.NewParcelHandler(archiveSvc)

		router := setupRouter()
		router.DELETE("/parcels/:id", h.Delete)

		id := uuid.New()
		archiveSvc.EXPECT().Delete(gomock.Any(), id).Return(domain.ErrParcelNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/parcels/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
