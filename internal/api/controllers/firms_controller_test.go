package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinpoint/internal/models/db_models"
	"pinpoint/internal/models/request_models"
	"pinpoint/internal/models/response_models"
	"pinpoint/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFirmService struct {
	listDoc    response_models.Document
	doc        response_models.Document
	err        error
	discardErr error
}

func (s *stubFirmService) ListFirms(context.Context, string, int, int) (response_models.Document, error) {
	return s.listDoc, s.err
}

func (s *stubFirmService) CreateFirm(context.Context, request_models.CreateFirmRequest) (response_models.Document, error) {
	return s.doc, s.err
}

func (s *stubFirmService) GetFirm(context.Context, string) (response_models.Document, error) {
	return s.doc, s.err
}

func (s *stubFirmService) UpdateFirm(context.Context, string, request_models.UpdateFirmRequest) (response_models.Document, error) {
	return s.doc, s.err
}

func (s *stubFirmService) DiscardFirm(context.Context, string) error {
	return s.discardErr
}

func (s *stubFirmService) AddPinBalance(context.Context, string, request_models.CreatePinBalanceRequest) (response_models.Document, error) {
	return s.doc, s.err
}

func firmRouter(svc *stubFirmService) *gin.Engine {
	r := gin.New()
	ctrl := NewFirmsController(svc)
	r.GET("/firms", ctrl.List)
	r.POST("/firms", ctrl.Create)
	r.GET("/firms/:id", ctrl.Show)
	r.PATCH("/firms/:id", ctrl.Update)
	r.DELETE("/firms/:id", ctrl.Destroy)
	r.POST("/firms/:id/pin_balances", ctrl.CreatePinBalance)
	return r
}

func TestListFirmsRendersMeta(t *testing.T) {
	svc := &stubFirmService{listDoc: response_models.Document{
		Data: []response_models.Resource{},
		Meta: &response_models.Meta{CurrentPage: 2, PerPage: 5, TotalPages: 3},
	}}
	r := firmRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/firms?page=2&perPage=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var doc response_models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.NotNil(t, doc.Meta)
	assert.Equal(t, 2, doc.Meta.CurrentPage)
	assert.Equal(t, 5, doc.Meta.PerPage)
	assert.Equal(t, 3, doc.Meta.TotalPages)
}

func TestListFirmsRejectsBadPage(t *testing.T) {
	r := firmRouter(&stubFirmService{})

	for _, query := range []string{"page=0", "page=x", "perPage=0", "perPage=101"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/firms?"+query, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestCreateFirmValidationFailureShipsWith200(t *testing.T) {
	svc := &stubFirmService{doc: response_models.ValidationErrors([]db_models.FieldError{
		db_models.InvalidField("name", "can't be blank"),
	})}
	r := firmRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/firms", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var doc response_models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "Invalid name", doc.Errors[0].Title)
	assert.Equal(t, "/data/attributes/name", doc.Errors[0].Source.Pointer)
}

func TestCreateFirmRejectsMalformedBody(t *testing.T) {
	r := firmRouter(&stubFirmService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/firms", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShowFirmNotFound(t *testing.T) {
	r := firmRouter(&stubFirmService{err: utils.ErrFirmNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/firms/unknown", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var doc response_models.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "Firm not found", doc.Errors[0].Title)
}

func TestDestroyFirmNoContent(t *testing.T) {
	r := firmRouter(&stubFirmService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/firms/some-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDestroyFirmCascadeFailureIs500(t *testing.T) {
	r := firmRouter(&stubFirmService{discardErr: utils.ErrCascadeFailed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/firms/some-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
