package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autopage/internal/models/request_models"
	"autopage/internal/models/response_models"
	"autopage/internal/models/store_models"
	"autopage/pkg/utils"
)

type stubPageService struct {
	createResp *response_models.CreatePageResponse
	createErr  error
	detail     *response_models.PageDetail
	detailErr  error
}

func (s *stubPageService) CreatePage(_ context.Context, _, _ string, _ *request_models.CreatePageRequest) (*response_models.CreatePageResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubPageService) GetPage(_ context.Context, _, _, _ string) (*response_models.PageDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubPageService) GetPageBySlug(_ context.Context, _ string) (*response_models.PageDetail, error) {
	return s.detail, s.detailErr
}

type stubOwnershipService struct {
	pages     []response_models.OwnedPage
	listErr   error
	attachErr error
}

func (s *stubOwnershipService) ListOwnedPages(_ context.Context, _, _ string) ([]response_models.OwnedPage, error) {
	return s.pages, s.listErr
}

func (s *stubOwnershipService) AttachOwner(_ context.Context, _ string, _ *request_models.AttachOwnerRequest) error {
	return s.attachErr
}

func (s *stubOwnershipService) CreateOrFind(_ context.Context, _, _, _ string) (*store_models.Owner, error) {
	return nil, nil
}

func newPagesRouter(pages *stubPageService, ownership *stubOwnershipService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPagesController(pages, ownership)
	r := gin.New()
	r.POST("/pages", controller.CreatePage)
	r.GET("/pages", controller.ListPages)
	r.GET("/pages/:pageId", controller.GetPage)
	r.GET("/p/:slug", controller.GetPublicPage)
	r.POST("/pages/:pageId/owner", controller.AttachOwner)
	return r
}

func TestCreatePageEndpoint(t *testing.T) {
	router := newPagesRouter(&stubPageService{
		createResp: &response_models.CreatePageResponse{Slug: "my-page-abc-1", PageURL: "/p/my-page-abc-1"},
	}, &stubOwnershipService{})

	body, _ := json.Marshal(request_models.CreatePageRequest{Title: "My Page", RawContent: "hello"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pages", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "my-page-abc-1", data["slug"])
}

func TestCreatePageEndpointRejectsMissingTitle(t *testing.T) {
	router := newPagesRouter(&stubPageService{}, &stubOwnershipService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pages", bytes.NewReader([]byte(`{"rawContent":"x"}`)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPageEndpointErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", utils.ErrPageNotFound, http.StatusNotFound},
		{"foreign page", utils.ErrInvalidScope, http.StatusForbidden},
		{"store down", utils.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPagesRouter(&stubPageService{detailErr: tt.err}, &stubOwnershipService{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/pages/abc", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestListPagesEndpoint(t *testing.T) {
	router := newPagesRouter(&stubPageService{}, &stubOwnershipService{
		pages: []response_models.OwnedPage{
			{ID: "1", Title: "a", Provenance: response_models.ProvenanceBoth},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pages", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	pages := resp.Data.([]interface{})
	require.Len(t, pages, 1)
	assert.Equal(t, "both", pages[0].(map[string]interface{})["provenance"])
}

func TestAttachOwnerEndpoint(t *testing.T) {
	router := newPagesRouter(&stubPageService{}, &stubOwnershipService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pages/abc/owner",
		bytes.NewReader([]byte(`{"ownerId":"owner-1"}`)))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicPageEndpoint(t *testing.T) {
	router := newPagesRouter(&stubPageService{
		detail: &response_models.PageDetail{Slug: "live", IsActive: true},
	}, &stubOwnershipService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p/live", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
