package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autopage/internal/models/request_models"
	"autopage/internal/services"
	"autopage/pkg/utils"
)

type PagesController struct {
	pageService      services.PageService
	ownershipService services.OwnershipService
}

func NewPagesController(pageService services.PageService, ownershipService services.OwnershipService) *PagesController {
	return &PagesController{
		pageService:      pageService,
		ownershipService: ownershipService,
	}
}

// CreatePage godoc
// @Summary Create a page from raw content or form data
// @Tags Pages
// @Accept json
// @Produce json
// @Param request body request_models.CreatePageRequest true "Page content"
// @Success 201 {object} response_models.CreatePageResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pages [post]
func (p *PagesController) CreatePage(c *gin.Context) {
	var req request_models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := p.pageService.CreatePage(c.Request.Context(), c.GetString("owner_id"), c.GetString("identity_key"), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Page created successfully")
}

// ListPages godoc
// @Summary List every page owned by the caller
// @Tags Pages
// @Produce json
// @Success 200 {array} response_models.OwnedPage
// @Security BearerAuth
// @Router /pages [get]
func (p *PagesController) ListPages(c *gin.Context) {
	pages, err := p.ownershipService.ListOwnedPages(c.Request.Context(), c.GetString("owner_id"), c.GetString("identity_key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pages, "Pages fetched successfully")
}

// GetPage godoc
// @Summary Get one owned page with its sections
// @Tags Pages
// @Produce json
// @Param pageId path string true "Page ID"
// @Success 200 {object} response_models.PageDetail
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pages/{pageId} [get]
func (p *PagesController) GetPage(c *gin.Context) {
	pageID := c.Param("pageId")
	if pageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Page ID is required")
		return
	}

	detail, err := p.pageService.GetPage(c.Request.Context(), pageID, c.GetString("owner_id"), c.GetString("identity_key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Page fetched successfully")
}

// GetPublicPage godoc
// @Summary Render data for a published page, by slug
// @Tags Pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} response_models.PageDetail
// @Failure 404 {object} utils.APIResponse
// @Router /p/{slug} [get]
func (p *PagesController) GetPublicPage(c *gin.Context) {
	detail, err := p.pageService.GetPageBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Page fetched successfully")
}

// AttachOwner godoc
// @Summary Attach an owner to a page on both ownership channels
// @Tags Pages
// @Accept json
// @Produce json
// @Param pageId path string true "Page ID"
// @Param request body request_models.AttachOwnerRequest true "Owner reference"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pages/{pageId}/owner [post]
func (p *PagesController) AttachOwner(c *gin.Context) {
	pageID := c.Param("pageId")
	if pageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Page ID is required")
		return
	}

	var req request_models.AttachOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := p.ownershipService.AttachOwner(c.Request.Context(), pageID, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Owner attached successfully")
}
