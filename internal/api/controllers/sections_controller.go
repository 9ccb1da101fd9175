package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autopage/internal/models/request_models"
	"autopage/internal/services"
	"autopage/pkg/utils"
)

type SectionsController struct {
	sectionService services.SectionService
}

func NewSectionsController(sectionService services.SectionService) *SectionsController {
	return &SectionsController{sectionService: sectionService}
}

// ReorderSections godoc
// @Summary Reorder the sections of a page
// @Tags Sections
// @Accept json
// @Produce json
// @Param pageId path string true "Page ID"
// @Param request body request_models.ReorderSectionsRequest true "Section IDs in the desired order"
// @Success 200 {array} store_models.Section
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pages/{pageId}/sections/reorder [post]
func (s *SectionsController) ReorderSections(c *gin.Context) {
	pageID := c.Param("pageId")
	if pageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Page ID is required")
		return
	}

	var req request_models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sections, err := s.sectionService.ReorderSections(c.Request.Context(), pageID,
		c.GetString("owner_id"), c.GetString("identity_key"), req.SectionIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sections, "Sections reordered successfully")
}

// ToggleSection godoc
// @Summary Enable or disable a section
// @Tags Sections
// @Accept json
// @Produce json
// @Param sectionId path string true "Section ID"
// @Param request body request_models.ToggleSectionRequest true "Enabled flag"
// @Success 200 {object} store_models.Section
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sections/{sectionId}/toggle [patch]
func (s *SectionsController) ToggleSection(c *gin.Context) {
	sectionID := c.Param("sectionId")
	if sectionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Section ID is required")
		return
	}

	var req request_models.ToggleSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := s.sectionService.ToggleSection(c.Request.Context(), sectionID,
		c.GetString("owner_id"), c.GetString("identity_key"), *req.Enabled)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, section, "Section updated successfully")
}
