package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autopage/internal/services"
	"autopage/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// PageAnalytics godoc
// @Summary Sales and lead rollup for one page
// @Tags Analytics
// @Produce json
// @Param pageId path string true "Page ID"
// @Success 200 {object} response_models.AnalyticsReport
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /analytics/page/{pageId} [get]
func (a *AnalyticsController) PageAnalytics(c *gin.Context) {
	pageID := c.Param("pageId")
	if pageID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Page ID is required")
		return
	}

	report, err := a.analyticsService.PageAnalytics(c.Request.Context(), pageID,
		c.GetString("owner_id"), c.GetString("identity_key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Analytics fetched successfully")
}

// OwnerAnalytics godoc
// @Summary Rollup across every page the caller owns
// @Tags Analytics
// @Produce json
// @Success 200 {object} response_models.AnalyticsReport
// @Security BearerAuth
// @Router /analytics/owner [get]
func (a *AnalyticsController) OwnerAnalytics(c *gin.Context) {
	report, err := a.analyticsService.OwnerAnalytics(c.Request.Context(),
		c.GetString("owner_id"), c.GetString("identity_key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Analytics fetched successfully")
}
