package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autopage/internal/models/request_models"
	"autopage/internal/services"
	"autopage/pkg/utils"
)

type TransactionsController struct {
	transactionService services.TransactionService
}

func NewTransactionsController(transactionService services.TransactionService) *TransactionsController {
	return &TransactionsController{transactionService: transactionService}
}

// CreatePurchase godoc
// @Summary Record a buyer purchase against a page
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body request_models.CreatePurchaseRequest true "Purchase"
// @Success 201 {object} store_models.Purchase
// @Failure 400 {object} utils.APIResponse
// @Router /purchases [post]
func (t *TransactionsController) CreatePurchase(c *gin.Context) {
	var req request_models.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	purchase, err := t.transactionService.CreatePurchase(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, purchase, "Purchase recorded successfully")
}

// UpdatePurchaseStatus godoc
// @Summary Advance a purchase through its lifecycle
// @Tags Transactions
// @Accept json
// @Produce json
// @Param purchaseId path string true "Purchase ID"
// @Param request body request_models.UpdatePurchaseStatusRequest true "Next status"
// @Success 200 {object} store_models.Purchase
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /purchases/{purchaseId}/status [patch]
func (t *TransactionsController) UpdatePurchaseStatus(c *gin.Context) {
	purchaseID := c.Param("purchaseId")
	if purchaseID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Purchase ID is required")
		return
	}

	var req request_models.UpdatePurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	purchase, err := t.transactionService.UpdatePurchaseStatus(c.Request.Context(), purchaseID,
		c.GetString("owner_id"), c.GetString("identity_key"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, purchase, "Purchase status updated successfully")
}

// CreateLead godoc
// @Summary Record a visitor lead against a page
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body request_models.CreateLeadRequest true "Lead"
// @Success 201 {object} store_models.Lead
// @Failure 400 {object} utils.APIResponse
// @Router /leads [post]
func (t *TransactionsController) CreateLead(c *gin.Context) {
	var req request_models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := t.transactionService.CreateLead(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, lead, "Lead recorded successfully")
}

// UpdateLeadStatus godoc
// @Summary Update the appointment status of a lead
// @Tags Transactions
// @Accept json
// @Produce json
// @Param leadId path string true "Lead ID"
// @Param request body request_models.UpdateLeadStatusRequest true "Next status"
// @Success 200 {object} store_models.Lead
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leads/{leadId}/status [patch]
func (t *TransactionsController) UpdateLeadStatus(c *gin.Context) {
	leadID := c.Param("leadId")
	if leadID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Lead ID is required")
		return
	}

	var req request_models.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := t.transactionService.UpdateLeadStatus(c.Request.Context(), leadID,
		c.GetString("owner_id"), c.GetString("identity_key"), req.AppointmentStatus)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lead, "Lead status updated successfully")
}
