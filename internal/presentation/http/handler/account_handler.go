package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/request"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/response"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// AccountHandler handles accounts receivable and payable HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func accountFilterParams(c *gin.Context) (*repository.AccountFilterParams, bool) {
	var filter request.AccountFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, false
	}

	params := &repository.AccountFilterParams{
		Pagination: paginationFromQuery(filter.Page, filter.PerPage),
	}
	if filter.Status != "" {
		status := enum.AccountStatus(filter.Status)
		params.Status = &status
	}
	return params, true
}

// ListReceivables handles GET /accounts-receivable
func (h *AccountHandler) ListReceivables(c *gin.Context) {
	params, ok := accountFilterParams(c)
	if !ok {
		return
	}

	accounts, total, err := h.accountService.ListReceivables(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(accounts,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Receivables retrieved successfully", result)
}

// CreateReceivable handles POST /accounts-receivable
func (h *AccountHandler) CreateReceivable(c *gin.Context) {
	var req request.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accountService.CreateReceivable(c.Request.Context(), &service.CreateReceivableInput{
		SaleID:      req.SaleID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receivable created successfully", account)
}

// UpdateReceivableStatus handles PATCH /accounts-receivable/:id/status
func (h *AccountHandler) UpdateReceivableStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid receivable ID")
		return
	}

	var req request.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accountService.UpdateReceivableStatus(c.Request.Context(), id, enum.AccountStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receivable status updated successfully", account)
}

// ListPayables handles GET /accounts-payable
func (h *AccountHandler) ListPayables(c *gin.Context) {
	params, ok := accountFilterParams(c)
	if !ok {
		return
	}

	accounts, total, err := h.accountService.ListPayables(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(accounts,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Payables retrieved successfully", result)
}

// CreatePayable handles POST /accounts-payable
func (h *AccountHandler) CreatePayable(c *gin.Context) {
	var req request.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accountService.CreatePayable(c.Request.Context(), &service.CreatePayableInput{
		SupplierID:  req.SupplierID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payable created successfully", account)
}

// UpdatePayableStatus handles PATCH /accounts-payable/:id/status
func (h *AccountHandler) UpdatePayableStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid payable ID")
		return
	}

	var req request.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accountService.UpdatePayableStatus(c.Request.Context(), id, enum.AccountStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payable status updated successfully", account)
}
