package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/request"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/response"
	"github.com/barpoint/barpoint-api/pkg/pagination"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// List handles GET /purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	var filter request.PurchaseFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PurchaseFilterParams{
		Pagination: paginationFromQuery(filter.Page, filter.PerPage),
	}
	if filter.Status != "" {
		status := enum.PurchaseStatus(filter.Status)
		params.Status = &status
	}

	purchases, total, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(purchases,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Get handles GET /purchases/:id
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Create handles POST /purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]service.PurchaseItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.PurchaseItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), &service.CreatePurchaseInput{
		SupplierID: req.SupplierID,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase created successfully", purchase)
}

// UpdateStatus handles PATCH /purchases/:id/status. Delivery credits stock
// inside the transition; cancellation does not.
func (h *PurchaseHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req request.UpdatePurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var (
		purchase *entity.Purchase
		err      error
	)
	switch enum.PurchaseStatus(req.Status) {
	case enum.PurchaseStatusDelivered:
		purchase, err = h.purchaseService.DeliverPurchase(c.Request.Context(), id)
	case enum.PurchaseStatusCancelled:
		purchase, err = h.purchaseService.CancelPurchase(c.Request.Context(), id)
	default:
		response.BadRequest(c, "Invalid purchase status")
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase status updated successfully", purchase)
}
