package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/request"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles company registry and system administration requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Update handles PUT /companies/:id (company self-service)
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req request.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), GetCompanyID(c), id, &service.UpdateCompanyInput{
		Name:          req.Name,
		Phone:         req.Phone,
		CEP:           req.CEP,
		Address:       req.Address,
		AddressNumber: req.AddressNumber,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		Website:       req.Website,
		BusinessType:  req.BusinessType,
		OwnerName:     req.OwnerName,
		OwnerEmail:    req.OwnerEmail,
		OwnerPhone:    req.OwnerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company updated successfully", company)
}

// ListCompanies handles GET /system/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Companies retrieved successfully", companies)
}

// CreateCompany handles POST /system/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req request.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), &service.CreateCompanyInput{
		Name:          req.Name,
		CNPJ:          req.CNPJ,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		CEP:           req.CEP,
		Address:       req.Address,
		AddressNumber: req.AddressNumber,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		Website:       req.Website,
		BusinessType:  req.BusinessType,
		OwnerName:     req.OwnerName,
		OwnerEmail:    req.OwnerEmail,
		OwnerPhone:    req.OwnerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Company created successfully", company)
}

// UpdateCompanyStatus handles PATCH /system/companies/:id/status
func (h *CompanyHandler) UpdateCompanyStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.companyService.SetCompanyStatus(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company status updated successfully", company)
}

// ListCompanyUsers handles GET /system/companies/:id/users
func (h *CompanyHandler) ListCompanyUsers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	users, err := h.companyService.ListCompanyUsers(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", users)
}

// CreateCompanyUser handles POST /system/companies/:id/users
func (h *CompanyHandler) CreateCompanyUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req request.CreateCompanyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.companyService.CreateCompanyUser(c.Request.Context(), id, &service.CreateCompanyUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", user)
}

// UpdateCompanyUserStatus handles PATCH /system/companies/:id/users/:userId/status
func (h *CompanyHandler) UpdateCompanyUserStatus(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid company ID")
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.companyService.SetCompanyUserStatus(c.Request.Context(), companyID, userID, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User status updated successfully", user)
}

// DeleteCompanyUser handles DELETE /system/companies/:id/users/:userId
func (h *CompanyHandler) DeleteCompanyUser(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid company ID")
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.companyService.DeleteCompanyUser(c.Request.Context(), companyID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
