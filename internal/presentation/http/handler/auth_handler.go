package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barpoint/barpoint-api/internal/application/service"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/request"
	"github.com/barpoint/barpoint-api/internal/presentation/http/dto/response"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	jwtManager  *utils.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, jwtManager *utils.JWTManager) *AuthHandler {
	return &AuthHandler{authService: authService, jwtManager: jwtManager}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token": out.Token,
		"user":  out.Account,
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
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

	token, err := h.jwtManager.GenerateToken(company.ID, company.ID, string(company.UserType), company.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Company registered successfully", gin.H{
		"token":   token,
		"company": company,
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := &utils.JWTClaims{
		UserID:    GetUserID(c),
		CompanyID: GetCompanyID(c),
		UserType:  string(GetUserType(c)),
		Email:     GetUserEmail(c),
	}

	account, err := h.authService.Me(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account retrieved successfully", account)
}
