package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/barpoint/barpoint-api/internal/domain/entity"
	"github.com/barpoint/barpoint-api/internal/domain/enum"
	"github.com/barpoint/barpoint-api/internal/domain/repository"
	"github.com/barpoint/barpoint-api/pkg/apperror"
	"github.com/barpoint/barpoint-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.CompanyUserRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	companyRepo repository.CompanyRepository,
	userRepo repository.CompanyUserRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// Account is the authenticated identity resolved at login: a company admin,
// a company sub-user or a system admin. CompanyID is uuid.Nil for system
// admins.
type Account struct {
	UserID    uuid.UUID     `json:"user_id"`
	CompanyID uuid.UUID     `json:"company_id,omitempty"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	UserType  enum.UserType `json:"user_type"`
}

// LoginOutput represents the login output
type LoginOutput struct {
	Account *Account
	Token   string
}

// Login authenticates against companies first, then company users. A company
// row is its own admin login; sub-users and system admins live in
// company_users.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	company, err := s.companyRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if company != nil {
		if !utils.CheckPasswordHash(input.Password, company.Password) {
			return nil, apperror.ErrInvalidCredentials
		}
		if !company.Active {
			return nil, apperror.ErrCompanyInactive
		}

		account := &Account{
			UserID:    company.ID,
			CompanyID: company.ID,
			Name:      company.Name,
			Email:     company.Email,
			UserType:  enum.UserTypeCompanyAdmin,
		}
		return s.issueToken(account)
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperror.ErrUserInactive
	}

	companyID := uuid.Nil
	if user.CompanyID != nil {
		owner, err := s.companyRepo.GetByID(ctx, *user.CompanyID)
		if err != nil {
			return nil, err
		}
		if owner == nil || !owner.Active {
			return nil, apperror.ErrCompanyInactive
		}
		companyID = *user.CompanyID
	}

	account := &Account{
		UserID:    user.ID,
		CompanyID: companyID,
		Name:      user.Name,
		Email:     user.Email,
		UserType:  user.UserType,
	}
	return s.issueToken(account)
}

func (s *AuthService) issueToken(account *Account) (*LoginOutput, error) {
	token, err := s.jwtManager.GenerateToken(account.UserID, account.CompanyID, string(account.UserType), account.Email)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{Account: account, Token: token}, nil
}

// RegisterInput represents the company registration input
type RegisterInput struct {
	Name          string
	CNPJ          string
	Email         string
	Phone         string
	Password      string
	CEP           string
	Address       string
	AddressNumber string
	Neighborhood  string
	City          string
	State         string
	Website       string
	BusinessType  string
	OwnerName     string
	OwnerEmail    string
	OwnerPhone    string
}

// Register creates a new company account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.Company, error) {
	existing, err := s.companyRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	// The email namespace is shared between companies and company users
	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{
		Name:          input.Name,
		CNPJ:          input.CNPJ,
		Email:         input.Email,
		Phone:         input.Phone,
		Password:      hashedPassword,
		UserType:      enum.UserTypeCompanyAdmin,
		Active:        true,
		CEP:           input.CEP,
		Address:       input.Address,
		AddressNumber: input.AddressNumber,
		Neighborhood:  input.Neighborhood,
		City:          input.City,
		State:         input.State,
		Website:       input.Website,
		BusinessType:  input.BusinessType,
		OwnerName:     input.OwnerName,
		OwnerEmail:    input.OwnerEmail,
		OwnerPhone:    input.OwnerPhone,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Me resolves the authenticated account back to its profile
func (s *AuthService) Me(ctx context.Context, claims *utils.JWTClaims) (*Account, error) {
	userType := enum.UserType(claims.UserType)

	if userType == enum.UserTypeCompanyAdmin {
		company, err := s.companyRepo.GetByID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if company == nil || !company.Active {
			return nil, apperror.ErrUnauthorized
		}
		return &Account{
			UserID:    company.ID,
			CompanyID: company.ID,
			Name:      company.Name,
			Email:     company.Email,
			UserType:  enum.UserTypeCompanyAdmin,
		}, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ID != claims.UserID || !user.Active {
		return nil, apperror.ErrUnauthorized
	}

	companyID := uuid.Nil
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	return &Account{
		UserID:    user.ID,
		CompanyID: companyID,
		Name:      user.Name,
		Email:     user.Email,
		UserType:  user.UserType,
	}, nil
}
