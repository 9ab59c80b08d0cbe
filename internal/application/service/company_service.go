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

// CompanyService handles company registry and sub-user administration
type CompanyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.CompanyUserRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo repository.CompanyRepository,
	userRepo repository.CompanyUserRepository,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// ListCompanies returns every company. System admin only.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return s.companyRepo.ListAll(ctx)
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// CreateCompanyInput represents the admin create-company input
type CreateCompanyInput struct {
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

// CreateCompany registers a company on behalf of a system admin. The given
// password is a temporary one the company admin is expected to change.
func (s *CompanyService) CreateCompany(ctx context.Context, input *CreateCompanyInput) (*entity.Company, error) {
	existing, err := s.companyRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
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

// SetCompanyStatus activates or deactivates a company. System admin only.
func (s *CompanyService) SetCompanyStatus(ctx context.Context, id uuid.UUID, active bool) (*entity.Company, error) {
	company, err := s.companyRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// UpdateCompanyInput represents the company self-service update input. Nil
// fields are left unchanged.
type UpdateCompanyInput struct {
	Name          *string
	Phone         *string
	CEP           *string
	Address       *string
	AddressNumber *string
	Neighborhood  *string
	City          *string
	State         *string
	Website       *string
	BusinessType  *string
	OwnerName     *string
	OwnerEmail    *string
	OwnerPhone    *string
}

// UpdateCompany updates a company's registry data. A company may only
// update itself; actorCompanyID is the caller's own company.
func (s *CompanyService) UpdateCompany(ctx context.Context, actorCompanyID, id uuid.UUID, input *UpdateCompanyInput) (*entity.Company, error) {
	if actorCompanyID != id {
		return nil, apperror.ErrForbidden
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Phone != nil {
		company.Phone = *input.Phone
	}
	if input.CEP != nil {
		company.CEP = *input.CEP
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.AddressNumber != nil {
		company.AddressNumber = *input.AddressNumber
	}
	if input.Neighborhood != nil {
		company.Neighborhood = *input.Neighborhood
	}
	if input.City != nil {
		company.City = *input.City
	}
	if input.State != nil {
		company.State = *input.State
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.BusinessType != nil {
		company.BusinessType = *input.BusinessType
	}
	if input.OwnerName != nil {
		company.OwnerName = *input.OwnerName
	}
	if input.OwnerEmail != nil {
		company.OwnerEmail = *input.OwnerEmail
	}
	if input.OwnerPhone != nil {
		company.OwnerPhone = *input.OwnerPhone
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanyUsers lists a company's sub-users. System admin only.
func (s *CompanyService) ListCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]entity.CompanyUser, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.userRepo.ListByCompany(ctx, companyID)
}

// CreateCompanyUserInput represents the create sub-user input
type CreateCompanyUserInput struct {
	Name     string
	Email    string
	Password string
}

// CreateCompanyUser creates a sub-user inside a company. System admin only.
func (s *CompanyService) CreateCompanyUser(ctx context.Context, companyID uuid.UUID, input *CreateCompanyUserInput) (*entity.CompanyUser, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	existingCompany, err := s.companyRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingCompany != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.CompanyUser{
		CompanyID: &companyID,
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashedPassword,
		UserType:  enum.UserTypeCompanyUser,
		Active:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetCompanyUserStatus activates or deactivates a sub-user. System admin only.
func (s *CompanyService) SetCompanyUserStatus(ctx context.Context, companyID, userID uuid.UUID, active bool) (*entity.CompanyUser, error) {
	user, err := s.userRepo.SetActive(ctx, userID, companyID, active)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// DeleteCompanyUser removes a sub-user. System admin only.
func (s *CompanyService) DeleteCompanyUser(ctx context.Context, companyID, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID, companyID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, userID, companyID)
}
