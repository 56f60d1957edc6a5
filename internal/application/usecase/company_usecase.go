package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

const defaultCurrency = "COP"

// CompanyUseCase aplica reglas de negocio para empresas. Lectura y edición solo alcanzan
// la empresa del token; el alta la hace el operador de la plataforma.
type CompanyUseCase struct {
	tx   ports.TxRunner
	repo repository.CompanyRepository
	cost int
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(tx ports.TxRunner, repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{tx: tx, repo: repo, cost: bcrypt.DefaultCost}
}

// Create da de alta la empresa con el rol admin ("*") y su usuario administrador en una
// sola transacción. Devuelve domain.ErrDuplicate si el NIT existe y
// domain.ErrEmailAlreadyExists si el email del administrador está tomado.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		NIT:       strings.TrimSpace(in.NIT),
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Currency:  currency,
		Status:    entity.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	role := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		Name:        entity.RoleAdmin,
		Description: "Administrador con acceso total",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	perm := &entity.Permission{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		RoleID:      role.ID,
		Code:        entity.PermissionWildcard,
		Description: "Todos los permisos",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	admin := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		RoleID:    role.ID,
		Name:      strings.TrimSpace(in.Admin.Name),
		Email:     normalizeEmail(in.Admin.Email),
		Status:    entity.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.tx.Run(ctx, func(tx ports.TxRepos) error {
		if err := ensureEmailFree(ctx, tx.Users, admin.Email, ""); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Admin.Password), uc.cost)
		if err != nil {
			return err
		}
		admin.PasswordHash = string(hash)
		if err := tx.Companies.Create(ctx, company); err != nil {
			return duplicateAs(err, "ya existe una empresa con ese NIT")
		}
		if err := tx.Roles.Create(ctx, role); err != nil {
			return err
		}
		if err := tx.Permissions.Create(ctx, perm); err != nil {
			return err
		}
		return tx.Users.Create(ctx, admin)
	})
	if err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	out.AdminUserID = admin.ID
	return out, nil
}

// GetByID obtiene la empresa del token. Cualquier otro id es 404.
func (uc *CompanyUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List devuelve la empresa del token como único elemento.
func (uc *CompanyUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.CompanyResponse, error) {
	out := make([]dto.CompanyResponse, 0, 1)
	if offset > 0 || limit == 0 {
		return out, nil
	}
	company, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		out = append(out, *toCompanyResponse(company))
	}
	return out, nil
}

// Update actualiza parcialmente la empresa del token.
func (uc *CompanyUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = strings.TrimSpace(*in.Name)
	}
	if in.NIT != nil {
		company.NIT = strings.TrimSpace(*in.NIT)
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Currency != nil {
		company.Currency = strings.ToUpper(*in.Currency)
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, duplicateAs(err, "ya existe una empresa con ese NIT")
	}
	return toCompanyResponse(company), nil
}

// Delete marca la empresa del token como eliminada y la devuelve con eliminado=true.
func (uc *CompanyUseCase) Delete(ctx context.Context, companyID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return nil, err
	}
	company.Deleted = true
	return toCompanyResponse(company), nil
}

func (uc *CompanyUseCase) get(ctx context.Context, companyID, id string) (*entity.Company, error) {
	if id != companyID {
		return nil, notFoundF("empresa")
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, notFoundF("empresa")
	}
	return company, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIT:       c.NIT,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Currency:  c.Currency,
		Status:    c.Status,
		Deleted:   c.Deleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
