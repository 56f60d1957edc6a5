package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// CashRegisterUseCase CRUD de cajas. Apertura y cierre viven en el paquete cash.
type CashRegisterUseCase struct {
	repo     repository.CashRegisterRepository
	branches repository.BranchRepository
}

// NewCashRegisterUseCase construye el caso de uso.
func NewCashRegisterUseCase(repo repository.CashRegisterRepository, branches repository.BranchRepository) *CashRegisterUseCase {
	return &CashRegisterUseCase{repo: repo, branches: branches}
}

// Create crea una caja cerrada en una sucursal de la empresa.
func (uc *CashRegisterUseCase) Create(ctx context.Context, companyID string, in dto.CreateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	if err := uc.ensureBranch(ctx, companyID, in.BranchID); err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.CashRegister{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		BranchID:  in.BranchID,
		Name:      strings.TrimSpace(in.Name),
		Status:    entity.CashStatusClosed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, duplicateAs(err, "ya existe una caja con ese nombre en la sucursal")
	}
	return toCashRegisterResponse(r), nil
}

// GetByID obtiene una caja.
func (uc *CashRegisterUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CashRegisterResponse, error) {
	r, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toCashRegisterResponse(r), nil
}

// List lista las cajas de la empresa.
func (uc *CashRegisterUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.CashRegisterResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toCashRegisterResponses(list), nil
}

// ListByBranch lista las cajas de una sucursal.
func (uc *CashRegisterUseCase) ListByBranch(ctx context.Context, companyID, branchID string) ([]dto.CashRegisterResponse, error) {
	if err := uc.ensureBranch(ctx, companyID, branchID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, companyID, branchID)
	if err != nil {
		return nil, err
	}
	return toCashRegisterResponses(list), nil
}

// Update cambia nombre o sucursal. El estado solo cambia al abrir o cerrar.
func (uc *CashRegisterUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	r, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.BranchID != nil && *in.BranchID != r.BranchID {
		if r.Status == entity.CashStatusOpen {
			return nil, domain.Errorf(domain.ErrCashRegisterOpen, "no se puede mover una caja abierta de sucursal")
		}
		if err := uc.ensureBranch(ctx, companyID, *in.BranchID); err != nil {
			return nil, err
		}
		r.BranchID = *in.BranchID
	}
	if in.Name != nil {
		r.Name = strings.TrimSpace(*in.Name)
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, duplicateAs(err, "ya existe una caja con ese nombre en la sucursal")
	}
	return toCashRegisterResponse(r), nil
}

// Delete elimina lógicamente una caja cerrada.
func (uc *CashRegisterUseCase) Delete(ctx context.Context, companyID, id string) (*dto.CashRegisterResponse, error) {
	r, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if r.Status == entity.CashStatusOpen {
		return nil, domain.Errorf(domain.ErrCashRegisterOpen, "cierre la caja antes de eliminarla")
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	r.Deleted = true
	return toCashRegisterResponse(r), nil
}

func (uc *CashRegisterUseCase) get(ctx context.Context, companyID, id string) (*entity.CashRegister, error) {
	r, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFoundF("caja")
	}
	return r, nil
}

func (uc *CashRegisterUseCase) ensureBranch(ctx context.Context, companyID, branchID string) error {
	b, err := uc.branches.GetByID(ctx, companyID, branchID)
	if err != nil {
		return err
	}
	if b == nil {
		return notFoundF("sucursal")
	}
	return nil
}

func toCashRegisterResponses(list []*entity.CashRegister) []dto.CashRegisterResponse {
	out := make([]dto.CashRegisterResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toCashRegisterResponse(r))
	}
	return out
}

// toCashRegisterResponse convierte la entidad a DTO.
func toCashRegisterResponse(r *entity.CashRegister) *dto.CashRegisterResponse {
	return &dto.CashRegisterResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		BranchID:  r.BranchID,
		Name:      r.Name,
		Status:    r.Status,
		Deleted:   r.Deleted,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
