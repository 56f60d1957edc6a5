package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para almacenes. La sucursal padre debe ser de la misma empresa.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	branches repository.BranchRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, branches repository.BranchRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, branches: branches}
}

// Create crea un almacén en una sucursal de la empresa.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := uc.ensureBranch(ctx, companyID, in.BranchID); err != nil {
		return nil, err
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		BranchID:  in.BranchID,
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, duplicateAs(err, "ya existe un almacén con ese nombre en la sucursal")
	}
	return toWarehouseResponse(w), nil
}

// GetByID obtiene un almacén por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// List lista almacenes por empresa.
func (uc *WarehouseUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponses(list), nil
}

// ListByBranch lista los almacenes de una sucursal.
func (uc *WarehouseUseCase) ListByBranch(ctx context.Context, companyID, branchID string) ([]dto.WarehouseResponse, error) {
	if err := uc.ensureBranch(ctx, companyID, branchID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, companyID, branchID)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponses(list), nil
}

// Update actualiza parcialmente un almacén.
func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.BranchID != nil && *in.BranchID != w.BranchID {
		if err := uc.ensureBranch(ctx, companyID, *in.BranchID); err != nil {
			return nil, err
		}
		w.BranchID = *in.BranchID
	}
	if in.Name != nil {
		w.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		w.Address = *in.Address
	}
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, duplicateAs(err, "ya existe un almacén con ese nombre en la sucursal")
	}
	return toWarehouseResponse(w), nil
}

// Delete elimina lógicamente el almacén.
func (uc *WarehouseUseCase) Delete(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	w.Deleted = true
	return toWarehouseResponse(w), nil
}

func (uc *WarehouseUseCase) get(ctx context.Context, companyID, id string) (*entity.Warehouse, error) {
	w, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFound("almacén")
	}
	return w, nil
}

func (uc *WarehouseUseCase) ensureBranch(ctx context.Context, companyID, branchID string) error {
	b, err := uc.branches.GetByID(ctx, companyID, branchID)
	if err != nil {
		return err
	}
	if b == nil {
		return notFoundF("sucursal")
	}
	return nil
}

func toWarehouseResponses(list []*entity.Warehouse) []dto.WarehouseResponse {
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWarehouseResponse(w))
	}
	return out
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		BranchID:  w.BranchID,
		Name:      w.Name,
		Address:   w.Address,
		Deleted:   w.Deleted,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
