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

// BranchUseCase casos de uso CRUD de sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal. Nombre único por empresa.
func (uc *BranchUseCase) Create(ctx context.Context, companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	b := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, duplicateAs(err, "ya existe una sucursal con ese nombre")
	}
	return toBranchResponse(b), nil
}

// GetByID obtiene una sucursal de la empresa.
func (uc *BranchUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.BranchResponse, error) {
	b, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toBranchResponse(b), nil
}

// List lista sucursales de la empresa.
func (uc *BranchUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.BranchResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBranchResponse(b))
	}
	return out, nil
}

// Update actualiza parcialmente una sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	b, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, duplicateAs(err, "ya existe una sucursal con ese nombre")
	}
	return toBranchResponse(b), nil
}

// Delete elimina lógicamente la sucursal.
func (uc *BranchUseCase) Delete(ctx context.Context, companyID, id string) (*dto.BranchResponse, error) {
	b, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	b.Deleted = true
	return toBranchResponse(b), nil
}

func (uc *BranchUseCase) get(ctx context.Context, companyID, id string) (*entity.Branch, error) {
	b, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFoundF("sucursal")
	}
	return b, nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		Deleted:   b.Deleted,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
