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
	"github.com/NotSleepp/possbien/pkg/textutil"
)

// maxCategoryDepth corta la búsqueda de ciclos en árboles corruptos.
const maxCategoryDepth = 32

// CategoryUseCase CRUD de categorías (árbol por id_padre).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Sin código se usa el slug del nombre.
func (uc *CategoryUseCase) Create(ctx context.Context, companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	id := uuid.New().String()
	parentID, err := uc.resolveParent(ctx, companyID, id, in.ParentID)
	if err != nil {
		return nil, err
	}
	code, err := categoryCode(in.Code, in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{
		ID:        id,
		CompanyID: companyID,
		ParentID:  parentID,
		Name:      strings.TrimSpace(in.Name),
		Code:      code,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, duplicateAs(err, "ya existe una categoría con ese código")
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista categorías de la empresa.
func (uc *CategoryUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update actualiza parcialmente una categoría. id_padre "" la deja como raíz.
func (uc *CategoryUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		parent := in.ParentID
		if *parent == "" {
			parent = nil
		}
		if c.ParentID, err = uc.resolveParent(ctx, companyID, id, parent); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		if c.Code, err = categoryCode(*in.Code, c.Name); err != nil {
			return nil, err
		}
	}
	if in.Color != nil {
		c.Color = *in.Color
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, duplicateAs(err, "ya existe una categoría con ese código")
	}
	return toCategoryResponse(c), nil
}

// Delete elimina la categoría si no tiene subcategorías ni productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, companyID, id string) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	n, err := uc.repo.CountDependents(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.Errorf(domain.ErrConflict, "la categoría tiene %d subcategoría(s) o producto(s)", n)
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	c.Deleted = true
	return toCategoryResponse(c), nil
}

// resolveParent valida que el padre exista y que selfID no quede como su propio ancestro.
func (uc *CategoryUseCase) resolveParent(ctx context.Context, companyID, selfID string, parentID *string) (*string, error) {
	if parentID == nil {
		return nil, nil
	}
	if *parentID == selfID {
		return nil, domain.Errorf(domain.ErrInvalidInput, "una categoría no puede ser su propio padre")
	}
	parent, err := uc.repo.GetByID(ctx, companyID, *parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "categoría padre no encontrada")
	}
	cur := parent
	for depth := 0; cur.ParentID != nil && depth < maxCategoryDepth; depth++ {
		if *cur.ParentID == selfID {
			return nil, domain.Errorf(domain.ErrInvalidInput, "la categoría padre es descendiente de esta categoría")
		}
		if cur, err = uc.repo.GetByID(ctx, companyID, *cur.ParentID); err != nil {
			return nil, err
		}
		if cur == nil {
			break
		}
	}
	v := parent.ID
	return &v, nil
}

func (uc *CategoryUseCase) get(ctx context.Context, companyID, id string) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFoundF("categoría")
	}
	return c, nil
}

func categoryCode(code, name string) (string, error) {
	if code = strings.TrimSpace(code); code == "" {
		code = name
	}
	slug := textutil.Slug(code)
	if slug == "" {
		return "", domain.Errorf(domain.ErrInvalidInput, "no se pudo derivar un código de la categoría")
	}
	return slug, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		ParentID:  c.ParentID,
		Name:      c.Name,
		Code:      c.Code,
		Color:     c.Color,
		Deleted:   c.Deleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
