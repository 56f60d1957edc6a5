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

const defaultUnitMeasure = "UND"

// ProductUseCase casos de uso CRUD para productos. Cost solo cambia vía movimientos de entrada.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un nuevo producto con su costo inicial. SKU único por empresa.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidTaxRate(in.TaxRate) {
		return nil, domain.Errorf(domain.ErrInvalidInput, "tasa_impuesto debe ser 0, 5 o 19")
	}
	categoryID, err := uc.resolveCategory(ctx, companyID, in.CategoryID)
	if err != nil {
		return nil, err
	}
	unit := in.UnitMeasure
	if unit == "" {
		unit = defaultUnitMeasure
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CategoryID:  categoryID,
		SKU:         strings.TrimSpace(in.SKU),
		Barcode:     strings.TrimSpace(in.Barcode),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		TaxRate:     in.TaxRate,
		UnitMeasure: unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, duplicateAs(err, "ya existe un producto con ese SKU")
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := getProduct(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Cost (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := getProduct(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		cat := in.CategoryID
		if *cat == "" {
			cat = nil
		}
		product.CategoryID, err = uc.resolveCategory(ctx, companyID, cat)
		if err != nil {
			return nil, err
		}
	}
	if in.SKU != nil {
		product.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Barcode != nil {
		product.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.Errorf(domain.ErrInvalidInput, "precio_venta no puede ser negativo")
		}
		product.Price = *in.Price
	}
	if in.TaxRate != nil {
		if !entity.ValidTaxRate(*in.TaxRate) {
			return nil, domain.Errorf(domain.ErrInvalidInput, "tasa_impuesto debe ser 0, 5 o 19")
		}
		product.TaxRate = *in.TaxRate
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, duplicateAs(err, "ya existe un producto con ese SKU")
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, companyID, categoryID string, limit, offset int) ([]dto.ProductResponse, error) {
	if _, err := uc.resolveCategory(ctx, companyID, &categoryID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCategory(ctx, companyID, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca por nombre, SKU o código de barras sin distinguir tildes ni mayúsculas.
func (uc *ProductUseCase) Search(ctx context.Context, companyID, q string, limit int) ([]dto.ProductResponse, error) {
	folded := textutil.Fold(q)
	if folded == "" {
		return []dto.ProductResponse{}, nil
	}
	list, err := uc.repo.Search(ctx, companyID, folded, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Delete elimina lógicamente un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := getProduct(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SoftDelete(ctx, companyID, id); err != nil {
		return nil, err
	}
	product.Deleted = true
	return toProductResponse(product), nil
}

// resolveCategory devuelve id si la categoría existe en la empresa; nil si no se pidió categoría.
func (uc *ProductUseCase) resolveCategory(ctx context.Context, companyID string, id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	cat, err := uc.categories.GetByID(ctx, companyID, *id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, notFoundF("categoría")
	}
	v := cat.ID
	return &v, nil
}

func getProduct(ctx context.Context, repo repository.ProductRepository, companyID, id string) (*entity.Product, error) {
	product, err := repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("producto")
	}
	return product, nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		TaxRate:     p.TaxRate,
		UnitMeasure: p.UnitMeasure,
		HasImage:    p.ImageKey != "",
		Deleted:     p.Deleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
