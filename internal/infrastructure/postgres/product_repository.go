package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/domain/entity"
	"github.com/NotSleepp/possbien/internal/domain/repository"
	"github.com/NotSleepp/possbien/pkg/textutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, id_empresa, id_categoria, sku, codigo_barras, nombre, descripcion, precio_venta, costo,
	tasa_impuesto, unidad_medida, imagen_key, eliminado, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.CategoryID, &p.SKU, &p.Barcode, &p.Name, &p.Description,
		&p.Price, &p.Cost, &p.TaxRate, &p.UnitMeasure, &p.ImageKey, &p.Deleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// searchKey llave normalizada que consulta Search.
func searchKey(p *entity.Product) string {
	return textutil.SearchKey(p.Name, p.SKU, p.Barcode)
}

// Create persiste un nuevo producto con su costo inicial.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO productos (id, id_empresa, id_categoria, sku, codigo_barras, nombre, descripcion, precio_venta,
		                       costo, tasa_impuesto, unidad_medida, busqueda, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.CompanyID, p.CategoryID, p.SKU, p.Barcode, p.Name, p.Description, p.Price,
		p.Cost, p.TaxRate, p.UnitMeasure, searchKey(p), p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteError("insert product", err)
}

// GetByID obtiene un producto de la empresa.
func (r *ProductRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM productos WHERE id = $1 AND id_empresa = $2 AND eliminado = false`, id, companyID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListByCompany lista productos por empresa con paginación.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM productos WHERE id_empresa = $1 AND eliminado = false
		 ORDER BY nombre LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collect(rows, "list products", scanProduct)
}

// ListByCategory lista productos de una categoría.
func (r *ProductRepo) ListByCategory(ctx context.Context, companyID, categoryID string, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM productos WHERE id_empresa = $1 AND id_categoria = $2 AND eliminado = false
		 ORDER BY nombre LIMIT $3 OFFSET $4`, companyID, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return collect(rows, "list products by category", scanProduct)
}

// Search busca folded como subcadena de la llave normalizada; los que empiezan por el término van primero.
func (r *ProductRepo) Search(ctx context.Context, companyID, folded string, limit int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM productos
		 WHERE id_empresa = $1 AND eliminado = false AND busqueda LIKE '%' || $2 || '%'
		 ORDER BY (busqueda LIKE $2 || '%') DESC, nombre LIMIT $3`, companyID, escapeLike(folded), limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return collect(rows, "search products", scanProduct)
}

// Update actualiza los datos editables. Costo y stock cambian solo por movimientos.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE productos SET id_categoria = $3, sku = $4, codigo_barras = $5, nombre = $6, descripcion = $7,
		       precio_venta = $8, tasa_impuesto = $9, unidad_medida = $10, busqueda = $11, updated_at = $12
		WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		p.ID, p.CompanyID, p.CategoryID, p.SKU, p.Barcode, p.Name, p.Description,
		p.Price, p.TaxRate, p.UnitMeasure, searchKey(p), p.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("update product", err)
	}
	return mustAffect(tag, "producto")
}

// UpdateCost actualiza solo el costo del producto (usado por el motor de inventario).
func (r *ProductRepo) UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error {
	if _, err := r.q.Exec(ctx, `UPDATE productos SET costo = $2, updated_at = now() WHERE id = $1`, productID, cost); err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}

// UpdateImageKey guarda la llave del objeto de imagen.
func (r *ProductRepo) UpdateImageKey(ctx context.Context, companyID, productID, key string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE productos SET imagen_key = $3, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		productID, companyID, key)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return mustAffect(tag, "producto")
}

// SoftDelete marca el producto como eliminado.
func (r *ProductRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE productos SET eliminado = true, updated_at = now() WHERE id = $1 AND id_empresa = $2 AND eliminado = false`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return mustAffect(tag, "producto")
}

// escapeLike neutraliza los comodines de LIKE en el término buscado.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
