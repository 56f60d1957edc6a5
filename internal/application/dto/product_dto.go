package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Costo es el costo inicial.
type CreateProductRequest struct {
	CategoryID  *string         `json:"id_categoria" validate:"omitempty,uuid"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode     string          `json:"codigo_barras" validate:"max=50"`
	Name        string          `json:"nombre" validate:"required,min=1,max=200"`
	Description string          `json:"descripcion" validate:"max=1000"`
	Price       decimal.Decimal `json:"precio_venta" validate:"gte=0"`
	Cost        decimal.Decimal `json:"costo" validate:"gte=0"`
	TaxRate     decimal.Decimal `json:"tasa_impuesto"`
	UnitMeasure string          `json:"unidad_medida" validate:"max=20"`
}

// UpdateProductRequest entrada para actualizar un producto (sin costo: se maneja vía movimientos).
type UpdateProductRequest struct {
	CategoryID  *string          `json:"id_categoria"`
	SKU         *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode     *string          `json:"codigo_barras" validate:"omitempty,max=50"`
	Name        *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"descripcion" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"precio_venta"`
	TaxRate     *decimal.Decimal `json:"tasa_impuesto"`
	UnitMeasure *string          `json:"unidad_medida" validate:"omitempty,max=20"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"id_empresa"`
	CategoryID  *string         `json:"id_categoria"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"codigo_barras"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio_venta"`
	Cost        decimal.Decimal `json:"costo"`
	TaxRate     decimal.Decimal `json:"tasa_impuesto"`
	UnitMeasure string          `json:"unidad_medida"`
	HasImage    bool            `json:"tiene_imagen"`
	Deleted     bool            `json:"eliminado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductImageResponse URL prefirmada de la imagen de un producto.
type ProductImageResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expira_en_segundos"`
}
