package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/application/usecase"
	"github.com/NotSleepp/possbien/internal/domain"
)

type productService interface {
	Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.ProductResponse, error)
	ListByCategory(ctx context.Context, companyID, categoryID string, limit, offset int) ([]dto.ProductResponse, error)
	Search(ctx context.Context, companyID, q string, limit int) ([]dto.ProductResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.ProductResponse, error)
}

type productImageService interface {
	Upload(ctx context.Context, companyID, productID string, file usecase.ImageUpload) (*dto.ProductResponse, error)
	URL(ctx context.Context, companyID, productID string) (*dto.ProductImageResponse, error)
}

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc     productService
	images productImageService
}

// NewProductHandler construye el handler.
func NewProductHandler(uc productService, images productImageService) *ProductHandler {
	return &ProductHandler{uc: uc, images: images}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.MessageResponse{datos=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Producto creado correctamente", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProductResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Productos de una categoría
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la categoría"
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}   dto.ProductResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/productos/por-categoria/{id} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := page(c)
	out, err := h.uc.ListByCategory(c.UserContext(), GetCompanyID(c), categoryID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos
// @Description  Coincidencia parcial en nombre, SKU o código de barras, sin distinguir tildes ni mayúsculas.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "Texto a buscar"
// @Param        limit  query  int     false  "Límite"  default(50)
// @Success      200    {array}   dto.ProductResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/productos/buscar [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return respondError(c, domain.Errorf(domain.ErrInvalidInput, "el parámetro q es obligatorio"))
	}
	limit, _ := page(c)
	out, err := h.uc.Search(c.UserContext(), GetCompanyID(c), q, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  El costo no se edita aquí: cambia con las entradas de stock (promedio ponderado).
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProductRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Producto actualizado correctamente", out)
}

// Delete godoc
// @Summary      Eliminar producto (lógico)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse{datos=dto.ProductResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Producto eliminado correctamente", out)
}

// UploadImage godoc
// @Summary      Subir imagen del producto
// @Tags         productos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true  "ID del producto"
// @Param        imagen  formData  file    true  "Imagen (máx. 5 MiB)"
// @Success      200     {object}  dto.MessageResponse{datos=dto.ProductResponse}
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagen [post]
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	fh, err := c.FormFile("imagen")
	if err != nil {
		return respondError(c, domain.Errorf(domain.ErrInvalidInput, "el campo imagen es obligatorio"))
	}
	if fh.Size > usecase.MaxImageBytes {
		return respondError(c, domain.Errorf(domain.ErrInvalidInput, "la imagen debe pesar como máximo %d MiB", usecase.MaxImageBytes>>20))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	out, err := h.images.Upload(c.UserContext(), GetCompanyID(c), id, usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Imagen actualizada correctamente", out)
}

// ImageURL godoc
// @Summary      URL firmada de la imagen del producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/imagen [get]
func (h *ProductHandler) ImageURL(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.images.URL(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
