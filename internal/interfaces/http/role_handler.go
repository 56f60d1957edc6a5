package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type roleService interface {
	Create(ctx context.Context, companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.RoleResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.RoleResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.RoleResponse, error)
}

type permissionService interface {
	Create(ctx context.Context, companyID string, in dto.CreatePermissionRequest) (*dto.PermissionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.PermissionResponse, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]dto.PermissionResponse, error)
	ListByRole(ctx context.Context, companyID, roleID string) ([]dto.PermissionResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdatePermissionRequest) (*dto.PermissionResponse, error)
	Delete(ctx context.Context, companyID, id string) (*dto.PermissionResponse, error)
}

// RoleHandler roles de la empresa.
type RoleHandler struct {
	uc roleService
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc roleService) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "Datos del rol"
// @Success      201   {object}  dto.MessageResponse{datos=dto.RoleResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Rol creado correctamente", out)
}

// GetByID godoc
// @Summary      Obtener rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.RoleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del rol"
// @Param        body  body  dto.UpdateRoleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.RoleResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateRoleRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Rol actualizado correctamente", out)
}

// Delete godoc
// @Summary      Eliminar rol (lógico)
// @Description  Falla con 409 si hay usuarios activos con el rol.
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.MessageResponse{datos=dto.RoleResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Rol eliminado correctamente", out)
}

// PermissionHandler permisos (códigos modulo:accion) asignados a roles.
type PermissionHandler struct {
	uc permissionService
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(uc permissionService) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar permiso a un rol
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePermissionRequest  true  "id_rol, codigo"
// @Success      201   {object}  dto.MessageResponse{datos=dto.PermissionResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/permisos [post]
func (h *PermissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePermissionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, "Permiso creado correctamente", out)
}

// GetByID godoc
// @Summary      Obtener permiso
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.PermissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [get]
func (h *PermissionHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar permisos
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PermissionResponse
// @Router       /api/permisos [get]
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByRole GET /api/permisos/por-rol/:id
func (h *PermissionHandler) ListByRole(c *fiber.Ctx) error {
	roleID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByRole(c.UserContext(), GetCompanyID(c), roleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar permiso
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del permiso"
// @Param        body  body  dto.UpdatePermissionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse{datos=dto.PermissionResponse}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [put]
func (h *PermissionHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePermissionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Permiso actualizado correctamente", out)
}

// Delete godoc
// @Summary      Quitar permiso (lógico)
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.MessageResponse{datos=dto.PermissionResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [delete]
func (h *PermissionHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return updated(c, "Permiso eliminado correctamente", out)
}
