package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/dto"
)

type authService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, ttl time.Duration) error
	Me(ctx context.Context, companyID, userID string) (*dto.MeResponse, error)
}

// AuthHandler maneja login, logout y el usuario actual.
type AuthHandler struct {
	uc authService
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc authService) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token actual)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return deny(c, fiber.StatusUnauthorized, "TOKEN_INVALIDO", "token requerido")
	}
	if err := h.uc.Logout(c.UserContext(), claims.ID, claims.RemainingTTL(time.Now())); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sesión cerrada correctamente"})
}

// Me godoc
// @Summary      Usuario autenticado con sus permisos
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetCompanyID(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
