package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/NotSleepp/possbien/internal/application/dto"
	"github.com/NotSleepp/possbien/internal/domain"
	"github.com/NotSleepp/possbien/pkg/validator"
)

type errorMapping struct {
	kind   error
	status int
	code   string
}

// El orden importa: el primer errors.Is que coincide gana.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "CREDENCIALES_INVALIDAS"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "NO_AUTORIZADO"},
	{domain.ErrForbidden, fiber.StatusForbidden, "PROHIBIDO"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NO_ENCONTRADO"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NO_ENCONTRADO"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTE"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICADO"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "STOCK_INSUFICIENTE"},
	{domain.ErrCashRegisterClosed, fiber.StatusConflict, "CAJA_CERRADA"},
	{domain.ErrCashRegisterOpen, fiber.StatusConflict, "CAJA_ABIERTA"},
	{domain.ErrSaleVoided, fiber.StatusConflict, "VENTA_ANULADA"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICTO"},
	{domain.ErrInsufficientPayment, fiber.StatusBadRequest, "PAGO_INSUFICIENTE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDACION"},
	{domain.ErrStorageDisabled, fiber.StatusServiceUnavailable, "ALMACENAMIENTO_DESHABILITADO"},
}

// respondError traduce err a la respuesta JSON. Los 5xx se registran con la causa y el cliente
// solo recibe un mensaje genérico.
func respondError(c *fiber.Ctx, err error) error {
	var verrs validator.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:      "VALIDACION",
			Message:   "datos de entrada inválidos",
			Details:   verrs,
			RequestID: GetRequestID(c),
		})
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}
		msg := m.kind.Error()
		var de *domain.Error
		if errors.As(err, &de) {
			msg = de.Msg
		}
		if m.status >= fiber.StatusInternalServerError {
			requestLogger(c).Error().Err(err).Str("codigo", m.code).Msg("petición fallida")
		}
		return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg, RequestID: GetRequestID(c)})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message, RequestID: GetRequestID(c)})
	}

	requestLogger(c).Error().Err(err).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:      "ERROR_INTERNO",
		Message:   "error interno del servidor",
		RequestID: GetRequestID(c),
	})
}

// ErrorHandler es el fiber.Config.ErrorHandler: cualquier error no resuelto por un handler
// (rutas inexistentes, límite de cuerpo, pánicos recuperados) sale con el mismo sobre JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NO_ENCONTRADO"
	case fiber.StatusMethodNotAllowed:
		return "METODO_NO_PERMITIDO"
	case fiber.StatusRequestEntityTooLarge:
		return "CUERPO_DEMASIADO_GRANDE"
	case fiber.StatusUnauthorized:
		return "NO_AUTORIZADO"
	case fiber.StatusForbidden:
		return "PROHIBIDO"
	default:
		return "SOLICITUD_INVALIDA"
	}
}

// bind decodifica el cuerpo JSON en dst y aplica las reglas validate.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.Errorf(domain.ErrInvalidInput, "cuerpo inválido")
	}
	return validator.Validate(dst)
}

// idParam lee un parámetro de ruta que debe ser un UUID.
func idParam(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if uuid.Validate(id) != nil {
		return "", domain.Errorf(domain.ErrInvalidInput, "%s debe ser un UUID válido", name)
	}
	return id, nil
}

// page lee limit/offset de la query con los valores por defecto y el máximo.
func page(c *fiber.Ctx) (int, int) {
	return dto.ClampPage(c.QueryInt("limit", dto.DefaultLimit), c.QueryInt("offset", 0))
}

func created(c *fiber.Ctx, msg string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: msg, Data: data})
}

func updated(c *fiber.Ctx, msg string, data interface{}) error {
	return c.JSON(dto.MessageResponse{Message: msg, Data: data})
}

func sendPDF(c *fiber.Ctx, filename string, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(doc)
}
