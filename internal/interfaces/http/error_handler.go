package http

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/domain"
)

// Mensajes fijos. Los de credenciales son genéricos a propósito: no revelan si el email existe.
const (
	msgInvalidCredentials = "Credenciales inválidas."
	msgEmailExists        = "El email ya está registrado."
	msgForbidden          = "Acceso denegado: permisos insuficientes."
	msgMissingToken       = "Token de acceso requerido."
	msgInvalidToken       = "Token inválido o expirado."
	msgInvalidBody        = "Cuerpo de la solicitud inválido."
	msgMalformedID        = "ID con formato inválido."
	msgInvalidData        = "Datos inválidos."
	msgInternal           = "Error interno del servidor"
)

// apiError error HTTP ya clasificado (token, cuerpo). Los handlers lo devuelven tal cual.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.code + ": " + e.message }

var (
	errMissingToken = &apiError{status: fiber.StatusUnauthorized, code: "MISSING_TOKEN", message: msgMissingToken}
	errInvalidToken = &apiError{status: fiber.StatusUnauthorized, code: "INVALID_TOKEN", message: msgInvalidToken}
	errInvalidBody  = &apiError{status: fiber.StatusBadRequest, code: "INVALID_BODY", message: msgInvalidBody}
)

// ErrorHandler es el único punto que traduce errores a respuestas JSON.
// Se instala como fiber.Config.ErrorHandler; los 5xx se registran con el error original.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, dto.ErrorResponse) {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status, dto.ErrorResponse{Code: ae.code, Message: ae.message}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(ve), Fields: ve.Fields}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return fe.Code, dto.ErrorResponse{Code: "UNKNOWN_ENDPOINT", Message: "Endpoint desconocido."}
		case fe.Code == fiber.StatusUnprocessableEntity:
			// BodyParser con Content-Type no soportado
			return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody}
		case fe.Code < fiber.StatusInternalServerError:
			return fe.Code, dto.ErrorResponse{Code: "BAD_REQUEST", Message: fe.Message}
		}
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal}
	}

	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: msgEmailExists}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: msgInvalidCredentials}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_TOKEN", Message: msgInvalidToken}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: msgForbidden}
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "MALFORMED_ID", Message: msgMalformedID}
	case errors.Is(err, domain.ErrEquipmentNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "Equipo no encontrado"}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "Usuario no encontrado"}
	case errors.Is(err, domain.ErrNothingToExport):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "No hay equipos para exportar"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "Recurso no encontrado"}
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: msgInvalidData}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal}
}

// validationMessage con un solo campo usa su mensaje; con varios, el del primer campo en orden alfabético.
func validationMessage(ve *domain.ValidationError) string {
	if ve.Empty() {
		return msgInvalidData
	}
	keys := make([]string, 0, len(ve.Fields))
	for k := range ve.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ve.Fields[keys[0]]
}
