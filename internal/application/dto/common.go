package dto

// ErrorResponse cuerpo de error HTTP. Fields solo se incluye en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta sin datos (p. ej. registro exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse envoltorio {message, data} usado por las rutas de inventario.
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
