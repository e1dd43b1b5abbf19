package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maturin/inventario-api/internal/application/dto"
	"github.com/maturin/inventario-api/internal/application/inventory"
	"github.com/maturin/inventario-api/internal/application/usecase"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// EquipmentHandler maneja /inventario (lectura con token; escritura solo admin).
type EquipmentHandler struct {
	uc      *usecase.EquipmentUseCase
	reports *inventory.ReportUseCase
}

// NewEquipmentHandler construye el handler.
func NewEquipmentHandler(uc *usecase.EquipmentUseCase, reports *inventory.ReportUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc, reports: reports}
}

// List godoc
// @Summary      Listar equipos
// @Description  Sin parámetros devuelve el inventario completo, del más reciente al más antiguo.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Categoría exacta"
// @Param        status    query  string  false  "Estado exacto"
// @Param        q         query  string  false  "Texto en nombre, marca, modelo o serie"
// @Success      200  {object}  dto.DataResponse{data=[]dto.EquipmentResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /inventario [get]
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "Inventario obtenido", Data: out})
}

// GetByID godoc
// @Summary      Obtener equipo por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.DataResponse{data=dto.EquipmentResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/{id} [get]
func (h *EquipmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "Equipo obtenido", Data: out})
}

// Create godoc
// @Summary      Crear equipo
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.DataResponse{data=dto.EquipmentResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /inventario [post]
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Message: "Equipo creado", Data: out})
}

// Update godoc
// @Summary      Actualizar equipo (parcial)
// @Description  Solo se modifican los campos enviados; claves desconocidas se ignoran.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipmentRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.DataResponse{data=dto.EquipmentResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /inventario/{id} [put]
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "Equipo actualizado", Data: out})
}

// Delete godoc
// @Summary      Eliminar equipo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.DataResponse{data=dto.EquipmentResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/{id} [delete]
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "Equipo eliminado", Data: out})
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse{data=dto.InventorySummary}
// @Router       /inventario/resumen [get]
func (h *EquipmentHandler) Summary(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	out, err := h.reports.Summary(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "Resumen obtenido", Data: out})
}

// ExportXLSX godoc
// @Summary      Exportar inventario a Excel
// @Tags         inventario
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/export/xlsx [get]
func (h *EquipmentHandler) ExportXLSX(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	data, filename, err := h.reports.ExportSpreadsheet(c.UserContext(), q)
	if err != nil {
		return err
	}
	return sendAttachment(c, data, filename, mimeXLSX)
}

// ExportPDF godoc
// @Summary      Exportar inventario a PDF
// @Tags         inventario
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/export/pdf [get]
func (h *EquipmentHandler) ExportPDF(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return err
	}
	data, filename, err := h.reports.ExportPDF(c.UserContext(), q)
	if err != nil {
		return err
	}
	return sendAttachment(c, data, filename, mimePDF)
}

func parseQuery(c *fiber.Ctx) (dto.EquipmentQuery, error) {
	var q dto.EquipmentQuery
	if err := c.QueryParser(&q); err != nil {
		return q, &apiError{status: fiber.StatusBadRequest, code: "INVALID_QUERY", message: "Parámetros de búsqueda inválidos."}
	}
	return q, nil
}

func sendAttachment(c *fiber.Ctx, data []byte, filename, mime string) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}
