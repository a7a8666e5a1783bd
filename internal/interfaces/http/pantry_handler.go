package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/pantry"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

// PantryHandler maneja las peticiones HTTP de la despensa (protegido).
type PantryHandler struct {
	mergeUC    *pantry.MergeUseCase
	bulkUC     *pantry.BulkUseCase
	itemUC     *pantry.ItemUseCase
	shoppingUC *pantry.ShoppingListUseCase
}

// NewPantryHandler construye el handler.
func NewPantryHandler(mergeUC *pantry.MergeUseCase, bulkUC *pantry.BulkUseCase, itemUC *pantry.ItemUseCase, shoppingUC *pantry.ShoppingListUseCase) *PantryHandler {
	return &PantryHandler{mergeUC: mergeUC, bulkUC: bulkUC, itemUC: itemUC, shoppingUC: shoppingUC}
}

// AddItem godoc
// @Summary      Agregar cantidad a la despensa (suma si el producto ya tiene ítem)
// @Tags         pantry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "producto y cantidad"
// @Success      200   {object}  dto.AddItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pantry/items [post]
func (h *PantryHandler) AddItem(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.mergeUC.AddQuantity(c.UserContext(), ownerID, in.ProductID, in.Quantity)
	if err != nil {
		return mergeErrorResponse(c, err)
	}
	out := dto.AddItemResponse{
		ItemID:   res.ItemID,
		Created:  res.Created,
		Quantity: res.NewQuantity,
	}
	if !res.Created {
		prev := res.PreviousQuantity
		out.PreviousQuantity = &prev
	}
	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// List godoc
// @Summary      Listar ítems de la despensa con indicador de estoque baixo
// @Tags         pantry
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PantryListResponse
// @Router       /api/pantry/items [get]
func (h *PantryHandler) List(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	out, err := h.itemUC.List(c.UserContext(), ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Decrease godoc
// @Summary      Descontar cantidad de un ítem (elimina la fila si llega a cero)
// @Tags         pantry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.DecreaseItemRequest  false  "cantidad a descontar (default 1)"
// @Success      200   {object}  dto.DecreaseItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pantry/items/{id}/decrease [post]
func (h *PantryHandler) Decrease(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.DecreaseItemRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.itemUC.Decrease(c.UserContext(), ownerID, id, in.Quantity)
	if err != nil {
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar un ítem de la despensa
// @Tags         pantry
// @Security     Bearer
// @Param        id   path  string  true  "ID del ítem"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pantry/items/{id} [delete]
func (h *PantryHandler) Remove(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.itemUC.Remove(c.UserContext(), ownerID, id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar un lote de líneas a la despensa
// @Description  Modo acumular (default): cada línea pasa por el motor de fusión. Modo replace_previous: borra el stock previo y reinserta el lote, todo o nada.
// @Tags         pantry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "líneas y modo"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pantry/import [post]
func (h *PantryHandler) Import(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bulkUC.Import(c.UserContext(), ownerID, in)
	if err != nil {
		if err == domain.ErrNoValidLines {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_VALID_LINES", Message: err.Error()})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ShoppingListPDF godoc
// @Summary      Descargar la lista de compras (productos bajo mínimo) en PDF
// @Tags         pantry
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/pantry/shopping-list.pdf [get]
func (h *PantryHandler) ShoppingListPDF(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	pdfBytes, err := h.shoppingUC.GeneratePDF(c.UserContext(), ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-de-compras.pdf"`)
	return c.Send(pdfBytes)
}

// mergeErrorResponse mapea los errores del motor de fusión a estados HTTP.
func mergeErrorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otro usuario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
