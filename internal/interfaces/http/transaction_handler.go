package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/access"
	"github.com/estoquepro/estoque-api/internal/application/dto"
	appinv "github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/pkg/metrics"
)

// TransactionHandler registra movimientos de stock y lista el libro.
type TransactionHandler struct {
	record *appinv.RecordTransactionUseCase
	list   *appinv.ListTransactionsUseCase
	items  *usecase.InventoryItemUseCase
	users  repository.UserRepository
	m      *metrics.Metrics
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(
	record *appinv.RecordTransactionUseCase,
	list *appinv.ListTransactionsUseCase,
	items *usecase.InventoryItemUseCase,
	users repository.UserRepository,
	m *metrics.Metrics,
) *TransactionHandler {
	return &TransactionHandler{record: record, list: list, items: items, users: users, m: m}
}

// Record godoc
// @Summary      Registrar movimiento de stock (in/out)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "item_id, type, quantity, sale_price (out)"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse  "empresa fuera de la membresía"
// @Failure      422   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	// El movimiento afecta al stock de la empresa dueña del item: el usuario
	// debe tener acceso a esa empresa.
	item, err := h.items.Entity(in.ItemID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	if !access.CanAccessCompany(user, item.CompanyID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "empresa fuera de su membresía"})
	}

	tx, err := h.record.Record(c.Context(), appinv.TransactionInput{
		UserID:    user.ID,
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		SalePrice: in.SalePrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			h.m.StockRejections.Inc()
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, cantidad o precio de venta inválidos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	h.m.TransactionsTotal.WithLabelValues(tx.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// List godoc
// @Summary      Listar movimientos visibles para el usuario
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	out, err := h.list.ListForUser(user, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
