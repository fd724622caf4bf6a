package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// ReportHandler descarga de reportes: PDF de inventario por empresa y
// export XLSX del libro de movimientos.
type ReportHandler struct {
	inventory *report.InventoryReportUseCase
	ledger    *report.LedgerExportUseCase
	users     repository.UserRepository
}

// NewReportHandler construye el handler.
func NewReportHandler(
	inventory *report.InventoryReportUseCase,
	ledger *report.LedgerExportUseCase,
	users repository.UserRepository,
) *ReportHandler {
	return &ReportHandler{inventory: inventory, ledger: ledger, users: users}
}

// InventoryPDF godoc
// @Summary      Reporte PDF de inventario de una empresa
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        company_id  query  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}

	data, err := h.inventory.GenerateForCompany(c.Context(), user, companyID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "empresa fuera de su membresía"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	filename := fmt.Sprintf("inventario_%s_%s.pdf", companyID, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// LedgerXLSX godoc
// @Summary      Export XLSX del libro de movimientos visible para el usuario
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/transactions/xlsx [get]
func (h *ReportHandler) LedgerXLSX(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}

	data, err := h.ledger.ExportForUser(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("movimientos_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
