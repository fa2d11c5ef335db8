// controllers/report_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"manufacturing-mcp/database"
	"manufacturing-mcp/repositories"
	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB}
}

func (c *ReportController) ListFactories(ctx *fiber.Ctx) error {
	var filter types.FactoryFilter
	var err error
	if filter.FactoryID, err = queryInt(ctx, "factory_id"); err != nil {
		return badRequest(ctx, err)
	}
	if err := types.Validate(&filter); err != nil {
		return badRequest(ctx, err)
	}

	repo := repositories.NewFactoryRepository(c.DB)
	rows, err := repo.ListFactories(ctx.UserContext(), filter)
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) GetMachines(ctx *fiber.Ctx) error {
	var filter types.MachineFilter
	var err error
	filter.Status = queryString(ctx, "status")
	if filter.FactoryID, err = queryInt(ctx, "factory_id"); err != nil {
		return badRequest(ctx, err)
	}
	if err := types.Validate(&filter); err != nil {
		return badRequest(ctx, err)
	}

	repo := repositories.NewMachineRepository(c.DB)
	rows, err := repo.GetMachines(ctx.UserContext(), filter)
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) GetWorkOrders(ctx *fiber.Ctx) error {
	var filter types.WorkOrderFilter
	var err error
	filter.Status = queryString(ctx, "status")
	filter.Priority = queryString(ctx, "priority")
	if filter.FactoryID, err = queryInt(ctx, "factory_id"); err != nil {
		return badRequest(ctx, err)
	}
	if filter.Limit, err = queryInt(ctx, "limit"); err != nil {
		return badRequest(ctx, err)
	}
	if err := types.Validate(&filter); err != nil {
		return badRequest(ctx, err)
	}

	repo := repositories.NewWorkOrderRepository(c.DB)
	rows, err := repo.GetWorkOrders(ctx.UserContext(), filter)
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) QualitySummary(ctx *fiber.Ctx) error {
	var filter types.InspectionFilter
	var err error
	filter.Result = queryString(ctx, "result")
	if filter.FactoryID, err = queryInt(ctx, "factory_id"); err != nil {
		return badRequest(ctx, err)
	}
	if filter.Limit, err = queryInt(ctx, "limit"); err != nil {
		return badRequest(ctx, err)
	}
	if err := types.Validate(&filter); err != nil {
		return badRequest(ctx, err)
	}

	repo := repositories.NewQualityRepository(c.DB)
	rows, err := repo.QualitySummary(ctx.UserContext(), filter)
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) MaintenanceReport(ctx *fiber.Ctx) error {
	var filter types.MaintenanceFilter
	var err error
	filter.MaintenanceType = queryString(ctx, "maintenance_type")
	if filter.MachineID, err = queryInt(ctx, "machine_id"); err != nil {
		return badRequest(ctx, err)
	}
	if filter.Limit, err = queryInt(ctx, "limit"); err != nil {
		return badRequest(ctx, err)
	}
	if err := types.Validate(&filter); err != nil {
		return badRequest(ctx, err)
	}

	repo := repositories.NewMaintenanceRepository(c.DB)
	rows, err := repo.MaintenanceReport(ctx.UserContext(), filter)
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) InventoryStatus(ctx *fiber.Ctx) error {
	repo := repositories.NewInventoryRepository(c.DB)
	rows, err := repo.InventoryStatus(ctx.UserContext())
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) SupplierPerformance(ctx *fiber.Ctx) error {
	repo := repositories.NewSupplierRepository(c.DB)
	rows, err := repo.SupplierPerformance(ctx.UserContext())
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) OperatorPerformance(ctx *fiber.Ctx) error {
	repo := repositories.NewWorkOrderRepository(c.DB)
	rows, err := repo.OperatorPerformance(ctx.UserContext())
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ok(ctx, rows)
}

func (c *ReportController) GetSchema(ctx *fiber.Ctx) error {
	schema, err := database.InspectSchema(c.DB.WithContext(ctx.UserContext()))
	if err != nil {
		return queryFailed(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": schema})
}

// ExportInventoryExcel streams the inventory status report as an xlsx file.
func (c *ReportController) ExportInventoryExcel(ctx *fiber.Ctx) error {
	repo := repositories.NewInventoryRepository(c.DB)
	rows, err := repo.InventoryStatus(ctx.UserContext())
	if err != nil {
		return queryFailed(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{
		"ID", "Part", "SKU", "Category", "Stock", "Reorder Threshold",
		"Stock Status", "Unit Cost", "Supplier", "Lead Time (days)",
		"Reliability", "Open POs",
	}
	columns := []string{
		"id", "name", "sku", "category", "stock_quantity", "reorder_threshold",
		"stock_status", "unit_cost", "supplier", "lead_time_days",
		"reliability_score", "open_purchase_orders",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for i, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheet, cell, row.Get(col))
		}
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory_status.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("failed to generate Excel file")
	}

	return nil
}

func ok(ctx *fiber.Ctx, rows []utils.Row) error {
	if rows == nil {
		rows = []utils.Row{}
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": rows})
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func queryFailed(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func queryString(ctx *fiber.Ctx, key string) *string {
	v := ctx.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(ctx *fiber.Ctx, key string) (*int, error) {
	v := ctx.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &n, nil
}
