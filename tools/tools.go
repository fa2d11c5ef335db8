package tools

import (
	"context"
	"encoding/json"
	"strings"

	"manufacturing-mcp/database"
	"manufacturing-mcp/repositories"
	"manufacturing-mcp/types"
	"manufacturing-mcp/utils"

	"github.com/felixgeelhaar/agent-go/domain/tool"
	agent "github.com/felixgeelhaar/agent-go/interfaces/api"
	"gorm.io/gorm"
)

const selectOnlyError = "Error: Only SELECT statements are allowed."

// readOnly marks every tool here: nothing mutates the database.
var readOnly = agent.Annotations{ReadOnly: true, Idempotent: true}

// BuildRegistry wires the full analytical tool set over the given database.
func BuildRegistry(db *gorm.DB) tool.Registry {
	factories := repositories.NewFactoryRepository(db)
	machines := repositories.NewMachineRepository(db)
	workOrders := repositories.NewWorkOrderRepository(db)
	quality := repositories.NewQualityRepository(db)
	maintenance := repositories.NewMaintenanceRepository(db)
	inventory := repositories.NewInventoryRepository(db)
	suppliers := repositories.NewSupplierRepository(db)

	registry := agent.NewToolRegistry()

	register := func(name, description string, handler tool.Handler) {
		registry.Register(agent.NewToolBuilder(name).
			WithDescription(description).
			WithAnnotations(readOnly).
			WithHandler(handler).
			MustBuild())
	}

	register("manufacturing_run_query",
		"Run a read-only SQL SELECT query against the manufacturing database and return the rows as JSON.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var in types.SQLInput
			if err := types.DecodeStrict(input, &in); err != nil {
				return validationResult(err), nil
			}
			sql, ok := sanitizeSelect(in.SQL)
			if !ok {
				return textResult(selectOnlyError), nil
			}
			rows, err := repositories.Query(ctx, db, sql)
			if err != nil {
				return queryError(err), nil
			}
			return textResult(utils.FormatRows(rows)), nil
		})

	register("manufacturing_get_schema",
		"Describe every table in the manufacturing database: columns, types and foreign keys.",
		func(ctx context.Context, _ json.RawMessage) (tool.Result, error) {
			schema, err := database.InspectSchema(db.WithContext(ctx))
			if err != nil {
				return queryError(err), nil
			}
			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return queryError(err), nil
			}
			return textResult(string(out)), nil
		})

	register("manufacturing_list_factories",
		"List active factories with their production line and machine counts. Optionally filter by factory_id.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var f types.FactoryFilter
			if err := types.DecodeStrict(input, &f); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(factories.ListFactories(ctx, f))
		})

	register("manufacturing_get_machines",
		"List machines with their production line, factory, age and cumulative downtime. Filter by status or factory_id.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var f types.MachineFilter
			if err := types.DecodeStrict(input, &f); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(machines.GetMachines(ctx, f))
		})

	register("manufacturing_get_work_orders",
		"List work orders with operator, factory and completion percentage. Filter by status, priority or factory_id; limit defaults to 20.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var f types.WorkOrderFilter
			if err := types.DecodeStrict(input, &f); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(workOrders.GetWorkOrders(ctx, f))
		})

	register("manufacturing_quality_summary",
		"Summarize quality inspections per factory, result and defect type. Filter by result or factory_id; limit defaults to 20.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var f types.InspectionFilter
			if err := types.DecodeStrict(input, &f); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(quality.QualitySummary(ctx, f))
		})

	register("manufacturing_maintenance_report",
		"List maintenance events with machine, factory, technician, downtime and cost. Filter by machine_id or maintenance_type; limit defaults to 20.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var f types.MaintenanceFilter
			if err := types.DecodeStrict(input, &f); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(maintenance.MaintenanceReport(ctx, f))
		})

	register("manufacturing_inventory_status",
		"Report stock levels for every part with supplier details and open purchase orders. Low-stock parts are listed first.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			if err := requireNoArguments(input); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(inventory.InventoryStatus(ctx))
		})

	register("manufacturing_supplier_performance",
		"Rank suppliers by reliability with purchase order counts and average delivery delay.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			if err := requireNoArguments(input); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(suppliers.SupplierPerformance(ctx))
		})

	register("manufacturing_operator_performance",
		"Rank active operators by work order completion rate and defect totals.",
		func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			if err := requireNoArguments(input); err != nil {
				return validationResult(err), nil
			}
			return rowsResult(workOrders.OperatorPerformance(ctx))
		})

	return registry
}

// sanitizeSelect trims the statement, strips at most one trailing semicolon
// and verifies it is a single SELECT. Anything else is rejected, including
// chained statements hiding behind a leading SELECT.
func sanitizeSelect(sql string) (string, bool) {
	s := strings.TrimSpace(sql)
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)

	fields := strings.Fields(s)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "SELECT") {
		return "", false
	}
	if strings.Contains(s, ";") {
		return "", false
	}
	return s, true
}

// requireNoArguments rejects any payload fields on tools that take none.
func requireNoArguments(raw json.RawMessage) error {
	var empty struct{}
	return types.DecodeStrict(raw, &empty)
}

func rowsResult(rows []utils.Row, err error) (tool.Result, error) {
	if err != nil {
		return queryError(err), nil
	}
	return textResult(utils.FormatRows(rows)), nil
}

func textResult(s string) tool.Result {
	return tool.Result{Output: json.RawMessage(s)}
}

func queryError(err error) tool.Result {
	return textResult("Query error: " + err.Error())
}

func validationResult(err error) tool.Result {
	return textResult("Validation error: " + err.Error())
}
