package seed

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// step inserts the rows of one table with a single prepared statement.
// ids holds the surrogate key each row must receive; junction tables have none.
type step struct {
	table string
	query string
	rows  [][]any
	ids   []int64
}

func day(t time.Time) string { return t.Format("2006-01-02") }

func nullable(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// Load inserts the dataset in foreign-key dependency order inside one
// transaction: wineries and trading partners, positions, employees,
// departments with the manager backfill, the wine taxonomy, wines,
// supplies with their line items, order statuses, sales and work hours.
// Any failure rolls back and aborts the whole load.
func Load(ctx context.Context, db *sqlx.DB, ds Dataset) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "start seed transaction")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.WithError(rbErr).Warn("rolling back seed transaction")
			}
		}
	}()

	for _, s := range ds.steps() {
		if err = insertAll(ctx, tx, s); err != nil {
			return err
		}
		// both sides of the manager reference exist once departments are in
		if s.table == "department" {
			if err = assignManagers(ctx, tx, ds.Managers); err != nil {
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed transaction")
	}
	return nil
}

func (ds Dataset) steps() []step {
	var steps []step
	add := func(table, columns string, n int, row func(i int) (int64, []any)) {
		s := step{
			table: table,
			query: "INSERT INTO " + table + " (" + columns + ") VALUES (" + placeholders(strings.Count(columns, ",")+1) + ")",
		}
		for i := 0; i < n; i++ {
			id, args := row(i)
			s.rows = append(s.rows, args)
			if id > 0 {
				s.ids = append(s.ids, id)
			}
		}
		steps = append(steps, s)
	}

	add("winery", "winery_name, winery_phone, winery_email", len(ds.Wineries), func(i int) (int64, []any) {
		w := ds.Wineries[i]
		return w.ID, []any{w.Name, w.Phone, w.Email}
	})
	add("supplier", "supplier_name, supplier_phone, supplier_email", len(ds.Suppliers), func(i int) (int64, []any) {
		s := ds.Suppliers[i]
		return s.ID, []any{s.Name, s.Phone, s.Email}
	})
	add("distributor", "distributor_name, distributor_phone, distributor_email", len(ds.Distributors), func(i int) (int64, []any) {
		d := ds.Distributors[i]
		return d.ID, []any{d.Name, d.Phone, d.Email}
	})
	add("job_position", "position_name, salary_min, salary_max", len(ds.Positions), func(i int) (int64, []any) {
		p := ds.Positions[i]
		return p.ID, []any{p.Name, p.SalaryMin, p.SalaryMax}
	})
	add("employee", "first_name, last_name, position_id, department_id, winery_id", len(ds.Employees), func(i int) (int64, []any) {
		e := ds.Employees[i]
		return e.ID, []any{e.FirstName, e.LastName, e.PositionID, nullable(e.DepartmentID), e.WineryID}
	})
	add("department", "department_name", len(ds.Departments), func(i int) (int64, []any) {
		d := ds.Departments[i]
		return d.ID, []any{d.Name}
	})
	add("wine_type", "wine_type_name", len(ds.WineTypes), func(i int) (int64, []any) {
		w := ds.WineTypes[i]
		return w.ID, []any{w.Name}
	})
	add("grape_variety", "grape_variety_name", len(ds.GrapeVarieties), func(i int) (int64, []any) {
		g := ds.GrapeVarieties[i]
		return g.ID, []any{g.Name}
	})
	add("wine_grape_variety", "wine_type_id, grape_variety_id", len(ds.Pairings), func(i int) (int64, []any) {
		p := ds.Pairings[i]
		return 0, []any{p.WineTypeID, p.GrapeVarietyID}
	})
	add("wines", "wine_type_id, inventory_quantity, price_per_bottle, vintage_year, winery_id", len(ds.Wines), func(i int) (int64, []any) {
		w := ds.Wines[i]
		return w.ID, []any{w.WineTypeID, w.InventoryQuantity, w.PricePerBottle, w.VintageYear, w.WineryID}
	})
	add("supply_type", "type_name", len(ds.SupplyTypes), func(i int) (int64, []any) {
		s := ds.SupplyTypes[i]
		return s.ID, []any{s.Name}
	})
	add("supply", "order_date, expected_date, delivery_date, supplier_id, winery_id", len(ds.Supplies), func(i int) (int64, []any) {
		s := ds.Supplies[i]
		return s.ID, []any{day(s.OrderDate), day(s.ExpectedDate), day(s.DeliveryDate), s.SupplierID, s.WineryID}
	})
	add("supply_details", "supply_id, supply_type_id, quantity", len(ds.SupplyDetails), func(i int) (int64, []any) {
		d := ds.SupplyDetails[i]
		return 0, []any{d.SupplyID, d.SupplyTypeID, d.Quantity}
	})
	add("order_status", "status_name", len(ds.OrderStatuses), func(i int) (int64, []any) {
		s := ds.OrderStatuses[i]
		return s.ID, []any{s.Name}
	})
	add("sales", "quantity, sale_date, order_status_id, wine_id, distributor_id", len(ds.Sales), func(i int) (int64, []any) {
		s := ds.Sales[i]
		return s.ID, []any{s.Quantity, day(s.SaleDate), s.OrderStatusID, s.WineID, s.DistributorID}
	})

	hours := GenerateWorkHours(ds.Employees, ds.WorkHourOverrides)
	add("work_hours", "employee_id, work_date, hours_worked", len(hours), func(i int) (int64, []any) {
		h := hours[i]
		return h.ID, []any{h.EmployeeID, day(h.WorkDate), h.HoursWorked}
	})
	return steps
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func insertAll(ctx context.Context, tx *sqlx.Tx, s step) error {
	if len(s.rows) == 0 {
		return nil
	}
	stmt, err := tx.PreparexContext(ctx, s.query)
	if err != nil {
		return errors.Wrapf(err, "prepare %s insert", s.table)
	}
	defer stmt.Close()

	for i, args := range s.rows {
		result, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return errors.Wrapf(err, "insert into %s row %d", s.table, i+1)
		}
		if i < len(s.ids) {
			if err := validateInsert(result, s.table, s.ids[i]); err != nil {
				return err
			}
		}
	}
	log.Infof("Data inserted into '%s' (%d rows).", s.table, len(s.rows))
	return nil
}

// validateInsert checks the engine handed out the key the dataset's
// references were written against.
func validateInsert(r sql.Result, table string, want int64) error {
	got, err := r.LastInsertId()
	if err != nil {
		return errors.Wrapf(err, "read generated key of %s", table)
	}
	if got != want {
		return errors.Errorf("table %s: generated key %d, dataset expects %d", table, got, want)
	}
	return nil
}

// assignManagers closes the employee/department cycle with one bulk update.
// Departments without an assignment keep a NULL manager.
func assignManagers(ctx context.Context, tx *sqlx.Tx, managers []ManagerAssignment) error {
	if len(managers) == 0 {
		return nil
	}
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("UPDATE department SET manager_id = CASE")
	for _, m := range managers {
		b.WriteString(" WHEN department_name = ? THEN ?")
		args = append(args, m.Department, m.EmployeeID)
	}
	b.WriteString(" END")

	if _, err := tx.ExecContext(ctx, b.String(), args...); err != nil {
		return errors.Wrap(err, "assign department managers")
	}
	log.Infof("Assigned %d department managers.", len(managers))
	return nil
}
