package migrations

import (
	"context"
	"regexp"
	"strings"

	"github.com/apex/log"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bacchus/winery/internal/database"
)

// Table is one CREATE TABLE statement of the catalog. {{pk}} expands to the
// dialect's auto-generated integer key definition.
type Table struct {
	Name string
	DDL  string
}

// Tables lists the winery schema in creation order: no statement references
// a table that appears after it. employee.department_id deliberately has no
// foreign key; the department manager backfill closes that cycle.
var Tables = []Table{
	{"winery", `CREATE TABLE winery (
            winery_id {{pk}},
            winery_name VARCHAR(75) NOT NULL,
            winery_phone VARCHAR(20) NOT NULL,
            winery_email VARCHAR(100) NOT NULL UNIQUE
        )`},
	{"supplier", `CREATE TABLE supplier (
            supplier_id {{pk}},
            supplier_name VARCHAR(75) NOT NULL,
            supplier_phone VARCHAR(20) NOT NULL,
            supplier_email VARCHAR(100) NOT NULL UNIQUE
        )`},
	{"distributor", `CREATE TABLE distributor (
            distributor_id {{pk}},
            distributor_name VARCHAR(75) NOT NULL,
            distributor_phone VARCHAR(20) NOT NULL,
            distributor_email VARCHAR(100) NOT NULL UNIQUE
        )`},
	{"job_position", `CREATE TABLE job_position (
            position_id {{pk}},
            position_name VARCHAR(75) UNIQUE NOT NULL,
            salary_min DECIMAL(10,2) NOT NULL,
            salary_max DECIMAL(10,2) NOT NULL
        )`},
	{"employee", `CREATE TABLE employee (
            employee_id {{pk}},
            first_name VARCHAR(75) NOT NULL,
            last_name VARCHAR(75) NOT NULL,
            department_id INT NULL,
            winery_id INT NOT NULL,
            position_id INT NOT NULL,
            CONSTRAINT fk_employee_winery FOREIGN KEY (winery_id)
                REFERENCES winery(winery_id),
            CONSTRAINT fk_employee_job_position FOREIGN KEY (position_id)
                REFERENCES job_position(position_id)
        )`},
	{"department", `CREATE TABLE department (
            department_id {{pk}},
            department_name VARCHAR(75) UNIQUE NOT NULL,
            manager_id INT NULL,
            CONSTRAINT fk_department_employee FOREIGN KEY (manager_id)
                REFERENCES employee(employee_id) ON DELETE SET NULL
        )`},
	{"wine_type", `CREATE TABLE wine_type (
            wine_type_id {{pk}},
            wine_type_name VARCHAR(75) UNIQUE NOT NULL
        )`},
	{"grape_variety", `CREATE TABLE grape_variety (
            grape_variety_id {{pk}},
            grape_variety_name VARCHAR(75) UNIQUE NOT NULL
        )`},
	{"wine_grape_variety", `CREATE TABLE wine_grape_variety (
            wine_type_id INT NOT NULL,
            grape_variety_id INT NOT NULL,
            PRIMARY KEY (wine_type_id, grape_variety_id),
            CONSTRAINT fk_wine_grape_variety_wine_type FOREIGN KEY (wine_type_id)
                REFERENCES wine_type(wine_type_id),
            CONSTRAINT fk_wine_grape_variety_grape_variety FOREIGN KEY (grape_variety_id)
                REFERENCES grape_variety(grape_variety_id)
        )`},
	{"wines", `CREATE TABLE wines (
            wine_id {{pk}},
            inventory_quantity INT NOT NULL,
            price_per_bottle DECIMAL(10,2) NOT NULL,
            vintage_year YEAR NOT NULL,
            winery_id INT NOT NULL,
            wine_type_id INT NOT NULL,
            CONSTRAINT fk_wines_winery FOREIGN KEY (winery_id)
                REFERENCES winery(winery_id),
            CONSTRAINT fk_wines_wine_type FOREIGN KEY (wine_type_id)
                REFERENCES wine_type(wine_type_id)
        )`},
	{"supply_type", `CREATE TABLE supply_type (
            supply_type_id {{pk}},
            type_name VARCHAR(75) NOT NULL UNIQUE
        )`},
	{"supply", `CREATE TABLE supply (
            supply_id {{pk}},
            order_date DATE NOT NULL,
            expected_date DATE NOT NULL,
            delivery_date DATE NOT NULL,
            supplier_id INT NOT NULL,
            winery_id INT NOT NULL,
            CONSTRAINT fk_supply_winery FOREIGN KEY (winery_id)
                REFERENCES winery(winery_id),
            CONSTRAINT fk_supply_supplier FOREIGN KEY (supplier_id)
                REFERENCES supplier(supplier_id)
        )`},
	{"supply_details", `CREATE TABLE supply_details (
            supply_id INT NOT NULL,
            supply_type_id INT NOT NULL,
            quantity INT NOT NULL,
            PRIMARY KEY (supply_id, supply_type_id),
            CONSTRAINT fk_supply_details_supply FOREIGN KEY (supply_id)
                REFERENCES supply(supply_id),
            CONSTRAINT fk_supply_details_supply_type FOREIGN KEY (supply_type_id)
                REFERENCES supply_type(supply_type_id)
        )`},
	{"order_status", `CREATE TABLE order_status (
            order_status_id {{pk}},
            status_name VARCHAR(50) UNIQUE NOT NULL
        )`},
	{"sales", `CREATE TABLE sales (
            sale_id {{pk}},
            quantity INT NOT NULL,
            sale_date DATE NOT NULL,
            wine_id INT NOT NULL,
            distributor_id INT NOT NULL,
            order_status_id INT NOT NULL,
            CONSTRAINT fk_sales_wines FOREIGN KEY (wine_id)
                REFERENCES wines(wine_id),
            CONSTRAINT fk_sales_distributor FOREIGN KEY (distributor_id)
                REFERENCES distributor(distributor_id),
            CONSTRAINT fk_sales_order_status FOREIGN KEY (order_status_id)
                REFERENCES order_status(order_status_id)
        )`},
	{"work_hours", `CREATE TABLE work_hours (
            work_id {{pk}},
            work_date DATE NOT NULL,
            hours_worked INT NOT NULL,
            employee_id INT NOT NULL,
            CONSTRAINT fk_work_hours_employee FOREIGN KEY (employee_id)
                REFERENCES employee(employee_id)
        )`},
}

var identifier = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// TableNames returns the catalog's table names in creation order.
func TableNames() []string {
	names := make([]string, len(Tables))
	for i, t := range Tables {
		names[i] = t.Name
	}
	return names
}

// Statement renders the table's DDL for a dialect.
func (t Table) Statement(d database.Dialect) string {
	return strings.ReplaceAll(t.DDL, "{{pk}}", d.PrimaryKey)
}

// Reset destroys and recreates the named database. On MySQL db must be an
// administrative connection; SQLite has no database namespace, so every
// catalog table is dropped in reverse creation order instead.
func Reset(ctx context.Context, db *sqlx.DB, d database.Dialect, name string) error {
	if d.IsSQLite() {
		names := TableNames()
		for i := len(names) - 1; i >= 0; i-- {
			if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+names[i]); err != nil {
				return errors.Wrapf(err, "drop table %s", names[i])
			}
		}
		log.Infof("Database '%s' has been reset.", name)
		return nil
	}

	if !identifier.MatchString(name) {
		return errors.Errorf("invalid database name %q", name)
	}
	if _, err := db.ExecContext(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
		return errors.Wrapf(err, "drop database %s", name)
	}
	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+name); err != nil {
		return errors.Wrapf(err, "create database %s", name)
	}
	log.Infof("Database '%s' has been created.", name)
	return nil
}

// Run creates every catalog table in order. It stops at the first failure;
// the schema must then be treated as invalid and rebuilt from Reset.
func Run(ctx context.Context, db *sqlx.DB, d database.Dialect) error {
	for _, t := range Tables {
		if _, err := db.ExecContext(ctx, t.Statement(d)); err != nil {
			return errors.Wrapf(err, "create table %s", t.Name)
		}
		log.Infof("Table '%s' created.", t.Name)
	}
	return nil
}
