package database

import (
	"fmt"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForeignKey is a column that must reference an existing row in another table.
type ForeignKey struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
}

// Name follows the PostgreSQL fk_<table>_<column> convention.
func (fk ForeignKey) Name() string {
	return fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
}

// SchemaRegistry lists the tables and foreign keys the service owns. Rows
// carry plain foreign key columns, so constraints are declared here rather
// than derived from associations.
type SchemaRegistry struct {
	models      []interface{}
	foreignKeys []ForeignKey
}

func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{}
}

// Register adds tables in dependency order.
func (r *SchemaRegistry) Register(models ...interface{}) *SchemaRegistry {
	r.models = append(r.models, models...)
	return r
}

// Reference declares table.column -> refTable.refColumn.
func (r *SchemaRegistry) Reference(table, column, refTable, refColumn string) *SchemaRegistry {
	r.foreignKeys = append(r.foreignKeys, ForeignKey{Table: table, Column: column, RefTable: refTable, RefColumn: refColumn})
	return r
}

func (r *SchemaRegistry) Models() []interface{} { return r.models }

func (r *SchemaRegistry) ForeignKeys() []ForeignKey { return r.foreignKeys }

// Migrate creates missing tables and columns, then adds any missing foreign
// key constraints. Existing data is never dropped.
func (r *SchemaRegistry) Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(r.models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	for _, fk := range r.foreignKeys {
		if db.Migrator().HasConstraint(fk.Table, fk.Name()) {
			continue
		}
		err := db.Exec(
			"ALTER TABLE ? ADD CONSTRAINT ? FOREIGN KEY (?) REFERENCES ? (?)",
			clause.Table{Name: fk.Table},
			clause.Column{Name: fk.Name()},
			clause.Column{Name: fk.Column},
			clause.Table{Name: fk.RefTable},
			clause.Column{Name: fk.RefColumn},
		).Error
		if err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.Name(), err)
		}
		logger.Info("Added foreign key", zap.String("constraint", fk.Name()))
	}
	return nil
}

// DefaultRegistry describes the car purchase schema.
func DefaultRegistry() *SchemaRegistry {
	return NewSchemaRegistry().
		Register(
			&models.Category{},
			&models.Car{},
			&models.CarInventory{},
			&models.CarInventoryLog{},
			&models.Employee{},
			&models.User{},
			&models.Purchase{},
			&models.Order{},
			&models.OrderItem{},
			&models.Shipping{},
			&models.Review{},
		).
		Reference("cars", "category_id", "categories", "category_id").
		Reference("car_inventory", "car_id", "cars", "car_id").
		Reference("car_inventory_log", "inventory_id", "car_inventory", "inventory_id").
		Reference("car_inventory_log", "car_id", "cars", "car_id").
		Reference("purchase", "user_id", "users", "user_id").
		Reference("orders", "purchase_id", "purchase", "purchase_id").
		Reference("order_items", "order_id", "orders", "order_id").
		Reference("order_items", "car_id", "cars", "car_id").
		Reference("shipping", "emp_id", "employees", "emp_id").
		Reference("shipping", "order_id", "orders", "order_id").
		Reference("reviews", "car_id", "cars", "car_id").
		Reference("reviews", "user_id", "users", "user_id")
}
