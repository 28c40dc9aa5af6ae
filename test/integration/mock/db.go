// Package mock provides in-memory stand-ins for the external services the
// integration suite needs: the database and the redis event channel.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite database migrated with the
// application's models. The models map keys by table name so assertion
// steps can reach a table through its name.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb opens the shared in-memory database, once per process.
func NewDb(schema string, models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(schema, models)
	})
	return db
}

func open(schema string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every gorm session on the same in-memory
	// database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		schema: schema,
		models: models,
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to prepare database: %s", err))
	}

	return d
}

// ClearDB ensures the schema exists and removes every row. It is called
// between scenarios; the first call also runs the migrations.
func (d *Db) ClearDB() error {
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		if err = d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error; err != nil {
			if !strings.Contains(err.Error(), "is already in use") {
				return err
			}
		} else {
			if err = d.migrate(); err != nil {
				continue
			}

			time.Sleep(200 * time.Millisecond)
			_ = d.DbConn.Exec("PRAGMA schema_version").Error

			if err = d.checkTables(); err != nil {
				continue
			}
		}

		if err = d.reset(); err != nil {
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to clear database after 5 attempts: %w", err)
}

func (d *Db) migrate() (err error) {
	tx := d.DbConn.Exec("BEGIN EXCLUSIVE")
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			err = fmt.Errorf("panic while migrating: %v", rec)
		} else if err != nil {
			if errTx := tx.Exec("ROLLBACK").Error; errTx != nil {
				panic(errTx)
			}
		} else {
			if errTx := tx.Exec("COMMIT").Error; errTx != nil {
				panic(errTx)
			}
		}
	}()

	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)

		tableName, err := d.tableName(tx, model)
		if err != nil {
			return err
		}
		if err := tx.Exec("DROP TABLE IF EXISTS " + tableName).Error; err != nil {
			return err
		}
	}

	if err := tx.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !tx.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}

	return nil
}

func (d *Db) reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}

		tableName, err := d.tableName(d.DbConn, model)
		if err != nil {
			return err
		}
		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", tableName).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

func (d *Db) checkTables() error {
	for _, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
		if err := d.DbConn.Find(&model).Error; err != nil {
			return fmt.Errorf("failed to query table for model %T: %w", model, err)
		}
	}
	return nil
}

func (d *Db) tableName(tx *gorm.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	return stmt.Schema.Table, nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
