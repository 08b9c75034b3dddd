package db

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

const defaultDbPath = "battlogger.db"

type DB struct {
	Conn *gorm.DB
}

// tables in dependency order, parents first.
func tables() []any {
	return []any{
		&models.Chemistry{},
		&models.FormFactor{},
		&models.Model{},
		&models.Battery{},
		&models.TestRunProcess{},
		&models.TestRun{},
	}
}

// New opens the database behind dialector and migrates the schema. The pool
// is pinned to a single connection which every repository shares.
func New(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameDB)

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	instance := &DB{Conn: conn}
	if err := instance.Migrate(); err != nil {
		return nil, err
	}

	logger.Info("Database migration completed")

	return instance, nil
}

func (d *DB) Migrate() error {
	if err := d.Conn.AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Reset drops every table, children first, and migrates the empty schema.
func (d *DB) Reset(ctx context.Context) error {
	all := tables()
	migrator := d.Conn.WithContext(ctx).Migrator()
	for i := len(all) - 1; i >= 0; i-- {
		if err := migrator.DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return d.Migrate()
}

// IsEmpty reports whether none of the reference tables hold rows.
func (d *DB) IsEmpty(ctx context.Context) (bool, error) {
	for _, table := range tables()[:3] {
		var count int64
		if err := d.Conn.WithContext(ctx).Model(table).Count(&count).Error; err != nil {
			return false, fmt.Errorf("count rows: %w", err)
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Initialize prepares the schema for use. With force the tables are dropped
// and re-seeded, otherwise seed data is only loaded into an empty database.
func (d *DB) Initialize(ctx context.Context, force bool) (bool, error) {
	logger := common.GetLoggerWith(common.LoggerNameDB)

	if force {
		logger.Info("Reinitializing database")
		if err := d.Reset(ctx); err != nil {
			return false, err
		}
	} else {
		empty, err := d.IsEmpty(ctx)
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}

	if err := d.Seed(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteDialector(dbPath string) gorm.Dialector {
	if dbPath == "" {
		var found bool
		if dbPath, found = os.LookupEnv(common.EnvKeyDbPath); !found || dbPath == "" {
			dbPath = defaultDbPath
		}
	}
	return sqlite.Open(dbPath + "?_foreign_keys=on")
}

// UseMemorySqliteDialector returns a dialector for a fresh, uniquely named
// in-memory database.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:battlogger-%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()))
}
