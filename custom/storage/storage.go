// Package storage opens the configured relational stores and routes every
// table to the store that owns it.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/kanruethaiii/backend-cat/custom/util"
	"github.com/kanruethaiii/backend-cat/model"
	_ "github.com/lib/pq"
	"github.com/romana/rlog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DRIVER_SQLITE   = "sqlite"
	DRIVER_POSTGRES = "postgres"
)

type Store struct {
	Name   string
	Driver string
	Tables []string
	db     *gorm.DB
	sqlDB  *sql.DB
}

// Stores owns one connection pool per configured store.
type Stores struct {
	stores []*Store
	routed *gorm.DB
}

// Open connects every store. Tables not listed by any store belong to the first one.
func Open(configs []util.StoreConfig) (*Stores, error) {
	if len(configs) == 0 {
		return nil, errors.New("no store configured")
	}
	owners, err := assignTables(configs)
	if err != nil {
		return nil, err
	}

	s := &Stores{}
	for i, cfg := range configs {
		if cfg.Driver != configs[0].Driver {
			s.Close()
			return nil, fmt.Errorf("store %s: driver %s differs from %s", cfg.Name, cfg.Driver, configs[0].Driver)
		}
		store, err := openStore(cfg)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("store %s: %w", cfg.Name, err)
		}
		for _, table := range model.ALL_TABLE_NAMES {
			if owners[table] == i {
				store.Tables = append(store.Tables, table)
			}
		}
		s.stores = append(s.stores, store)
	}
	return s, nil
}

func assignTables(configs []util.StoreConfig) (map[string]int, error) {
	owners := make(map[string]int)
	for i, cfg := range configs {
		for _, table := range cfg.Tables {
			if _, ok := model.TablesByName[table]; !ok {
				return nil, fmt.Errorf("store %s: unknown table %s", cfg.Name, table)
			}
			if owner, ok := owners[table]; ok {
				return nil, fmt.Errorf("table %s assigned to both %s and %s", table, configs[owner].Name, cfg.Name)
			}
			owners[table] = i
		}
	}
	for _, table := range model.ALL_TABLE_NAMES {
		if _, ok := owners[table]; !ok {
			owners[table] = 0
		}
	}
	return owners, nil
}

func openStore(cfg util.StoreConfig) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DRIVER_SQLITE:
		if err := ensureDir(cfg.DSN); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.DSN)
	case DRIVER_POSTGRES:
		dialector = postgres.New(postgres.Config{DriverName: "postgres", DSN: cfg.DSN})
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: util.GormLogger()})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DRIVER_POSTGRES {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	rlog.Infof("Store %s opened (%s)", cfg.Name, cfg.Driver)
	return &Store{Name: cfg.Name, Driver: cfg.Driver, db: db, sqlDB: sqlDB}, nil
}

// ensureDir creates the parent directory of a sqlite file.
func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.Contains(dsn, "mode=memory") || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// DB is the store's own handle, without table routing.
func (store *Store) DB() *gorm.DB {
	return store.db
}

func (s *Stores) List() []*Store {
	return s.stores
}

// Ping round-trips every store.
func (s *Stores) Ping(ctx context.Context) error {
	for _, store := range s.stores {
		if err := store.sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("store %s: %w", store.Name, err)
		}
	}
	return nil
}

// Migrate creates the missing tables of each store on that store only.
func (s *Stores) Migrate() error {
	for _, store := range s.stores {
		tables := make([]interface{}, 0, len(store.Tables))
		for _, name := range store.Tables {
			tables = append(tables, model.TablesByName[name])
		}
		if len(tables) == 0 {
			continue
		}
		if err := store.db.AutoMigrate(tables...); err != nil {
			return fmt.Errorf("store %s: %w", store.Name, err)
		}
		rlog.Infof("Store %s migrated: %s", store.Name, strings.Join(store.Tables, ", "))
	}
	return nil
}

// DB returns a handle that sends each statement to the store owning its table.
func (s *Stores) DB() (*gorm.DB, error) {
	if s.routed != nil {
		return s.routed, nil
	}
	primary := s.stores[0]
	db, err := gorm.Open(primary.dialector(), &gorm.Config{Logger: util.GormLogger()})
	if err != nil {
		return nil, err
	}

	var resolver *dbresolver.DBResolver
	for _, store := range s.stores[1:] {
		if len(store.Tables) == 0 {
			continue
		}
		tables := make([]interface{}, 0, len(store.Tables))
		for _, name := range store.Tables {
			tables = append(tables, name)
		}
		cfg := dbresolver.Config{Sources: []gorm.Dialector{store.dialector()}}
		if resolver == nil {
			resolver = dbresolver.Register(cfg, tables...)
		} else {
			resolver = resolver.Register(cfg, tables...)
		}
	}
	if resolver != nil {
		if err := db.Use(resolver); err != nil {
			return nil, err
		}
	}
	s.routed = db
	return db, nil
}

// dialector reuses the store's pool so routed statements share its connections.
func (store *Store) dialector() gorm.Dialector {
	if store.Driver == DRIVER_POSTGRES {
		return postgres.New(postgres.Config{Conn: store.sqlDB})
	}
	return &sqlite.Dialector{Conn: store.sqlDB}
}

func (s *Stores) Close() error {
	var errs []error
	for _, store := range s.stores {
		if err := store.sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store %s: %w", store.Name, err))
		}
	}
	return errors.Join(errs...)
}
