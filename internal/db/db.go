package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// uniqueViolation is the postgres SQLSTATE raised by a unique index or primary key conflict.
const uniqueViolation = "23505"

// PageQuery describes a filtered, ordered range read.
type PageQuery struct {
	Where  string
	Args   []any
	Order  string
	Offset int
	Limit  int
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates a single record. A unique constraint conflict is reported as ErrDuplicate.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// Exists reports whether a row of the given model matches column = value.
func (f *PostgresDB) Exists(ctx context.Context, model any, column string, value any) (bool, error) {
	var count int64
	err := f.DB.WithContext(ctx).
		Model(model).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking record by %q: %w", column, err)
	}

	return count > 0, nil
}

// Page loads one range of rows into entity and returns the total number of rows matching the filter.
func (f *PostgresDB) Page(ctx context.Context, query PageQuery, entity any) (int64, error) {
	base := f.DB.WithContext(ctx).Model(entity)
	if query.Where != "" {
		base = base.Where(query.Where, query.Args...)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}

	if total == 0 {
		return 0, nil
	}

	page := base
	if query.Order != "" {
		page = page.Order(query.Order)
	}
	err := page.Offset(query.Offset).Limit(query.Limit).Find(entity).Error
	if err != nil {
		return 0, fmt.Errorf("getting records page: %w", err)
	}

	return total, nil
}

// UpdateWhere applies updates to every row of model matching conds and returns the number of rows changed.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(conds).Updates(updates)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("update records: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
