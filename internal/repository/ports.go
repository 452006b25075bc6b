package repository

import (
	"context"
	"solpay/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	Exists(ctx context.Context, model any, column string, value any) (bool, error)
	Page(ctx context.Context, query db.PageQuery, entity any) (int64, error)
	UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error)
}
