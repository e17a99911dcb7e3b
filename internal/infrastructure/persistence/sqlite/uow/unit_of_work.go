package uow

import (
	"context"

	"gorm.io/gorm"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
)

// UnitOfWork implements ports.UnitOfWork with gorm. The report row and its
// event trail commit or roll back together.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ports.WithTxContext(ctx, tx))
	})
}
