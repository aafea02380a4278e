package inmem

import (
	"context"

	"logistics/internal/core/ports"
)

// UnitOfWorkFactory creates unit of work instances over a shared in-memory
// repository. There is no real transaction: Begin, Commit, and Rollback are
// no-ops and writes apply immediately.
type UnitOfWorkFactory struct {
	repo *OrderRepository
}

// NewUnitOfWorkFactory creates a factory over the given repository.
func NewUnitOfWorkFactory(repo *OrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repo: repo}
}

// Create produces a new UnitOfWork bound to the shared repository.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repo: f.repo}
}

// UnitOfWork is the no-op transactional wrapper around the in-memory repository.
type UnitOfWork struct {
	repo *OrderRepository
}

// Begin is a no-op.
func (u *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (u *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op.
func (u *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the shared order repository.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository { return u.repo }
