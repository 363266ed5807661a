package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrStaleRecord is returned when a conditional update matched no row because
// the record changed since it was read.
var ErrStaleRecord = errors.New("record was modified concurrently")

// Repositories groups every repository bound to the same *gorm.DB (or transaction)
type Repositories struct {
	Users          UserRepositoryInterface
	Properties     PropertyRepositoryInterface
	Availability   AvailabilityRepositoryInterface
	Jobs           JobRepositoryInterface
	AssignmentLogs AssignmentLogRepositoryInterface
}

// NewRepositories builds all repositories on top of db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db),
		Properties:     NewPropertyRepository(db),
		Availability:   NewAvailabilityRepository(db),
		Jobs:           NewJobRepository(db),
		AssignmentLogs: NewAssignmentLogRepository(db),
	}
}

// UnitOfWork runs repository work against a gorm connection
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Repositories returns non-transactional repositories bound to ctx
func (u *UnitOfWork) Repositories(ctx context.Context) *Repositories {
	return NewRepositories(u.db.WithContext(ctx))
}

// Do runs fn inside a single transaction. Any error returned by fn rolls
// back every write made through repos.
func (u *UnitOfWork) Do(ctx context.Context, fn func(repos *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
