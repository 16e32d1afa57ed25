package login

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users is the directory contract backed by persistent storage.
type Users interface {
	Directory

	GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*User, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *User) (*User, error)
	GetOrProvisionTx(ctx context.Context, tx bun.IDB, record *User) (*User, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func (a *users) GetByUsername(ctx context.Context, username string) (*User, error) {
	return a.GetByUsernameTx(ctx, a.db, username)
}

func (a *users) GetByUsernameTx(ctx context.Context, tx bun.IDB, username string) (*User, error) {
	record := &User{}

	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to query user by username")
	}

	return record, nil
}

func (a *users) Create(ctx context.Context, record *User) (*User, error) {
	return a.CreateTx(ctx, a.db, record)
}

// CreateTx inserts the record. A unique violation on the username means a
// concurrent request won the create; the committed row is fetched and
// returned instead of surfacing the raw driver error.
func (a *users) CreateTx(ctx context.Context, tx bun.IDB, record *User) (*User, error) {
	_, err := tx.NewInsert().
		Model(record).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if isUniqueViolation(err) {
			return a.GetByUsernameTx(ctx, tx, record.Username)
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create user")
	}

	return record, nil
}

func (a *users) GetOrProvision(ctx context.Context, record *User) (*User, error) {
	return a.GetOrProvisionTx(ctx, a.db, record)
}

func (a *users) GetOrProvisionTx(ctx context.Context, tx bun.IDB, record *User) (*User, error) {
	user, err := a.GetByUsernameTx(ctx, tx, record.Username)
	if err == nil {
		return user, nil
	}

	if !IsRecordNotFound(err) {
		return nil, err
	}

	return a.CreateTx(ctx, tx, record)
}
