package postgres

import (
	"context"
	"fmt"
	"strings"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const usersTable = "users"

var userColumns = map[string]string{ //nolint: gochecknoglobals
	"username":    "username",
	"email":       "email",
	"date_joined": "date_joined",
	"last_login":  "last_login",
}

// CreateUser inserts a user. Duplicate usernames or emails are reported as serrors.ErrConflict.
func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	row := PgUser{}
	row.FromDomain(user)

	var created PgUser
	_, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().
		ScanStructContext(ctx, &created)
	if err != nil {
		return nil, mapError(err, "could not insert user")
	}

	return created.ToDomain(), nil
}

func (p *PgSQL) userBy(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select user: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// UserByID returns the user or nil.
func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
}

// UserByEmail looks the user up by email ignoring case.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.Func("LOWER", goqu.I("email")).Eq(strings.ToLower(strings.TrimSpace(email))))
}

// UserByUsername returns the user with the exact username.
func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("username").Eq(username))
}

// ListUsers returns users matching the filter, newest first by default.
func (p *PgSQL) ListUsers(ctx context.Context, filter storage.UserFilter) ([]domain.User, error) {
	ds := p.Builder.From(usersTable)
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		ds = ds.Where(goqu.Or(
			goqu.I("username").ILike(pattern),
			goqu.I("email").ILike(pattern),
			goqu.I("first_name").ILike(pattern),
			goqu.I("last_name").ILike(pattern),
		))
	}

	orders := filter.OrderBy
	if len(orders) == 0 {
		orders = []storage.Order{{Field: "date_joined", Desc: true}}
	}
	ds = paginate(orderBy(ds, orders, userColumns, "id"), filter.Page)

	var rows []PgUser
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].ToDomain())
	}

	return users, nil
}

// UpdateUser applies the non-nil updates and returns the updated row.
func (p *PgSQL) UpdateUser(ctx context.Context, ID domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	record := goqu.Record{}
	if updates.Username != nil {
		record["username"] = *updates.Username
	}
	if updates.Email != nil {
		record["email"] = *updates.Email
	}
	if updates.FirstName != nil {
		record["first_name"] = *updates.FirstName
	}
	if updates.LastName != nil {
		record["last_name"] = *updates.LastName
	}
	if updates.Role != nil {
		record["role"] = string(*updates.Role)
	}
	if updates.PasswordHash != nil {
		record["password_hash"] = *updates.PasswordHash
	}
	if updates.Deleted != nil {
		record["deleted"] = *updates.Deleted
	}
	if updates.IsActive != nil {
		record["is_active"] = *updates.IsActive
	}
	if updates.IsStaff != nil {
		record["is_staff"] = *updates.IsStaff
	}
	if updates.IsSuperuser != nil {
		record["is_superuser"] = *updates.IsSuperuser
	}
	if updates.LastLogin != nil {
		record["last_login"] = *updates.LastLogin
	}

	if len(record) == 0 {
		return p.UserByID(ctx, ID)
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(record).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Returning(&PgUser{}).
		Executor().
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapError(err, "could not update user")
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteUser removes the user. Its processes are removed by the cascading foreign key.
func (p *PgSQL) DeleteUser(ctx context.Context, ID domain.UserID) (bool, error) {
	return p.deleteByID(ctx, usersTable, uuid.UUID(ID))
}

func (p *PgSQL) deleteByID(ctx context.Context, table string, ID uuid.UUID) (bool, error) {
	res, err := p.Builder.Delete(table).
		Where(goqu.I("id").Eq(ID)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, mapError(err, "could not delete from "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
