package postgres

import (
	"context"
	"fmt"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const processesTable = "processes"

var processColumns = map[string]string{ //nolint: gochecknoglobals
	"name":       "p.name",
	"nome":       "p.name",
	"status":     "p.status",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
}

// CreateProcess inserts a process and returns it joined with owner and type.
func (p *PgSQL) CreateProcess(ctx context.Context, proc domain.Process) (*domain.Process, error) {
	row := PgProcess{}
	row.FromDomain(proc)

	var created PgProcess
	_, err := p.Builder.Insert(processesTable).
		Rows(row).
		Returning(&PgProcess{}).
		Executor().
		ScanStructContext(ctx, &created)
	if err != nil {
		return nil, mapError(err, "could not insert process")
	}

	return p.ProcessByID(ctx, domain.ProcessID(created.ID))
}

func (p *PgSQL) processSelect() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(processesTable).As("p")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("p.user_id")))).
		Join(goqu.T(macromoleculeTypesTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("p.type_id")))).
		Select(
			goqu.I("p.id"),
			goqu.I("p.name"),
			goqu.I("p.type_id"),
			goqu.I("p.user_id"),
			goqu.I("p.status"),
			goqu.I("p.result"),
			goqu.I("p.sdf_path"),
			goqu.I("p.zip_path"),
			goqu.I("p.created_at"),
			goqu.I("p.updated_at"),
			goqu.I("t.name").As("type_name"),
			goqu.I("u.username").As("username"),
			goqu.I("u.email").As("user_email"),
			goqu.I("u.first_name").As("user_first_name"),
			goqu.I("u.last_name").As("user_last_name"),
		)
}

// ProcessByID returns the process joined with owner and type, or nil.
func (p *PgSQL) ProcessByID(ctx context.Context, ID domain.ProcessID) (*domain.Process, error) {
	var row PgProcessView
	found, err := p.processSelect().
		Where(goqu.I("p.id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select process: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ListProcesses returns processes matching the filter, newest first by default.
func (p *PgSQL) ListProcesses(ctx context.Context, filter storage.ProcessFilter) ([]domain.Process, error) {
	ds := p.processSelect()
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		ds = ds.Where(goqu.Or(
			goqu.I("p.name").ILike(pattern),
			goqu.I("p.sdf_path").ILike(pattern),
			goqu.I("u.username").ILike(pattern),
			goqu.I("t.name").ILike(pattern),
		))
	}
	if filter.TypeID != nil {
		ds = ds.Where(goqu.I("p.type_id").Eq(uuid.UUID(*filter.TypeID)))
	}
	if filter.UserID != nil {
		ds = ds.Where(goqu.I("p.user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.I("p.status").Eq(string(filter.Status)))
	}
	if filter.Redocking != nil {
		sub := p.Builder.From(goqu.T(macromoleculesTable).As("mm")).
			Select(goqu.L("1")).
			Where(
				goqu.I("mm.type_id").Eq(goqu.I("p.type_id")),
				goqu.I("mm.redocking").Eq(*filter.Redocking),
			)
		ds = ds.Where(goqu.L("EXISTS ?", sub))
	}

	orders := filter.OrderBy
	if len(orders) == 0 {
		orders = []storage.Order{{Field: "created_at", Desc: true}}
	}
	ds = paginate(orderBy(ds, orders, processColumns, "p.id"), filter.Page)

	var rows []PgProcessView
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list processes: %w", err)
	}

	out := make([]domain.Process, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateProcess applies the updates, refreshes updated_at and returns the joined row.
func (p *PgSQL) UpdateProcess(ctx context.Context,
	ID domain.ProcessID,
	updates storage.ProcessUpdates,
) (*domain.Process, error) {
	record := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	if updates.Name != nil {
		record["name"] = *updates.Name
	}
	if updates.TypeID != nil {
		record["type_id"] = uuid.UUID(*updates.TypeID)
	}
	if updates.UserID != nil {
		record["user_id"] = uuid.UUID(*updates.UserID)
	}
	if updates.Status != nil {
		record["status"] = string(*updates.Status)
	}
	if updates.Result != nil {
		if len(*updates.Result) == 0 {
			record["result"] = nil
		} else {
			record["result"] = string(*updates.Result)
		}
	}
	if updates.SDFPath != nil {
		record["sdf_path"] = nullString(*updates.SDFPath)
	}
	if updates.ZIPPath != nil {
		record["zip_path"] = nullString(*updates.ZIPPath)
	}

	res, err := p.Builder.Update(processesTable).
		Set(record).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return nil, mapError(err, "could not update process")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return nil, nil //nolint: nilnil
	}

	return p.ProcessByID(ctx, ID)
}

// DeleteProcess removes a process and reports whether it existed.
func (p *PgSQL) DeleteProcess(ctx context.Context, ID domain.ProcessID) (bool, error) {
	return p.deleteByID(ctx, processesTable, uuid.UUID(ID))
}
