package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	macromoleculeTypesTable = "macromolecule_types"
	macromoleculesTable     = "macromolecules"
)

var (
	macromoleculeTypeColumns = map[string]string{ //nolint: gochecknoglobals
		"name":       "name",
		"nome":       "name",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}
	macromoleculeColumns = map[string]string{ //nolint: gochecknoglobals
		"name":       "m.name",
		"nome":       "m.name",
		"rec":        "m.rec",
		"created_at": "m.created_at",
		"updated_at": "m.updated_at",
	}
)

// CreateMacromoleculeType inserts a type; duplicate names are serrors.ErrConflict.
func (p *PgSQL) CreateMacromoleculeType(ctx context.Context,
	t domain.MacromoleculeType,
) (*domain.MacromoleculeType, error) {
	row := PgMacromoleculeType{}
	row.FromDomain(t)

	var created PgMacromoleculeType
	_, err := p.Builder.Insert(macromoleculeTypesTable).
		Rows(row).
		Returning(&PgMacromoleculeType{}).
		Executor().
		ScanStructContext(ctx, &created)
	if err != nil {
		return nil, mapError(err, "could not insert macromolecule type")
	}

	return created.ToDomain(), nil
}

// MacromoleculeTypeByID returns the type or nil.
func (p *PgSQL) MacromoleculeTypeByID(ctx context.Context,
	ID domain.MacromoleculeTypeID,
) (*domain.MacromoleculeType, error) {
	var row PgMacromoleculeType
	found, err := p.Builder.From(macromoleculeTypesTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select macromolecule type: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ListMacromoleculeTypes returns types ordered by name unless told otherwise.
func (p *PgSQL) ListMacromoleculeTypes(ctx context.Context,
	filter storage.MacromoleculeTypeFilter,
) ([]domain.MacromoleculeType, error) {
	ds := p.Builder.From(macromoleculeTypesTable)
	if filter.Search != "" {
		ds = ds.Where(goqu.I("name").ILike(likePattern(filter.Search)))
	}
	if filter.Active != nil {
		ds = ds.Where(goqu.I("active").Eq(*filter.Active))
	}

	orders := filter.OrderBy
	if len(orders) == 0 {
		orders = []storage.Order{{Field: "name"}}
	}
	ds = paginate(orderBy(ds, orders, macromoleculeTypeColumns, "id"), filter.Page)

	var rows []PgMacromoleculeType
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list macromolecule types: %w", err)
	}

	types := make([]domain.MacromoleculeType, 0, len(rows))
	for i := range rows {
		types = append(types, *rows[i].ToDomain())
	}

	return types, nil
}

// UpdateMacromoleculeType applies the non-nil updates and returns the row.
func (p *PgSQL) UpdateMacromoleculeType(ctx context.Context,
	ID domain.MacromoleculeTypeID,
	updates storage.MacromoleculeTypeUpdates,
) (*domain.MacromoleculeType, error) {
	record := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	if updates.Name != nil {
		record["name"] = *updates.Name
	}
	if updates.Description != nil {
		record["description"] = *updates.Description
	}
	if updates.Active != nil {
		record["active"] = *updates.Active
	}

	var row PgMacromoleculeType
	found, err := p.Builder.Update(macromoleculeTypesTable).
		Set(record).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Returning(&PgMacromoleculeType{}).
		Executor().
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapError(err, "could not update macromolecule type")
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteMacromoleculeType removes a type. Macromolecules of the type keep
// existing without a type; referencing processes block the delete.
func (p *PgSQL) DeleteMacromoleculeType(ctx context.Context, ID domain.MacromoleculeTypeID) (bool, error) {
	return p.deleteByID(ctx, macromoleculeTypesTable, uuid.UUID(ID))
}

// CreateMacromolecule inserts a macromolecule and returns it joined with its type.
func (p *PgSQL) CreateMacromolecule(ctx context.Context, m domain.Macromolecule) (*domain.Macromolecule, error) {
	row := PgMacromolecule{}
	row.FromDomain(m)

	var created PgMacromolecule
	_, err := p.Builder.Insert(macromoleculesTable).
		Rows(row).
		Returning(&PgMacromolecule{}).
		Executor().
		ScanStructContext(ctx, &created)
	if err != nil {
		return nil, mapError(err, "could not insert macromolecule")
	}

	return p.MacromoleculeByID(ctx, domain.MacromoleculeID(created.ID))
}

func (p *PgSQL) macromoleculeSelect() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(macromoleculesTable).As("m")).
		LeftJoin(goqu.T(macromoleculeTypesTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("m.type_id")))).
		Select(
			goqu.I("m.id"),
			goqu.I("m.name"),
			goqu.I("m.rec"),
			goqu.I("m.type_id"),
			goqu.I("m.redocking"),
			goqu.I("m.grid_size"),
			goqu.I("m.grid_center"),
			goqu.I("m.original_ligand"),
			goqu.I("m.redocking_rmsd"),
			goqu.I("m.original_energy"),
			goqu.I("m.fld_path"),
			goqu.I("m.created_at"),
			goqu.I("m.updated_at"),
			goqu.I("t.name").As("type_name"),
		)
}

// MacromoleculeByID returns the macromolecule joined with its type name, or nil.
func (p *PgSQL) MacromoleculeByID(ctx context.Context, ID domain.MacromoleculeID) (*domain.Macromolecule, error) {
	var row PgMacromoleculeView
	found, err := p.macromoleculeSelect().
		Where(goqu.I("m.id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select macromolecule: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// LockMacromolecule selects the row FOR UPDATE, blocking concurrent writers
// until the surrounding transaction ends.
func (p *PgSQL) LockMacromolecule(ctx context.Context, ID domain.MacromoleculeID) (*domain.Macromolecule, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	var row PgMacromolecule
	found, err := p.Builder.From(macromoleculesTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ForUpdate(exp.Wait).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not lock macromolecule: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// ListMacromolecules returns macromolecules matching the filter, newest first by default.
func (p *PgSQL) ListMacromolecules(ctx context.Context,
	filter storage.MacromoleculeFilter,
) ([]domain.Macromolecule, error) {
	ds := p.macromoleculeSelect()
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		ds = ds.Where(goqu.Or(
			goqu.I("m.name").ILike(pattern),
			goqu.I("m.rec").ILike(pattern),
			goqu.I("m.original_ligand").ILike(pattern),
		))
	}
	if filter.TypeID != nil {
		ds = ds.Where(goqu.I("m.type_id").Eq(uuid.UUID(*filter.TypeID)))
	}
	if filter.Redocking != nil {
		ds = ds.Where(goqu.I("m.redocking").Eq(*filter.Redocking))
	}

	orders := filter.OrderBy
	if len(orders) == 0 {
		orders = []storage.Order{{Field: "created_at", Desc: true}}
	}
	ds = paginate(orderBy(ds, orders, macromoleculeColumns, "m.id"), filter.Page)

	var rows []PgMacromoleculeView
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list macromolecules: %w", err)
	}

	out := make([]domain.Macromolecule, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateMacromolecule applies the updates and returns the row joined with its type.
func (p *PgSQL) UpdateMacromolecule(ctx context.Context,
	ID domain.MacromoleculeID,
	updates storage.MacromoleculeUpdates,
) (*domain.Macromolecule, error) {
	record := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	if updates.Name != nil {
		record["name"] = *updates.Name
	}
	if updates.Rec != nil {
		record["rec"] = *updates.Rec
	}
	switch {
	case updates.ClearType:
		record["type_id"] = nil
	case updates.TypeID != nil:
		record["type_id"] = uuid.UUID(*updates.TypeID)
	}
	if updates.Redocking != nil {
		record["redocking"] = *updates.Redocking
	}
	if updates.GridSize != nil {
		record["grid_size"] = *updates.GridSize
	}
	if updates.GridCenter != nil {
		record["grid_center"] = *updates.GridCenter
	}
	if updates.OriginalLigand != nil {
		record["original_ligand"] = *updates.OriginalLigand
	}
	if updates.RedockingRMSD != nil {
		record["redocking_rmsd"] = nullString(*updates.RedockingRMSD)
	}
	if updates.OriginalEnergy != nil {
		record["original_energy"] = nullString(*updates.OriginalEnergy)
	}
	if updates.FldPath != nil {
		record["fld_path"] = *updates.FldPath
	}

	res, err := p.Builder.Update(macromoleculesTable).
		Set(record).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return nil, mapError(err, "could not update macromolecule")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return nil, nil //nolint: nilnil
	}

	return p.MacromoleculeByID(ctx, ID)
}

// DeleteMacromolecule removes a macromolecule and reports whether it existed.
func (p *PgSQL) DeleteMacromolecule(ctx context.Context, ID domain.MacromoleculeID) (bool, error) {
	return p.deleteByID(ctx, macromoleculesTable, uuid.UUID(ID))
}
