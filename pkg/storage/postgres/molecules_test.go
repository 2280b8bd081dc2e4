package postgres_test

import (
	"context"
	"testing"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
	"plasmodocking/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createType(t *testing.T, pg *postgres.PgSQL, name string) *domain.MacromoleculeType {
	t.Helper()

	mt, err := pg.CreateMacromoleculeType(context.Background(), domain.MacromoleculeType{
		Name:   name,
		Active: true,
	})
	require.NoError(t, err)

	return mt
}

func TestPgSQL_MacromoleculeTypes(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	falciparum := createType(t, pg, "Plasmodium falciparum")
	vivax := createType(t, pg, "Plasmodium vivax")
	require.Empty(t, falciparum.Description)

	_, err := pg.CreateMacromoleculeType(ctx, domain.MacromoleculeType{Name: "Plasmodium vivax"})
	require.ErrorIs(t, err, serrors.ErrConflict)

	inactive := false
	updated, err := pg.UpdateMacromoleculeType(ctx, vivax.ID, storage.MacromoleculeTypeUpdates{Active: &inactive})
	require.NoError(t, err)
	require.False(t, updated.Active)
	require.False(t, updated.UpdatedAt.Before(vivax.UpdatedAt))

	active := true
	types, err := pg.ListMacromoleculeTypes(ctx, storage.MacromoleculeTypeFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, types, 1)
	require.Equal(t, falciparum.ID, types[0].ID)

	types, err = pg.ListMacromoleculeTypes(ctx, storage.MacromoleculeTypeFilter{Search: "VIVAX"})
	require.NoError(t, err)
	require.Len(t, types, 1)

	got, err := pg.MacromoleculeTypeByID(ctx, domain.MacromoleculeTypeID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err := pg.DeleteMacromoleculeType(ctx, vivax.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestPgSQL_Macromolecules(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	mt := createType(t, pg, "Plasmodium falciparum")
	m, err := pg.CreateMacromolecule(ctx, domain.Macromolecule{
		Name:           "DHODH",
		Rec:            "1tv5_a.pdb",
		TypeID:         &mt.ID,
		Redocking:      true,
		GridSize:       "60,60,60",
		GridCenter:     "1.0,2.0,3.0",
		OriginalLigand: "n8e.pdb",
		FldPath:        "/data/macromoleculas/DHODH",
	})
	require.NoError(t, err)
	require.Equal(t, "Plasmodium falciparum", m.TypeName)
	require.Empty(t, m.RedockingRMSD)

	other, err := pg.CreateMacromolecule(ctx, domain.Macromolecule{Name: "PfATP4", Rec: "atp4.pdb"})
	require.NoError(t, err)
	require.Nil(t, other.TypeID)

	t.Run("lock requires a transaction", func(t *testing.T) {
		_, err := pg.LockMacromolecule(ctx, m.ID)
		require.ErrorIs(t, err, storage.ErrNotInTx)
	})

	t.Run("lock and update inside a transaction", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			locked, err := s.LockMacromolecule(ctx, m.ID)
			require.NoError(t, err)
			require.NotNil(t, locked)

			rmsd, energy, fld := "1.234", "-7.50", "/data/macromoleculas/DHODH/1tv5_a.maps.fld"
			_, err = s.UpdateMacromolecule(ctx, m.ID, storage.MacromoleculeUpdates{
				RedockingRMSD:  &rmsd,
				OriginalEnergy: &energy,
				FldPath:        &fld,
			})

			return err
		})
		require.NoError(t, err)

		got, err := pg.MacromoleculeByID(ctx, m.ID)
		require.NoError(t, err)
		require.Equal(t, "1.234", got.RedockingRMSD)
		require.Equal(t, "-7.50", got.OriginalEnergy)
		require.Equal(t, "/data/macromoleculas/DHODH/1tv5_a.maps.fld", got.FldPath)
	})

	t.Run("list filters", func(t *testing.T) {
		list, err := pg.ListMacromolecules(ctx, storage.MacromoleculeFilter{TypeID: &mt.ID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, m.ID, list[0].ID)

		redocking := true
		list, err = pg.ListMacromolecules(ctx, storage.MacromoleculeFilter{Redocking: &redocking})
		require.NoError(t, err)
		require.Len(t, list, 1)

		list, err = pg.ListMacromolecules(ctx, storage.MacromoleculeFilter{
			Search:  "pdb",
			OrderBy: []storage.Order{{Field: "nome"}},
		})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "DHODH", list[0].Name)
	})

	t.Run("clear type", func(t *testing.T) {
		got, err := pg.UpdateMacromolecule(ctx, m.ID, storage.MacromoleculeUpdates{ClearType: true})
		require.NoError(t, err)
		require.Nil(t, got.TypeID)
		require.Empty(t, got.TypeName)
	})

	t.Run("deleting the type keeps the macromolecule", func(t *testing.T) {
		_, err := pg.UpdateMacromolecule(ctx, m.ID, storage.MacromoleculeUpdates{TypeID: &mt.ID})
		require.NoError(t, err)

		deleted, err := pg.DeleteMacromoleculeType(ctx, mt.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pg.MacromoleculeByID(ctx, m.ID)
		require.NoError(t, err)
		require.Nil(t, got.TypeID)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pg.DeleteMacromolecule(ctx, other.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pg.UpdateMacromolecule(ctx, other.ID, storage.MacromoleculeUpdates{})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
