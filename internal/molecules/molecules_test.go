package molecules_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"plasmodocking/internal/molecules"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
	mockstorage "plasmodocking/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

var (
	staff  = &domain.User{IsStaff: true}          //nolint: gochecknoglobals
	member = &domain.User{Role: domain.RoleUser} //nolint: gochecknoglobals
)

func newTestMolecules(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, molecules.Molecules, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	root := t.TempDir()

	return ctrl, st, molecules.New(st, molecules.Options{MoleculesDir: root}), root
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestDir(t *testing.T) {
	require.Equal(t,
		filepath.Join("/data", "falciparum-3d7", "true", "1tv5_apdb"),
		molecules.Dir("/data", "Falciparum 3D7", true, "1tv5_a.pdb"))
	require.Equal(t,
		filepath.Join("/data", "tipo", "false", "receptor"),
		molecules.Dir("/data", "★", false, "..."))
}

func TestMolecules_Create(t *testing.T) {
	ctrl, st, svc, root := newTestMolecules(t)

	typ := &domain.MacromoleculeType{ID: domain.MacromoleculeTypeID(uuid.New()), Name: "Falciparum"}
	molID := domain.MacromoleculeID(uuid.New())
	redocking := false

	st.EXPECT().MacromoleculeTypeByID(gomock.Any(), typ.ID).Return(typ, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateMacromolecule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m domain.Macromolecule) (*domain.Macromolecule, error) {
				require.Equal(t, "PfDHODH", m.Name)
				require.Equal(t, "1tv5_a.pdb", m.Rec)
				require.Equal(t, "fmn.pdb", m.OriginalLigand)
				require.Equal(t, "20,20,20", m.GridSize)
				require.Equal(t, typ.ID, *m.TypeID)
				require.False(t, m.Redocking)
				require.Equal(t, filepath.Join(root, "falciparum", "false", "1tv5_apdb"), m.FldPath)
				m.ID = molID

				return &m, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), molecules.PrepareJobArgs{MacromoleculeID: uuid.UUID(molID)}, gomock.Nil()).
			Return(true, nil)
	})

	mol, err := svc.Create(context.Background(), staff, molecules.CreateInput{
		Name:      " PfDHODH ",
		TypeID:    typ.ID,
		Redocking: &redocking,
		GridSize:  "20,20,20",
		Receptor:  molecules.Upload{Name: `C:\uploads\1tv5_a.pdb`, Body: strings.NewReader("ATOM receptor")},
		Ligand:    molecules.Upload{Name: "fmn.pdb", Body: strings.NewReader("HETATM ligand")},
	})
	require.NoError(t, err)
	require.Equal(t, molID, mol.ID)

	data, err := os.ReadFile(filepath.Join(mol.FldPath, "1tv5_a.pdb"))
	require.NoError(t, err)
	require.Equal(t, "ATOM receptor", string(data))

	data, err = os.ReadFile(filepath.Join(mol.FldPath, "fmn.pdb"))
	require.NoError(t, err)
	require.Equal(t, "HETATM ligand", string(data))
}

func TestMolecules_Create_Validation(t *testing.T) {
	_, st, svc, _ := newTestMolecules(t)

	input := molecules.CreateInput{
		Name:     "PfDHODH",
		TypeID:   domain.MacromoleculeTypeID(uuid.New()),
		Receptor: molecules.Upload{Name: "rec.pdb", Body: strings.NewReader("x")},
		Ligand:   molecules.Upload{Name: "lig.pdb", Body: strings.NewReader("y")},
	}

	_, err := svc.Create(context.Background(), member, input)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	noName := input
	noName.Name = " "
	_, err = svc.Create(context.Background(), staff, noName)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	noLigand := input
	noLigand.Ligand = molecules.Upload{}
	_, err = svc.Create(context.Background(), staff, noLigand)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().MacromoleculeTypeByID(gomock.Any(), input.TypeID).Return(nil, nil)
	_, err = svc.Create(context.Background(), staff, input)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMolecules_Create_JobError(t *testing.T) {
	ctrl, st, svc, _ := newTestMolecules(t)
	typ := &domain.MacromoleculeType{ID: domain.MacromoleculeTypeID(uuid.New()), Name: "Vivax"}

	st.EXPECT().MacromoleculeTypeByID(gomock.Any(), typ.ID).Return(typ, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateMacromolecule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m domain.Macromolecule) (*domain.Macromolecule, error) {
				return &m, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})

	_, err := svc.Create(context.Background(), staff, molecules.CreateInput{
		Name:     "PvDHODH",
		TypeID:   typ.ID,
		Receptor: molecules.Upload{Name: "rec.pdb", Body: strings.NewReader("x")},
		Ligand:   molecules.Upload{Name: "lig.pdb", Body: strings.NewReader("y")},
	})
	require.Error(t, err)
}

func TestMolecules_Types(t *testing.T) {
	_, st, svc, _ := newTestMolecules(t)
	ID := domain.MacromoleculeTypeID(uuid.New())

	t.Run("create defaults to active", func(t *testing.T) {
		st.EXPECT().CreateMacromoleculeType(gomock.Any(), domain.MacromoleculeType{Name: "Falciparum", Active: true}).
			Return(&domain.MacromoleculeType{ID: ID, Name: "Falciparum", Active: true}, nil)

		got, err := svc.CreateType(context.Background(), staff, molecules.TypeInput{Name: " Falciparum "})
		require.NoError(t, err)
		require.Equal(t, ID, got.ID)
	})

	t.Run("writes need staff", func(t *testing.T) {
		_, err := svc.CreateType(context.Background(), member, molecules.TypeInput{Name: "x"})
		require.ErrorIs(t, err, serrors.ErrForbidden)

		_, err = svc.UpdateType(context.Background(), nil, ID, molecules.TypePatch{})
		require.ErrorIs(t, err, serrors.ErrForbidden)

		require.ErrorIs(t, svc.DeleteType(context.Background(), member, ID), serrors.ErrForbidden)
	})

	t.Run("get missing", func(t *testing.T) {
		st.EXPECT().MacromoleculeTypeByID(gomock.Any(), ID).Return(nil, nil)

		_, err := svc.GetType(context.Background(), ID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("update missing", func(t *testing.T) {
		st.EXPECT().UpdateMacromoleculeType(gomock.Any(), ID, gomock.Any()).Return(nil, nil)

		_, err := svc.UpdateType(context.Background(), staff, ID, molecules.TypePatch{})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("delete referenced", func(t *testing.T) {
		st.EXPECT().DeleteMacromoleculeType(gomock.Any(), ID).
			Return(false, serrors.With(serrors.ErrConflict, "macromolecule type is still referenced"))

		require.ErrorIs(t, svc.DeleteType(context.Background(), staff, ID), serrors.ErrConflict)
	})
}

func TestMolecules_Update(t *testing.T) {
	_, st, svc, _ := newTestMolecules(t)
	ID := domain.MacromoleculeID(uuid.New())
	typeID := domain.MacromoleculeTypeID(uuid.New())

	t.Run("unknown type", func(t *testing.T) {
		st.EXPECT().MacromoleculeTypeByID(gomock.Any(), typeID).Return(nil, nil)

		_, err := svc.Update(context.Background(), staff, ID, molecules.Patch{TypeID: &typeID})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("clear type skips lookup", func(t *testing.T) {
		st.EXPECT().UpdateMacromolecule(gomock.Any(), ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.MacromoleculeID, u storage.MacromoleculeUpdates) (*domain.Macromolecule, error) {
				require.True(t, u.ClearType)

				return &domain.Macromolecule{ID: ID}, nil
			})

		got, err := svc.Update(context.Background(), staff, ID, molecules.Patch{TypeID: &typeID, ClearType: true})
		require.NoError(t, err)
		require.Nil(t, got.TypeID)
	})

	t.Run("missing", func(t *testing.T) {
		st.EXPECT().UpdateMacromolecule(gomock.Any(), ID, gomock.Any()).Return(nil, nil)

		_, err := svc.Update(context.Background(), staff, ID, molecules.Patch{})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestMolecules_Delete(t *testing.T) {
	_, st, svc, _ := newTestMolecules(t)
	ID := domain.MacromoleculeID(uuid.New())

	st.EXPECT().DeleteMacromolecule(gomock.Any(), ID).Return(true, nil)
	require.NoError(t, svc.Delete(context.Background(), staff, ID))

	st.EXPECT().DeleteMacromolecule(gomock.Any(), ID).Return(false, nil)
	require.ErrorIs(t, svc.Delete(context.Background(), staff, ID), serrors.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), member, ID), serrors.ErrForbidden)
}
