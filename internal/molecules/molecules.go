// Package molecules manages macromolecule types and the receptor catalogue.
package molecules

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plasmodocking/internal/config"
	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/filestore"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/slug"
	"plasmodocking/pkg/storage"
)

// Options configure where uploaded receptors are stored.
type Options struct {
	// MoleculesDir is the root of the receptor tree.
	MoleculesDir string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MoleculesDir: cfg.Files.MoleculesDir}
}

type molecules struct {
	options Options
	storage storage.Storage
}

// Ensure molecules implements Molecules.
var _ Molecules = (*molecules)(nil)

func requireStaff(actor *domain.User) error {
	if actor == nil || !actor.HasStaffAccess() {
		return serrors.With(serrors.ErrForbidden, "You do not have permission to perform this action.")
	}

	return nil
}

func (m *molecules) CreateType(ctx context.Context,
	actor *domain.User,
	input TypeInput,
) (*domain.MacromoleculeType, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}

	t := domain.MacromoleculeType{Name: name, Description: input.Description, Active: true}
	if input.Active != nil {
		t.Active = *input.Active
	}

	created, err := m.storage.CreateMacromoleculeType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("could not create macromolecule type: %w", err)
	}

	return created, nil
}

func (m *molecules) ListTypes(ctx context.Context,
	filter storage.MacromoleculeTypeFilter,
) ([]domain.MacromoleculeType, error) {
	types, err := m.storage.ListMacromoleculeTypes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list macromolecule types: %w", err)
	}

	return types, nil
}

func (m *molecules) GetType(ctx context.Context, ID domain.MacromoleculeTypeID) (*domain.MacromoleculeType, error) {
	t, err := m.storage.MacromoleculeTypeByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get macromolecule type: %w", err)
	}
	if t == nil {
		return nil, serrors.With(serrors.ErrNotFound, "macromolecule type not found")
	}

	return t, nil
}

func (m *molecules) UpdateType(ctx context.Context,
	actor *domain.User,
	ID domain.MacromoleculeTypeID,
	patch TypePatch,
) (*domain.MacromoleculeType, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	updates := storage.MacromoleculeTypeUpdates{Description: patch.Description, Active: patch.Active}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "name cannot be blank")
		}
		updates.Name = &name
	}

	t, err := m.storage.UpdateMacromoleculeType(ctx, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update macromolecule type: %w", err)
	}
	if t == nil {
		return nil, serrors.With(serrors.ErrNotFound, "macromolecule type not found")
	}

	return t, nil
}

func (m *molecules) DeleteType(ctx context.Context, actor *domain.User, ID domain.MacromoleculeTypeID) error {
	if err := requireStaff(actor); err != nil {
		return err
	}

	deleted, err := m.storage.DeleteMacromoleculeType(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete macromolecule type: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "macromolecule type not found")
	}

	return nil
}

// Dir returns the directory holding the files of a receptor:
// <root>/<type>/<redocking>/<receptor file>/, each element slugified.
func Dir(root, typeName string, redocking bool, receptorFile string) string {
	return filepath.Join(root,
		slug.MakeOr(typeName, "tipo"),
		strconv.FormatBool(redocking),
		slug.MakeOr(receptorFile, "receptor"),
	)
}

// Create stores the receptor and ligand files, then inserts the row and
// enqueues its preparation in one transaction.
func (m *molecules) Create(ctx context.Context, actor *domain.User, input CreateInput) (*domain.Macromolecule, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "nome is required")
	}
	if input.Receptor.Body == nil || input.Ligand.Body == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "recptorFile and ligandFile are required")
	}

	recName, err := filestore.BaseName(input.Receptor.Name)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid recptorFile")
	}
	ligName, err := filestore.BaseName(input.Ligand.Name)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid ligandFile")
	}

	t, err := m.storage.MacromoleculeTypeByID(ctx, input.TypeID)
	if err != nil {
		return nil, fmt.Errorf("could not get macromolecule type: %w", err)
	}
	if t == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid type %q: object does not exist", input.TypeID)
	}

	redocking := true
	if input.Redocking != nil {
		redocking = *input.Redocking
	}

	dir := Dir(m.options.MoleculesDir, t.Name, redocking, recName)
	ctx = logger.WithFields(ctx, zap.String("dir", dir))

	if _, err := filestore.Save(ctx, dir, recName, input.Receptor.Body); err != nil {
		return nil, fmt.Errorf("could not store receptor: %w", err)
	}
	if _, err := filestore.Save(ctx, dir, ligName, input.Ligand.Body); err != nil {
		return nil, fmt.Errorf("could not store ligand: %w", err)
	}

	typeID := t.ID
	var created *domain.Macromolecule
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.CreateMacromolecule(ctx, domain.Macromolecule{
			Name:           name,
			Rec:            recName,
			TypeID:         &typeID,
			TypeName:       t.Name,
			Redocking:      redocking,
			GridSize:       strings.TrimSpace(input.GridSize),
			GridCenter:     strings.TrimSpace(input.GridCenter),
			OriginalLigand: ligName,
			FldPath:        dir,
		})
		if err != nil {
			return fmt.Errorf("could not store macromolecule: %w", err)
		}

		if _, err := tx.AddJob(ctx, PrepareJobArgs{MacromoleculeID: uuid.UUID(created.ID)}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create macromolecule: %w", err)
	}

	logger.Info(ctx, "macromolecule created", zap.String("macromoleculeID", created.ID.String()))

	return created, nil
}

func (m *molecules) List(ctx context.Context, filter storage.MacromoleculeFilter) ([]domain.Macromolecule, error) {
	list, err := m.storage.ListMacromolecules(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list macromolecules: %w", err)
	}

	return list, nil
}

func (m *molecules) Get(ctx context.Context, ID domain.MacromoleculeID) (*domain.Macromolecule, error) {
	mol, err := m.storage.MacromoleculeByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get macromolecule: %w", err)
	}
	if mol == nil {
		return nil, serrors.With(serrors.ErrNotFound, "macromolecule not found")
	}

	return mol, nil
}

func (m *molecules) Update(ctx context.Context,
	actor *domain.User,
	ID domain.MacromoleculeID,
	patch Patch,
) (*domain.Macromolecule, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "nome cannot be blank")
	}

	if patch.TypeID != nil && !patch.ClearType {
		t, err := m.storage.MacromoleculeTypeByID(ctx, *patch.TypeID)
		if err != nil {
			return nil, fmt.Errorf("could not get macromolecule type: %w", err)
		}
		if t == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid type %q: object does not exist", *patch.TypeID)
		}
	}

	mol, err := m.storage.UpdateMacromolecule(ctx, ID, storage.MacromoleculeUpdates{
		Name:           patch.Name,
		Rec:            patch.Rec,
		TypeID:         patch.TypeID,
		ClearType:      patch.ClearType,
		Redocking:      patch.Redocking,
		GridSize:       patch.GridSize,
		GridCenter:     patch.GridCenter,
		OriginalLigand: patch.OriginalLigand,
		RedockingRMSD:  patch.RedockingRMSD,
		OriginalEnergy: patch.OriginalEnergy,
		FldPath:        patch.FldPath,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update macromolecule: %w", err)
	}
	if mol == nil {
		return nil, serrors.With(serrors.ErrNotFound, "macromolecule not found")
	}

	return mol, nil
}

func (m *molecules) Delete(ctx context.Context, actor *domain.User, ID domain.MacromoleculeID) error {
	if err := requireStaff(actor); err != nil {
		return err
	}

	deleted, err := m.storage.DeleteMacromolecule(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete macromolecule: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "macromolecule not found")
	}

	return nil
}

// New creates a Molecules service backed by storage.
func New(strg storage.Storage, options Options) Molecules {
	return &molecules{
		options: options,
		storage: strg,
	}
}
