package docking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/filestore"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/serrors"
	"plasmodocking/pkg/storage"
)

// RedockingXML is where the report printed by a redocking run is saved.
const RedockingXML = "docking_result.xml"

// PrepareSummary describes a finished PrepareMacromolecule call.
type PrepareSummary struct {
	MacromoleculeID domain.MacromoleculeID
	Workdir         string
	ReceptorPDBQT   string
	Fld             string
	GPFCount        int
	LigandPDBQT     string
	Grid            Grid
	DockingRan      bool
	DockingXML      string
	Best            *Best
	Updated         bool
}

func (e *engine) script(name string) string {
	return filepath.Join(e.options.Tools.MGLUtilities, name)
}

func (e *engine) checkPrepareTools() error {
	tools := e.options.Tools

	var missing []string
	for _, t := range []struct{ name, path string }{
		{"pythonsh", tools.PythonSh},
		{"prepare_receptor", e.script("prepare_receptor4.py")},
		{"prepare_ligand", e.script("prepare_ligand4.py")},
		{"prepare_gpf", e.script("prepare_gpf4.py")},
		{"autogrid4", tools.AutoGrid},
		{"ad4_parameters", tools.AD4Parameters},
		{"autodock_gpu", tools.AutodockGPU},
	} {
		if !fileExists(t.path) {
			missing = append(missing, t.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing tools: %s", strings.Join(missing, ", "))
	}

	return nil
}

// workdir returns the directory of a macromolecule: FldPath itself until
// the maps exist, then the directory of the fld file.
func workdir(m *domain.Macromolecule) string {
	if m.FldPath == "" {
		return ""
	}
	if info, err := os.Stat(m.FldPath); err == nil && info.IsDir() {
		return m.FldPath
	}
	if strings.HasSuffix(m.FldPath, ".fld") {
		return filepath.Dir(m.FldPath)
	}

	return m.FldPath
}

func (e *engine) pythonsh(ctx context.Context, dir, script string, args ...string) error {
	_, err := runWithTimeout(ctx, e.exec, e.options.Tools.ReceptorTimeout, dir,
		e.options.Tools.PythonSh, append([]string{e.script(script)}, args...)...)

	return err
}

func prependParameterFile(path, params string) error {
	data, err := os.ReadFile(path) //nolint: gosec
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	out := "parameter_file " + params + "\n" + string(data)
	if err := os.WriteFile(path, []byte(out), 0o664); err != nil { //nolint: gosec
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

func (e *engine) prepareGPFs(ctx context.Context, dir, receptorPDBQT string, grid Grid) ([]string, error) {
	gpfs := make([]string, 0, len(LigandGroups))
	for i, group := range LigandGroups {
		name := fmt.Sprintf("grid_%d.gpf", i+1)
		if err := e.pythonsh(ctx, dir, "prepare_gpf4.py",
			"-r", receptorPDBQT,
			"-o", name,
			"-p", "gridcenter="+grid.CenterParam(),
			"-p", "npts="+grid.Npts(),
			"-p", "ligand_types="+group,
		); err != nil {
			return nil, fmt.Errorf("prepare_gpf_%d: %w", i+1, err)
		}

		path := filepath.Join(dir, name)
		if !fileExists(path) {
			return nil, fmt.Errorf("failed to generate %s", name)
		}
		if err := prependParameterFile(path, e.options.Tools.AD4Parameters); err != nil {
			return nil, err
		}

		gpfs = append(gpfs, name)
	}

	return gpfs, nil
}

func (e *engine) runAutogrid(ctx context.Context, dir string, gpfs []string) (string, error) {
	for i, gpf := range gpfs {
		if _, err := runWithTimeout(ctx, e.exec, e.options.Tools.GridTimeout, dir,
			e.options.Tools.AutoGrid, "-p", gpf, "-l", fmt.Sprintf("grid_%d.glg", i+1)); err != nil {
			return "", fmt.Errorf("autogrid_%d: %w", i+1, err)
		}
	}

	found, err := filepath.Glob(filepath.Join(dir, "*.maps.fld"))
	if err != nil {
		return "", fmt.Errorf("could not list fld files: %w", err)
	}
	if len(found) == 0 {
		return "", errors.New("no *.maps.fld file generated by autogrid4")
	}
	sort.Strings(found)

	return found[0], nil
}

func newestXML(dir string) (string, error) {
	found, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return "", err
	}

	var (
		newest string
		latest int64
	)
	for _, f := range found {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if t := info.ModTime().UnixNano(); newest == "" || t >= latest {
			newest, latest = f, t
		}
	}

	return newest, nil
}

// redock docks the original ligand and returns the best pose and the path
// of the XML report it was read from.
func (e *engine) redock(ctx context.Context, dir, fld, ligand string) (Best, string, error) {
	stdout, err := runWithTimeout(ctx, e.exec, e.options.Tools.RedockingTimeout, dir,
		e.options.Tools.AutodockGPU, "--ffile", filepath.Base(fld), "--lfile", filepath.Base(ligand))
	if err != nil {
		return Best{}, "", err
	}

	var xmlPath, xmlText string
	if xmlText = ExtractXML(stdout); xmlText != "" {
		xmlPath = filepath.Join(dir, RedockingXML)
		if err := os.WriteFile(xmlPath, []byte(xmlText), 0o664); err != nil { //nolint: gosec
			return Best{}, "", fmt.Errorf("could not save redocking report: %w", err)
		}
	} else {
		xmlPath, err = newestXML(dir)
		if err != nil {
			return Best{}, "", fmt.Errorf("could not list XML reports: %w", err)
		}
		if xmlPath == "" {
			return Best{}, "", errors.New("no AutoDock-GPU XML report found")
		}

		data, err := os.ReadFile(xmlPath) //nolint: gosec
		if err != nil {
			return Best{}, "", fmt.Errorf("could not read %s: %w", xmlPath, err)
		}
		xmlText = string(data)
	}

	best, err := ParseBest(strings.NewReader(xmlText))
	if err != nil {
		return Best{}, xmlPath, err
	}

	return best, xmlPath, nil
}

func (e *engine) saveRedocking(ctx context.Context, ID domain.MacromoleculeID, fld string, best *Best) (bool, error) {
	updated := false
	err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		m, err := tx.LockMacromolecule(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not lock macromolecule: %w", err)
		}
		if m == nil {
			logger.Warn(ctx, "macromolecule vanished before update")

			return nil
		}

		updates := storage.MacromoleculeUpdates{FldPath: &fld}
		if best != nil {
			rmsd := fmt.Sprintf("%.3f", best.RMSD)
			energy := fmt.Sprintf("%.2f", best.Energy)
			updates.RedockingRMSD = &rmsd
			updates.OriginalEnergy = &energy
		}

		if _, err := tx.UpdateMacromolecule(ctx, ID, updates); err != nil {
			return fmt.Errorf("could not update macromolecule: %w", err)
		}
		updated = true

		return nil
	})

	return updated, err
}

// PrepareMacromolecule prepares the receptor, generates its grid maps and
// redocks its original ligand.
func (e *engine) PrepareMacromolecule(ctx context.Context, ID domain.MacromoleculeID) (*PrepareSummary, error) {
	ctx = logger.WithFields(ctx, zap.String("macromoleculeID", ID.String()))

	m, err := e.storage.MacromoleculeByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get macromolecule: %w", err)
	}
	if m == nil {
		return nil, serrors.With(serrors.ErrNotFound, "macromolecule %s not found", ID)
	}

	dir := workdir(m)
	if dir == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "macromolecule has no work directory")
	}
	if err := filestore.EnsureDir(ctx, dir); err != nil {
		return nil, err
	}

	unlock, err := lockDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := e.checkPrepareTools(); err != nil {
		return nil, err
	}

	summary := &PrepareSummary{MacromoleculeID: ID, Workdir: dir}
	logger.Info(ctx, "preparing macromolecule", zap.String("dir", dir), zap.String("rec", m.Rec))

	receptorPDB := filepath.Join(dir, m.Rec)
	if m.Rec == "" || !fileExists(receptorPDB) {
		return nil, serrors.With(serrors.ErrBadRequest, "Receptor PDB not found: %s", receptorPDB)
	}

	receptor := stem(m.Rec)
	summary.ReceptorPDBQT = receptor + ".pdbqt"
	if err := e.pythonsh(ctx, dir, "prepare_receptor4.py", "-r", m.Rec, "-o", summary.ReceptorPDBQT); err != nil {
		return nil, fmt.Errorf("prepare_receptor_%s: %w", receptor, err)
	}
	if !fileExists(filepath.Join(dir, summary.ReceptorPDBQT)) {
		return nil, fmt.Errorf("failed to generate receptor PDBQT: %s", summary.ReceptorPDBQT)
	}

	ligandPDB := ""
	if m.OriginalLigand != "" && fileExists(filepath.Join(dir, m.OriginalLigand)) {
		ligandPDB = filepath.Join(dir, m.OriginalLigand)
	}

	grid, err := ResolveGrid(m.GridSize, m.GridCenter, ligandPDB)
	if err != nil {
		return nil, err
	}
	summary.Grid = grid

	gpfs, err := e.prepareGPFs(ctx, dir, summary.ReceptorPDBQT, grid)
	if err != nil {
		return nil, err
	}
	summary.GPFCount = len(gpfs)

	fld, err := e.runAutogrid(ctx, dir, gpfs)
	if err != nil {
		return nil, err
	}
	if err := RewriteFld(fld, receptor, e.options.Tools.FldAppendCutoffLine); err != nil {
		return nil, err
	}
	summary.Fld = fld

	if ligandPDB != "" {
		ligand := stem(m.OriginalLigand) + ".pdbqt"
		if err := e.pythonsh(ctx, dir, "prepare_ligand4.py", "-l", m.OriginalLigand, "-o", ligand); err != nil {
			return nil, fmt.Errorf("prepare_ligand_%s: %w", stem(m.OriginalLigand), err)
		}
		if !fileExists(filepath.Join(dir, ligand)) {
			return nil, fmt.Errorf("failed to generate ligand PDBQT: %s", ligand)
		}
		summary.LigandPDBQT = ligand

		best, xmlPath, err := e.redock(ctx, dir, fld, ligand)
		summary.DockingXML = xmlPath
		if err != nil {
			logger.Warn(ctx, "redocking failed", zap.Error(err))
		} else {
			summary.DockingRan = true
			summary.Best = &best
			logger.Info(ctx, "redocking finished", zap.Float64("rmsd", best.RMSD), zap.Float64("energy", best.Energy))
		}
	}

	updated, err := e.saveRedocking(ctx, ID, fld, summary.Best)
	if err != nil {
		return nil, err
	}
	summary.Updated = updated

	logger.Info(ctx, "macromolecule prepared", zap.String("fld", fld), zap.Bool("updated", updated))

	return summary, nil
}
