package docking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"plasmodocking/pkg/domain"
	"plasmodocking/pkg/logger"
	"plasmodocking/pkg/storage"
)

// Status values of a receptor block.
const (
	ReceptorCompleted = "completed"
	ReceptorFailed    = "failed"
	ReceptorError     = "error"
)

// Status values of a ligand result.
const (
	LigandSuccess = "success"
	LigandError   = "error"
)

// ErrProcessNotFound is the summary error of a run whose process vanished.
const ErrProcessNotFound = "process_not_found"

// Messages recorded on failed or finished processes.
const (
	msgNothingToDock   = "Sem macromoléculas ou ligantes para processar"
	msgTotalFailure    = "FALHA TOTAL: Nenhuma combinação receptor-ligante foi processada com sucesso"
	msgCompleteSuccess = "SUCESSO COMPLETO: Todas as combinações foram processadas"
)

// Statistics summarises a run.
type Statistics struct {
	TotalCombinations      int    `json:"total_combinations"`
	SuccessfulCombinations int    `json:"successful_combinations"`
	FailedCombinations     int    `json:"failed_combinations"`
	SkippedReceptors       int    `json:"skipped_receptors"`
	TotalReceptors         int    `json:"total_receptors"`
	TotalLigands           int    `json:"total_ligands"`
	SuccessRate            string `json:"success_rate"`
}

// LigandResult is the outcome of docking one ligand against one receptor.
type LigandResult struct {
	Ligand            string   `json:"ligand"`
	BestBindingEnergy *float64 `json:"best_binding_energy,omitempty"`
	BestReferenceRMSD *float64 `json:"best_reference_rmsd,omitempty"`
	BestRun           *int     `json:"best_run,omitempty"`
	XML               string   `json:"xml,omitempty"`
	Error             string   `json:"error,omitempty"`
	Status            string   `json:"status"`
}

// ReceptorResult groups the ligand results of one receptor.
type ReceptorResult struct {
	MacromoleculeID string         `json:"macromolecule_id"`
	ReceptorRec     string         `json:"receptor_rec"`
	ReceptorName    string         `json:"receptor_nome"`
	GridSize        string         `json:"grid_size"`
	GridCenter      string         `json:"grid_center"`
	Fld             string         `json:"fld"`
	Ligands         []LigandResult `json:"ligantes"`
	Status          string         `json:"status"`
	RedockingRMSD   *string        `json:"rmsd_redocking,omitempty"`
	OriginalLigand  *string        `json:"ligante_original,omitempty"`
	OriginalEnergy  *string        `json:"energia_original,omitempty"`
	Error           string         `json:"error,omitempty"`
	LigandsOK       int            `json:"ligantes_ok"`
	LigandsFailed   int            `json:"ligantes_failed"`
}

// Report is the final result stored on the process and in resultado.json.
type Report struct {
	OK             bool             `json:"ok"`
	ProcessID      string           `json:"process_id"`
	ElapsedSec     float64          `json:"elapsed_sec"`
	StatusMessage  string           `json:"status_message"`
	Statistics     Statistics       `json:"statistics"`
	Macromolecules []ReceptorResult `json:"macromolecules"`
}

// Failure is the result stored on a process that could not run.
type Failure struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	ProcessID string `json:"process_id"`
	Timestamp string `json:"timestamp"`
}

// RunSummary describes a finished RunProcess call.
type RunSummary struct {
	OK         bool
	ProcessID  domain.ProcessID
	Status     domain.ProcessStatus
	Message    string
	Error      string
	Statistics *Statistics
	JSONPath   string
	CSVPath    string
	ZIPPath    string
	Elapsed    time.Duration
}

func (e *engine) fail(ctx context.Context, proc *domain.Process, msg string) (*RunSummary, error) {
	logger.Error(ctx, "process failed", zap.String("reason", msg))

	raw, err := json.Marshal(Failure{
		OK:        false,
		Error:     msg,
		ProcessID: proc.ID.String(),
		Timestamp: e.now().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("could not encode failure: %w", err)
	}

	status := domain.ProcessStatusError
	result := json.RawMessage(raw)
	if _, err := e.storage.UpdateProcess(ctx, proc.ID, storage.ProcessUpdates{
		Status: &status,
		Result: &result,
	}); err != nil {
		return nil, fmt.Errorf("could not mark process as failed: %w", err)
	}

	return &RunSummary{ProcessID: proc.ID, Status: status, Error: msg}, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func (e *engine) splitSDF(ctx context.Context, sdf, outDir string) ([]string, error) {
	if _, err := runWithTimeout(ctx, e.exec, e.options.Tools.SplitTimeout, outDir,
		e.options.Tools.OpenBabel, "-isdf", sdf, "-opdbqt", "--split"); err != nil {
		return nil, err
	}

	ligands, err := filepath.Glob(filepath.Join(outDir, "*.pdbqt"))
	if err != nil {
		return nil, fmt.Errorf("could not list ligands: %w", err)
	}
	sort.Strings(ligands)

	logger.Info(ctx, "ligands split", zap.Int("count", len(ligands)))

	return ligands, nil
}

// resolveFld returns the fld file of a receptor. A directory resolves to
// its first *.maps.fld file.
func resolveFld(path string) (string, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		found, err := filepath.Glob(filepath.Join(path, "*.maps.fld"))
		if err != nil {
			return "", fmt.Errorf("could not list %s: %w", path, err)
		}
		if len(found) == 0 {
			return "", fmt.Errorf("Nenhum .maps.fld encontrado em %s", path) //nolint: stylecheck
		}
		sort.Strings(found)
		path = found[0]
	}

	if !fileExists(path) {
		return "", fmt.Errorf("Arquivo .maps.fld não existe: %s", path) //nolint: stylecheck
	}

	return path, nil
}

// dock runs AutoDock-GPU for one receptor/ligand pair and returns the best
// pose of the XML report written next to prefix.
func (e *engine) dock(ctx context.Context, fld, ligand, prefix string) (Best, string, error) {
	if !fileExists(ligand) {
		return Best{}, "", fmt.Errorf("Arquivo não encontrado: %s", ligand) //nolint: stylecheck
	}

	if _, err := runWithTimeout(ctx, e.exec, e.options.Tools.DockingTimeout, filepath.Dir(fld),
		e.options.Tools.AutodockGPU,
		"--ffile", fld,
		"--lfile", ligand,
		"--gbest", "1",
		"--resnam", prefix,
	); err != nil {
		return Best{}, "", err
	}

	xmlPath := prefix + ".xml"
	f, err := os.Open(xmlPath) //nolint: gosec
	if errors.Is(err, os.ErrNotExist) {
		return Best{}, "", fmt.Errorf("Arquivo não encontrado: %s", xmlPath) //nolint: stylecheck
	}
	if err != nil {
		return Best{}, "", fmt.Errorf("could not open %s: %w", xmlPath, err)
	}
	defer func() { _ = f.Close() }()

	best, err := ParseBest(f)
	if err != nil {
		return Best{}, "", fmt.Errorf("%s: %w", filepath.Base(xmlPath), err)
	}

	return best, xmlPath, nil
}

func moveBestPoses(ctx context.Context, prefix, dest string) {
	matches, err := filepath.Glob(prefix + "*.pdbqt")
	if err != nil {
		logger.Debug(ctx, "could not list best poses", zap.Error(err))

		return
	}

	for _, m := range matches {
		if err := os.Rename(m, filepath.Join(dest, filepath.Base(m))); err != nil {
			logger.Debug(ctx, "could not move best pose", zap.String("file", m), zap.Error(err))
		}
	}
}

func optional(s string) *string { return &s }

// RunProcess docks the ligands of a process against every receptor of its type.
func (e *engine) RunProcess(ctx context.Context, ID domain.ProcessID) (*RunSummary, error) {
	start := e.now()
	ctx = logger.WithFields(ctx, zap.String("processID", ID.String()))
	tools := e.options.Tools

	proc, err := e.storage.ProcessByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get process: %w", err)
	}
	if proc == nil {
		logger.Error(ctx, "process not found")

		return &RunSummary{ProcessID: ID, Error: ErrProcessNotFound}, nil
	}

	running := domain.ProcessStatusRunning
	if _, err := e.storage.UpdateProcess(ctx, ID, storage.ProcessUpdates{Status: &running}); err != nil {
		return nil, fmt.Errorf("could not mark process as running: %w", err)
	}

	for _, tool := range []struct{ name, path string }{
		{"autodock_gpu", tools.AutodockGPU},
		{"obabel", tools.OpenBabel},
	} {
		if !fileExists(tool.path) {
			return e.fail(ctx, proc, fmt.Sprintf("%s não encontrado em %s", tool.name, tool.path))
		}
	}

	sdf := proc.SDFPath
	if sdf != "" && !filepath.IsAbs(sdf) {
		if abs, err := filepath.Abs(sdf); err == nil {
			sdf = abs
		}
	}
	if !fileExists(sdf) {
		return e.fail(ctx, proc, "SDF não encontrado: "+sdf)
	}

	dirs, err := prepareProcessDirs(ctx, filepath.Dir(sdf))
	if err != nil {
		return e.fail(ctx, proc, err.Error())
	}

	unlock, err := lockDir(ctx, dirs.base)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ligands, err := e.splitSDF(ctx, sdf, dirs.ligands)
	if err != nil {
		return e.fail(ctx, proc, fmt.Sprintf("Falha no OpenBabel: %v", err))
	}

	macs, err := e.storage.ListMacromolecules(ctx, storage.MacromoleculeFilter{
		TypeID:  &proc.TypeID,
		OrderBy: []storage.Order{{Field: "rec"}},
	})
	if err != nil {
		return nil, fmt.Errorf("could not list macromolecules: %w", err)
	}

	logger.Info(ctx, "docking started", zap.Int("receptors", len(macs)), zap.Int("ligands", len(ligands)))
	if len(macs) == 0 || len(ligands) == 0 {
		return e.fail(ctx, proc, msgNothingToDock)
	}

	stats := Statistics{
		TotalCombinations: len(macs) * len(ligands),
		TotalReceptors:    len(macs),
		TotalLigands:      len(ligands),
	}
	results := make([]ReceptorResult, 0, len(macs))
	var rows []Row

	for _, m := range macs {
		block := ReceptorResult{
			MacromoleculeID: m.ID.String(),
			ReceptorRec:     strings.ToUpper(m.Rec),
			ReceptorName:    m.Name,
			GridSize:        m.GridSize,
			GridCenter:      m.GridCenter,
			Fld:             m.FldPath,
			Ligands:         []LigandResult{},
		}
		if m.Redocking {
			block.RedockingRMSD = optional(m.RedockingRMSD)
			block.OriginalLigand = optional(m.OriginalLigand)
			block.OriginalEnergy = optional(m.OriginalEnergy)
		}

		fld, err := resolveFld(m.FldPath)
		if err != nil {
			logger.Warn(ctx, "receptor skipped", zap.String("rec", m.Rec), zap.Error(err))

			block.Error = "fld_error: " + err.Error()
			block.Status = ReceptorError
			block.LigandsFailed = len(ligands)
			results = append(results, block)
			stats.SkippedReceptors++
			stats.FailedCombinations += len(ligands)

			for _, lig := range ligands {
				rows = append(rows, Row{
					ColProcessID: proc.ID.String(),
					ColType:      m.TypeName,
					ColReceptor:  m.Rec,
					ColLigand:    filepath.Base(lig),
					ColError:     "Receptor error: " + err.Error(),
				})
			}

			continue
		}

		for _, lig := range ligands {
			name := filepath.Base(lig)
			prefix := filepath.Join(dirs.dlgs, stem(name)+"_"+m.Rec)
			res := LigandResult{Ligand: name}

			best, xmlPath, err := e.dock(ctx, fld, lig, prefix)
			if err != nil {
				logger.Warn(ctx, "ligand failed", zap.String("ligand", name), zap.String("rec", m.Rec), zap.Error(err))

				block.LigandsFailed++
				stats.FailedCombinations++
				res.Error = err.Error()
				res.Status = LigandError
				rows = append(rows, Row{
					ColProcessID: proc.ID.String(),
					ColType:      m.TypeName,
					ColReceptor:  m.Rec,
					ColLigand:    name,
					ColError:     err.Error(),
				})
				block.Ligands = append(block.Ligands, res)

				continue
			}

			block.LigandsOK++
			stats.SuccessfulCombinations++
			res.BestBindingEnergy = &best.Energy
			res.BestReferenceRMSD = &best.RMSD
			res.BestRun = &best.Run
			res.XML = xmlPath
			res.Status = LigandSuccess
			rows = append(rows, Row{
				ColProcessID:  proc.ID.String(),
				ColType:       m.TypeName,
				ColReceptor:   m.Rec,
				ColLigand:     name,
				ColBestEnergy: formatFloat(best.Energy),
				ColBestRMSD:   formatFloat(best.RMSD),
				ColBestRun:    strconv.Itoa(best.Run),
			})
			block.Ligands = append(block.Ligands, res)

			moveBestPoses(ctx, prefix, dirs.gbest)
		}

		block.Status = ReceptorFailed
		if block.LigandsOK > 0 {
			block.Status = ReceptorCompleted
		}
		results = append(results, block)
	}

	if e.options.Recorder != nil {
		e.options.Recorder.Combinations(ctx, stats.SuccessfulCombinations, stats.FailedCombinations)
	}

	status, message := domain.ProcessStatusDone, ""
	switch {
	case stats.SuccessfulCombinations == 0:
		status, message = domain.ProcessStatusError, msgTotalFailure
	case stats.SuccessfulCombinations == stats.TotalCombinations:
		message = msgCompleteSuccess
	default:
		message = fmt.Sprintf("SUCESSO PARCIAL: %d/%d combinações processadas",
			stats.SuccessfulCombinations, stats.TotalCombinations)
	}
	stats.SuccessRate = fmt.Sprintf("%.2f%%",
		float64(stats.SuccessfulCombinations)/float64(stats.TotalCombinations)*100)

	elapsed := e.now().Sub(start)
	report := Report{
		OK:             stats.SuccessfulCombinations > 0,
		ProcessID:      proc.ID.String(),
		ElapsedSec:     elapsed.Seconds(),
		StatusMessage:  message,
		Statistics:     stats,
		Macromolecules: results,
	}

	if err := WriteJSON(dirs.jsonPath, report); err != nil {
		logger.Error(ctx, "could not save JSON report", zap.Error(err))
	}
	if err := WriteCSV(dirs.csvPath, rows); err != nil {
		logger.Error(ctx, "could not save CSV report", zap.Error(err))
	}

	var zipPath *string
	if err := ZipTree(dirs.base, dirs.zipPath, LockFile); err != nil {
		logger.Error(ctx, "could not create ZIP", zap.Error(err))
	} else {
		zipPath = &dirs.zipPath
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("could not encode report: %w", err)
	}
	result := json.RawMessage(raw)
	if _, err := e.storage.UpdateProcess(ctx, ID, storage.ProcessUpdates{
		Status:  &status,
		Result:  &result,
		ZIPPath: zipPath,
	}); err != nil {
		return nil, fmt.Errorf("could not save process result: %w", err)
	}

	logger.Info(ctx, "process finished",
		zap.String("status", message),
		zap.Int("succeeded", stats.SuccessfulCombinations),
		zap.Int("total", stats.TotalCombinations),
		zap.Duration("elapsed", elapsed),
	)

	summary := &RunSummary{
		OK:         report.OK,
		ProcessID:  ID,
		Status:     status,
		Message:    message,
		Statistics: &stats,
		JSONPath:   dirs.jsonPath,
		CSVPath:    dirs.csvPath,
		Elapsed:    elapsed,
	}
	if zipPath != nil {
		summary.ZIPPath = *zipPath
	}

	return summary, nil
}
