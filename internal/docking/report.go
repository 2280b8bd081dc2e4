package docking

import (
	"archive/zip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Column names of the CSV report.
const (
	ColProcessID   = "PROCESS_ID"
	ColType        = "TYPE"
	ColReceptor    = "RECEPTOR_REC"
	ColLigand      = "LIGAND_FILE"
	ColBestEnergy  = "BEST_BINDING_ENERGY"
	ColBestRMSD    = "BEST_REFERENCE_RMSD"
	ColBestRun     = "BEST_RUN"
	ColError       = "ERROR"
	csvDelimiter   = ';'
	reportFileMode = 0o664
)

// emptyCSVHeader is written when a run produced no rows.
var emptyCSVHeader = []string{ //nolint: gochecknoglobals
	ColProcessID, ColType, ColReceptor, ColLigand, ColBestEnergy, ColBestRMSD, ColBestRun, ColError,
}

// Row is one receptor/ligand line of the CSV report.
type Row map[string]string

// WriteJSON writes v indented to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode report: %w", err)
	}

	if err := os.WriteFile(path, data, reportFileMode); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

// WriteCSV writes rows to path using ';' as delimiter. The header is the
// sorted union of the row keys; missing values are left empty.
func WriteCSV(path string, rows []Row) error {
	header := emptyCSVHeader
	if len(rows) > 0 {
		keys := map[string]struct{}{}
		for _, r := range rows {
			for k := range r {
				keys[k] = struct{}{}
			}
		}

		header = make([]string, 0, len(keys))
		for k := range keys {
			header = append(header, k)
		}
		sort.Strings(header)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFileMode) //nolint: gosec
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	w.Comma = csvDelimiter
	if err := w.Write(header); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	record := make([]string, len(header))
	for _, r := range rows {
		for i, k := range header {
			record[i] = r[k]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not flush CSV: %w", err)
	}

	return f.Close()
}

// ZipTree archives every regular file under dir into zipPath using paths
// relative to dir. The archive itself and names in skip are left out.
func ZipTree(dir, zipPath string, skip ...string) (err error) {
	out, err := os.OpenFile(zipPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFileMode) //nolint: gosec
	if err != nil {
		return fmt.Errorf("could not create %s: %w", zipPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", zipPath, cerr)
		}
	}()

	absZip, err := filepath.Abs(zipPath)
	if err != nil {
		return fmt.Errorf("could not resolve %s: %w", zipPath, err)
	}

	excluded := map[string]struct{}{}
	for _, s := range skip {
		excluded[s] = struct{}{}
	}

	zw := zip.NewWriter(out)
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := excluded[d.Name()]; ok {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && abs == absZip {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		return addToZip(zw, path, filepath.ToSlash(rel))
	})
	if walkErr != nil {
		_ = zw.Close()

		return fmt.Errorf("could not archive %s: %w", dir, walkErr)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish %s: %w", zipPath, err)
	}

	return nil
}

func addToZip(zw *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(w, f)

	return err
}
