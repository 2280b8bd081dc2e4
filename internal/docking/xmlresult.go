package docking

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoRuns is returned when an AutoDock-GPU report holds no usable run.
var ErrNoRuns = errors.New("no valid run in rmsd_table")

// Best is the pose with the lowest RMSD to the reference ligand.
type Best struct {
	Energy float64
	RMSD   float64
	Run    int
}

// ParseBest scans the first rmsd_table of an AutoDock-GPU XML report and
// returns the run with the minimal reference_rmsd. Runs whose attributes do
// not parse are skipped.
func ParseBest(r io.Reader) (Best, error) {
	dec := xml.NewDecoder(r)

	var (
		best    Best
		found   bool
		inTable int
		tables  int
	)
loop:
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Best{}, fmt.Errorf("could not parse XML: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case el.Name.Local == "rmsd_table":
				inTable++
				if inTable == 1 {
					tables++
				}
			case el.Name.Local == "run" && inTable > 0:
				run, ok := parseRun(el.Attr)
				if ok && (!found || run.RMSD < best.RMSD) {
					best, found = run, true
				}
			}
		case xml.EndElement:
			if el.Name.Local == "rmsd_table" && inTable > 0 {
				inTable--
				if inTable == 0 {
					break loop
				}
			}
		}
	}

	if tables == 0 {
		return Best{}, errors.New("<rmsd_table> not found")
	}
	if !found {
		return Best{}, ErrNoRuns
	}

	return best, nil
}

func parseRun(attrs []xml.Attr) (Best, bool) {
	var (
		run                   Best
		hasRMSD, hasE, hasRun bool
		err                   error
	)
	for _, a := range attrs {
		v := strings.TrimSpace(a.Value)
		switch a.Name.Local {
		case "reference_rmsd":
			run.RMSD, err = strconv.ParseFloat(v, 64)
			hasRMSD = err == nil && !math.IsNaN(run.RMSD)
		case "binding_energy":
			run.Energy, err = strconv.ParseFloat(v, 64)
			hasE = err == nil
		case "run":
			run.Run, err = strconv.Atoi(v)
			hasRun = err == nil
		}
	}

	return run, hasRMSD && hasE && hasRun
}

// ExtractXML returns the AutoDock-GPU XML document embedded in text, or an
// empty string when there is none.
func ExtractXML(text string) string {
	const endTag = "</autodock_gpu>"

	start := strings.Index(text, "<?xml")
	end := strings.LastIndex(text, endTag)
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return text[start : end+len(endTag)]
}
