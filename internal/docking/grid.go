package docking

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"plasmodocking/pkg/serrors"
)

// LigandGroups are the atom types passed to prepare_gpf4.py, one grid
// parameter file per group.
var LigandGroups = []string{ //nolint: gochecknoglobals
	"C,A,N,NA,NS,OA,OS,SA,S,H,HD",
	"HS,P,Br,BR,Ca,CA,Cl,CL,F,Fe,FE",
	"I,Mg,MG,Mn,MN,Zn,ZN,He,Li,Be",
	"B,Ne,Na,Al,Si,K,Sc,Ti,V,Co",
	"Ni,Cu,Ga,Ge,As,Se,Kr,Rb,Sr,Y",
	"Zr,Nb,Cr,Tc,Ru,Rh,Pd,Ag,Cd,In",
	"Sn,Sb,Te,Xe,Cs,Ba,La,Ce,Pr,Nd",
	"Pm,Sm,Eu,Gd,Tb,Dy,Ho,Er,Tm,Yb",
	"Lu,Hf,Ta,W,Re,Os,Ir,Pt,Au,Hg",
	"Tl,Pb,Bi,Po,At,Rn,Fr,Ra,Ac,Th",
	"Pa,U,Np,Pu,Am,Cm,Bk,Cf,E,Fm",
}

// Grid is the docking box: number of points per axis and its center.
type Grid struct {
	Size   [3]int
	Center [3]float64
}

// Npts renders the size as prepare_gpf4.py expects it.
func (g Grid) Npts() string {
	return fmt.Sprintf("%d,%d,%d", g.Size[0], g.Size[1], g.Size[2])
}

// CenterParam renders the center as prepare_gpf4.py expects it.
func (g Grid) CenterParam() string {
	return formatFloat(g.Center[0]) + "," + formatFloat(g.Center[1]) + "," + formatFloat(g.Center[2])
}

// formatFloat prints f in its shortest form, keeping a decimal point for
// integral values (10 becomes "10.0").
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}

	return s
}

func triplet(s string) ([]string, bool) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))

	return parts, len(parts) == 3
}

// ParseSize parses three integers separated by commas or spaces.
func ParseSize(s string) ([3]int, error) {
	var out [3]int
	parts, ok := triplet(s)
	if !ok {
		return out, serrors.With(serrors.ErrBadRequest, "expected 3 integers, got: %q", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return out, serrors.Wrap(serrors.ErrBadRequest, err, "expected 3 integers, got: %q", s)
		}
		out[i] = v
	}

	return out, nil
}

// ParseCenter parses three floats separated by commas or spaces.
func ParseCenter(s string) ([3]float64, error) {
	var out [3]float64
	parts, ok := triplet(s)
	if !ok {
		return out, serrors.With(serrors.ErrBadRequest, "expected 3 floats, got: %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return out, serrors.Wrap(serrors.ErrBadRequest, err, "expected 3 floats, got: %q", s)
		}
		out[i] = v
	}

	return out, nil
}

// LigandCenter returns the geometric center of the ATOM and HETATM records
// of a PDB file. ok is false when the file has no readable coordinates.
func LigandCenter(path string) (center [3]float64, ok bool, err error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return center, false, fmt.Errorf("could not open ligand: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		sum [3]float64
		n   int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") || len(line) < 54 {
			continue
		}

		var xyz [3]float64
		valid := true
		for i, bounds := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
			v, err := strconv.ParseFloat(strings.TrimSpace(line[bounds[0]:bounds[1]]), 64)
			if err != nil {
				valid = false

				break
			}
			xyz[i] = v
		}
		if !valid {
			continue
		}

		for i := range sum {
			sum[i] += xyz[i]
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return center, false, fmt.Errorf("could not read ligand: %w", err)
	}
	if n == 0 {
		return center, false, nil
	}

	for i := range center {
		center[i] = sum[i] / float64(n)
	}

	return center, true, nil
}

// ResolveGrid builds the grid from the stored size and center. A missing
// center falls back to the geometric center of ligandPath.
func ResolveGrid(size, center, ligandPath string) (Grid, error) {
	var g Grid
	if strings.TrimSpace(size) == "" {
		return g, serrors.With(serrors.ErrBadRequest, "Grid parameters (size and center) are required")
	}

	s, err := ParseSize(size)
	if err != nil {
		return g, err
	}
	g.Size = s

	if strings.TrimSpace(center) != "" {
		c, err := ParseCenter(center)
		if err != nil {
			return g, err
		}
		g.Center = c

		return g, nil
	}

	if ligandPath == "" {
		return g, serrors.With(serrors.ErrBadRequest, "Grid parameters (size and center) are required")
	}

	c, ok, err := LigandCenter(ligandPath)
	if err != nil || !ok {
		return g, serrors.With(serrors.ErrBadRequest, "Grid parameters (size and center) are required")
	}
	g.Center = c

	return g, nil
}

// fldAtomTypes lists the affinity maps referenced by the rewritten fld file.
func fldAtomTypes() []string {
	var types []string
	for _, group := range LigandGroups {
		types = append(types, strings.Split(group, ",")...)
	}

	return types
}

// FldMaps renders the map listing appended to a receptor's fld file: one
// affinity map per ligand atom type followed by the electrostatic and
// desolvation maps, all named after the receptor.
func FldMaps(receptor string) string {
	types := fldAtomTypes()

	var b strings.Builder
	n := 1
	for _, t := range types {
		fmt.Fprintf(&b, "variable %d file=%s.%s.map filetype=ascii skip=6\n", n, receptor, t)
		n++
	}
	fmt.Fprintf(&b, "variable %d file=%s.e.map filetype=ascii skip=6\n", n, receptor)
	n++
	fmt.Fprintf(&b, "variable %d file=%s.d.map filetype=ascii skip=6\n", n, receptor)

	return b.String()
}

// RewriteFld keeps the first keep lines of the fld file at path and appends
// the map listing of receptor.
func RewriteFld(path, receptor string, keep int) error {
	data, err := os.ReadFile(path) //nolint: gosec
	if err != nil {
		return fmt.Errorf("could not read fld: %w", err)
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if keep >= 0 && len(lines) > keep {
		lines = lines[:keep]
	}

	head := strings.Join(lines, "")
	if head != "" && !strings.HasSuffix(head, "\n") {
		head += "\n"
	}

	if err := os.WriteFile(path, []byte(head+FldMaps(receptor)), 0o664); err != nil { //nolint: gosec
		return fmt.Errorf("could not write fld: %w", err)
	}

	return nil
}
