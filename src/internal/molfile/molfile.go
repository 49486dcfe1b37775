// Package molfile reads V2000 molblocks. The toolkit serializes embedded
// molecules into this format for the viewer; we parse it back only for
// display glue (formula, heavy-atom count, fragment count, geometry input),
// never to second-guess the chemistry.
package molfile

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dominikbraun/graph"
)

type Atom struct {
	Element string
	X, Y, Z float64
}

type Bond struct {
	From, To, Order int
}

type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// Parse reads the first molecule of a V2000 molblock. Field positions are
// fixed-column per the MDL format: coordinates in 10-char fields, element
// symbol at columns 32-34, bond indices 1-based in 3-char fields.
func Parse(block string) (*Molecule, error) {
	sc := bufio.NewScanner(strings.NewReader(block))

	// three header lines
	for i := 0; i < 3; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("molfile: unexpected EOF in header")
		}
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("molfile: missing counts line")
	}
	cnt := sc.Text()
	if len(cnt) < 6 {
		return nil, fmt.Errorf("molfile: short counts line %q", cnt)
	}
	atomCount, err := strconv.Atoi(strings.TrimSpace(cnt[0:3]))
	if err != nil {
		return nil, fmt.Errorf("molfile: atom count: %w", err)
	}
	bondCount, err := strconv.Atoi(strings.TrimSpace(cnt[3:6]))
	if err != nil {
		return nil, fmt.Errorf("molfile: bond count: %w", err)
	}

	mol := &Molecule{
		Atoms: make([]Atom, atomCount),
		Bonds: make([]Bond, bondCount),
	}

	for i := 0; i < atomCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("molfile: unexpected EOF in atom block at atom %d", i+1)
		}
		line := sc.Text()
		if len(line) < 34 {
			return nil, fmt.Errorf("molfile: short atom line %d: %q", i+1, line)
		}
		var coords [3]float64
		for j := range coords {
			f, err := strconv.ParseFloat(strings.TrimSpace(line[j*10:(j+1)*10]), 64)
			if err != nil {
				return nil, fmt.Errorf("molfile: atom %d coordinate: %w", i+1, err)
			}
			coords[j] = f
		}
		elem := strings.TrimSpace(line[31:34])
		mol.Atoms[i] = Atom{Element: elem, X: coords[0], Y: coords[1], Z: coords[2]}
	}

	for i := 0; i < bondCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("molfile: unexpected EOF in bond block at bond %d", i+1)
		}
		line := sc.Text()
		if len(line) < 9 {
			return nil, fmt.Errorf("molfile: short bond line %d: %q", i+1, line)
		}
		var fields [3]int
		for j := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(line[j*3 : (j+1)*3]))
			if err != nil {
				return nil, fmt.Errorf("molfile: bond %d: %w", i+1, err)
			}
			fields[j] = n
		}
		from, to, order := fields[0], fields[1], fields[2]
		if from < 1 || from > atomCount || to < 1 || to > atomCount {
			return nil, fmt.Errorf("molfile: bond %d references atom out of range", i+1)
		}
		mol.Bonds[i] = Bond{From: from - 1, To: to - 1, Order: order}
	}

	return mol, nil
}

// HeavyAtoms counts non-hydrogen atoms. This is the atom count shown to the
// user; added hydrogens stay out of it.
func (m *Molecule) HeavyAtoms() int {
	n := 0
	for _, a := range m.Atoms {
		if a.Element != "H" {
			n++
		}
	}
	return n
}

// Formula returns the molecular formula in Hill order: carbon first, then
// hydrogen, then the remaining elements alphabetically. Without carbon,
// everything is alphabetical.
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, a := range m.Atoms {
		counts[a.Element]++
	}

	var elems []string
	for e := range counts {
		elems = append(elems, e)
	}
	sort.Strings(elems)

	ordered := make([]string, 0, len(elems))
	if counts["C"] > 0 {
		ordered = append(ordered, "C")
		if counts["H"] > 0 {
			ordered = append(ordered, "H")
		}
		for _, e := range elems {
			if e != "C" && e != "H" {
				ordered = append(ordered, e)
			}
		}
	} else {
		ordered = elems
	}

	var b strings.Builder
	for _, e := range ordered {
		b.WriteString(e)
		if counts[e] > 1 {
			b.WriteString(strconv.Itoa(counts[e]))
		}
	}
	return b.String()
}

// Fragments counts connected components of the bond graph. Multi-fragment
// inputs (e.g. salts written as "C.[Na+]") render as separate pieces in the
// viewer, so the page calls that out.
func (m *Molecule) Fragments() (int, error) {
	g := graph.New(graph.IntHash)
	for i := range m.Atoms {
		if err := g.AddVertex(i); err != nil {
			return 0, fmt.Errorf("molfile: add vertex %d: %w", i, err)
		}
	}
	for _, b := range m.Bonds {
		if err := g.AddEdge(b.From, b.To); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return 0, fmt.Errorf("molfile: add edge %d-%d: %w", b.From, b.To, err)
		}
	}

	adj, err := g.AdjacencyMap()
	if err != nil {
		return 0, err
	}

	seen := make(map[int]bool, len(m.Atoms))
	count := 0
	for i := range m.Atoms {
		if seen[i] {
			continue
		}
		count++
		queue := []int{i}
		seen[i] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for n := range adj[v] {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return count, nil
}
