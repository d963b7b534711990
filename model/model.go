// Package model holds the minimal molecule graph the renderers draw:
// atoms with 2D model coordinates and the bonds between them.
//
// Model space has the y axis pointing up. Renderers map it to screen space
// with a view transform.
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/molview/geom"
)

// Errors returned by Molecule.AddBond.
var (
	ErrNilAtom       = errors.New("model: atom is nil")
	ErrSelfBond      = errors.New("model: bond source and target are the same atom")
	ErrForeignAtom   = errors.New("model: atom does not belong to molecule")
	ErrInvalidOrder  = errors.New("model: invalid bond order")
	ErrInvalidStereo = errors.New("model: invalid bond stereo")
)

// Atom is a labelled point in model space.
type Atom struct {
	Symbol string
	Coord  gg.Point
	Charge int

	bonds []*Bond
}

// NewAtom creates an unbonded atom.
func NewAtom(symbol string, x, y float64) *Atom {
	return &Atom{Symbol: symbol, Coord: gg.Pt(x, y)}
}

// Bonds returns the bonds attached to the atom.
func (a *Atom) Bonds() []*Bond {
	return a.bonds
}

// CountBonds returns the number of bonds attached to the atom.
func (a *Atom) CountBonds() int {
	return len(a.bonds)
}

// Bond connects two atoms.
type Bond struct {
	Source *Atom
	Target *Atom
	Order  BondOrder
	Stereo BondStereo
}

// Other returns the atom at the opposite end of the bond from a,
// or nil if a is not an end of the bond.
func (b *Bond) Other(a *Atom) *Atom {
	switch a {
	case b.Source:
		return b.Target
	case b.Target:
		return b.Source
	}
	return nil
}

// Line returns the model-space segment from Source to Target.
func (b *Bond) Line() geom.Line {
	return geom.NewLine(b.Source.Coord, b.Target.Coord)
}

// Molecule is a set of atoms and the bonds between them.
type Molecule struct {
	Name  string
	Atoms []*Atom
	Bonds []*Bond
}

// NewMolecule creates an empty molecule.
func NewMolecule(name string) *Molecule {
	return &Molecule{Name: name}
}

// AddAtom appends a to the molecule and returns it.
func (m *Molecule) AddAtom(a *Atom) *Atom {
	m.Atoms = append(m.Atoms, a)
	return a
}

// AddBond connects two atoms of the molecule.
func (m *Molecule) AddBond(source, target *Atom, order BondOrder, stereo BondStereo) (*Bond, error) {
	if source == nil || target == nil {
		return nil, ErrNilAtom
	}
	if source == target {
		return nil, ErrSelfBond
	}
	if !m.contains(source) || !m.contains(target) {
		return nil, ErrForeignAtom
	}
	if !order.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if !stereo.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStereo, stereo)
	}
	b := &Bond{Source: source, Target: target, Order: order, Stereo: stereo}
	m.Bonds = append(m.Bonds, b)
	source.bonds = append(source.bonds, b)
	target.bonds = append(target.bonds, b)
	return b, nil
}

// IndexOf returns the position of a in Atoms, or -1.
func (m *Molecule) IndexOf(a *Atom) int {
	for i, x := range m.Atoms {
		if x == a {
			return i
		}
	}
	return -1
}

func (m *Molecule) contains(a *Atom) bool {
	return m.IndexOf(a) >= 0
}

// Bounds returns the model-space bounding box of the atoms.
// An empty molecule has empty bounds at the origin.
func (m *Molecule) Bounds() (minPt, maxPt gg.Point) {
	if len(m.Atoms) == 0 {
		return gg.Point{}, gg.Point{}
	}
	minPt = gg.Pt(math.Inf(1), math.Inf(1))
	maxPt = gg.Pt(math.Inf(-1), math.Inf(-1))
	for _, a := range m.Atoms {
		minPt.X = math.Min(minPt.X, a.Coord.X)
		minPt.Y = math.Min(minPt.Y, a.Coord.Y)
		maxPt.X = math.Max(maxPt.X, a.Coord.X)
		maxPt.Y = math.Max(maxPt.Y, a.Coord.Y)
	}
	return minPt, maxPt
}
