package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func ethene(t *testing.T) (*Molecule, *Atom, *Atom, *Bond) {
	t.Helper()
	m := NewMolecule("ethene")
	c1 := m.AddAtom(NewAtom("C", 0, 0))
	c2 := m.AddAtom(NewAtom("C", 1.3, 0))
	b, err := m.AddBond(c1, c2, Double, NotStereo)
	if err != nil {
		t.Fatalf("AddBond: %v", err)
	}
	return m, c1, c2, b
}

func TestAddBondRegistersOnAtoms(t *testing.T) {
	m, c1, c2, b := ethene(t)
	if len(m.Bonds) != 1 {
		t.Fatalf("len(Bonds) = %d, want 1", len(m.Bonds))
	}
	if c1.CountBonds() != 1 || c2.CountBonds() != 1 {
		t.Errorf("CountBonds = %d, %d, want 1, 1", c1.CountBonds(), c2.CountBonds())
	}
	if c1.Bonds()[0] != b {
		t.Error("source atom does not reference the bond")
	}
	if b.Other(c1) != c2 || b.Other(c2) != c1 {
		t.Error("Other did not return the opposite atom")
	}
	if b.Other(NewAtom("O", 0, 0)) != nil {
		t.Error("Other of a foreign atom should be nil")
	}
}

func TestAddBondErrors(t *testing.T) {
	m := NewMolecule("")
	a := m.AddAtom(NewAtom("C", 0, 0))
	b := m.AddAtom(NewAtom("O", 1, 0))
	stray := NewAtom("N", 2, 0)

	tests := []struct {
		name   string
		src    *Atom
		dst    *Atom
		order  BondOrder
		stereo BondStereo
		want   error
	}{
		{"nil source", nil, b, Single, NotStereo, ErrNilAtom},
		{"nil target", a, nil, Single, NotStereo, ErrNilAtom},
		{"self bond", a, a, Single, NotStereo, ErrSelfBond},
		{"foreign atom", a, stray, Single, NotStereo, ErrForeignAtom},
		{"zero order", a, b, 0, NotStereo, ErrInvalidOrder},
		{"order five", a, b, 5, NotStereo, ErrInvalidOrder},
		{"bad stereo", a, b, Single, 9, ErrInvalidStereo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.AddBond(tt.src, tt.dst, tt.order, tt.stereo)
			if !errors.Is(err, tt.want) {
				t.Errorf("AddBond error = %v, want %v", err, tt.want)
			}
		})
	}
	if len(m.Bonds) != 0 || a.CountBonds() != 0 {
		t.Error("failed AddBond calls must not register bonds")
	}
}

func TestBondLine(t *testing.T) {
	_, c1, c2, b := ethene(t)
	l := b.Line()
	if l.Start != c1.Coord || l.End != c2.Coord {
		t.Errorf("Line = %v, want %v -> %v", l, c1.Coord, c2.Coord)
	}
}

func TestBounds(t *testing.T) {
	m := NewMolecule("")
	if lo, hi := m.Bounds(); lo != (gg.Point{}) || hi != (gg.Point{}) {
		t.Errorf("empty Bounds = %v, %v, want zero", lo, hi)
	}
	m.AddAtom(NewAtom("C", -1, 2))
	m.AddAtom(NewAtom("C", 3, -4))
	m.AddAtom(NewAtom("O", 0.5, 0.5))
	lo, hi := m.Bounds()
	if lo != gg.Pt(-1, -4) || hi != gg.Pt(3, 2) {
		t.Errorf("Bounds = %v, %v, want (-1,-4), (3,2)", lo, hi)
	}
}

func TestBondOrderStrings(t *testing.T) {
	tests := []struct {
		in   string
		want BondOrder
	}{
		{"", Single},
		{"single", Single},
		{"2", Double},
		{" Triple ", Triple},
		{"quadruple", Quadruple},
	}
	for _, tt := range tests {
		got, err := ParseBondOrder(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseBondOrder(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseBondOrder("aromatic"); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("ParseBondOrder(aromatic) error = %v, want ErrInvalidOrder", err)
	}
	if got := BondOrder(7).String(); got != "BondOrder(7)" {
		t.Errorf("String = %q", got)
	}
}

func TestBondStereoStrings(t *testing.T) {
	for _, s := range []BondStereo{NotStereo, Up, Down, UpOrDown} {
		got, err := ParseBondStereo(s.String())
		if err != nil || got != s {
			t.Errorf("ParseBondStereo(%q) = %v, %v, want %v", s.String(), got, err, s)
		}
	}
	if _, err := ParseBondStereo("sideways"); !errors.Is(err, ErrInvalidStereo) {
		t.Errorf("ParseBondStereo(sideways) error = %v, want ErrInvalidStereo", err)
	}
}

const acetaldehyde = `
name: acetaldehyde
atoms:
  - {symbol: C, x: 0, y: 0}
  - {symbol: C, x: 1.3, y: 0.75}
  - {symbol: O, x: 2.6, y: 0, charge: 0}
bonds:
  - {from: 0, to: 1}
  - {from: 1, to: 2, order: double}
`

func TestReadMolecule(t *testing.T) {
	m, err := ReadMolecule(strings.NewReader(acetaldehyde))
	if err != nil {
		t.Fatalf("ReadMolecule: %v", err)
	}
	if m.Name != "acetaldehyde" {
		t.Errorf("Name = %q", m.Name)
	}
	var symbols []string
	for _, a := range m.Atoms {
		symbols = append(symbols, a.Symbol)
	}
	if diff := cmp.Diff([]string{"C", "C", "O"}, symbols); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}
	if len(m.Bonds) != 2 {
		t.Fatalf("len(Bonds) = %d, want 2", len(m.Bonds))
	}
	if m.Bonds[0].Order != Single || m.Bonds[1].Order != Double {
		t.Errorf("orders = %v, %v", m.Bonds[0].Order, m.Bonds[1].Order)
	}
	if m.Atoms[1].CountBonds() != 2 {
		t.Errorf("central carbon CountBonds = %d, want 2", m.Atoms[1].CountBonds())
	}
}

func TestReadMoleculeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", ErrInvalidDocument},
		{"missing symbol", "atoms:\n  - {x: 1}\n", ErrInvalidDocument},
		{"index out of range", "atoms:\n  - {symbol: C}\nbonds:\n  - {from: 0, to: 3}\n", ErrInvalidDocument},
		{"bad order", "atoms:\n  - {symbol: C}\n  - {symbol: C, x: 1}\nbonds:\n  - {from: 0, to: 1, order: nine}\n", ErrInvalidOrder},
		{"self bond", "atoms:\n  - {symbol: C}\nbonds:\n  - {from: 0, to: 0}\n", ErrSelfBond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMolecule(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadMolecule error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ReadMolecule(strings.NewReader("atoms: [{symbol: C, mass: 12}]")); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestWriteMoleculeRoundTrip(t *testing.T) {
	m, err := ReadMolecule(strings.NewReader(acetaldehyde))
	if err != nil {
		t.Fatalf("ReadMolecule: %v", err)
	}
	m.Bonds[0].Stereo = Up

	var buf bytes.Buffer
	if err := WriteMolecule(&buf, m); err != nil {
		t.Fatalf("WriteMolecule: %v", err)
	}
	got, err := ReadMolecule(&buf)
	if err != nil {
		t.Fatalf("ReadMolecule after write: %v", err)
	}
	if got.Bonds[0].Stereo != Up || got.Bonds[1].Order != Double {
		t.Errorf("round trip lost bond attributes: %v %v", got.Bonds[0].Stereo, got.Bonds[1].Order)
	}
	if got.Atoms[2].Coord != m.Atoms[2].Coord {
		t.Errorf("round trip coord = %v, want %v", got.Atoms[2].Coord, m.Atoms[2].Coord)
	}
}
