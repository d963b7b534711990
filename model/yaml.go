package model

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned by ReadMolecule for structurally valid YAML
// that does not describe a molecule.
var ErrInvalidDocument = errors.New("model: invalid molecule document")

type moleculeDoc struct {
	Name  string    `yaml:"name"`
	Atoms []atomDoc `yaml:"atoms"`
	Bonds []bondDoc `yaml:"bonds"`
}

type atomDoc struct {
	Symbol string  `yaml:"symbol"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Charge int     `yaml:"charge,omitempty"`
}

type bondDoc struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Order  string `yaml:"order,omitempty"`
	Stereo string `yaml:"stereo,omitempty"`
}

// ReadMolecule decodes a YAML molecule document:
//
//	name: ethene
//	atoms:
//	  - {symbol: C, x: 0, y: 0}
//	  - {symbol: C, x: 1.3, y: 0}
//	bonds:
//	  - {from: 0, to: 1, order: double}
//
// Bond ends are zero-based atom indexes. Order defaults to single and
// stereo to none.
func ReadMolecule(r io.Reader) (*Molecule, error) {
	var doc moleculeDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("failed to parse molecule: %w", err)
	}

	m := NewMolecule(doc.Name)
	for i, ad := range doc.Atoms {
		if ad.Symbol == "" {
			return nil, fmt.Errorf("%w: atom %d has no symbol", ErrInvalidDocument, i)
		}
		a := NewAtom(ad.Symbol, ad.X, ad.Y)
		a.Charge = ad.Charge
		m.AddAtom(a)
	}
	for i, bd := range doc.Bonds {
		if bd.From < 0 || bd.From >= len(m.Atoms) || bd.To < 0 || bd.To >= len(m.Atoms) {
			return nil, fmt.Errorf("%w: bond %d references atom out of range [0, %d)",
				ErrInvalidDocument, i, len(m.Atoms))
		}
		order, err := ParseBondOrder(bd.Order)
		if err != nil {
			return nil, fmt.Errorf("bond %d: %w", i, err)
		}
		stereo, err := ParseBondStereo(bd.Stereo)
		if err != nil {
			return nil, fmt.Errorf("bond %d: %w", i, err)
		}
		if _, err := m.AddBond(m.Atoms[bd.From], m.Atoms[bd.To], order, stereo); err != nil {
			return nil, fmt.Errorf("bond %d: %w", i, err)
		}
	}
	return m, nil
}

// WriteMolecule encodes m in the format read by ReadMolecule.
func WriteMolecule(w io.Writer, m *Molecule) error {
	doc := moleculeDoc{Name: m.Name}
	for _, a := range m.Atoms {
		doc.Atoms = append(doc.Atoms, atomDoc{Symbol: a.Symbol, X: a.Coord.X, Y: a.Coord.Y, Charge: a.Charge})
	}
	for i, b := range m.Bonds {
		from, to := m.IndexOf(b.Source), m.IndexOf(b.Target)
		if from < 0 || to < 0 {
			return fmt.Errorf("bond %d: %w", i, ErrForeignAtom)
		}
		bd := bondDoc{From: from, To: to}
		if b.Order != Single {
			bd.Order = b.Order.String()
		}
		if b.Stereo != NotStereo {
			bd.Stereo = b.Stereo.String()
		}
		doc.Bonds = append(doc.Bonds, bd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode molecule: %w", err)
	}
	return enc.Close()
}
