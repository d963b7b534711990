package molview

import "errors"

var (
	// ErrNilCanvas is returned when a renderer is created without a canvas.
	ErrNilCanvas = errors.New("molview: canvas is nil")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("molview: invalid config")

	// ErrInvalidColor is returned for color strings that are neither a
	// known color name nor a hex triplet.
	ErrInvalidColor = errors.New("molview: invalid color")

	// ErrNilBond is returned for a nil bond or a bond missing an atom.
	ErrNilBond = errors.New("molview: bond or bond atom is nil")

	// ErrNilMolecule is returned when RenderMolecule is given no molecule.
	ErrNilMolecule = errors.New("molview: molecule is nil")

	// ErrDegenerateBond is returned for bonds whose atoms coincide on screen.
	ErrDegenerateBond = errors.New("molview: bond has zero length")
)
