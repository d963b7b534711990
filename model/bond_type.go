package model

import (
	"fmt"
	"strings"
)

// BondOrder is the multiplicity of a bond.
type BondOrder uint8

const (
	Single    BondOrder = 1
	Double    BondOrder = 2
	Triple    BondOrder = 3
	Quadruple BondOrder = 4
)

var bondOrderNames = [...]string{
	Single:    "single",
	Double:    "double",
	Triple:    "triple",
	Quadruple: "quadruple",
}

// IsValid reports whether o is one of the defined orders.
func (o BondOrder) IsValid() bool {
	return o >= Single && o <= Quadruple
}

// String returns the lower-case name of the order.
func (o BondOrder) String() string {
	if o.IsValid() {
		return bondOrderNames[o]
	}
	return fmt.Sprintf("BondOrder(%d)", uint8(o))
}

// ParseBondOrder accepts an order name or its numeric form ("1".."4").
// The empty string is a single bond.
func ParseBondOrder(s string) (BondOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Single, nil
	}
	for o := Single; o <= Quadruple; o++ {
		if s == bondOrderNames[o] || s == fmt.Sprint(uint8(o)) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// BondStereo describes the out-of-plane direction of a single bond,
// seen from its source atom.
type BondStereo uint8

const (
	NotStereo BondStereo = iota
	Up                   // toward the viewer, drawn as a wedge
	Down                 // away from the viewer, drawn as a hatch
	UpOrDown             // unknown, drawn as a wavy line
)

var bondStereoNames = [...]string{
	NotStereo: "none",
	Up:        "up",
	Down:      "down",
	UpOrDown:  "either",
}

// IsValid reports whether s is one of the defined stereo values.
func (s BondStereo) IsValid() bool {
	return s <= UpOrDown
}

// String returns the lower-case name of the stereo value.
func (s BondStereo) String() string {
	if s.IsValid() {
		return bondStereoNames[s]
	}
	return fmt.Sprintf("BondStereo(%d)", uint8(s))
}

// ParseBondStereo accepts a stereo name. The empty string is NotStereo.
func ParseBondStereo(s string) (BondStereo, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NotStereo, nil
	}
	for st := NotStereo; st <= UpOrDown; st++ {
		if s == bondStereoNames[st] {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStereo, s)
}
