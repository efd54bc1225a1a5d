// Package odometer implements the carry propagating counter shared by all
// product cursors.
//
// An Odometer holds one Dial per dimension. Dial 0 is the least significant
// digit: it moves on every advance. When a dial reaches its end, it is
// rewound and the next dial moves, like the wheels of a mechanical
// odometer. The most significant dial is never rewound: reaching its end is
// the end of the enumeration.
package odometer

// Dial is one dimension of an odometer.
//
// A dial tracks a current position between fixed begin and end positions.
type Dial interface {
	// Next moves the current position one step forward.
	Next()
	// Rewind moves the current position back to begin.
	Rewind()
	// Finish moves the current position to end.
	Finish()
	// Exhausted reports whether the current position is end.
	Exhausted() bool
	// Equal reports whether other is at the same current position.
	//
	// other must be a dial over the same sequence.
	Equal(other Dial) bool
	// Clone returns an independent dial at the same position.
	Clone() Dial
}

// Odometer is the position tuple of a product cursor.
//
// The zero value has no dial. It only equals another zero Odometer.
type Odometer struct {
	dials []Dial
}

// New builds an odometer from dials, least significant first.
//
// New takes ownership of dials.
func New(dials ...Dial) Odometer {
	return Odometer{dials: dials}
}

// Len returns the number of dimensions.
func (o Odometer) Len() int {
	return len(o.dials)
}

// Advance moves to the next combination.
//
// Returns false if odometer was already at end. In this case, the position
// is untouched.
func (o Odometer) Advance() bool {
	if o.Done() {
		return false
	}

	last := len(o.dials) - 1
	for i, dial := range o.dials {
		dial.Next()
		if !dial.Exhausted() {
			break
		}
		if i == last {
			// Don't rewind the most significant dial. This is the end marker.
			break
		}
		// Carry to the next dial.
		dial.Rewind()
	}
	return true
}

// Done reports whether the most significant dial reached its end.
//
// An odometer without dial is always done.
func (o Odometer) Done() bool {
	if len(o.dials) == 0 {
		return true
	}
	return o.dials[len(o.dials)-1].Exhausted()
}

// End returns the end marker of this odometer lineage.
//
// All dials are at begin except the most significant one, which is at end.
func (o Odometer) End() Odometer {
	end := o.Clone()
	for _, dial := range end.dials {
		dial.Rewind()
	}
	if len(end.dials) > 0 {
		end.dials[len(end.dials)-1].Finish()
	}
	return end
}

// Clone returns an odometer with independent dials at the same positions.
func (o Odometer) Clone() Odometer {
	if o.dials == nil {
		return Odometer{}
	}
	dials := make([]Dial, len(o.dials))
	for i, dial := range o.dials {
		dials[i] = dial.Clone()
	}
	return Odometer{dials: dials}
}

// Dial returns the dial of dimension i.
func (o Odometer) Dial(i int) Dial {
	return o.dials[i]
}

// Equal compares two odometers of the same lineage.
//
// The most significant dial is compared first. When both are at end, the
// odometers are equal without looking at lower dials: Advance rewinds them
// before the top dial can reach its end, so they are at begin anyway.
// Otherwise, all dials are compared.
func (o Odometer) Equal(other Odometer) bool {
	if len(o.dials) != len(other.dials) {
		return false
	}
	if len(o.dials) == 0 {
		return true
	}

	last := len(o.dials) - 1
	if !o.dials[last].Equal(other.dials[last]) {
		return false
	}
	if o.dials[last].Exhausted() {
		return true
	}
	for i := 0; i < last; i++ {
		if !o.dials[i].Equal(other.dials[i]) {
			return false
		}
	}
	return true
}
