package tesseract

import (
	"fmt"
	"strings"
)

// Order is the sequence in which the six planar rotations are composed.
// Planar rotations in 4D do not commute, so different orders give
// different shapes for the same angles.
type Order [PlaneCount]Plane

// DefaultOrder is YZ, XW, YW, ZW, XY, XZ.
var DefaultOrder = Order{YZ, XW, YW, ZW, XY, XZ}

// Validate checks that o names every plane exactly once.
func (o Order) Validate() error {
	var seen [PlaneCount]bool
	for i, p := range o {
		if p < 0 || int(p) >= PlaneCount {
			return fmt.Errorf("rotation order position %d: invalid plane %d", i, int(p))
		}
		if seen[p] {
			return fmt.Errorf("rotation order position %d: plane %s repeated", i, p)
		}
		seen[p] = true
	}
	return nil
}

// String returns the order as comma separated plane names.
func (o Order) String() string {
	names := make([]string, len(o))
	for i, p := range o {
		names[i] = p.String()
	}
	return strings.Join(names, ",")
}

// ParseOrder builds an Order from plane names.
func ParseOrder(names []string) (Order, error) {
	var o Order
	if len(names) != PlaneCount {
		return o, fmt.Errorf("rotation order needs %d planes, got %d", PlaneCount, len(names))
	}
	for i, name := range names {
		p, err := ParsePlane(name)
		if err != nil {
			return o, fmt.Errorf("rotation order position %d: %w", i, err)
		}
		o[i] = p
	}
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}
