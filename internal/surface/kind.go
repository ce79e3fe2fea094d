package surface

import "fmt"

// Kind is the grid shape of a surface.
type Kind int

const (
	Hopper Kind = iota
	Dispenser
	Chest1
	Chest2
	Chest3
	Chest4
	Chest5
	Chest6
	Anvil
)

// Anvil slot positions.
const (
	AnvilInput      = 0
	AnvilAdditional = 1
	AnvilResult     = 2
)

// Size returns the number of managed slots.
func (k Kind) Size() int {
	switch k {
	case Hopper:
		return 5
	case Dispenser:
		return 9
	case Anvil:
		return 3
	}
	if k >= Chest1 && k <= Chest6 {
		return 9 * k.Rows()
	}
	return 0
}

// Columns returns the grid width.
func (k Kind) Columns() int {
	switch k {
	case Hopper:
		return 5
	case Dispenser, Anvil:
		return 3
	}
	if k >= Chest1 && k <= Chest6 {
		return 9
	}
	return 0
}

// Rows returns the grid height.
func (k Kind) Rows() int {
	switch k {
	case Hopper, Anvil:
		return 1
	case Dispenser:
		return 3
	}
	if k >= Chest1 && k <= Chest6 {
		return int(k-Chest1) + 1
	}
	return 0
}

// Chest returns the 9-wide kind with the given number of rows.
func Chest(rows int) (Kind, error) {
	if rows < 1 || rows > 6 {
		return 0, fmt.Errorf("chest rows must be between 1 and 6, got %d", rows)
	}
	return Chest1 + Kind(rows-1), nil
}

// Valid reports whether k names a known shape.
func (k Kind) Valid() bool {
	return k >= Hopper && k <= Anvil
}

func (k Kind) String() string {
	switch k {
	case Hopper:
		return "hopper"
	case Dispenser:
		return "dispenser"
	case Anvil:
		return "anvil"
	}
	if k >= Chest1 && k <= Chest6 {
		return fmt.Sprintf("chest9x%d", k.Rows())
	}
	return fmt.Sprintf("kind(%d)", int(k))
}
