package surface

import (
	"sync"

	"github.com/atomicstack/slotgrid/internal/label"
)

// PlayerSlots is the size of the actor-owned region shown below every surface.
const PlayerSlots = 36

// Inventory is the actor-owned region. Surfaces address it at raw indices
// size..size+35.
type Inventory struct {
	mu    sync.Mutex
	slots [PlayerSlots]label.Image
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Get returns a copy of slot i, or a blank image when out of range.
func (inv *Inventory) Get(i int) label.Image {
	if i < 0 || i >= PlayerSlots {
		return label.Image{}
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.slots[i].Clone()
}

// Set replaces slot i.
func (inv *Inventory) Set(i int, img label.Image) {
	if i < 0 || i >= PlayerSlots {
		return
	}
	inv.mu.Lock()
	inv.slots[i] = img.Clone()
	inv.mu.Unlock()
}

// Exchange puts img into slot i and returns what was there.
func (inv *Inventory) Exchange(i int, img label.Image) label.Image {
	if i < 0 || i >= PlayerSlots {
		return img
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	prev := inv.slots[i]
	inv.slots[i] = img.Clone()
	return prev
}

// Snapshot returns copies of every slot.
func (inv *Inventory) Snapshot() []label.Image {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]label.Image, PlayerSlots)
	for i, img := range inv.slots {
		out[i] = img.Clone()
	}
	return out
}
