package demo

import (
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/menu"
)

// Greek is the value type behind the enum switch demos.
type Greek int

const (
	Alpha Greek = iota
	Beta
	Delta
	Gamma
	Epsilon
	Rho
	Psi
)

var greekNames = [...]string{"ALPHA", "BETA", "DELTA", "GAMMA", "EPSILON", "RHO", "PSI"}

func (g Greek) String() string {
	if g < 0 || int(g) >= len(greekNames) {
		return "UNKNOWN"
	}
	return greekNames[g]
}

var greekOptions = []menu.EnumOption[Greek]{
	{Value: Alpha, Label: label.Item("iron_ingot", "Alpha")},
	{Value: Beta, Label: label.Item("gold_ingot", "Beta")},
	{Value: Delta, Label: label.NewBuilder().Item("diamond").Title("Delta").Hint("With persistent hints").Build()},
	{Value: Gamma, Label: label.NewBuilder().Item("netherite_axe").Title("Gamma").
		Hint("Takes the below option names from label titles").
		Hint("and replaces the original name").
		Build()},
	{Value: Epsilon, Label: label.Item("paper", "Epsilon")},
	{Value: Rho, Label: label.NewBuilder().Item("structure_void").Hint("Nameless Label Test").Build()},
	{Value: Psi, Label: label.Item("spawner", "Psi")},
}
