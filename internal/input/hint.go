package input

import "fmt"

// Hint renders the key hint shown on labels for ev, e.g. "[Shift + LMB]".
func Hint(ev Event) string {
	var text string
	switch e := ev.(type) {
	case LeftClick:
		text = withModifier("LMB", "Shift", e.Shift)
	case RightClick:
		text = withModifier("RMB", "Shift", e.Shift)
	case DoubleLeftClick:
		text = "2x LMB"
	case MiddleClick:
		text = "MMB"
	case Drop:
		text = withModifier("Drop", "Ctrl", e.Control)
	case Hotbar:
		text = fmt.Sprintf("Hotbar %d", e.Index+1)
	default:
		return ""
	}
	return "[" + text + "]"
}

func withModifier(key, modifier string, held bool) string {
	if !held {
		return key
	}
	return modifier + " + " + key
}
