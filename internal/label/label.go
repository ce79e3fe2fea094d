// Package label describes what a slot shows: one or more images to cycle
// through, a title and hint lines.
package label

// DefaultInterval is the number of ticks each frame of an animated label is
// shown for.
const DefaultInterval = 20

// Image is a single visual token. An empty Item is the blank token.
type Image struct {
	Item  string
	Count int
	// Name is the display-name overlay.
	Name string
	// Notes are the free-text lines attached to the image; hints land here.
	Notes []string
	// Decoration is incidental display metadata carried by the source image.
	Decoration []string
}

// IsBlank reports whether the image renders as an empty slot.
func (i Image) IsBlank() bool {
	return i.Item == ""
}

// Clone returns a deep copy of the image.
func (i Image) Clone() Image {
	i.Notes = cloneStrings(i.Notes)
	i.Decoration = cloneStrings(i.Decoration)
	return i
}

// Kind classifies a label by its frame count.
type Kind int

const (
	Empty Kind = iota
	Static
	Animated
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Animated:
		return "animated"
	default:
		return "empty"
	}
}

// Label is an immutable slot description produced by a Builder.
type Label struct {
	images   []Image
	title    string
	hasTitle bool
	hints    []string
	interval int
}

// Kind reports whether the label is empty, static or animated.
func (l Label) Kind() Kind {
	switch len(l.images) {
	case 0:
		return Empty
	case 1:
		return Static
	default:
		return Animated
	}
}

// IsAnimated reports whether the label cycles between frames.
func (l Label) IsAnimated() bool {
	return l.Kind() == Animated
}

// Len returns the number of frames.
func (l Label) Len() int {
	return len(l.images)
}

// Frame returns a copy of frame i, or a blank image when out of range.
func (l Label) Frame(i int) Image {
	if i < 0 || i >= len(l.images) {
		return Image{}
	}
	return l.images[i].Clone()
}

// First returns the image shown when the label is first placed.
func (l Label) First() Image {
	return l.Frame(0)
}

// Images returns copies of every frame.
func (l Label) Images() []Image {
	out := make([]Image, len(l.images))
	for i, img := range l.images {
		out[i] = img.Clone()
	}
	return out
}

// Title returns the label title and whether one was set.
func (l Label) Title() (string, bool) {
	return l.title, l.hasTitle
}

// TitleText returns the title, or "" when none was set.
func (l Label) TitleText() string {
	return l.title
}

// Hints returns the hint lines.
func (l Label) Hints() []string {
	return cloneStrings(l.hints)
}

// Interval returns the ticks per frame. It is only meaningful for animated
// labels.
func (l Label) Interval() int {
	if l.interval < 1 {
		return DefaultInterval
	}
	return l.interval
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
