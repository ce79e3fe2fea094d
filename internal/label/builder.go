package label

import "github.com/atomicstack/slotgrid/internal/input"

// Builder accumulates images, a title and hints for a Label.
type Builder struct {
	images         []Image
	interval       int
	title          string
	hasTitle       bool
	hints          []string
	keepDecoration bool
}

// NewBuilder returns an empty builder with the default frame interval.
func NewBuilder() *Builder {
	return &Builder{interval: DefaultInterval}
}

// Item appends a single-count image of the given item.
func (b *Builder) Item(item string) *Builder {
	b.images = append(b.images, Image{Item: item, Count: 1})
	return b
}

// Image appends a copy of img.
func (b *Builder) Image(img Image) *Builder {
	b.images = append(b.images, img.Clone())
	return b
}

// Interval sets the ticks per frame; values below 1 are raised to 1.
func (b *Builder) Interval(ticks int) *Builder {
	if ticks < 1 {
		ticks = 1
	}
	b.interval = ticks
	return b
}

// Title sets the display name applied to every image.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	b.hasTitle = true
	return b
}

// Hint appends a free-text hint line.
func (b *Builder) Hint(hint string) *Builder {
	b.hints = append(b.hints, hint)
	return b
}

// InputHint appends "action: [key]" for the given input.
func (b *Builder) InputHint(action string, ev input.Event) *Builder {
	return b.Hint(action + ": " + input.Hint(ev))
}

// KeyHint appends the bare key hint for the given input.
func (b *Builder) KeyHint(ev input.Event) *Builder {
	return b.Hint(input.Hint(ev))
}

// KeepDecoration keeps the source images' decoration instead of stripping it.
func (b *Builder) KeepDecoration() *Builder {
	b.keepDecoration = true
	return b
}

// Build produces the finished label. The builder may be reused afterwards
// without affecting the result.
func (b *Builder) Build() Label {
	l := Label{
		title:    b.title,
		hasTitle: b.hasTitle,
		hints:    cloneStrings(b.hints),
		interval: b.interval,
	}
	if len(b.images) == 0 {
		return l
	}
	l.images = make([]Image, len(b.images))
	for i, src := range b.images {
		img := src.Clone()
		if b.hasTitle {
			img.Name = b.title
		}
		if len(b.hints) > 0 {
			img.Notes = append(img.Notes, b.hints...)
		}
		if !b.keepDecoration {
			img.Decoration = nil
		}
		l.images[i] = img
	}
	return l
}

// Item is shorthand for a static label of item with the given title.
func Item(item, title string) Label {
	return NewBuilder().Item(item).Title(title).Build()
}
