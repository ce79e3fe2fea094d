package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/slotgrid/internal/input"
	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"github.com/atomicstack/slotgrid/internal/session"
	"github.com/atomicstack/slotgrid/internal/surface"
)

const (
	// PaginationThreshold is the option count at which a selector switches to
	// the paginated layout.
	PaginationThreshold = 54
	// OptionsPerPage is the number of options on one paginated page.
	OptionsPerPage = 48
)

// Paginated control slots.
const (
	SlotPrevious  = 8
	SlotIndicator = 17
	SlotNext      = 26
	SlotFilter    = 35
)

var fitKinds = []surface.Kind{
	surface.Hopper,
	surface.Chest1,
	surface.Chest2,
	surface.Chest3,
	surface.Chest4,
	surface.Chest5,
	surface.Chest6,
}

// SmallestFit returns the smallest selector surface with at least n slots.
func SmallestFit(n int) surface.Kind {
	for _, kind := range fitKinds {
		if kind.Size() >= n {
			return kind
		}
	}
	return surface.Chest6
}

// PagePosition maps the i-th option on a page to its slot, skipping the
// right-hand control column.
func PagePosition(i int) int {
	return i + i/8
}

// Option is one selectable value and the label that represents it.
type Option[T any] struct {
	Label label.Label
	Value T
}

// Selector lets an actor pick one option. Small option sets get the smallest
// fitting surface; large ones are paginated and can be filtered by title.
type Selector[T any] struct {
	sess     *session.Session
	title    string
	all      []Option[T]
	filtered []Option[T]
	cb       Callback[T]
	prompter TextPrompter

	paginated bool
	page      int
	maxPage   int
	filter    string
	done      bool
}

// NewSelector returns an unopened selector.
func NewSelector[T any](sess *session.Session, title string, options []Option[T], cb Callback[T]) *Selector[T] {
	s := &Selector[T]{
		sess:      sess,
		title:     title,
		all:       append([]Option[T](nil), options...),
		cb:        cb,
		prompter:  DefaultPrompter,
		paginated: len(options) >= PaginationThreshold,
		page:      1,
	}
	if s.paginated {
		s.filtered = append([]Option[T](nil), s.all...)
	}
	s.updateMaxPage()
	return s
}

// Select opens a selector and returns it.
func Select[T any](sess *session.Session, title string, options []Option[T], cb Callback[T]) *Selector[T] {
	s := NewSelector(sess, title, options, cb)
	s.Open()
	return s
}

// WithPrompter replaces the dialog used to edit the filter.
func (s *Selector[T]) WithPrompter(p TextPrompter) *Selector[T] {
	if p != nil {
		s.prompter = p
	}
	return s
}

func (s *Selector[T]) Paginated() bool { return s.paginated }
func (s *Selector[T]) Page() int       { return s.page }
func (s *Selector[T]) MaxPage() int    { return s.maxPage }
func (s *Selector[T]) Filter() string  { return s.filter }
func (s *Selector[T]) Done() bool      { return s.done }

// Filtered returns the options currently eligible for display.
func (s *Selector[T]) Filtered() []Option[T] {
	if !s.paginated {
		return append([]Option[T](nil), s.all...)
	}
	return append([]Option[T](nil), s.filtered...)
}

func (s *Selector[T]) updateMaxPage() {
	if !s.paginated || len(s.filtered) == 0 {
		s.maxPage = 1
		return
	}
	s.maxPage = (len(s.filtered)-1)/OptionsPerPage + 1
}

// Open rebuilds the surface from the current page and filter. It does
// nothing once an option was selected or the selector was cancelled.
func (s *Selector[T]) Open() {
	if s.done {
		return
	}
	events.Selector.Open(s.title, len(s.all), s.page, s.maxPage, s.paginated)
	if !s.paginated {
		s.openCompact()
		return
	}
	s.openPaged()
}

func (s *Selector[T]) openCompact() {
	b := NewBuilder(s.title, SmallestFit(len(s.all)+1))
	for i, opt := range s.all {
		b.AddButton(i, s.selectButton(i, opt))
	}
	b.AddButton(-1, Cancel(s.cancel))
	b.Open(s.sess)
}

func (s *Selector[T]) openPaged() {
	b := NewBuilder(s.title, surface.Chest6)

	start := (s.page - 1) * OptionsPerPage
	end := start + OptionsPerPage
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	for i := start; i < end; i++ {
		b.AddButton(PagePosition(i-start), s.selectButton(i, s.filtered[i]))
	}

	if s.page > 1 {
		b.AddButton(SlotPrevious, LeftClick(label.Item("red_concrete", "Previous Page"), func() {
			s.turn(s.page - 1)
		}))
	}
	b.AddButton(SlotIndicator, Display(label.Item("paper", fmt.Sprintf("Page %d / %d", s.page, s.maxPage))))
	if s.page < s.maxPage {
		b.AddButton(SlotNext, LeftClick(label.Item("lime_concrete", "Next Page"), func() {
			s.turn(s.page + 1)
		}))
	}

	b.AddButton(SlotFilter, New(label.NewBuilder().
		Item("writable_book").
		Title("Current filter: "+s.filter).
		InputHint("Set Filter", input.LeftClick{}).
		InputHint("Clear Filter", input.RightClick{}).
		Build(), s.handleFilter))

	b.AddButton(-1, Cancel(s.cancel))
	b.Open(s.sess)
}

func (s *Selector[T]) selectButton(index int, opt Option[T]) Button {
	return LeftClick(opt.Label, func() {
		if s.done {
			return
		}
		s.done = true
		events.Selector.Select(s.title, index)
		s.cb.Complete(opt.Value)
	})
}

func (s *Selector[T]) cancel() {
	if s.done {
		return
	}
	s.done = true
	events.Selector.Cancel(s.title)
	s.cb.Cancel()
}

func (s *Selector[T]) turn(page int) {
	if s.done {
		return
	}
	s.page = clampPage(page, s.maxPage)
	events.Selector.Page(s.title, s.page)
	s.sess.Interact(float64(s.page)/float64(s.maxPage) + 1)
	s.Open()
}

func (s *Selector[T]) handleFilter(ev input.Event) {
	if s.done {
		return
	}
	switch ev {
	case input.LeftClick{}:
		s.sess.Interact(1)
		s.prompter.Prompt(s.sess, TextRequest{
			Title:       "Set Filter",
			Start:       s.filter,
			Suggestions: s.titles(),
		}, NewCallback(func(text string) {
			s.sess.Success()
			s.ApplyFilter(text)
			s.Open()
		}, func() {
			s.sess.Failure()
			s.Open()
		}))
	case input.RightClick{}:
		s.ClearFilter()
		s.sess.Clear()
		s.Open()
	}
}

// ApplyFilter keeps the options whose title contains text, in their original
// order, and returns to the first page.
func (s *Selector[T]) ApplyFilter(text string) {
	if !s.paginated {
		return
	}
	s.filter = text
	s.filtered = s.filtered[:0]
	for _, opt := range s.all {
		if strings.Contains(optionTitle(opt.Label), text) {
			s.filtered = append(s.filtered, opt)
		}
	}
	s.updateMaxPage()
	s.page = clampPage(1, s.maxPage)
	events.Selector.Filter(s.title, text, len(s.filtered))
}

// ClearFilter restores every option.
func (s *Selector[T]) ClearFilter() {
	if !s.paginated {
		return
	}
	s.filter = ""
	s.filtered = append(s.filtered[:0], s.all...)
	s.updateMaxPage()
	s.page = clampPage(s.page, s.maxPage)
	events.Selector.FilterCleared(s.title)
}

func (s *Selector[T]) titles() []string {
	out := make([]string, 0, len(s.all))
	for _, opt := range s.all {
		out = append(out, optionTitle(opt.Label))
	}
	return out
}

// optionTitle is the text filters match against: the label title, or the
// item name when the label has none.
func optionTitle(l label.Label) string {
	if title, ok := l.Title(); ok {
		return title
	}
	return l.First().Item
}

func clampPage(page, maxPage int) int {
	if page > maxPage {
		page = maxPage
	}
	if page < 1 {
		page = 1
	}
	return page
}
