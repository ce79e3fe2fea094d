package events

import "github.com/atomicstack/slotgrid/internal/logging"

type SelectorTracer struct{}

type DialogTracer struct{}

type dialogReason string

const (
	DialogReasonButton  dialogReason = "button"
	DialogReasonInvalid dialogReason = "invalid"
	DialogReasonClosed  dialogReason = "closed"
)

var (
	Selector = SelectorTracer{}
	Dialog   = DialogTracer{}
)

func (SelectorTracer) Open(title string, options, page, maxPage int, paginated bool) {
	logging.Trace("selector.open", map[string]interface{}{
		"title":     title,
		"options":   options,
		"page":      page,
		"maxPage":   maxPage,
		"paginated": paginated,
	})
}

func (SelectorTracer) Page(title string, page int) {
	logging.Trace("selector.page", map[string]interface{}{"title": title, "page": page})
}

func (SelectorTracer) Filter(title, filter string, matched int) {
	logging.Trace("selector.filter", map[string]interface{}{"title": title, "filter": filter, "matched": matched})
}

func (SelectorTracer) FilterCleared(title string) {
	logging.Trace("selector.filter.clear", map[string]interface{}{"title": title})
}

func (SelectorTracer) Select(title string, index int) {
	logging.Trace("selector.select", map[string]interface{}{"title": title, "index": index})
}

func (SelectorTracer) Cancel(title string) {
	logging.Trace("selector.cancel", map[string]interface{}{"title": title})
}

func (DialogTracer) Prompt(title, start string) {
	logging.Trace("dialog.prompt", map[string]interface{}{"title": title, "start": start})
}

func (DialogTracer) Input(title, text string, valid bool) {
	logging.Trace("dialog.input", map[string]interface{}{"title": title, "text": text, "valid": valid})
}

func (DialogTracer) Submit(title, text string) {
	logging.Trace("dialog.submit", map[string]interface{}{"title": title, "text": text})
}

func (DialogTracer) Cancel(title string, reason dialogReason) {
	logging.Trace("dialog.cancel", map[string]interface{}{"title": title, "reason": string(reason)})
}
