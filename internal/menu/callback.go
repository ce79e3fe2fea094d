package menu

// Callback carries the two outcomes of a sub-menu: a completed value or a
// cancellation.
type Callback[T any] struct {
	OnComplete func(T)
	OnCancel   func()
}

// NewCallback pairs complete and cancel handlers.
func NewCallback[T any](complete func(T), cancel func()) Callback[T] {
	return Callback[T]{OnComplete: complete, OnCancel: cancel}
}

// Complete delivers v.
func (c Callback[T]) Complete(v T) {
	if c.OnComplete != nil {
		c.OnComplete(v)
	}
}

// Cancel reports that no value will be delivered.
func (c Callback[T]) Cancel() {
	if c.OnCancel != nil {
		c.OnCancel()
	}
}
