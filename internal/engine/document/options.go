package document

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithObserver registers fn as a change subscriber at construction time.
func WithObserver(fn func(Change)) Option {
	return func(d *Document) {
		if fn != nil {
			d.observers = append(d.observers, fn)
		}
	}
}

// WithMaxLogEntries bounds the edit log kept for cursor synchronisation.
// Cursors that fall further behind than the bound are clamped into the
// document instead of being replayed. Zero means unbounded.
func WithMaxLogEntries(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxLog = n
		}
	}
}
