// Package tracker maps the scroll position of a view to the section whose
// extent crosses a fixed line near the viewport top.
package tracker

import (
	"errors"

	"github.com/choonghwanlee/folio/internal/portfolio"
)

// ErrAlreadyAttached is returned by Attach when the tracker is still
// subscribed to a scroll source.
var ErrAlreadyAttached = errors.New("tracker already attached to a scroll source")

// Tracker owns the active section of one mounted view. It is not safe for
// concurrent use; scroll handlers are expected to run on the view's event loop.
type Tracker struct {
	measurer  Measurer
	threshold float64
	order     []portfolio.Section
	onChange  func(portfolio.Section)

	active portfolio.Section
	set    bool

	detach func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(t *Tracker) {
		t.threshold = threshold
	}
}

// WithInitial seeds the active section before any measurement. Invalid
// sections are ignored.
func WithInitial(section portfolio.Section) Option {
	return func(t *Tracker) {
		if section.Valid() {
			t.active = section
			t.set = true
		}
	}
}

// OnChange registers a callback invoked after the active section changes.
func OnChange(fn func(portfolio.Section)) Option {
	return func(t *Tracker) {
		t.onChange = fn
	}
}

// New builds a tracker reading extents from measurer.
func New(measurer Measurer, opts ...Option) *Tracker {
	t := &Tracker{
		measurer:  measurer,
		threshold: DefaultThreshold,
		order:     portfolio.Sections,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Threshold returns the detection line offset.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// Active returns the current section; ok is false until a scan has matched
// (or an initial value was supplied).
func (t *Tracker) Active() (section portfolio.Section, ok bool) {
	return t.active, t.set
}

// Scan measures every section in priority order and returns the first whose
// extent contains the threshold line. It does not modify the tracker.
func (t *Tracker) Scan() (portfolio.Section, bool) {
	if t.measurer == nil {
		return "", false
	}
	for _, section := range t.order {
		rect, ok := t.measurer.Measure(section)
		if !ok {
			continue
		}
		if rect.Contains(t.threshold) {
			return section, true
		}
	}
	return "", false
}

// Update scans and stores the match. With no match the previous value is
// kept. It reports whether the active section changed.
func (t *Tracker) Update() bool {
	section, ok := t.Scan()
	if !ok {
		return false
	}
	if t.set && section == t.active {
		return false
	}
	t.active = section
	t.set = true
	if t.onChange != nil {
		t.onChange(section)
	}
	return true
}

// Attach subscribes Update to source. The returned func is equivalent to
// Detach.
func (t *Tracker) Attach(source ScrollSource) (func(), error) {
	if t.detach != nil {
		return nil, ErrAlreadyAttached
	}
	unsubscribe := source.Subscribe(func() { t.Update() })
	t.detach = unsubscribe
	return t.Detach, nil
}

// Attached reports whether the tracker is currently subscribed.
func (t *Tracker) Attached() bool {
	return t.detach != nil
}

// Detach removes the scroll subscription. It is safe to call when not attached.
func (t *Tracker) Detach() {
	if t.detach == nil {
		return
	}
	t.detach()
	t.detach = nil
}
