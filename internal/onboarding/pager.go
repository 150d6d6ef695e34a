// Package onboarding implements the onboarding pager: an ordered, fixed set of
// pages, the index of the page on screen, and which navigation controls the
// presentation layer should offer for that index.
//
// A Pager is not safe for concurrent use; it is driven from a single UI loop.
package onboarding

import (
	"errors"
	"fmt"

	"bankey/internal/domain"
)

var (
	// ErrNoPages is returned when a pager is created without pages
	ErrNoPages = errors.New("onboarding: at least one page is required")
	// ErrDuplicatePage is returned when two pages share an ID
	ErrDuplicatePage = errors.New("onboarding: duplicate page id")
	// ErrUnknownPage is returned when navigating from a page the pager does not hold
	ErrUnknownPage = errors.New("onboarding: unknown page")
)

// UnknownPagePolicy decides what navigation does when handed a page that is
// not part of the sequence.
type UnknownPagePolicy int

const (
	// UnknownPageReject fails with ErrUnknownPage and leaves the index alone
	UnknownPageReject UnknownPagePolicy = iota
	// UnknownPageFirst resets the index to the first page and returns no neighbor
	UnknownPageFirst
)

// ParseUnknownPagePolicy maps the config spelling of a policy to its value
func ParseUnknownPagePolicy(s string) (UnknownPagePolicy, error) {
	switch s {
	case "", "reject":
		return UnknownPageReject, nil
	case "first":
		return UnknownPageFirst, nil
	default:
		return UnknownPageReject, fmt.Errorf("onboarding: unknown page policy %q", s)
	}
}

// ChangeFunc is called after the current index changes
type ChangeFunc func(index int, page domain.Page, v Visibility)

// FinishFunc is called when onboarding is done or skipped
type FinishFunc func(reason domain.FinishReason)

// Option configures a Pager
type Option func(*Pager)

// WithChangeHandler registers the page change observer
func WithChangeHandler(fn ChangeFunc) Option {
	return func(p *Pager) { p.onChange = fn }
}

// WithFinishHandler registers the completion handler
func WithFinishHandler(fn FinishFunc) Option {
	return func(p *Pager) { p.onFinish = fn }
}

// WithUnknownPagePolicy overrides the default UnknownPageReject policy
func WithUnknownPagePolicy(policy UnknownPagePolicy) Option {
	return func(p *Pager) { p.policy = policy }
}

// Pager walks a fixed sequence of onboarding pages
type Pager struct {
	pages    []domain.Page
	index    map[string]int
	current  int
	policy   UnknownPagePolicy
	onChange ChangeFunc
	onFinish FinishFunc
}

// New creates a pager positioned on the first page
func New(pages []domain.Page, opts ...Option) (*Pager, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	p := &Pager{
		pages: make([]domain.Page, len(pages)),
		index: make(map[string]int, len(pages)),
	}
	copy(p.pages, pages)

	for i, page := range p.pages {
		if _, exists := p.index[page.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePage, page.ID)
		}
		p.index[page.ID] = i
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Pages returns a copy of the page sequence
func (p *Pager) Pages() []domain.Page {
	out := make([]domain.Page, len(p.pages))
	copy(out, p.pages)
	return out
}

// Count returns the number of pages
func (p *Pager) Count() int { return len(p.pages) }

// CurrentIndex returns the index of the page on screen
func (p *Pager) CurrentIndex() int { return p.current }

// Current returns the page on screen
func (p *Pager) Current() domain.Page { return p.pages[p.current] }

// Visibility returns the control visibility for the current page
func (p *Pager) Visibility() Visibility {
	return VisibilityFor(p.current, len(p.pages))
}

// PageBefore returns the page preceding current. The boolean is false when
// current is the first page. On success the pager moves to the returned page.
func (p *Pager) PageBefore(current domain.Page) (domain.Page, bool, error) {
	return p.neighbor(current, -1)
}

// PageAfter returns the page following current. The boolean is false when
// current is the last page. On success the pager moves to the returned page.
func (p *Pager) PageAfter(current domain.Page) (domain.Page, bool, error) {
	return p.neighbor(current, +1)
}

// Next moves forward from the current page
func (p *Pager) Next() (domain.Page, bool) {
	page, ok, _ := p.PageAfter(p.Current())
	return page, ok
}

// Previous moves back from the current page
func (p *Pager) Previous() (domain.Page, bool) {
	page, ok, _ := p.PageBefore(p.Current())
	return page, ok
}

// Finish hands completion to the registered finish handler.
// The pager itself does not change.
func (p *Pager) Finish(reason domain.FinishReason) {
	if p.onFinish != nil {
		p.onFinish(reason)
	}
}

func (p *Pager) neighbor(current domain.Page, step int) (domain.Page, bool, error) {
	i, ok := p.index[current.ID]
	if !ok {
		if p.policy == UnknownPageFirst {
			p.moveTo(0)
			return domain.Page{}, false, nil
		}
		return domain.Page{}, false, fmt.Errorf("%w: %q", ErrUnknownPage, current.ID)
	}

	next := i + step
	if next < 0 || next >= len(p.pages) {
		return domain.Page{}, false, nil
	}

	p.moveTo(next)
	return p.pages[next], true, nil
}

func (p *Pager) moveTo(i int) {
	if i == p.current {
		return
	}
	p.current = i
	if p.onChange != nil {
		p.onChange(i, p.pages[i], p.Visibility())
	}
}
