package page

import (
	"fmt"
	"strings"
	"time"

	"content-repository/pkg/datemath"
)

// Separator joins breadcrumb titles.
const Separator = " > "

// Page is a single node in the content tree. A page owns its children and
// keeps a non-owning back-pointer to its parent for breadcrumb lookups.
//
// The structure is not safe for concurrent mutation; callers needing
// concurrent access must serialize externally.
type Page struct {
	title        string
	path         string
	tags         []string
	lastModified time.Time
	children     []*Page
	parent       *Page
}

// New creates a page with lastModified set to the current time.
// nil tags yields an empty tag set. Title and path may be empty; no
// uniqueness check is performed on path.
func New(title, path string, tags []string) *Page {
	return NewAt(title, path, tags, time.Now())
}

// NewAt creates a page with an explicit lastModified timestamp.
// The tag slice is copied so later mutation by the caller cannot alias
// the page's internal state.
func NewAt(title, path string, tags []string, lastModified time.Time) *Page {
	p := &Page{
		title:        title,
		path:         path,
		lastModified: lastModified,
	}
	if len(tags) > 0 {
		p.tags = append([]string(nil), tags...)
	}
	return p
}

// AddChild appends child to this page's child sequence and sets its parent
// pointer. A nil child is a silent no-op.
//
// The parent pointer is overwritten unconditionally: adding a child that
// already belongs to another parent does NOT detach it from the old parent's
// child list. Callers are responsible for keeping the structure acyclic.
func (p *Page) AddChild(child *Page) {
	if child == nil {
		return
	}
	p.children = append(p.children, child)
	child.parent = p
}

// Breadcrumb returns the chain of titles from the tree root down to this
// page, joined with Separator. A page with no parent returns its own title.
func (p *Page) Breadcrumb() string {
	var titles []string
	for n := p; n != nil; n = n.parent {
		titles = append(titles, n.title)
	}
	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return strings.Join(titles, Separator)
}

// SearchByTag returns every page in the subtree rooted at p (including p
// itself) whose tag set contains an exact, case-sensitive match for tag.
// Results are in pre-order, children in their stored order. The result is
// never nil.
func (p *Page) SearchByTag(tag string) []*Page {
	result := []*Page{}
	p.walk(func(n *Page) {
		if n.hasTag(tag) {
			result = append(result, n)
		}
	})
	return result
}

// RecentlyModified returns the pages in the subtree modified strictly after
// midnight at the start of (today - days), relative to the system clock.
// Callers needing deterministic results should use RecentlyModifiedAt.
func (p *Page) RecentlyModified(days int) []*Page {
	return p.RecentlyModifiedAt(days, time.Now())
}

// RecentlyModifiedAt is RecentlyModified with an explicit reference instant.
// The cutoff is computed in now's location. Results are in the same
// pre-order as SearchByTag and never nil.
func (p *Page) RecentlyModifiedAt(days int, now time.Time) []*Page {
	cutoff := datemath.RecencyCutoff(now, days)
	result := []*Page{}
	p.walk(func(n *Page) {
		if n.lastModified.After(cutoff) {
			result = append(result, n)
		}
	})
	return result
}

// walk visits the subtree rooted at p in pre-order, children in stored
// order, using an explicit stack so pathologically deep trees cannot
// exhaust the goroutine stack.
func (p *Page) walk(visit func(*Page)) {
	stack := []*Page{p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

func (p *Page) hasTag(tag string) bool {
	for _, t := range p.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Title returns the page title.
func (p *Page) Title() string { return p.title }

// Path returns the identifying path.
func (p *Page) Path() string { return p.path }

// Tags returns an independent copy of the tag sequence.
func (p *Page) Tags() []string {
	return append([]string(nil), p.tags...)
}

// LastModified returns the last-modified timestamp.
func (p *Page) LastModified() time.Time { return p.lastModified }

// Children returns an independent copy of the ordered child sequence.
func (p *Page) Children() []*Page {
	return append([]*Page(nil), p.children...)
}

// Parent returns the parent page, or nil for a tree root.
func (p *Page) Parent() *Page { return p.parent }

func (p *Page) String() string {
	return fmt.Sprintf("Page: %s (%s) - Tags: %v", p.title, p.path, p.tags)
}
