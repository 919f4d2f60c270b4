package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"content-repository/internal/page"
	"content-repository/internal/page/repository"
	"content-repository/pkg/log"
)

// Store is the in-memory page store. It indexes every registered page under
// a uuid so the ownership tree can be addressed by identifier, and holds the
// single lock that serializes mutation and traversal — the tree itself is
// not safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	pages map[string]*page.Page
	ids   map[*page.Page]string
	order []string // registration order, drives root listing
	l     log.Logger
}

var _ repository.Repository = (*Store)(nil)

// New creates an empty Store.
func New(l log.Logger) *Store {
	return &Store{
		pages: make(map[string]*page.Page),
		ids:   make(map[*page.Page]string),
		l:     l,
	}
}

// CreatePage builds a page from the options, registers it under a fresh
// uuid and, when ParentID is set, attaches it to the parent.
func (s *Store) CreatePage(ctx context.Context, opt repository.CreatePageOptions) (page.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var parent *page.Page
	if opt.ParentID != "" {
		var ok bool
		parent, ok = s.pages[opt.ParentID]
		if !ok {
			return page.Info{}, repository.ErrParentNotExists
		}
	}

	var p *page.Page
	if opt.LastModified.IsZero() {
		p = page.New(opt.Title, opt.Path, opt.Tags)
	} else {
		p = page.NewAt(opt.Title, opt.Path, opt.Tags, opt.LastModified)
	}

	id := uuid.NewString()
	s.pages[id] = p
	s.ids[p] = id
	s.order = append(s.order, id)

	if parent != nil {
		parent.AddChild(p)
	}

	s.l.Debugf(ctx, "memory.CreatePage: registered %q as %s", opt.Title, id)
	return s.describe(p), nil
}

// GetOnePage fetches a single page by ID or, failing that, by path.
// Returns a zero Info when nothing matches.
func (s *Store) GetOnePage(ctx context.Context, opt repository.GetOnePageOptions) (page.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if opt.ID != "" {
		if p, ok := s.pages[opt.ID]; ok {
			return s.describe(p), nil
		}
		return page.Info{}, nil
	}

	if opt.Path != "" {
		for _, id := range s.order {
			if p := s.pages[id]; p.Path() == opt.Path {
				return s.describe(p), nil
			}
		}
	}

	return page.Info{}, nil
}

// ListRoots returns every registered page without a parent, in
// registration order.
func (s *Store) ListRoots(ctx context.Context) ([]page.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roots := []page.Info{}
	for _, id := range s.order {
		if p := s.pages[id]; p.Parent() == nil {
			roots = append(roots, s.describe(p))
		}
	}
	return roots, nil
}

// ListChildren returns the ordered child sequence of the given page.
// A child attached more than once appears once per occurrence.
func (s *Store) ListChildren(ctx context.Context, id string) ([]page.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pages[id]
	if !ok {
		return nil, repository.ErrPageNotExists
	}

	return s.describeAll(p.Children()), nil
}

// Breadcrumb returns the root-to-page title chain for the given page.
func (s *Store) Breadcrumb(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pages[id]
	if !ok {
		return "", repository.ErrPageNotExists
	}
	return p.Breadcrumb(), nil
}

// SearchByTag runs the pre-order tag search over the subtree rooted at
// opt.RootID.
func (s *Store) SearchByTag(ctx context.Context, opt repository.SearchByTagOptions) ([]page.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root, ok := s.pages[opt.RootID]
	if !ok {
		return nil, repository.ErrPageNotExists
	}

	return s.describeAll(root.SearchByTag(opt.Tag)), nil
}

// RecentlyModified runs the pre-order recency query over the subtree rooted
// at opt.RootID, using opt.Now as the reference instant.
func (s *Store) RecentlyModified(ctx context.Context, opt repository.RecentlyModifiedOptions) ([]page.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root, ok := s.pages[opt.RootID]
	if !ok {
		return nil, repository.ErrPageNotExists
	}

	return s.describeAll(root.RecentlyModifiedAt(opt.Days, opt.Now)), nil
}

// describe must be called with the lock held.
func (s *Store) describe(p *page.Page) page.Info {
	return page.Info{
		ID:           s.ids[p],
		Title:        p.Title(),
		Path:         p.Path(),
		Tags:         p.Tags(),
		LastModified: p.LastModified(),
	}
}

func (s *Store) describeAll(pages []*page.Page) []page.Info {
	infos := make([]page.Info, len(pages))
	for i, p := range pages {
		infos[i] = s.describe(p)
	}
	return infos
}
