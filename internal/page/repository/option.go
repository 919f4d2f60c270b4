package repository

import "time"

// CreatePageOptions holds parameters for registering a new page.
type CreatePageOptions struct {
	Title        string
	Path         string
	Tags         []string
	LastModified time.Time
	ParentID     string // optional: attach the new page under this parent
}

// GetOnePageOptions holds filter parameters for fetching a single page.
// ID takes precedence; Path matches the first page registered with it
// (paths are not unique).
type GetOnePageOptions struct {
	ID   string
	Path string
}

// SearchByTagOptions holds parameters for a subtree tag search.
type SearchByTagOptions struct {
	RootID string
	Tag    string
}

// RecentlyModifiedOptions holds parameters for a subtree recency query.
// Now is the reference instant the cutoff is computed from.
type RecentlyModifiedOptions struct {
	RootID string
	Days   int
	Now    time.Time
}
