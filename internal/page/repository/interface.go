package repository

import (
	"context"

	"content-repository/internal/page"
)

// Repository is the composed interface for the page domain data store.
type Repository interface {
	PageRepository
}

// PageRepository defines all access methods for the page tree store.
// Lookups that miss return a zero-value Info with a nil error; callers
// detect absence through the empty ID.
type PageRepository interface {
	CreatePage(ctx context.Context, opt CreatePageOptions) (page.Info, error)
	GetOnePage(ctx context.Context, opt GetOnePageOptions) (page.Info, error)
	ListRoots(ctx context.Context) ([]page.Info, error)
	ListChildren(ctx context.Context, id string) ([]page.Info, error)
	Breadcrumb(ctx context.Context, id string) (string, error)
	SearchByTag(ctx context.Context, opt SearchByTagOptions) ([]page.Info, error)
	RecentlyModified(ctx context.Context, opt RecentlyModifiedOptions) ([]page.Info, error)
}
