package page

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Tree construction
	Create(ctx context.Context, input CreatePageInput) (CreatePageOutput, error)

	// Lookups
	List(ctx context.Context) (ListPagesOutput, error)
	Detail(ctx context.Context, id string) (DetailPageOutput, error)
	Children(ctx context.Context, id string) (ChildrenOutput, error)

	// Subtree queries
	Breadcrumb(ctx context.Context, id string) (BreadcrumbOutput, error)
	SearchByTag(ctx context.Context, input SearchByTagInput) (SearchByTagOutput, error)
	RecentlyModified(ctx context.Context, input RecentlyModifiedInput) (RecentlyModifiedOutput, error)
}
