package page

import "time"

// Info describes a stored page, decorated with the identifier assigned by
// the store. Tags is always an independent copy.
type Info struct {
	ID           string
	Title        string
	Path         string
	Tags         []string
	LastModified time.Time
}

// --- UseCase Inputs ---

type CreatePageInput struct {
	Title        string
	Path         string
	Tags         []string
	LastModified time.Time // zero value defaults to the injected clock's now
	ParentID     string    // optional: attach under this page
}

type SearchByTagInput struct {
	RootID string
	Tag    string
}

type RecentlyModifiedInput struct {
	RootID string
	Days   int
}

// --- UseCase Outputs ---

type CreatePageOutput struct {
	Page Info
}

type ListPagesOutput struct {
	Pages []Info
	Total int
}

type DetailPageOutput struct {
	Page       Info
	Breadcrumb string
}

type ChildrenOutput struct {
	Pages []Info
	Total int
}

type BreadcrumbOutput struct {
	Breadcrumb string
}

type SearchByTagOutput struct {
	Pages []Info
	Count int
}

type RecentlyModifiedOutput struct {
	Pages  []Info
	Count  int
	Cutoff time.Time
}
