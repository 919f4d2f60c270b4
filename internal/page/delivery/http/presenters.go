package http

import (
	"time"

	"content-repository/internal/page"
	"content-repository/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	Tags         []string  `json:"tags"`
	LastModified time.Time `json:"last_modified"` // optional, defaults to now
	ParentID     string    `json:"parent_id"`     // optional, attaches under this page
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() page.CreatePageInput {
	return page.CreatePageInput{
		Title:        r.Title,
		Path:         r.Path,
		Tags:         r.Tags,
		LastModified: r.LastModified,
		ParentID:     r.ParentID,
	}
}

// ---

type searchReq struct {
	RootID string `form:"-"`
	Tag    string `form:"tag"`
}

func (r searchReq) validate() error { return nil }

func (r searchReq) toInput() page.SearchByTagInput {
	return page.SearchByTagInput{
		RootID: r.RootID,
		Tag:    r.Tag,
	}
}

// ---

type recentReq struct {
	RootID string `form:"-"`
	Days   int    `form:"days"`
}

func (r recentReq) validate() error { return nil }

func (r recentReq) toInput() page.RecentlyModifiedInput {
	return page.RecentlyModifiedInput{
		RootID: r.RootID,
		Days:   r.Days,
	}
}

// --- Response DTOs ---

type pageResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	Tags         []string  `json:"tags"`
	LastModified time.Time `json:"last_modified"`
}

func newPageResp(info page.Info) pageResp {
	tags := info.Tags
	if tags == nil {
		tags = []string{}
	}
	return pageResp{
		ID:           info.ID,
		Title:        info.Title,
		Path:         info.Path,
		Tags:         tags,
		LastModified: info.LastModified,
	}
}

func newPageResps(infos []page.Info) []pageResp {
	pages := make([]pageResp, len(infos))
	for i, info := range infos {
		pages[i] = newPageResp(info)
	}
	return pages
}

type createResp struct {
	Page pageResp `json:"page"`
}

func (h *handler) newCreateResp(out page.CreatePageOutput) createResp {
	return createResp{Page: newPageResp(out.Page)}
}

type listResp struct {
	Pages []pageResp `json:"pages"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out page.ListPagesOutput) listResp {
	return listResp{
		Pages: newPageResps(out.Pages),
		Total: out.Total,
	}
}

type detailResp struct {
	Page       pageResp `json:"page"`
	Breadcrumb string   `json:"breadcrumb"`
}

func (h *handler) newDetailResp(out page.DetailPageOutput) detailResp {
	return detailResp{
		Page:       newPageResp(out.Page),
		Breadcrumb: out.Breadcrumb,
	}
}

type childrenResp struct {
	Pages []pageResp `json:"pages"`
	Total int        `json:"total"`
}

func (h *handler) newChildrenResp(out page.ChildrenOutput) childrenResp {
	return childrenResp{
		Pages: newPageResps(out.Pages),
		Total: out.Total,
	}
}

type breadcrumbResp struct {
	Breadcrumb string `json:"breadcrumb"`
}

func (h *handler) newBreadcrumbResp(out page.BreadcrumbOutput) breadcrumbResp {
	return breadcrumbResp{Breadcrumb: out.Breadcrumb}
}

type searchResp struct {
	Pages []pageResp `json:"pages"`
	Count int        `json:"count"`
}

func (h *handler) newSearchResp(out page.SearchByTagOutput) searchResp {
	return searchResp{
		Pages: newPageResps(out.Pages),
		Count: out.Count,
	}
}

type recentResp struct {
	Pages  []pageResp        `json:"pages"`
	Count  int               `json:"count"`
	Cutoff response.DateTime `json:"cutoff"`
}

func (h *handler) newRecentResp(out page.RecentlyModifiedOutput) recentResp {
	return recentResp{
		Pages:  newPageResps(out.Pages),
		Count:  out.Count,
		Cutoff: response.DateTime(out.Cutoff),
	}
}
