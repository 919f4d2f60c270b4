package http

import (
	"github.com/gin-gonic/gin"

	"content-repository/pkg/response"
)

// Create godoc
// @Summary     Create a page
// @Description Registers a new page, optionally attached under a parent page.
// @Tags        Pages
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Page data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Parent not found"
// @Router      /api/v1/pages [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List root pages
// @Description Returns every root page in registration order.
// @Tags        Pages
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/pages [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get page detail
// @Description Returns a single page with its breadcrumb.
// @Tags        Pages
// @Produce     json
// @Param       id path string true "Page ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/pages/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Children godoc
// @Summary     List child pages
// @Description Returns the ordered child sequence of a page.
// @Tags        Pages
// @Produce     json
// @Param       id path string true "Page ID"
// @Success     200 {object} childrenResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/pages/{id}/children [GET]
func (h *handler) Children(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Children(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Children: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChildrenResp(output))
}

// Breadcrumb godoc
// @Summary     Get breadcrumb
// @Description Returns the root-to-page title chain joined with " > ".
// @Tags        Pages
// @Produce     json
// @Param       id path string true "Page ID"
// @Success     200 {object} breadcrumbResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/pages/{id}/breadcrumb [GET]
func (h *handler) Breadcrumb(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Breadcrumb(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Breadcrumb: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBreadcrumbResp(output))
}

// SearchByTag godoc
// @Summary     Search subtree by tag
// @Description Exact, case-sensitive tag search over the subtree rooted at the page, in pre-order.
// @Tags        Pages
// @Produce     json
// @Param       id  path  string true "Subtree root page ID"
// @Param       tag query string true "Tag to match"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/pages/{id}/search [GET]
func (h *handler) SearchByTag(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SearchByTag(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchByTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// RecentlyModified godoc
// @Summary     List recently modified pages
// @Description Returns the pages in the subtree modified strictly after midnight at the start of (today - days).
// @Tags        Pages
// @Produce     json
// @Param       id   path  string true  "Subtree root page ID"
// @Param       days query int    false "Day window (default 0: start of today)"
// @Success     200 {object} recentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/pages/{id}/recent [GET]
func (h *handler) RecentlyModified(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RecentlyModified(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RecentlyModified: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecentResp(output))
}
