package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create page request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSearchReq binds the tag search query parameters plus the URI param.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.RootID = c.Param("id")
	return req, req.validate()
}

// processRecentReq binds the recency query parameters plus the URI param.
func (h *handler) processRecentReq(c *gin.Context) (recentReq, error) {
	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.RootID = c.Param("id")
	return req, req.validate()
}
