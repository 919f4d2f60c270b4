package http

import (
	"github.com/gin-gonic/gin"

	"content-repository/internal/page"
	"content-repository/pkg/log"
)

// Handler is the public interface for the page HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Children(c *gin.Context)
	Breadcrumb(c *gin.Context)
	SearchByTag(c *gin.Context)
	RecentlyModified(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc page.UseCase
}

// New creates a new HTTP handler for the page domain.
func New(l log.Logger, uc page.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
