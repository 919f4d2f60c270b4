package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	pages := rg.Group("/pages")
	{
		pages.POST("", h.Create)
		pages.GET("", h.List)
		pages.GET("/:id", h.Detail)
		pages.GET("/:id/children", h.Children)
		pages.GET("/:id/breadcrumb", h.Breadcrumb)
		pages.GET("/:id/search", h.SearchByTag)
		pages.GET("/:id/recent", h.RecentlyModified)
	}
}
