package zone

import (
	"go-pontaj/internal/middleware"
	"go-pontaj/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	zones := r.Group("/zones")
	zones.Use(middleware.AuthMiddleware())
	{
		zones.GET("", middleware.RBACAuthorize(rbacService, "zone", "read"), h.GetAll)
		zones.GET("/:id", middleware.RBACAuthorize(rbacService, "zone", "read"), h.GetByID)
		zones.POST("", middleware.RBACAuthorize(rbacService, "zone", "create"), h.Create)
		zones.PUT("/:id", middleware.RBACAuthorize(rbacService, "zone", "update"), h.Update)
	}
}
