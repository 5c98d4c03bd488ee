package absencetype

import (
	"go-pontaj/internal/middleware"
	"go-pontaj/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	types := r.Group("/absence-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "absence_type", "read"), h.GetAll)
		types.POST("", middleware.RBACAuthorize(rbacService, "absence_type", "create"), h.Create)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "absence_type", "read"), h.GetByID)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "absence_type", "update"), h.Update)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "absence_type", "delete"), h.Deactivate)
	}
}
