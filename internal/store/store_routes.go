package store

import (
	"go-pontaj/internal/middleware"
	"go-pontaj/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	stores := r.Group("/stores")
	stores.Use(middleware.AuthMiddleware())
	{
		stores.GET("", middleware.RBACAuthorize(rbacService, "store", "read"), h.GetAll)
		stores.GET("/:id", middleware.RBACAuthorize(rbacService, "store", "read"), h.GetByID)
		stores.POST("", middleware.RBACAuthorize(rbacService, "store", "create"), h.Create)
		stores.PUT("/:id", middleware.RBACAuthorize(rbacService, "store", "update"), h.Update)
		stores.DELETE("/:id", middleware.RBACAuthorize(rbacService, "store", "delete"), h.Deactivate)
	}
}
