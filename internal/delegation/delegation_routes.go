package delegation

import (
	"go-pontaj/internal/middleware"
	"go-pontaj/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	delegations := r.Group("/delegations")
	delegations.Use(middleware.AuthMiddleware())
	{
		delegations.GET("", middleware.RBACAuthorize(rbacService, "delegation", "read"), h.List)
		delegations.GET("/:id", middleware.RBACAuthorize(rbacService, "delegation", "read"), h.GetByID)
		delegations.POST("", middleware.RBACAuthorize(rbacService, "delegation", "create"), h.Create)
		delegations.POST("/:id/submit", middleware.RBACAuthorize(rbacService, "delegation", "update"), h.Submit)
		delegations.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "delegation", "approve"), h.Approve)
		delegations.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "delegation", "approve"), h.Reject)
		delegations.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "delegation", "update"), h.Cancel)
	}
}
