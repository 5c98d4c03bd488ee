package report

import (
	"go-pontaj/internal/middleware"
	"go-pontaj/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/monthly", middleware.RBACAuthorize(rbacService, "report", "read"), h.GetMonthly)
	}
}
