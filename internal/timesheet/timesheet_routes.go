package timesheet

import (
	"go-pontaj/internal/middleware"
	"go-pontaj/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.GET("/:id/grid", middleware.RBACAuthorize(rbacService, "timesheet", "read"), h.GetGrid)
		timesheets.GET("/:id/totals", middleware.RBACAuthorize(rbacService, "timesheet", "read"), h.EmployeeTotals)
		timesheets.POST("", middleware.RBACAuthorize(rbacService, "timesheet", "create"), h.Save)
		timesheets.POST("/check-duplicate", middleware.RBACAuthorize(rbacService, "timesheet", "read"), h.CheckDuplicate)
		timesheets.POST("/validate-cell", middleware.RBACAuthorize(rbacService, "timesheet", "read"), h.ValidateCell)
	}
}
