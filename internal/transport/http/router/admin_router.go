package router

import "github.com/gin-gonic/gin"

// registerAdminRoutes sets up user administration routes
func (r *Router) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", r.auth.RequireAdmin())
	{
		admin.GET("/users", r.handlers.Admin.ListUsers)
		admin.GET("/users/:id", r.handlers.Admin.GetUser)
		admin.PUT("/users/:id/approve", r.handlers.Admin.ApproveUser)
		admin.PUT("/users/:id/reject", r.handlers.Admin.RejectUser)
		admin.DELETE("/users/:id", r.handlers.Admin.DeleteUser)
	}
}
