package router

import "github.com/gin-gonic/gin"

// registerAuthRoutes sets up authentication routes. Login is the only
// unauthenticated endpoint; /auth/me works for pending and rejected
// accounts so the frontend can show their state.
func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/google", r.handlers.Auth.GoogleLogin)
		auth.GET("/me", r.auth.RequireAuth(), r.handlers.Auth.Me)
		auth.POST("/logout", r.handlers.Auth.Logout)
	}
}
