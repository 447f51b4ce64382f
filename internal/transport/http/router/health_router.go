package router

// registerHealthRoutes sets up health check routes outside the API group
func (r *Router) registerHealthRoutes() {
	r.engine.GET("/health", r.handlers.Health.Healthz)
	r.engine.GET("/healthz", r.handlers.Health.Healthz)
}
