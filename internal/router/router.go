// File: internal/router/router.go
package router

import (
	"net/http"

	"user-consent/internal/handler"
	"user-consent/internal/handler/users"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Route 路由表中的一列
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

// Routes 回傳靜態路由表；/metrics 只在 d.Metrics 存在時加入
func Routes(d users.Deps) []Route {
	routes := []Route{
		{http.MethodGet, "/", handler.StatusHandler()},
		{http.MethodGet, "/ping", handler.PingHandler(d.Store, d.Log)},

		{http.MethodGet, "/users", users.ListUsersHandler(d)},
		{http.MethodPost, "/users", users.CreateUserHandler(d)},
		{http.MethodGet, "/users/:id", users.GetUserHandler(d)},
		{http.MethodPut, "/users/:id", users.UpdateUserHandler(d)},
		{http.MethodPatch, "/users/:id", users.UpdateUserHandler(d)},
		{http.MethodDelete, "/users/:id", users.DeleteUserHandler(d)},

		{http.MethodGet, "/swagger/*", echoSwagger.WrapHandler},
	}
	if d.Metrics != nil {
		routes = append(routes, Route{http.MethodGet, "/metrics", d.Metrics.Handler()})
	}
	return routes
}

// Setup 註冊所有路由
func Setup(e *echo.Echo, d users.Deps) {
	for _, r := range Routes(d) {
		e.Add(r.Method, r.Path, r.Handler)
	}
}
