package app

import (
	"log"
	"net/http"

	_ "github.com/Pedroxsbai/TODOAPP/docs"
	"github.com/Pedroxsbai/TODOAPP/internal/actionlog"
	"github.com/Pedroxsbai/TODOAPP/internal/auth"
	"github.com/Pedroxsbai/TODOAPP/internal/config"
	"github.com/Pedroxsbai/TODOAPP/internal/handlers"
	"github.com/Pedroxsbai/TODOAPP/internal/pipeline"
	"github.com/Pedroxsbai/TODOAPP/internal/repo"
	"github.com/Pedroxsbai/TODOAPP/internal/service"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
	"github.com/Pedroxsbai/TODOAPP/internal/theme"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, sessions *session.Store, order pipeline.Order) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	web := r.Group("", session.Middleware(sessions, session.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	}))

	users := service.NewUserService()
	themes := theme.NewResolver(cfg.Theme.CookieName)
	actions := actionlog.New(cfg.ActionLog.Path)
	gate := auth.NewGate(auth.DefaultLoginPath)
	p := pipeline.New(order, gate, themes, actions, users)
	log.Printf("request pipeline: %s; action log: %s", p.Order(), actions.Path())

	todoSvc := service.NewTaskService(repo.NewSessionTaskRepo())
	registerTodoRoutes(web, p, handlers.NewTodoHandler(todoSvc, users))
	registerAuthRoutes(web, p, handlers.NewAuthHandler(users, gate))
	registerThemeRoutes(web, p, handlers.NewThemeHandler(themes))
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(g *gin.RouterGroup, p *pipeline.Pipeline, h *handlers.TodoHandler) {
	home := pipeline.Route{Controller: "Home", Action: "Index"}
	g.GET("/", p.Chain(home, func(c *gin.Context) { c.Redirect(http.StatusFound, handlers.TodoListPath) })...)

	g.GET("/Todo", p.Chain(pipeline.Route{Controller: "Todo", Action: "Index"}, h.List)...)
	add := pipeline.Route{Controller: "Todo", Action: "Add"}
	g.GET("/Todo/Add", p.Chain(add, h.AddForm)...)
	g.POST("/Todo/Add", p.Chain(add, h.Add)...)
}

func registerAuthRoutes(g *gin.RouterGroup, p *pipeline.Pipeline, h *handlers.AuthHandler) {
	inscription := pipeline.Route{Controller: "Inscription", Action: "Index", Public: true}
	g.GET("/Inscription", p.Chain(inscription, h.Form)...)
	g.POST("/Inscription", p.Chain(inscription, h.Submit)...)
	g.POST("/Logout", p.Chain(pipeline.Route{Controller: "Inscription", Action: "Logout", Public: true}, h.Logout)...)
}

func registerThemeRoutes(g *gin.RouterGroup, p *pipeline.Pipeline, h *handlers.ThemeHandler) {
	g.Any("/Theme/Toggle", p.Chain(pipeline.Route{Controller: "Theme", Action: "Toggle", Public: true}, h.Toggle)...)
}
