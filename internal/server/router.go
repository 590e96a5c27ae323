package server

import (
	"html/template"
	"net/http"

	"crm-integrator/internal/config"
	"crm-integrator/internal/handlers"
	"crm-integrator/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"eq": func(a, b interface{}) bool { return a == b },
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("crm_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// СТРАНИЦЫ
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/", handlers.IndexPage)
	auth.GET("/api-docs", handlers.ApiDocsPage)

	// JSON API — HTTP Basic по таблице пользователей
	api := r.Group("/api")
	api.Use(middleware.APIAuth())

	// КЛИЕНТЫ
	api.GET("/customers", handlers.ListCustomers)
	api.POST("/customers", handlers.CreateCustomer)
	api.GET("/customers/:id", handlers.GetCustomer)
	api.PUT("/customers/:id", handlers.UpdateCustomer)
	api.DELETE("/customers/:id", handlers.DeleteCustomer)

	// КОНТАКТЫ
	api.GET("/contacts", handlers.ListContacts)
	api.POST("/contacts", handlers.CreateContact)
	api.GET("/contacts/:id", handlers.GetContact)
	api.PUT("/contacts/:id", handlers.UpdateContact)
	api.DELETE("/contacts/:id", handlers.DeleteContact)

	// СДЕЛКИ
	api.GET("/deals", handlers.ListDeals)
	api.POST("/deals", handlers.CreateDeal)
	api.GET("/deals/:id", handlers.GetDeal)
	api.PUT("/deals/:id", handlers.UpdateDeal)
	api.DELETE("/deals/:id", handlers.DeleteDeal)

	// РЕЗЕРВНАЯ КОПИЯ
	api.POST("/backup", handlers.Backup)

	// GENESYS CLOUD
	api.GET("/genesys/status", handlers.GenesysStatus)
	api.GET("/genesys/users", handlers.GenesysUsers)
	api.GET("/genesys/queues", handlers.GenesysQueues)
	api.POST("/genesys/contacts/export", handlers.ExportContacts)
	api.POST("/genesys/contacts/import", handlers.ImportContacts)
	api.POST("/genesys/interactions/:id/deal", handlers.InteractionDeal)
	api.GET("/genesys/screen-pop", handlers.ScreenPop)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})

	return r
}
