package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/example/oiladmin/pkg/auth"
	"github.com/example/oiladmin/pkg/config"
	"github.com/example/oiladmin/pkg/models"
	"github.com/example/oiladmin/pkg/repository"
	"github.com/example/oiladmin/pkg/storage"
	"github.com/example/oiladmin/pkg/validation"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Store interfaces consumed by the handlers. The concrete implementations
// live in pkg/repository and pkg/storage; tests substitute in-memory fakes.

type OrderStore interface {
	List(ctx context.Context, opts repository.ListOrdersOptions) ([]*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	SetPaymentStatus(ctx context.Context, id, paymentStatus string) error
	Statistics(ctx context.Context) (*models.OrderStatistics, error)
}

type ProductStore interface {
	List(ctx context.Context) ([]*models.Product, error)
	Get(ctx context.Context, name string) (*models.Product, error)
	Upsert(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, name string) error
}

type ContactStore interface {
	List(ctx context.Context, status string) ([]*models.ContactForm, error)
	Get(ctx context.Context, id string) (*models.ContactForm, error)
	Update(ctx context.Context, id string, upd repository.ContactUpdate) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (*models.ContactFormStatistics, error)
}

type SiteStore interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	AddBrand(ctx context.Context, name string) ([]string, error)
	RemoveBrand(ctx context.Context, name string) ([]string, error)
	AddCategory(ctx context.Context, name string) ([]string, error)
	RemoveCategory(ctx context.Context, name string) ([]string, error)
	AppendImages(ctx context.Context, urls []string) ([]string, error)
	RemoveImages(ctx context.Context, indices []int) ([]string, error)
	AddToSlider(ctx context.Context, url string) ([]string, error)
	RemoveFromSlider(ctx context.Context, index int) ([]string, error)
	ReorderSlider(ctx context.Context, from, to int) ([]string, error)
}

type ObjectStorage interface {
	UploadAll(ctx context.Context, files []storage.UploadFile) []storage.UploadResult
	KeyFromURL(url string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Stores bundles the dependencies injected into the server.
type Stores struct {
	Orders   OrderStore
	Products ProductStore
	Contacts ContactStore
	Site     SiteStore
	Storage  ObjectStorage
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *gin.Engine
	validate *validatorv10.Validate
	auth     *auth.Authenticator
	stores   Stores
}

func New(cfg *config.Config, logger *zap.Logger, authn *auth.Authenticator, stores Stores) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		validate: validation.New(),
		auth:     authn,
		stores:   stores,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.POST("/api/admin/login", s.login)

	admin := s.router.Group("/api/admin")
	admin.Use(auth.Middleware(s.auth))
	{
		orders := admin.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.GET("/statistics", s.orderStatistics)
			orders.GET("/:id", s.getOrder)
			orders.DELETE("/:id", s.deleteOrder)
			orders.PATCH("/:id/status", s.updateOrderStatus)
			orders.PATCH("/:id/payment", s.updatePaymentStatus)
		}

		products := admin.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/:name", s.getProduct)
			products.PUT("/:name", s.upsertProduct)
			products.DELETE("/:name", s.deleteProduct)
		}

		admin.GET("/catalog", s.getCatalog)
		admin.POST("/brands", s.addBrand)
		admin.DELETE("/brands", s.removeBrand)
		admin.POST("/categories", s.addCategory)
		admin.DELETE("/categories", s.removeCategory)

		contacts := admin.Group("/contact-forms")
		{
			contacts.GET("", s.listContactForms)
			contacts.GET("/statistics", s.contactFormStatistics)
			contacts.GET("/:id", s.getContactForm)
			contacts.PATCH("/:id", s.updateContactForm)
			contacts.POST("/:id/archive", s.archiveContactForm)
			contacts.DELETE("/:id", s.deleteContactForm)
		}

		media := admin.Group("/media")
		{
			media.GET("", s.getMedia)
			media.POST("/images", s.uploadImages)
			media.DELETE("/images", s.deleteImages)
			media.POST("/slider", s.addToSlider)
			media.DELETE("/slider", s.removeFromSlider)
			media.PATCH("/slider/reorder", s.reorderSlider)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Admin API starting", zap.String("address", addr))
	return s.router.Run(addr)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) login(c *gin.Context) {
	var req validation.LoginRequest
	if err := validation.BindAndValidate(c, &req, s.validate, "Username and password are required"); err != nil {
		return
	}

	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid username or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// storeError converts a store failure into the JSON envelope: 404 for a
// missing document, generic 500 otherwise. The cause is logged, never sent.
func (s *Server) storeError(c *gin.Context, err error, notFoundMsg, faultMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": notFoundMsg})
		return
	}
	s.logger.Error(faultMsg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": faultMsg})
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
