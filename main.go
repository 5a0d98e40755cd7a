package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/laudep/ItemCatalog/config"
	"github.com/laudep/ItemCatalog/controllers"
	"github.com/laudep/ItemCatalog/middleware"
	"github.com/laudep/ItemCatalog/repositories"
	"github.com/laudep/ItemCatalog/routes"
	"github.com/laudep/ItemCatalog/services"
	"github.com/laudep/ItemCatalog/templates"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to database
	db := config.ConnectDB()

	// Load provider credentials
	oauthConfig := config.LoadOAuth()

	// Create a new Echo instance
	e := echo.New()
	e.Renderer = templates.NewRenderer()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = htmlErrorHandler(e)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowInlineJS: true, // provider sign-in snippets on the login page
	}))
	e.Use(middleware.LoadSession())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	// Initialize provider services
	googleAuth := services.NewGoogleAuthService(oauthConfig.Google)
	facebookAuth := services.NewFacebookAuthService(oauthConfig.FBAppID, oauthConfig.FBAppSecret)

	// Initialize controllers
	authController := controllers.NewAuthController(googleAuth, facebookAuth, userRepo)
	categoryController := controllers.NewCategoryController(categoryRepo, itemRepo, userRepo)
	itemController := controllers.NewItemController(itemRepo, categoryRepo, userRepo)
	apiController := controllers.NewAPIController(itemRepo, categoryRepo)

	// Register routes
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterCatalogRoutes(e, categoryController, itemController)
	routes.RegisterAPIRoutes(e, apiController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// htmlErrorHandler renders HTML error pages on the web surface and falls
// back to Echo's JSON handler for the API. Everything but an explicit 404
// fails closed with a generic page.
func htmlErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if strings.HasPrefix(c.Path(), "/api/") {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		if httpErr, ok := err.(*echo.HTTPError); ok {
			code = httpErr.Code
		}

		name := "error.html"
		if code == http.StatusNotFound {
			name = "not_found.html"
		}
		if renderErr := c.Render(code, name, echo.Map{}); renderErr != nil {
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
