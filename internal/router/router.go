package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bantconfirm/internal/auth"
	"bantconfirm/internal/config"
	"bantconfirm/internal/handler"
	"bantconfirm/internal/model"
)

// roleHome maps each role to its default landing destination. A signed-in
// visitor hitting a route outside their role's allow-list is redirected
// here, never shown an error page.
var roleHome = map[model.UserRole]string{
	model.RoleUser:   "/",
	model.RoleVendor: "/vendor",
	model.RoleAdmin:  "/admin",
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	enquiryHandler *handler.EnquiryHandler,
	catalogHandler *handler.CatalogHandler,
	settingsHandler *handler.SettingsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/settings", settingsHandler.Get)
	api.GET("/trusted-vendors", settingsHandler.ListTrustedVendors)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), rejectBlacklisted(tokenStore))

	secured.GET("/me", userHandler.Me)

	// Post-requirement flow: any signed-in role may qualify and post
	secured.POST("/enquiries/qualify", enquiryHandler.Qualify)
	secured.POST("/enquiries", enquiryHandler.Create)
	secured.GET("/enquiries/my", enquiryHandler.ListMine)

	// Vendor dashboard
	vendor := secured.Group("/vendor", requireRoles(model.RoleVendor))
	vendor.GET("/enquiries", enquiryHandler.ListAssigned)

	// Admin dashboard
	admin := secured.Group("/admin", requireRoles(model.RoleAdmin))
	admin.GET("/users", userHandler.ListUsers)
	admin.PUT("/users/:id/status", userHandler.SetStatus)
	admin.POST("/users/:id/approve", userHandler.ApproveVendor)
	admin.GET("/enquiries", enquiryHandler.ListAll)
	admin.GET("/enquiries/export", enquiryHandler.Export)
	admin.POST("/enquiries/:id/assign", enquiryHandler.Assign)
	admin.GET("/vendors", enquiryHandler.ListVendors)
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.PUT("/settings", settingsHandler.Update)
	admin.POST("/trusted-vendors", settingsHandler.AddTrustedVendor)
	admin.DELETE("/trusted-vendors/:id", settingsHandler.DeleteTrustedVendor)
}

// requireRoles gates a route group on a static role allow-list. An
// authenticated caller with the wrong role is redirected to their own
// role's home destination.
func requireRoles(allowed ...model.UserRole) echo.MiddlewareFunc {
	allowedSet := make(map[model.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFromContext(c)
			if err != nil {
				return err
			}
			if _, ok := allowedSet[claims.Role]; !ok {
				home, ok := roleHome[claims.Role]
				if !ok {
					home = "/"
				}
				return c.Redirect(http.StatusSeeOther, home)
			}
			return next(c)
		}
	}
}

// rejectBlacklisted denies access tokens invalidated by logout. Without
// this a copied token would keep its role alive past sign-out.
func rejectBlacklisted(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFromContext(c)
			if err != nil {
				return err
			}
			if claims.ID != "" {
				blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if blacklisted {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}
			return next(c)
		}
	}
}

func claimsFromContext(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
