package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/ecodesk/greenroi/internal/api/controller"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/pkg/session"
	"github.com/ecodesk/greenroi/internal/pkg/store"
	"github.com/ecodesk/greenroi/internal/service/auth"
	"github.com/ecodesk/greenroi/internal/service/catalog"
	"github.com/ecodesk/greenroi/internal/service/comparison"
	"github.com/ecodesk/greenroi/internal/service/scenario"
)

type APIService struct {
	router      *echo.Echo
	authService *auth.Service
}

func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// AuthService is exposed so the entrypoint can seed the demo account.
func (svc *APIService) AuthService() *auth.Service {
	return svc.authService
}

func NewAPIService(store store.Store, sessions session.Store, generator comparison.Generator) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     viper.GetStringSlice(constants.ViperKeyAllowedOrigins),
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	catalogService := catalog.NewService()
	scenarioService := scenario.NewService(store, catalogService)
	comparisonService := comparison.NewService(store, generator)
	svc.authService = auth.NewService(store, sessions)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.authService, catalogService, scenarioService, comparisonService)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", cntrl.Login)
	authGroup.DELETE("/logout", cntrl.Logout)
	authGroup.GET("/me", cntrl.Me, svc.AuthMiddleware)

	catalogGroup := api.Group("/catalog")
	catalogGroup.GET("/list", cntrl.ListCatalog)

	drafts := api.Group("/drafts", svc.AuthMiddleware)
	drafts.POST("", cntrl.CreateDraft)
	drafts.GET("/:id", cntrl.GetDraft)
	drafts.PUT("/:id/selections", cntrl.UpdateDraftSelections)

	scenarios := api.Group("/scenarios", svc.AuthMiddleware)
	scenarios.POST("/evaluate", cntrl.EvaluateScenario)
	scenarios.GET("/list", cntrl.ListScenarios)
	scenarios.GET("/:id", cntrl.GetScenario)
	scenarios.GET("/:id/recommendations", cntrl.GetRecommendations)
	scenarios.POST("/compare", cntrl.CompareScenarios)
	scenarios.POST("/analyze", cntrl.AnalyzeScenarios)

	return svc, nil
}
