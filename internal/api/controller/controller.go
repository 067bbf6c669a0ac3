package controller

import (
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/service/auth"
	"github.com/ecodesk/greenroi/internal/service/catalog"
	"github.com/ecodesk/greenroi/internal/service/comparison"
	"github.com/ecodesk/greenroi/internal/service/scenario"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	authService       *auth.Service
	catalogService    *catalog.Service
	scenarioService   *scenario.Service
	comparisonService *comparison.Service
}

func NewController(
	authService *auth.Service,
	catalogService *catalog.Service,
	scenarioService *scenario.Service,
	comparisonService *comparison.Service,
) *Controller {
	return &Controller{
		authService:       authService,
		catalogService:    catalogService,
		scenarioService:   scenarioService,
		comparisonService: comparisonService,
	}
}

// ownerID reads the user id set by the auth middleware.
func ownerID(ctx echo.Context) int64 {
	id, _ := ctx.Get(constants.CtxKeyUserID).(int64)
	return id
}
