package controller

import (
	"context"
	"net/http"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

// CompareScenarios is the fast path: it resolves the requested scenarios
// without touching the narrative generator.
func (c *Controller) CompareScenarios(ctx echo.Context) error {
	request := new(domain.CompareRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	scenarios, err := c.comparisonService.PrepareComparison(ctx.Request().Context(), request.ScenarioIDs, ownerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, scenarios)
}

// AnalyzeScenarios runs the narrative step. The generator call is bounded
// by the configured timeout; a failed narrative keeps its fallback content
// but answers with the unavailable status so clients can tell.
func (c *Controller) AnalyzeScenarios(ctx echo.Context) error {
	request := new(domain.CompareRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(
		ctx.Request().Context(),
		viper.GetDuration(constants.ViperKeyNarrativeTimeout),
	)
	defer cancel()

	result, err := c.comparisonService.Analyze(reqCtx, request.ScenarioIDs, ownerID(ctx))
	if err != nil {
		return err
	}

	if !result.Succeeded {
		return ctx.JSON(constants.ErrNarrativeUnavailable.Code(), result)
	}

	return ctx.JSON(http.StatusOK, result)
}
