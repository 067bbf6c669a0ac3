package controller

import (
	"net/http"
	"strconv"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) EvaluateScenario(ctx echo.Context) error {
	request := new(domain.EvaluateScenarioRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	scenario, err := c.scenarioService.Evaluate(ctx.Request().Context(), ownerID(ctx), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, scenario)
}

func (c *Controller) ListScenarios(ctx echo.Context) error {
	scenarios, err := c.scenarioService.History(ctx.Request().Context(), ownerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, scenarios)
}

func (c *Controller) GetScenario(ctx echo.Context) error {
	id, err := scenarioID(ctx)
	if err != nil {
		return err
	}

	scenario, err := c.scenarioService.Get(ctx.Request().Context(), id, ownerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, scenario)
}

func (c *Controller) GetRecommendations(ctx echo.Context) error {
	id, err := scenarioID(ctx)
	if err != nil {
		return err
	}

	recommendations, err := c.scenarioService.Recommendations(ctx.Request().Context(), id, ownerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, recommendations)
}

func scenarioID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, constants.NewCodedError(http.StatusBadRequest, "invalid scenario id")
	}
	return id, nil
}
