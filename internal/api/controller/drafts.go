package controller

import (
	"net/http"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/labstack/echo/v4"
)

func (c *Controller) CreateDraft(ctx echo.Context) error {
	request := new(domain.CreateDraftRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	draft, err := c.scenarioService.CreateDraft(ctx.Request().Context(), ownerID(ctx), request.Label)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, draft)
}

func (c *Controller) GetDraft(ctx echo.Context) error {
	draft, err := c.scenarioService.GetDraft(ctx.Request().Context(), ownerID(ctx), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, draft)
}

func (c *Controller) UpdateDraftSelections(ctx echo.Context) error {
	request := new(domain.UpdateDraftRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	draft, err := c.scenarioService.UpdateDraft(ctx.Request().Context(), ownerID(ctx), ctx.Param("id"), request.Selections)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, draft)
}
