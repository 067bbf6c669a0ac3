package api

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Binder decodes JSON bodies with sonic. The API is JSON-only; path and
// query params are read explicitly in the controllers.
type Binder struct{}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "failed to read request body")
	}

	if err := sonic.Unmarshal(body, i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "malformed json body")
	}

	return nil
}
