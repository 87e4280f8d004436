package apisrv

import (
	"errors"
	"net/http"

	gerr "github.com/MihaiKuro/asd/internal/errors"
	"github.com/MihaiKuro/asd/internal/form"
	"github.com/go-chi/render"
)

// Response is the envelope of every successful admin response.
type Response struct {
	status int

	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) *Response {
	return &Response{Success: true, Data: data}
}

func Created(data any) *Response {
	return &Response{status: http.StatusCreated, Success: true, Data: data}
}

func (rd *Response) Render(w http.ResponseWriter, r *http.Request) error {
	if rd.status != 0 {
		render.Status(r, rd.status)
	}
	return nil
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Success   bool   `json:"success"`
	Message   string `json:"message"`         // user-level status message
	ErrorText string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErr(err error, code int, msg string) *ErrResponse {
	e := &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		Message:        msg,
	}
	if err != nil {
		e.ErrorText = err.Error()
	}
	return e
}

func ErrInvalidRequest(err error) render.Renderer {
	return newErr(err, http.StatusBadRequest, "invalid request")
}

func ErrUnauthorized(err error) render.Renderer {
	return newErr(err, http.StatusUnauthorized, "not authenticated")
}

func ErrForbidden(err error) render.Renderer {
	return newErr(err, http.StatusForbidden, "admin access required")
}

func ErrNotFound(err error) render.Renderer {
	return newErr(err, http.StatusNotFound, "resource not found")
}

func ErrConflict(err error) render.Renderer {
	return newErr(err, http.StatusConflict, "request conflicts with current state")
}

func ErrReportGeneration(err error) render.Renderer {
	return newErr(err, http.StatusInternalServerError, gerr.ReportGenerationFail.Error())
}

func ErrInternalServerError(err error) render.Renderer {
	return newErr(err, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ErrFromDomain maps validation and domain errors to their status codes,
// anything unknown becomes a 500.
func ErrFromDomain(err error) render.Renderer {
	switch {
	case form.IsValidationError(err):
		return ErrInvalidRequest(err)
	case errors.Is(err, gerr.OrderNotFound), errors.Is(err, gerr.ProductNotFound):
		return ErrNotFound(err)
	case errors.Is(err, gerr.InsufficientStock), errors.Is(err, gerr.InvalidStatusChange):
		return ErrConflict(err)
	default:
		return ErrInternalServerError(err)
	}
}
