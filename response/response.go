package response

import (
	"log"
	"net/http"

	"garagespace/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error envelope: {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// Pagination describes a paginated listing
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Paginated wraps a page of results
type Paginated struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success returns the payload as-is with 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithPagination returns a page of results
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Paginated{
		Data: data,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest returns a 400 with the given message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Unauthorized returns a 401
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: "unauthorized"})
}

// Forbidden returns a 403
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: "forbidden"})
}

// NotFound returns a 404 with the given message
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// Conflict returns a 409 with the given message
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{Error: message})
}

// ServerError returns a generic 500; internal detail never reaches clients
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}

// FromError maps an application error onto the HTTP boundary. Validation
// and configuration problems answer 400, missing resources 404, identity
// problems 401, permission problems 403; everything else is logged and
// surfaced as a generic 500.
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation,
		errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEmail,
		errors.ErrCodeInvalidPhone,
		errors.ErrCodeInvalidRole,
		errors.ErrCodeInvalidStatus,
		errors.ErrCodeConfiguration:
		c.JSON(http.StatusBadRequest, ErrorBody{Error: appErr.Message})
	case errors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, ErrorBody{Error: appErr.Message})
	case errors.ErrCodeUnauthorized,
		errors.ErrCodeInvalidToken,
		errors.ErrCodeMissingToken:
		c.JSON(http.StatusUnauthorized, ErrorBody{Error: appErr.Message})
	case errors.ErrCodeForbidden:
		c.JSON(http.StatusForbidden, ErrorBody{Error: appErr.Message})
	case errors.ErrCodeDBDuplicate:
		c.JSON(http.StatusConflict, ErrorBody{Error: appErr.Message})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		ServerError(c)
	}
}
