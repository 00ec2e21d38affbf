package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/apierr"
	"github.com/yungbote/brewery-backend/internal/platform/ctxutil"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

const ProblemContentType = "application/problem+json"

// Problem is an RFC 7807 problem details body.
type Problem struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

const (
	detailValidation = "Request validation failed"
	detailDuplicate  = "Resource already exists"
	detailConflict   = "The resource was modified concurrently; reload it and retry"
	detailInvariant  = "The request would leave the resource in an invalid state"
	detailPrecond    = "A referenced resource is missing or still in use"
	detailRetryable  = "The service is temporarily unavailable; retry the request"
	detailInternal   = "An unexpected error occurred"
)

// RespondProblem translates err into a problem response. Only classified
// errors contribute their message; everything else is logged and reported
// with a generic detail.
func RespondProblem(c *gin.Context, log *logger.Logger, err error) {
	p := ProblemFrom(err)
	p.Instance = c.Request.URL.Path
	if p.Status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed",
			"error", err,
			"status", p.Status,
			"path", p.Instance,
			"request_id", ctxutil.RequestID(c.Request.Context()),
		)
	}
	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(p.Status, p)
}

func ProblemFrom(err error) Problem {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		if status == http.StatusBadRequest {
			return newProblem(status, "Validation Failed", detailValidation, apiErr.Fields)
		}
		return newProblem(status, http.StatusText(status), apiErr.Error(), apiErr.Fields)
	}

	agg, ok := domainagg.As(err)
	if !ok {
		return newProblem(http.StatusInternalServerError, "Internal Server Error", detailInternal, nil)
	}
	switch agg.Code {
	case domainagg.CodeValidation:
		return newProblem(http.StatusBadRequest, "Validation Failed", detailValidation, agg.Fields)
	case domainagg.CodeInvalidOrder:
		return newProblem(http.StatusBadRequest, "Invalid Order", explicitMessage(agg, detailValidation), agg.Fields)
	case domainagg.CodeNotFound:
		title := "Resource Not Found"
		if agg.Resource != "" {
			title = fmt.Sprintf("%s Not Found", agg.Resource)
		}
		return newProblem(http.StatusNotFound, title, explicitMessage(agg, "Resource not found"), nil)
	case domainagg.CodeDuplicateKey:
		return newProblem(http.StatusConflict, "Duplicate Key", explicitMessage(agg, detailDuplicate), nil)
	case domainagg.CodeConflict:
		return newProblem(http.StatusConflict, "Concurrency Conflict", detailConflict, nil)
	case domainagg.CodeInvariantViolation:
		return newProblem(http.StatusConflict, "Invariant Violation", detailInvariant, nil)
	case domainagg.CodePreconditionFailed:
		return newProblem(http.StatusPreconditionFailed, "Precondition Failed", detailPrecond, nil)
	case domainagg.CodeRetryable:
		return newProblem(http.StatusServiceUnavailable, "Service Unavailable", detailRetryable, nil)
	default:
		return newProblem(http.StatusInternalServerError, "Internal Server Error", detailInternal, nil)
	}
}

func newProblem(status int, title, detail string, fields map[string]string) Problem {
	return Problem{
		Type:   fmt.Sprintf("https://httpstatuses.com/%d", status),
		Title:  title,
		Status: status,
		Detail: detail,
		Errors: fields,
	}
}

// explicitMessage returns the message a service chose deliberately. Messages
// copied from a wrapped infrastructure error fall back to def.
func explicitMessage(agg *domainagg.Error, def string) string {
	if agg.Message == "" {
		return def
	}
	if agg.Cause != nil && agg.Message == agg.Cause.Error() {
		return def
	}
	return agg.Message
}
