package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/brewery-backend/internal/platform/apierr"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

const apiBase = "/api/v1"

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Param(param))
	id, err := uuid.Parse(raw)
	if err != nil {
		field := "id"
		if param != "id" {
			field = param
		}
		return uuid.Nil, apierr.New(http.StatusBadRequest, "invalid_id", fmt.Errorf("parse %s %q: %w", param, raw, err)).
			WithField(field, "must be a valid UUID")
	}
	return id, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.New(http.StatusBadRequest, "malformed_body", err).
			WithField("body", "malformed JSON request body")
	}
	return nil
}

// pageFromQuery reads ?page=&size=. Range checks happen in the services.
func pageFromQuery(c *gin.Context) (paging.Request, error) {
	var (
		req    paging.Request
		fields = map[string]string{}
	)
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["page"] = "must be a number"
		}
		req.Page = n
	}
	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["size"] = "must be a number"
		}
		req.Size = n
	}
	if len(fields) > 0 {
		e := apierr.New(http.StatusBadRequest, "invalid_paging", errors.New("invalid paging parameters"))
		for k, v := range fields {
			e = e.WithField(k, v)
		}
		return req, e
	}
	return req, nil
}
