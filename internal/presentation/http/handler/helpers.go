package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/adapter"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/apperror"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
)

// reservedQuery lists query parameters that are not device context.
var reservedQuery = map[string]bool{"mode": true}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name + " format")
	}
	return id, nil
}

// deviceContextFromQuery collects the non-reserved query parameters.
// Values stay strings; adapters coerce them.
func deviceContextFromQuery(c *gin.Context) adapter.DeviceContext {
	dc := adapter.DeviceContext{}
	for key, values := range c.Request.URL.Query() {
		if reservedQuery[key] || len(values) == 0 {
			continue
		}
		dc[key] = values[len(values)-1]
	}
	return dc
}

// paginationFromQuery binds page and per_page, falling back to defaults.
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}
