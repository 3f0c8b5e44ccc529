package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/adapter"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/service"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/internal/presentation/http/dto/request"
	"github.com/wcpos/woocommerce-pos-receipts/internal/presentation/http/dto/response"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
)

// ReceiptService is the part of service.ReceiptService the handlers use.
type ReceiptService interface {
	BuildPayload(ctx context.Context, orderID uuid.UUID, mode string) (entity.ReceiptPayload, error)
	Render(ctx context.Context, w io.Writer, orderID uuid.UUID, opts service.RenderOptions) error
	Transform(ctx context.Context, orderID uuid.UUID, formatID, mode string, dc adapter.DeviceContext) (*service.Output, error)
	TransformPayload(ctx context.Context, formatID string, payload entity.ReceiptPayload, dc adapter.DeviceContext, storeID *uuid.UUID) (*service.Output, error)
	TransformForDevice(ctx context.Context, orderID uuid.UUID, deviceName, mode string) (*service.Output, error)
	ListTemplates(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.ReceiptTemplate, *pagination.Pagination, error)
}

// ReceiptHandler handles receipt HTTP requests.
type ReceiptHandler struct {
	receiptService ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetPayload returns the canonical receipt payload as JSON.
func (h *ReceiptHandler) GetPayload(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.receiptService.BuildPayload(c.Request.Context(), orderID, c.Query("mode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt payload built", payload)
}

// RenderHTML renders the receipt through the store's template.
func (h *ReceiptHandler) RenderHTML(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var q request.RenderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	opts := service.RenderOptions{Mode: q.Mode, Engine: q.Engine}
	if q.TemplateID != "" {
		id := uuid.MustParse(q.TemplateID)
		opts.TemplateID = &id
	}

	var buf bytes.Buffer
	if err := h.receiptService.Render(c.Request.Context(), &buf, orderID, opts); err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, enum.OutputFormatHTML.ContentType(), buf.Bytes())
}

// Transform renders the order in a device command language. Query
// parameters other than mode become the device context.
func (h *ReceiptHandler) Transform(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.receiptService.Transform(c.Request.Context(), orderID, c.Param("format"), c.Query("mode"), deviceContextFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeOutput(c, out)
}

// TransformForDevice renders the order for a configured device profile.
func (h *ReceiptHandler) TransformForDevice(c *gin.Context) {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.receiptService.TransformForDevice(c.Request.Context(), orderID, c.Param("device"), c.Query("mode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeOutput(c, out)
}

// TransformPayload converts a payload supplied in the request body.
func (h *ReceiptHandler) TransformPayload(c *gin.Context) {
	var req request.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var storeID *uuid.UUID
	if req.StoreID != "" {
		id := uuid.MustParse(req.StoreID)
		storeID = &id
	}

	out, err := h.receiptService.TransformPayload(c.Request.Context(), req.Format, req.Payload, adapter.DeviceContext(req.Context), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeOutput(c, out)
}

// ListTemplates returns a page of a store's receipt templates.
func (h *ReceiptHandler) ListTemplates(c *gin.Context) {
	storeID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	templates, page, err := h.receiptService.ListTemplates(c.Request.Context(), storeID, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Receipt templates retrieved", pagination.NewPaginatedResult(templates, page))
}

// Formats lists the supported output formats.
func (h *ReceiptHandler) Formats(c *gin.Context) {
	response.OK(c, "Output formats retrieved", enum.OutputFormats())
}

func writeOutput(c *gin.Context, out *service.Output) {
	c.Header("X-Receipt-Format", out.Format.String())
	c.Data(http.StatusOK, out.ContentType(), []byte(out.Body))
}
