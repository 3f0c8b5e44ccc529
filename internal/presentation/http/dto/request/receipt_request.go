package request

import "github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"

// RenderQuery holds the optional overrides of the HTML receipt endpoint.
type RenderQuery struct {
	Mode       string `form:"mode"`
	TemplateID string `form:"template_id" binding:"omitempty,uuid"`
	Engine     string `form:"engine"`
}

// TransformRequest is the request body for transforming a supplied payload.
type TransformRequest struct {
	Format  string                 `json:"format" binding:"required"`
	Payload entity.ReceiptPayload  `json:"payload"`
	Context map[string]interface{} `json:"context"`
	StoreID string                 `json:"store_id" binding:"omitempty,uuid"`
}
