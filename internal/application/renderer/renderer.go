// Package renderer resolves a merchant receipt template against the
// canonical payload and writes the resulting markup to a response stream.
package renderer

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

// EmptyPlaceholder is written instead of failing when a template has
// neither an existing file nor usable content.
const EmptyPlaceholder = `<div class="wcpos-receipt-empty">No receipt template is configured for this store.</div>`

// Renderer writes final markup for a template to w.
//
// Sandboxed reports whether the renderer is limited to textual
// substitution. Renderers that return false execute merchant-authored
// logic and must only receive templates from trusted store configuration.
type Renderer interface {
	Engine() enum.RenderEngine
	Sandboxed() bool
	Render(w io.Writer, tpl entity.ReceiptTemplate, order *entity.Order, payload entity.ReceiptPayload) error
}

// Options configures renderer construction.
type Options struct {
	// TempDir receives materialized legacy templates. Created if absent;
	// defaults to a subdirectory of os.TempDir().
	TempDir   string
	Formatter money.Formatter
	Logger    zerolog.Logger
}

// New returns the renderer for engine. Only the logic-less engine is
// sandboxed; every other value selects the legacy host-template renderer.
func New(engine enum.RenderEngine, opts Options) Renderer {
	switch engine {
	case enum.RenderEngineLogicless:
		return NewLogicless(opts)
	default:
		return NewHostTemplate(opts)
	}
}

// ForID parses an engine id and returns its renderer.
func ForID(id string, opts Options) Renderer {
	return New(enum.ParseRenderEngine(id), opts)
}

func writePlaceholder(w io.Writer) error {
	_, err := io.WriteString(w, EmptyPlaceholder)
	return err
}

// existingFile reports whether path names a regular file on disk.
func existingFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
