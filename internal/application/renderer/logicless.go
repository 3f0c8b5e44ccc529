package renderer

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.\-]+)\s*\}\}`)

// LogiclessRenderer substitutes {{ key }} placeholders with flattened
// payload values and sanitizes the result. It has no conditionals or loops.
type LogiclessRenderer struct {
	policy *bluemonday.Policy
	log    zerolog.Logger
}

// receiptStyles are the CSS properties a template may set inline.
var receiptStyles = []string{
	"color", "background-color",
	"font-family", "font-size", "font-style", "font-weight", "line-height",
	"text-align", "text-decoration", "text-transform", "vertical-align", "white-space",
	"width", "max-width", "min-width", "height",
	"margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
	"border", "border-top", "border-bottom", "border-collapse",
	"display", "float", "clear",
}

// receiptPolicy extends the UGC policy with class names and the inline
// styles above. Style blocks and scripts are still removed.
func receiptPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyling()
	p.AllowAttrs("style").Globally()
	p.AllowStyles(receiptStyles...).Globally()
	return p
}

func NewLogicless(opts Options) *LogiclessRenderer {
	return &LogiclessRenderer{
		policy: receiptPolicy(),
		log:    opts.Logger,
	}
}

func (r *LogiclessRenderer) Engine() enum.RenderEngine { return enum.RenderEngineLogicless }

func (r *LogiclessRenderer) Sandboxed() bool { return true }

func (r *LogiclessRenderer) Render(w io.Writer, tpl entity.ReceiptTemplate, _ *entity.Order, payload entity.ReceiptPayload) error {
	source := tpl.Content
	if existingFile(tpl.FilePath) {
		b, err := os.ReadFile(tpl.FilePath)
		if err != nil {
			return fmt.Errorf("read template %s: %w", tpl.FilePath, err)
		}
		source = string(b)
	}
	if strings.TrimSpace(source) == "" {
		r.log.Debug().Str("template_id", tpl.ID.String()).Msg("empty logic-less template")
		return writePlaceholder(w)
	}

	vars, err := Flatten(payload)
	if err != nil {
		return fmt.Errorf("flatten payload: %w", err)
	}

	out := Substitute(source, vars)
	_, err = io.WriteString(w, r.policy.Sanitize(out))
	return err
}

// Substitute replaces every {{ key }} in source with vars[key]. Unknown
// keys become the empty string.
func Substitute(source string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(source, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		return vars[sub[1]]
	})
}
