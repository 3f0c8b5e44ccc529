package renderer

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/apperror"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

const defaultTempSubdir = "wcpos-receipts"

// TemplateData is the root value legacy templates execute against.
type TemplateData struct {
	Order   *entity.Order
	Payload entity.ReceiptPayload
	// Receipt is the payload flattened to dot-path keys, e.g.
	// {{ index .Receipt "meta.order_number" }}.
	Receipt map[string]string
}

// HostTemplateRenderer executes merchant templates with the full
// text/template language: conditionals, loops and method calls on the
// order. It is not sandboxed. Inline content is materialized to a uniquely
// named temporary file that is removed on every exit path.
type HostTemplateRenderer struct {
	tempDir   string
	formatter money.Formatter
	log       zerolog.Logger
}

func NewHostTemplate(opts Options) *HostTemplateRenderer {
	dir := opts.TempDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), defaultTempSubdir)
	}
	return &HostTemplateRenderer{
		tempDir:   dir,
		formatter: opts.Formatter,
		log:       opts.Logger,
	}
}

func (r *HostTemplateRenderer) Engine() enum.RenderEngine { return enum.RenderEngineLegacy }

func (r *HostTemplateRenderer) Sandboxed() bool { return false }

// TempDir returns the directory inline templates are materialized in.
func (r *HostTemplateRenderer) TempDir() string { return r.tempDir }

func (r *HostTemplateRenderer) Render(w io.Writer, tpl entity.ReceiptTemplate, order *entity.Order, payload entity.ReceiptPayload) error {
	if existingFile(tpl.FilePath) {
		return r.execute(w, tpl.FilePath, order, payload)
	}
	if !tpl.HasContent() {
		return writePlaceholder(w)
	}

	path, cleanup, err := r.materialize(tpl.Content)
	if err != nil {
		return err
	}
	defer cleanup()

	return r.execute(w, path, order, payload)
}

func (r *HostTemplateRenderer) materialize(content string) (string, func(), error) {
	if err := os.MkdirAll(r.tempDir, 0o700); err != nil {
		return "", nil, apperror.NewTempFileError(err)
	}

	f, err := os.CreateTemp(r.tempDir, "receipt-*.tmpl")
	if err != nil {
		return "", nil, apperror.NewTempFileError(err)
	}

	cleanup := func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.log.Warn().Err(err).Str("path", f.Name()).Msg("failed to remove materialized template")
		}
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		cleanup()
		return "", nil, apperror.NewTempFileError(err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, apperror.NewTempFileError(err)
	}
	return f.Name(), cleanup, nil
}

func (r *HostTemplateRenderer) execute(w io.Writer, path string, order *entity.Order, payload entity.ReceiptPayload) error {
	tmpl, err := template.New(filepath.Base(path)).Funcs(r.funcs()).ParseFiles(path)
	if err != nil {
		return apperror.NewTemplateRenderError(err)
	}

	flat, err := Flatten(payload)
	if err != nil {
		return apperror.NewTemplateRenderError(err)
	}

	// Buffer so a failing template never leaves partial markup in w.
	var buf bytes.Buffer
	data := TemplateData{Order: order, Payload: payload, Receipt: flat}
	if err := tmpl.Execute(&buf, data); err != nil {
		return apperror.NewTemplateRenderError(err)
	}

	_, err = buf.WriteTo(w)
	return err
}

func (r *HostTemplateRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string { return r.formatter.Format(d) },
		"qty":   func(d decimal.Decimal) string { return r.formatter.Format(d) },
		"cents": func(c int64) string { return r.formatter.Format(money.FromCents(c)) },
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}
