package renderer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
)

func renderLogicless(t *testing.T, tpl entity.ReceiptTemplate) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewLogicless(testOptions(t)).Render(&buf, tpl, nil, samplePayload()))
	return buf.String()
}

func TestLogiclessRenderer_Substitutes(t *testing.T) {
	assert.Equal(t, "1042", renderLogicless(t, entity.ReceiptTemplate{Content: "{{meta.order_number}}"}))
	assert.Equal(t, "1042 / 19.99", renderLogicless(t, entity.ReceiptTemplate{
		Content: "{{ meta.order_number }} / {{\ttotals.grand_total_incl  }}",
	}))
}

func TestLogiclessRenderer_UnresolvedKeyIsEmptyAndStable(t *testing.T) {
	tpl := entity.ReceiptTemplate{Content: "[{{ missing.key }}]"}

	first := renderLogicless(t, tpl)
	second := renderLogicless(t, tpl)

	assert.Equal(t, "[]", first)
	assert.Equal(t, first, second)
}

func TestLogiclessRenderer_SanitizesOutput(t *testing.T) {
	p := samplePayload()
	p.Store.Name = `<img src=x onerror=alert(1)>Shop`

	var buf bytes.Buffer
	err := NewLogicless(testOptions(t)).Render(&buf, entity.ReceiptTemplate{
		Content: `<script>alert(1)</script><p>{{store.name}}</p>`,
	}, nil, p)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "Shop</p>")
}

func TestLogiclessRenderer_KeepsTemplateStyling(t *testing.T) {
	out := renderLogicless(t, entity.ReceiptTemplate{
		Content: `<style>.t{font-weight:bold}</style>` +
			`<div class="t total" style="text-align:right;position:fixed">{{meta.order_number}}</div>` +
			`<script>alert(1)</script>`,
	})

	assert.Contains(t, out, `class="t total"`)
	assert.Contains(t, out, `text-align: right`)
	assert.Contains(t, out, ">1042</div>")
	assert.NotContains(t, out, "position")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<style")
}

func TestLogiclessRenderer_FilePathTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>file {{meta.order_number}}</p>"), 0o600))

	out := renderLogicless(t, entity.ReceiptTemplate{Content: "content", FilePath: path})
	assert.Equal(t, "<p>file 1042</p>", out)
}
