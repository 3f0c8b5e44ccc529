package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

func TestStarPRNTAdapter(t *testing.T) {
	out := NewStarPRNT(money.Default()).Transform(samplePayload(), DeviceContext{})

	assert.True(t, strings.HasPrefix(out, "\x1b@"))
	assert.True(t, strings.HasSuffix(out, "\x1bd\x02"))
	assert.Contains(t, out, "Order #1042\n")
	assert.Contains(t, out, "Widget x2.00 19.99\n")
	assert.Contains(t, out, "Total 19.99")
}
