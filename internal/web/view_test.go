package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		12000:    "12,000",
		129000:   "129,000",
		1234567:  "1,234,567",
		12345678: "12,345,678",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatPrice(in), "formatPrice(%d)", in)
	}
}

func TestNewViewParsesAllPages(t *testing.T) {
	v, err := NewView(zap.NewNop())
	require.NoError(t, err)

	for _, name := range pageFiles {
		assert.Contains(t, v.pages, name)
	}
}
