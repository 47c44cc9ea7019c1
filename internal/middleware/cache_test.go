package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/config"
)

func catalogContext(target, route string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return c
}

func TestCacheKeyFrom(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	page1 := catalogContext("/v1/rooms?page=1", "/v1/rooms")
	page2 := catalogContext("/v1/rooms?page=2", "/v1/rooms")

	k1 := cacheKeyFrom(cfg, page1)
	assert.Equal(t, k1, cacheKeyFrom(cfg, catalogContext("/v1/rooms?page=1", "/v1/rooms")),
		"identical requests share a key")
	assert.NotEqual(t, k1, cacheKeyFrom(cfg, page2),
		"different pages must not share a cached body")

	routeOnly := cfg
	routeOnly.KeyStrategy = "route"
	assert.Equal(t, cacheKeyFrom(routeOnly, page1), cacheKeyFrom(routeOnly, page2),
		"route strategy ignores the query string")

	// Every key lives under the prefix so the tracking set can cover
	// them all.
	assert.Contains(t, k1, "cache:")
}

func TestEncodeDecodePayloadKeepsHeaders(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, "X-Cache": {"MISS"}}
	body := []byte(`{"rooms":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsTruncatedEntries(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0})
	assert.False(t, ok)

	// A header length pointing past the payload is corrupt, not a
	// short body.
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 99})
	assert.False(t, ok)
}

func TestNewInvalidatorDisabled(t *testing.T) {
	assert.Nil(t, NewInvalidator(config.CacheConfig{Enabled: false}, nil))
	assert.Nil(t, NewInvalidator(config.CacheConfig{Enabled: true}, nil))
}

func TestInvalidatorNilFlushIsNoop(t *testing.T) {
	var inv *Invalidator
	// Admin handlers call Flush unconditionally; without Redis it must
	// simply return.
	inv.Flush(context.Background())
}
