package artwork

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver(t *testing.T) {
	assert.Equal(t, DefaultBaseURL+"/007.png", ImageURL(7))
	assert.Equal(t, DefaultBaseURL+"/151.png", ImageURL(151))

	r := NewResolver("http://images.local/art/")
	assert.Equal(t, "http://images.local/art/025.png", r.URL(25))

	assert.Equal(t, DefaultBaseURL+"/001.png", Resolver{}.URL(1))
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder()
	assert.True(t, p.IsPlaceholder())
	assert.Equal(t, PlaceholderSource, p.Source)
	assert.Contains(t, p.Art, "O")
	assert.False(t, strings.HasSuffix(p.Art, "\n"))
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.NRGBA{R: 0xff, A: 0xff})
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newMockedLoader(width int) (*Loader, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	return NewLoader(&http.Client{Transport: transport}, width), transport
}

func TestLoader_Load(t *testing.T) {
	const src = "http://images.local/001.png"

	t.Run("renders image", func(t *testing.T) {
		loader, transport := newMockedLoader(8)
		transport.RegisterResponder(http.MethodGet, src, httpmock.NewBytesResponder(http.StatusOK, testPNG(t, 16, 16)))

		pic, err := loader.Load(context.Background(), src)
		require.NoError(t, err)
		assert.Equal(t, src, pic.Source)
		assert.False(t, pic.IsPlaceholder())
		assert.Len(t, strings.Split(pic.Art, "\n"), 4)
		assert.Equal(t, 1, transport.GetTotalCallCount())
	})

	t.Run("not found", func(t *testing.T) {
		loader, transport := newMockedLoader(8)
		transport.RegisterResponder(http.MethodGet, src, httpmock.NewStringResponder(http.StatusNotFound, "missing"))

		_, err := loader.Load(context.Background(), src)
		require.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("network error", func(t *testing.T) {
		loader, transport := newMockedLoader(8)
		transport.RegisterResponder(http.MethodGet, src, httpmock.NewErrorResponder(errors.New("connection refused")))

		_, err := loader.Load(context.Background(), src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("not an image", func(t *testing.T) {
		loader, transport := newMockedLoader(8)
		transport.RegisterResponder(http.MethodGet, src, httpmock.NewStringResponder(http.StatusOK, "<html></html>"))

		_, err := loader.Load(context.Background(), src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding image")
	})
}

func TestRender(t *testing.T) {
	t.Run("half blocks per two pixel rows", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.Set(x, y, color.NRGBA{B: 0xff, A: 0xff})
			}
		}
		lines := strings.Split(Render(img, 4), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Equal(t, 4, strings.Count(line, upperHalf))
		}
	})

	t.Run("transparent pixels are blank", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		assert.Equal(t, "  ", Render(img, 2))
	})

	t.Run("empty image", func(t *testing.T) {
		assert.Empty(t, Render(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 10))
	})

	t.Run("width clamps to image width", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
		assert.Equal(t, "   ", Render(img, 50))
	})
}
