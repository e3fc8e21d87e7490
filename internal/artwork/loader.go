package artwork

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultWidth is the rendered art width in terminal cells.
	DefaultWidth = 32

	// maxImageBytes bounds a single artwork download.
	maxImageBytes = 8 << 20

	alphaThreshold = 0x8000
	upperHalf      = "▀"
	lowerHalf      = "▄"
)

// ErrUnexpectedStatus is returned for non-2xx image responses.
var ErrUnexpectedStatus = errors.New("unexpected image response status")

// Loader downloads images and renders them as half-block art.
type Loader struct {
	client *http.Client
	width  int
}

// NewLoader returns a Loader using client (http.DefaultClient when nil).
func NewLoader(client *http.Client, width int) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if width < 1 {
		width = DefaultWidth
	}
	return &Loader{client: client, width: width}
}

// Load downloads src and renders it. Any failure returns an error; callers
// substitute Placeholder().
func (l *Loader) Load(ctx context.Context, src string) (Picture, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return Picture{}, fmt.Errorf("creating image request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Picture{}, fmt.Errorf("fetching image %s: %w", src, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Picture{}, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, src, resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return Picture{}, fmt.Errorf("decoding image %s: %w", src, err)
	}

	return Picture{Source: src, Art: Render(img, l.width)}, nil
}

// Render draws img width cells wide. Each cell covers two vertically
// stacked pixels using the upper half block with foreground and background
// colours; transparent pixels are left blank.
func Render(img image.Image, width int) string {
	b := img.Bounds()
	if b.Empty() || width < 1 {
		return ""
	}
	if width > b.Dx() {
		width = b.Dx()
	}

	scale := float64(b.Dx()) / float64(width)
	pixelRows := int(float64(b.Dy()) / scale)
	if pixelRows < 1 {
		pixelRows = 1
	}

	sample := func(x, y int) (color.Color, bool) {
		if y >= pixelRows {
			return nil, false
		}
		px := b.Min.X + int(float64(x)*scale)
		py := b.Min.Y + int(float64(y)*scale)
		c := img.At(px, py)
		_, _, _, a := c.RGBA()
		return c, a >= alphaThreshold
	}

	var sb strings.Builder
	for y := 0; y < pixelRows; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top, topOK := sample(x, y)
			bottom, bottomOK := sample(x, y+1)
			switch {
			case topOK && bottomOK:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(hex(top)).
					Background(hex(bottom)).
					Render(upperHalf))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(hex(top)).Render(upperHalf))
			case bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(hex(bottom)).Render(lowerHalf))
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
