package iris

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"anarchyauth/internal/domain"
)

const (
	EyeRight = "right"
	EyeLeft  = "left"
)

// eyeSides is the order extraction is attempted in.
var eyeSides = []string{EyeRight, EyeLeft}

type extractRequest struct {
	Image   string `json:"image"`
	EyeSide string `json:"eye_side"`
}

type extractResponse struct {
	Error     *string  `json:"error"`
	IrisCodes []string `json:"iris_codes"`
}

// Client is a TemplateExtractor backed by a remote pipeline.
type Client struct {
	Base string
	HTTP *http.Client
	Log  *slog.Logger
}

// NewClient returns a Client for base with the given request timeout.
func NewClient(base string, timeout time.Duration, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
		Log:  log,
	}
}

// ExtractTemplate tries each eye side in turn and returns the first
// successful template. When every side fails the last error is wrapped in
// domain.ErrTemplateExtractionFailed.
func (c *Client) ExtractTemplate(ctx context.Context, img *image.Gray) (domain.Template, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return domain.Template{}, fmt.Errorf("encode image: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	var lastErr error
	for _, side := range eyeSides {
		codes, err := c.extract(ctx, encoded, side)
		if err == nil {
			return domain.Template{Codes: codes, EyeSide: side}, nil
		}
		if ctx.Err() != nil {
			return domain.Template{}, fmt.Errorf("%w: %v", domain.ErrTemplateExtractionFailed, ctx.Err())
		}
		c.Log.Warn("iris extraction failed", "eye_side", side, "err", err)
		lastErr = err
	}
	return domain.Template{}, fmt.Errorf("%w: %v", domain.ErrTemplateExtractionFailed, lastErr)
}

// Healthy reports whether the pipeline answers its health probe.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode/100 == 2
}

func (c *Client) extract(ctx context.Context, encoded, side string) ([][]byte, error) {
	var out extractResponse
	if err := c.post(ctx, "/extract", extractRequest{Image: encoded, EyeSide: side}, &out); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, errors.New(*out.Error)
	}
	codes := make([][]byte, 0, len(out.IrisCodes))
	for i, s := range out.IrisCodes {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("iris code %d: %w", i, err)
		}
		codes = append(codes, b)
	}
	return codes, nil
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("iris post %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.TemplateExtractor = (*Client)(nil)
