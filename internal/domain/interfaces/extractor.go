package interfaces

import (
	"context"
	"image"

	domaintypes "anarchyauth/internal/domain/types"
)

// TemplateExtractor turns a grayscale eye image into an iris template.
// Implementations own any eye-side retry policy.
type TemplateExtractor interface {
	ExtractTemplate(ctx context.Context, img *image.Gray) (domaintypes.Template, error)
}
