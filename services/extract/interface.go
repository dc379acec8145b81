package extract

import (
	"context"

	"go.uber.org/zap"

	"panditseva/models"
	"panditseva/utils"
)

// Extractor turns raw request text into a structured PujaRequest plus a
// per-field confidence map.
type Extractor interface {
	Extract(ctx context.Context, text string) (models.PujaRequest, models.Confidence, error)
}

// FallbackExtractor tries Primary and, on any error, transparently returns
// the Fallback result. Callers never observe which path produced the output.
type FallbackExtractor struct {
	Primary  Extractor
	Fallback Extractor
}

func (f *FallbackExtractor) Extract(ctx context.Context, text string) (models.PujaRequest, models.Confidence, error) {
	req, conf, err := f.Primary.Extract(ctx, text)
	if err == nil {
		return req, conf, nil
	}
	utils.GetLogger().Warn("primary extractor failed, using fallback", zap.Error(err))
	return f.Fallback.Extract(ctx, text)
}
