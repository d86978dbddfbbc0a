package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/cache"
	"clipstream/infrastructure/logger"
)

// viewsEnricher annotates videos with their 7-day provider view count.
// Lookups go through the cache first; a provider failure is worth a warning
// and a zero, never a failed request.
type viewsEnricher struct {
	provider repository.IStreamingProvider
	cache    cache.IViewsCache // optional
}

func (e *viewsEnricher) viewsFor(ctx context.Context, video model.Video) int64 {
	if e == nil || e.provider == nil {
		return 0
	}
	if e.cache != nil {
		if views, ok := e.cache.GetViews(ctx, video.ID); ok {
			return views
		}
	}
	views, err := e.provider.GetVideoViews(ctx, video.AssetID, video.PlaybackID)
	if err != nil {
		logger.GetLogger().WithField("videoId", video.ID).WithField("error", err).Warn("View count fetch failed")
		return 0
	}
	if e.cache != nil {
		e.cache.SetViews(ctx, video.ID, views)
	}
	return views
}

// enrich fetches view counts concurrently, one goroutine per video with a
// small cap so a long list cannot fan out unbounded.
func (e *viewsEnricher) enrich(ctx context.Context, videos []model.Video) []dto.VideoResponse {
	out := make([]dto.VideoResponse, len(videos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range videos {
		out[i] = dto.VideoResponse{Video: videos[i]}
		i := i
		g.Go(func() error {
			out[i].Views = e.viewsFor(gctx, out[i].Video)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
