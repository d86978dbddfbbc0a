package mux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

// Client talks to the Mux Video and Mux Data APIs with Basic auth. Every
// request is bounded by the configured timeout so a slow provider call
// surfaces as a transient failure instead of a hang.
type Client struct {
	baseURL     string
	tokenID     string
	tokenSecret string
	httpClient  *http.Client
}

// Config represents Mux API configuration.
type Config struct {
	TokenID     string
	TokenSecret string
	BaseURL     string
	Timeout     time.Duration
}

func NewMuxClient(config *Config) repository.IStreamingProvider {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.mux.com"
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     baseURL,
		tokenID:     config.TokenID,
		tokenSecret: config.TokenSecret,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type uploadData struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
}

type assetData struct {
	ID          string `json:"id"`
	PlaybackIDs []struct {
		ID string `json:"id"`
	} `json:"playback_ids"`
}

type uploadEnvelope struct {
	Data uploadData `json:"data"`
}

type assetEnvelope struct {
	Data assetData `json:"data"`
}

func (c *Client) CreateDirectUpload(ctx context.Context) (*model.UploadSession, error) {
	body := map[string]interface{}{
		"cors_origin": "*",
		"new_asset_settings": map[string]interface{}{
			"playback_policy": []string{"public"},
			"video_quality":   "basic",
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var envelope uploadEnvelope
	if err := c.do(ctx, http.MethodPost, "/video/v1/uploads", payload, &envelope); err != nil {
		return nil, err
	}
	return &model.UploadSession{ID: envelope.Data.ID, URL: envelope.Data.URL}, nil
}

func (c *Client) GetUploadAssetID(ctx context.Context, uploadID string) (string, error) {
	var envelope uploadEnvelope
	if err := c.do(ctx, http.MethodGet, "/video/v1/uploads/"+uploadID, nil, &envelope); err != nil {
		return "", err
	}
	return envelope.Data.AssetID, nil
}

func (c *Client) GetAssetPlaybackID(ctx context.Context, assetID string) (string, error) {
	var envelope assetEnvelope
	if err := c.do(ctx, http.MethodGet, "/video/v1/assets/"+assetID, nil, &envelope); err != nil {
		return "", err
	}
	if len(envelope.Data.PlaybackIDs) == 0 {
		return "", nil
	}
	return envelope.Data.PlaybackIDs[0].ID, nil
}

func (c *Client) DeleteAsset(ctx context.Context, assetID string) error {
	return c.do(ctx, http.MethodDelete, "/video/v1/assets/"+assetID, nil, nil)
}

func (c *Client) DeleteUpload(ctx context.Context, uploadID string) error {
	return c.do(ctx, http.MethodDelete, "/video/v1/uploads/"+uploadID, nil, nil)
}

// viewsQuery encodes the Mux Data filter parameters.
type viewsQuery struct {
	Filters   []string `url:"filters[]"`
	Timeframe []string `url:"timeframe[]"`
	Limit     int      `url:"limit,omitempty"`
}

type videoViewsResponse struct {
	TotalRowCount int64 `json:"total_row_count"`
}

type metricsViewsResponse struct {
	Data []struct {
		Name      string `json:"name"`
		ViewCount int64  `json:"view_count"`
	} `json:"data"`
}

// GetVideoViews returns the 7-day view count for the given asset, falling
// back to the playback id dimension when no asset id is known yet, and to
// the metrics endpoint when the video-views listing reports nothing.
func (c *Client) GetVideoViews(ctx context.Context, assetID, playbackID string) (int64, error) {
	var dimension string
	switch {
	case assetID != "":
		dimension = "asset_id:" + assetID
	case playbackID != "":
		dimension = "playback_id:" + playbackID
	default:
		return 0, nil
	}

	params, err := query.Values(viewsQuery{
		Filters:   []string{dimension},
		Timeframe: []string{"7:days"},
		Limit:     1,
	})
	if err != nil {
		return 0, err
	}

	var views videoViewsResponse
	if err := c.do(ctx, http.MethodGet, "/data/v1/video-views?"+params.Encode(), nil, &views); err != nil {
		return 0, err
	}
	if views.TotalRowCount > 0 {
		return views.TotalRowCount, nil
	}

	params, err = query.Values(viewsQuery{
		Filters:   []string{dimension},
		Timeframe: []string{"7:days"},
	})
	if err != nil {
		return 0, err
	}
	var metrics metricsViewsResponse
	if err := c.do(ctx, http.MethodGet, "/data/v1/metrics/views?"+params.Encode(), nil, &metrics); err != nil {
		return 0, err
	}
	for _, row := range metrics.Data {
		if row.Name == "totals" {
			return row.ViewCount, nil
		}
	}
	return 0, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.tokenID, c.tokenSecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mux: %s %s returned status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
