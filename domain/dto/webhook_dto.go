package dto

// MuxWebhookEvent is the inbound webhook shape posted by the streaming
// provider. Only upload.asset_created and asset.ready are acted on; every
// other type is acknowledged and ignored.
type MuxWebhookEvent struct {
	Type string         `json:"type"`
	Data MuxWebhookData `json:"data"`
}

type MuxWebhookData struct {
	ID          string          `json:"id"`
	UploadID    string          `json:"upload_id,omitempty"`
	PlaybackIDs []MuxPlaybackID `json:"playback_ids,omitempty"`
}

type MuxPlaybackID struct {
	ID string `json:"id"`
}

// FirstPlaybackID returns the first playback id of the event, or "".
func (d MuxWebhookData) FirstPlaybackID() string {
	if len(d.PlaybackIDs) == 0 {
		return ""
	}
	return d.PlaybackIDs[0].ID
}
