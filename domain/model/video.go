package model

import "time"

// Video processing lifecycle states. A video starts in preparing when the
// upload session is created and only the ingestion layer moves it forward.
const (
	VideoStatusPreparing  = "preparing"
	VideoStatusProcessing = "processing"
	VideoStatusReady      = "ready"
)

// Video is the authoritative record of a video's identity, ownership and
// processing status. PlaybackID is set exactly when Status is ready;
// AssetID, once set, is never cleared.
type Video struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId" bson:"userId"`
	UploadID    string    `json:"upload_id" bson:"upload_id"`
	AssetID     string    `json:"asset_id,omitempty" bson:"asset_id,omitempty"`
	PlaybackID  string    `json:"playback_id,omitempty" bson:"playback_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Status      string    `json:"status" bson:"status"`
	Likes       uint64    `json:"likes" bson:"likes"`
	Dislikes    uint64    `json:"dislikes" bson:"dislikes"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UploadSession is a direct upload slot created at the streaming provider.
type UploadSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
