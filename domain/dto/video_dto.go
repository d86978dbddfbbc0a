package dto

import "clipstream/domain/model"

// CreateVideoRequest registers an upload session as a video record.
type CreateVideoRequest struct {
	UploadID    string `json:"upload_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VideoResponse is a video annotated for feed rendering.
type VideoResponse struct {
	model.Video
	Username string `json:"username,omitempty"`
	Views    int64  `json:"views"`
}
