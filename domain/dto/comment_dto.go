package dto

import "clipstream/domain/model"

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse is a comment annotated with its author's public identity.
type CommentResponse struct {
	model.Comment
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
