package dto

import "clipstream/domain/model"

// ToggleLikeResult reports the state of the like edge after a toggle and
// the video's like counter as written.
type ToggleLikeResult struct {
	Liked bool   `json:"liked"`
	Likes uint64 `json:"likes"`
}

type ToggleDislikeResult struct {
	Disliked bool   `json:"disliked"`
	Dislikes uint64 `json:"dislikes"`
}

type ToggleFollowResult struct {
	Following bool `json:"following"`
}

// Relationship describes both directions of the follow edge between the
// caller and another user.
type Relationship struct {
	IFollow   bool `json:"i_follow"`
	FollowsMe bool `json:"follows_me"`
}

// ProfileWithFollowState is a profile annotated with whether the viewer
// follows it.
type ProfileWithFollowState struct {
	model.Profile
	IsFollowing bool `json:"isFollowing"`
}
