package model

// Profile carries the public identity of a user plus denormalized follower
// counters. The counters are maintained incrementally by the engagement
// usecase and are never recomputed from the follow edges.
type Profile struct {
	ID        string   `json:"id" bson:"id"`
	Username  string   `json:"username" bson:"username"`
	Name      string   `json:"name,omitempty" bson:"name,omitempty"`
	Bio       string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Avatar    string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Interests []string `json:"interests,omitempty" bson:"interests,omitempty"`
	Followers uint64   `json:"followers" bson:"followers"`
	Following uint64   `json:"following" bson:"following"`
}
