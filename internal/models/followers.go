package models

import "time"

type GetChannelFollowersResponse struct {
	Total      uint64            `json:"total"`
	Followers  []ChannelFollower `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type ChannelFollower struct {
	UserID     string    `json:"user_id"`
	UserLogin  string    `json:"user_login"`
	UserName   string    `json:"user_name"`
	FollowedAt time.Time `json:"followed_at"`
}
