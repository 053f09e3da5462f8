package instagram

// ReelsResponse is the profile reel listing payload. The items field is
// the trust boundary: absence of data or items is a validation error,
// not a crash.
type ReelsResponse struct {
	Data *ReelsData `json:"data"`
}

type ReelsData struct {
	Items []ReelItem `json:"items"`
}

type ReelItem struct {
	Media *Media `json:"media"`
}

type Media struct {
	MediaType int      `json:"media_type"`
	Code      string   `json:"code"`
	Caption   *Caption `json:"caption"`
}

type Caption struct {
	Text string `json:"text"`
}

// MediaResponse is the per-post media download payload.
type MediaResponse struct {
	Data *MediaData `json:"data"`
}

type MediaData struct {
	MainMediaHD string `json:"main_media_hd"`
}

// UserResponse is the username-to-id lookup payload, proxied through to
// the admin UI when a location is being created.
type UserResponse struct {
	Data *UserData `json:"data"`
}

type UserData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Bio      string `json:"biography"`
}
