package twitter

// User represents the author of a status message.
// With trim_user set only ID and IDStr are populated.
type User struct {
	ID                   int64   `json:"id"`
	IDStr                string  `json:"id_str"`
	Name                 string  `json:"name"`
	ScreenName           string  `json:"screen_name"`
	Location             string  `json:"location"`
	Description          string  `json:"description"`
	URL                  *string `json:"url"`
	Protected            bool    `json:"protected"`
	Verified             bool    `json:"verified"`
	FollowersCount       int     `json:"followers_count"`
	FriendsCount         int     `json:"friends_count"`
	ListedCount          int     `json:"listed_count"`
	FavouritesCount      int     `json:"favourites_count"`
	StatusesCount        int     `json:"statuses_count"`
	CreatedAt            Time    `json:"created_at"`
	ProfileImageURLHTTPS string  `json:"profile_image_url_https"`
	ProfileBannerURL     string  `json:"profile_banner_url,omitempty"`
	DefaultProfile       bool    `json:"default_profile"`
	DefaultProfileImage  bool    `json:"default_profile_image"`
	Lang                 *string `json:"lang"`
}

// ProfileURL returns the public profile link of the user
func (u *User) ProfileURL() string {
	if u.ScreenName == "" {
		return ""
	}
	return "https://twitter.com/" + u.ScreenName
}
