package models

// FeaturedWriter is a read model for the home page: writers ranked by the
// summed view counts of their articles.
type FeaturedWriter struct {
	ID             uint   `json:"id" example:"1"`
	Username       string `json:"username" example:"janedoe"`
	ProfilePicture string `json:"profile_picture"`
	TotalViews     int64  `json:"total_views" example:"1024"`
}
