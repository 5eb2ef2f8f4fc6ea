package models

// Image references one asset in the media store. URL is what pages render,
// PublicID is the handle used to destroy the asset.
type Image struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}
