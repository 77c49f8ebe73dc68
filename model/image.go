package model

type Image struct {
	ID       int64  `db:"id" json:"id"`
	ImageURL string `db:"image_url" json:"url"`
}
