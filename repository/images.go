package repository

import (
	"context"

	"quicknotes/model"
	"quicknotes/utils"

	"github.com/jmoiron/sqlx"
)

type ImagesRepo struct {
	DB *sqlx.DB
}

func GetImagesRepo(db *sqlx.DB) *ImagesRepo {
	return &ImagesRepo{DB: db}
}

// CreateImage records an uploaded file's URL. Returns ErrDuplicate when the
// URL is already registered.
func (r *ImagesRepo) CreateImage(ctx context.Context, image *model.Image) error {
	timer := utils.TrackDBOperation("insert", "images")
	defer timer.ObserveDuration()

	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO images (image_url) VALUES (?)`, image.ImageURL)
	if err != nil {
		return translate(err)
	}
	image.ID, err = result.LastInsertId()
	return err
}
