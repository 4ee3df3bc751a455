package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type PhotoGormRepository struct {
	db *gorm.DB
}

func NewPhotoGormRepository(db *gorm.DB) *PhotoGormRepository {
	return &PhotoGormRepository{db: db}
}

// UpsertPhoto replaces the stored photo reference of a barber.
func (r *PhotoGormRepository) UpsertPhoto(ctx context.Context, p *models.BarberPhoto) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(p).Error; err != nil {
		return errors.Wrap(err, "upsert barber photo")
	}
	return nil
}

func (r *PhotoGormRepository) ListPhotos(ctx context.Context) (map[string]models.BarberPhoto, error) {
	var photos []models.BarberPhoto
	if err := r.db.WithContext(ctx).Find(&photos).Error; err != nil {
		return nil, errors.Wrap(err, "list barber photos")
	}

	out := make(map[string]models.BarberPhoto, len(photos))
	for _, p := range photos {
		out[p.BarberID] = p
	}
	return out, nil
}
