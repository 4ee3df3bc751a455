package admin

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/cockroachdb/errors"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	CodeBarberNotFound = "barber_not_found"
	CodeInvalidImage   = "invalid_image"

	MaxPhotoSide   = 512
	MaxUploadBytes = 8 << 20
	photoQuality   = 80
)

type PhotoRepository interface {
	UpsertPhoto(ctx context.Context, p *models.BarberPhoto) error
	ListPhotos(ctx context.Context) (map[string]models.BarberPhoto, error)
}

type Photos struct {
	schedule *schedule.Schedule
	repo     PhotoRepository
	store    storage.ObjectStore
	now      timezone.Clock
}

// NewPhotos wires barber photos. store may be nil, which disables uploads.
func NewPhotos(
	s *schedule.Schedule,
	repo PhotoRepository,
	store storage.ObjectStore,
	now timezone.Clock,
) *Photos {
	return &Photos{schedule: s, repo: repo, store: store, now: now}
}

type PhotoResult struct {
	BarberID string `json:"barber_id"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Upload transcodes a JPEG, PNG or WebP image to WebP no larger than
// MaxPhotoSide on either side and stores it for barberID.
func (p *Photos) Upload(ctx context.Context, barberID string, data []byte) (*PhotoResult, error) {
	if !p.schedule.Known(barberID) {
		return nil, httperr.ErrBusiness(CodeBarberNotFound)
	}
	if p.store == nil {
		return nil, httperr.ErrBusiness(CodeStorageDisabled)
	}
	if len(data) == 0 || len(data) > MaxUploadBytes {
		return nil, httperr.ErrBusiness(CodeInvalidImage)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidImage)
	}

	img := fit(src, MaxPhotoSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: photoQuality}); err != nil {
		return nil, errors.Wrap(err, "encode webp")
	}

	id := p.schedule.Canonical(barberID)
	key := fmt.Sprintf("barbers/%s/%d.webp", id, p.now().Unix())
	if err := p.store.Put(ctx, key, "image/webp", buf.Bytes()); err != nil {
		return nil, err
	}

	b := img.Bounds()
	photo := &models.BarberPhoto{
		BarberID:  id,
		ObjectKey: key,
		Width:     b.Dx(),
		Height:    b.Dy(),
	}
	if err := p.repo.UpsertPhoto(ctx, photo); err != nil {
		return nil, err
	}

	return &PhotoResult{
		BarberID: id,
		URL:      p.store.URL(key),
		Width:    photo.Width,
		Height:   photo.Height,
	}, nil
}

// fit scales src down so its longer side is at most side.
func fit(src image.Image, side int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return src
	}

	if w >= h {
		h = h * side / w
		w = side
	} else {
		w = w * side / h
		h = side
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Roster lists the barbers with their weekly hours and photo, if any.
func (p *Photos) Roster(ctx context.Context) ([]dto.BarberDTO, error) {
	photos, err := p.repo.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}

	barbers := p.schedule.Barbers()
	out := make([]dto.BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		item := dto.BarberDTO{ID: b.ID, Name: b.Name, Hours: b.Hours}
		if ph, ok := photos[b.ID]; ok && p.store != nil {
			item.PhotoURL = p.store.URL(ph.ObjectKey)
		}
		out = append(out, item)
	}
	return out, nil
}
