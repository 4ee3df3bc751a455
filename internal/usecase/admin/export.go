package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	CodeInvalidRange    = "invalid_range"
	CodeStorageDisabled = "storage_disabled"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultExportDays = 7
	maxExportDays     = 366
)

const sheetName = "Bookings"

var exportHeaders = []string{
	"Date", "Time", "Barber", "Customer", "Phone", "Email",
	"Service", "Price", "Status", "Payment", "Booking ID",
}

type Export struct {
	Filename string
	From     string
	To       string
	Rows     int
	Data     []byte
}

type Exporter struct {
	repo   domain.Repository
	engine *domain.Engine
	store  storage.ObjectStore
	now    timezone.Clock
}

// NewExporter wires the XLSX export. store may be nil, which disables Archive.
func NewExporter(
	repo domain.Repository,
	engine *domain.Engine,
	store storage.ObjectStore,
	now timezone.Clock,
) *Exporter {
	return &Exporter{repo: repo, engine: engine, store: store, now: now}
}

// resolveRange defaults to a week starting today and caps the span at a year.
func (e *Exporter) resolveRange(from, to string) (string, string, error) {
	var (
		start, end time.Time
		err        error
	)

	if from == "" {
		start = timezone.DayOf(e.now().In(e.engine.Location()))
	} else if start, err = e.engine.ParseDate(from); err != nil {
		return "", "", err
	}

	if to == "" {
		end = start.AddDate(0, 0, defaultExportDays-1)
	} else if end, err = e.engine.ParseDate(to); err != nil {
		return "", "", err
	}

	if end.Before(start) || end.Sub(start) > maxExportDays*24*time.Hour {
		return "", "", httperr.ErrBusiness(CodeInvalidRange)
	}

	return start.Format(timezone.DateLayout), end.Format(timezone.DateLayout), nil
}

// Build renders every booking in [from, to], cancelled ones included.
func (e *Exporter) Build(ctx context.Context, from, to string) (*Export, error) {
	from, to, err := e.resolveRange(from, to)
	if err != nil {
		return nil, err
	}

	bookings, err := e.repo.ListBookings(ctx, domain.ListFilter{
		DateFrom:         from,
		DateTo:           to,
		IncludeCancelled: true,
	})
	if err != nil {
		return nil, err
	}

	data, err := e.render(from, to, bookings)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename: fmt.Sprintf("bookings_%s_to_%s.xlsx", from, to),
		From:     from,
		To:       to,
		Rows:     len(bookings),
		Data:     data,
	}, nil
}

func (e *Exporter) render(from, to string, bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings %s - %s", from, to))
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	names := e.engine.Schedule()
	for r, b := range bookings {
		row := []any{
			b.Date,
			b.TimeSlot,
			names.NameOf(b.BarberID),
			b.CustomerName,
			b.Phone,
			b.Email,
			b.ServiceName,
			b.ServicePrice,
			b.Status,
			b.PaymentStatus,
			b.ID,
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+3)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "write row %d", r+3)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "B", 12)
	_ = f.SetColWidth(sheetName, "C", "G", 20)
	_ = f.SetColWidth(sheetName, "K", "K", 38)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write xlsx")
	}
	return buf.Bytes(), nil
}

type ArchiveResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	From string `json:"from"`
	To   string `json:"to"`
	Rows int    `json:"rows"`
}

// Archive builds the export and stores it under exports/.
func (e *Exporter) Archive(ctx context.Context, from, to string) (*ArchiveResult, error) {
	if e.store == nil {
		return nil, httperr.ErrBusiness(CodeStorageDisabled)
	}

	exp, err := e.Build(ctx, from, to)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s", e.now().UTC().Format("20060102T150405Z"), exp.Filename)
	if err := e.store.Put(ctx, key, XLSXContentType, exp.Data); err != nil {
		return nil, err
	}

	return &ArchiveResult{
		Key:  key,
		URL:  e.store.URL(key),
		From: exp.From,
		To:   exp.To,
		Rows: exp.Rows,
	}, nil
}
