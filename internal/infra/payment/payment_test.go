package payment

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *Session {
	return &Session{
		OrderID:     "order-1",
		BookingID:   "booking-1",
		Provider:    ProviderVipps,
		Amount:      450,
		Currency:    "NOK",
		Status:      SessionPending,
		RedirectURL: "http://localhost:3000/payment?order_id=order-1",
	}
}

func TestRedisSessionStore(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	store := NewRedisSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession(), 30*time.Minute))

	got, err := store.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", got.BookingID)
	assert.Equal(t, SessionPending, got.Status)
	assert.Equal(t, 30*time.Minute, s.TTL(sessionKey("order-1")))

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s.FastForward(31 * time.Minute)
	_, err = store.Get(ctx, "order-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNewRedisClientAcceptsURLAndAddr(t *testing.T) {
	c := NewRedisClient("redis://:secret@cache:6380/2")
	assert.Equal(t, "cache:6380", c.Options().Addr)
	assert.Equal(t, 2, c.Options().DB)

	c = NewRedisClient("localhost:6379")
	assert.Equal(t, "localhost:6379", c.Options().Addr)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2030, 1, 7, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession(), time.Minute))

	got, err := store.Get(ctx, "order-1")
	require.NoError(t, err)
	got.Status = SessionPaid

	again, err := store.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, SessionPending, again.Status, "stored copy must not alias callers")

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "order-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestVippsPlaceholder(t *testing.T) {
	_, err := NewVippsPlaceholder("not a url")
	require.Error(t, err)

	g, err := NewVippsPlaceholder("https://westcutz.no/payment?lang=nb")
	require.NoError(t, err)
	assert.Equal(t, ProviderVipps, g.Name())

	co, err := g.CreateCheckout(context.Background(), Order{OrderID: "o 1", BookingID: "b1"})
	require.NoError(t, err)

	u, err := url.Parse(co.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "westcutz.no", u.Host)
	assert.Equal(t, "o 1", u.Query().Get("order_id"))
	assert.Equal(t, "b1", u.Query().Get("booking_id"))
	assert.Equal(t, "nb", u.Query().Get("lang"))
}

type fakePreferences struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestMercadoPagoCheckout(t *testing.T) {
	_, err := NewMercadoPago("", "", "")
	require.Error(t, err)

	fake := &fakePreferences{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp.example/checkout/pref-1"}}
	g := &MercadoPago{client: fake, returnURL: "https://westcutz.no/payment"}

	co, err := g.CreateCheckout(context.Background(), Order{
		OrderID:     "order-1",
		BookingID:   "booking-1",
		Amount:      450,
		Currency:    "NOK",
		Description: "Classic cut",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mp.example/checkout/pref-1", co.RedirectURL)
	assert.Equal(t, "pref-1", co.ProviderRef)
	assert.Equal(t, "order-1", fake.got.ExternalReference)
	require.Len(t, fake.got.Items, 1)
	assert.Equal(t, 450.0, fake.got.Items[0].UnitPrice)

	fake.err = errors.New("unauthorized")
	_, err = g.CreateCheckout(context.Background(), Order{OrderID: "order-2"})
	assert.Error(t, err)
}
