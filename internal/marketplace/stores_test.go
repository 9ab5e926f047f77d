package marketplace

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/01moynul/locify-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStoreCreatesAndUpdates(t *testing.T) {
	m := &memStore{}
	svc := newTestService(m)

	store, err := svc.SaveStore(context.Background(), "vendor-abc123", &StoreForm{StoreName: " Green Farm ", Address: "1 Market St"})
	require.NoError(t, err)
	assert.Equal(t, "Green Farm", store.StoreName)
	assert.Equal(t, "green-farm--vendor-abc123", store.Slug)
	assert.Equal(t, fixedNow, store.CreatedAt)

	later := fixedNow.Add(24 * time.Hour)
	svc = newTestService(m, WithClock(func() time.Time { return later }))
	store, err = svc.SaveStore(context.Background(), "vendor-abc123", &StoreForm{StoreName: "Green Farm & Co", Address: "2 Market St"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, store.CreatedAt, "created_at is kept")
	assert.Equal(t, later, store.UpdatedAt)
	assert.Equal(t, "green-farm-and-co--vendor-abc123", store.Slug)

	require.Len(t, m.stores, 1)
	assert.Equal(t, "2 Market St", m.stores[0].Address)
}

func TestSaveStoreSlugsStayDistinctAcrossVendors(t *testing.T) {
	m := &memStore{}
	svc := newTestService(m)

	first, err := svc.SaveStore(context.Background(), "ab", &StoreForm{StoreName: "x y", Address: "North"})
	require.NoError(t, err)
	second, err := svc.SaveStore(context.Background(), "y-ab", &StoreForm{StoreName: "x", Address: "South"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	require.Len(t, m.stores, 2)
	assert.Equal(t, "North", m.stores[0].Address)
	assert.Equal(t, "South", m.stores[1].Address)
}

func TestStoreSlug(t *testing.T) {
	tests := []struct {
		name     string
		store    string
		vendorID string
		want     string
	}{
		{"plain", "Bee Happy", "vendor-777777", "bee-happy--vendor-777777"},
		{"case folded", "Shop", "AbC", "shop--abc"},
		{"nothing sluggable", "!!!", "v1", "store--v1"},
		{"unsafe vendor id", "Shop", "a/b c", "shop--a%2Fb%20c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storeSlug(tt.store, tt.vendorID))
		})
	}

	assert.NotEqual(t, storeSlug("x y", "ab"), storeSlug("x", "y-ab"))
}

func TestStoreSlugFitsColumn(t *testing.T) {
	longName := strings.Repeat("中", 255)
	vendorID := strings.Repeat("v", 64)

	got := storeSlug(longName, vendorID)
	assert.LessOrEqual(t, len(got), maxSlugLen)
	assert.True(t, strings.HasSuffix(got, "--"+vendorID), got)
	assert.False(t, strings.HasPrefix(got, "-"))

	hashed := storeSlug("Shop", strings.Repeat("ü", 64))
	assert.LessOrEqual(t, len(hashed), maxSlugLen)
	assert.Len(t, strings.TrimPrefix(hashed, "shop--"), 64)
}

func TestSaveStoreValidation(t *testing.T) {
	svc := newTestService(&memStore{})

	_, err := svc.SaveStore(context.Background(), "", &StoreForm{StoreName: "x"})
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = svc.SaveStore(context.Background(), "v", &StoreForm{StoreName: "   "})
	assert.ErrorIs(t, err, ErrStoreNameRequired)
}

func TestMyStore(t *testing.T) {
	m := &memStore{stores: []*models.Store{{VendorID: "V1", StoreName: "S1"}}}
	svc := newTestService(m)

	store, err := svc.MyStore(context.Background(), "V1")
	require.NoError(t, err)
	assert.Equal(t, "S1", store.StoreName)

	_, err = svc.MyStore(context.Background(), "V2")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestNotifications(t *testing.T) {
	m := &memStore{notifications: []*models.Notification{
		{ID: 1, UserID: "buyer", Message: "hi"},
		{ID: 2, UserID: "other", Message: "yo"},
	}}
	svc := newTestService(m)

	list, err := svc.Notifications(context.Background(), "buyer")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.MarkNotificationRead(context.Background(), "buyer", 1))
	assert.True(t, m.notifications[0].IsRead)

	assert.ErrorIs(t, svc.MarkNotificationRead(context.Background(), "buyer", 2), ErrNotificationNotFound)
	assert.ErrorIs(t, svc.MarkNotificationRead(context.Background(), "", 1), ErrNoIdentity)
}
