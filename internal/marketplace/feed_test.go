package marketplace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/01moynul/locify-golang/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAssembleFeedJoinsStore(t *testing.T) {
	m := &memStore{
		responses: []*models.VendorResponse{{ID: "r1", VendorID: "V1", RequestID: "q1", Price: ptr(5.0), Message: "m", Status: "pending"}},
		stores:    []*models.Store{{VendorID: "V1", StoreName: "S1", Address: "A1"}},
	}
	svc := newTestService(m)

	entries, err := svc.AssembleFeed(context.Background())
	require.NoError(t, err)

	want := []models.FeedEntry{{
		ResponseID:  "r1",
		RequestID:   "q1",
		Name:        "S1",
		Location:    "A1",
		Price:       "$5",
		Stock:       "Available",
		Description: "m",
	}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("feed mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleFeedMissingStore(t *testing.T) {
	m := &memStore{
		responses: []*models.VendorResponse{{ID: "r1", VendorID: "V404", Status: "pending"}},
		stores:    []*models.Store{{VendorID: "V1", StoreName: "S1", Address: "A1"}},
	}
	svc := newTestService(m)

	entries, err := svc.AssembleFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, UnknownStoreName, entries[0].Name)
	assert.Equal(t, UnknownLocation, entries[0].Location)
	assert.Equal(t, PriceOnRequest, entries[0].Price)
	assert.Equal(t, NoDescription, entries[0].Description)
}

func TestAssembleFeedFailsWhole(t *testing.T) {
	responses := []*models.VendorResponse{{ID: "r1", VendorID: "V1", Status: "pending", Message: "m"}}

	t.Run("responses fail", func(t *testing.T) {
		m := &memStore{responses: responses, failResponses: errors.New("timeout"), storesDelay: 50 * time.Millisecond}
		entries, err := newTestService(m).AssembleFeed(context.Background())
		require.Error(t, err)
		assert.Empty(t, entries)
	})

	t.Run("stores fail", func(t *testing.T) {
		m := &memStore{responses: responses, failStores: errors.New("timeout")}
		entries, err := newTestService(m).AssembleFeed(context.Background())
		require.Error(t, err)
		assert.Empty(t, entries)
	})
}

func TestAssembleFeedRespectsLimit(t *testing.T) {
	m := &memStore{}
	for i := 0; i < 15; i++ {
		m.responses = append(m.responses, &models.VendorResponse{ID: "r", Status: "pending"})
	}

	entries, err := newTestService(m).AssembleFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, DefaultFeedLimit)

	entries, err = newTestService(m, WithFeedLimit(3)).AssembleFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestBuildFeedFieldMapping(t *testing.T) {
	responses := []*models.VendorResponse{
		{ID: "a", VendorID: "V1", Price: ptr(10.99), Message: "jars", ImageURL: ptr("https://img/j.jpg"), Status: "accepted"},
		{ID: "b", VendorID: "V2", Price: ptr(0.0), Message: "ask", Status: "pending"},
	}
	stores := []*models.Store{
		{VendorID: "V1", StoreName: "Bee Happy", Address: ""},
		{VendorID: "V2", StoreName: "", Address: "2 Mill Rd"},
	}

	entries := BuildFeed(responses, stores, nil)

	want := []models.FeedEntry{
		{ResponseID: "a", Name: "Bee Happy", Location: UnknownLocation, Price: "$10.99", Stock: "accepted", Description: "jars", Image: "https://img/j.jpg"},
		{ResponseID: "b", Name: UnknownStoreName, Location: "2 Mill Rd", Price: PriceOnRequest, Stock: "Available", Description: "ask"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("feed mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFeedEmpty(t *testing.T) {
	entries := BuildFeed(nil, nil, NewPlaceholders(1))
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestBuildFeedWithPlaceholders(t *testing.T) {
	responses := []*models.VendorResponse{
		{ID: "a", VendorID: "V1", Status: "pending"},
		{ID: "b", VendorID: "V1", Status: "pending"},
	}

	entries := BuildFeed(responses, nil, NewPlaceholders(42))
	require.Len(t, entries, 2)

	for i, e := range entries {
		require.NotNil(t, e.Rating)
		assert.NotEmpty(t, e.Distance)
		assert.NotEmpty(t, e.ResponseTime)
		assert.Contains(t, e.Avatar, "https://images.unsplash.com/photo-")
		if i == 1 {
			assert.Contains(t, e.Avatar, "photo-1507003212169")
		}
	}

	// Same seed, same output.
	again := BuildFeed(responses, nil, NewPlaceholders(42))
	if diff := cmp.Diff(entries, again); diff != "" {
		t.Errorf("placeholders not deterministic (-first +second):\n%s", diff)
	}

	// Without placeholders the mock fields stay empty.
	plain := BuildFeed(responses, nil, nil)
	if diff := cmp.Diff(entries, plain, cmpopts.IgnoreFields(models.FeedEntry{}, "Avatar", "Rating", "Distance", "ResponseTime")); diff != "" {
		t.Errorf("placeholders changed real fields (-with +without):\n%s", diff)
	}
	assert.Nil(t, plain[0].Rating)
}
