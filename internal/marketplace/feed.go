package marketplace

import (
	"context"
	"fmt"

	"github.com/01moynul/locify-golang/internal/models"
	"golang.org/x/sync/errgroup"
)

// Display fallbacks for responses with missing data.
const (
	UnknownStoreName = "Unknown Store"
	UnknownLocation  = "Location not specified"
	NoDescription    = "No description available"
	StockAvailable   = "Available"
	PriceOnRequest   = "Price on request"
)

// AssembleFeed builds the landing feed. The recent responses and all stores
// are read concurrently; if either read fails the whole feed fails and no
// entries are returned.
func (s *Service) AssembleFeed(ctx context.Context) ([]models.FeedEntry, error) {
	var (
		responses []*models.VendorResponse
		stores    []*models.Store
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		responses, err = s.responses.List(gctx, s.feedLimit)
		if err != nil {
			return fmt.Errorf("fetch vendor responses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stores, err = s.stores.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("fetch stores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildFeed(responses, stores, s.placeholders), nil
}

// BuildFeed left-joins responses to stores on vendor ID. Responses whose
// vendor has no store still appear, with placeholder store text.
// placeholders may be nil, in which case the mock fields stay empty.
func BuildFeed(responses []*models.VendorResponse, stores []*models.Store, placeholders *Placeholders) []models.FeedEntry {
	byVendor := make(map[string]*models.Store, len(stores))
	for _, st := range stores {
		byVendor[st.VendorID] = st
	}

	entries := make([]models.FeedEntry, 0, len(responses))
	for i, resp := range responses {
		entry := models.FeedEntry{
			ResponseID:  resp.ID,
			RequestID:   resp.RequestID,
			Name:        UnknownStoreName,
			Location:    UnknownLocation,
			Price:       FormatPrice(resp.Price),
			Stock:       stockLabel(resp.Status),
			Description: resp.Message,
		}
		if entry.Description == "" {
			entry.Description = NoDescription
		}
		if resp.ImageURL != nil {
			entry.Image = *resp.ImageURL
		}

		if st, ok := byVendor[resp.VendorID]; ok {
			if st.StoreName != "" {
				entry.Name = st.StoreName
			}
			if st.Address != "" {
				entry.Location = st.Address
			}
		}

		if placeholders != nil {
			placeholders.Fill(&entry, i)
		}
		entries = append(entries, entry)
	}

	return entries
}

func stockLabel(status string) string {
	if status == models.ResponseStatusPending {
		return StockAvailable
	}
	return status
}
