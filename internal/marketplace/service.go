// Package marketplace holds the request/response operations: posting item
// requests, answering them as a vendor, and assembling the landing feed.
package marketplace

import (
	"context"
	"time"

	"github.com/01moynul/locify-golang/internal/models"
	"github.com/oklog/ulid/v2"
)

// RequestStore is the datastore view of the item_requests table.
type RequestStore interface {
	Insert(ctx context.Context, req *models.ItemRequest) error
	ListByStatus(ctx context.Context, status, search string) ([]*models.ItemRequest, error)
	GetByID(ctx context.Context, id string) (*models.ItemRequest, error)
}

// ResponseStore is the datastore view of the vendor_responses table.
type ResponseStore interface {
	Insert(ctx context.Context, resp *models.VendorResponse) error
	InsertWithNotification(ctx context.Context, resp *models.VendorResponse, notif *models.Notification) error
	List(ctx context.Context, limit int) ([]*models.VendorResponse, error)
	ListByRequest(ctx context.Context, requestID string) ([]*models.VendorResponse, error)
}

// StoreDirectory is the datastore view of the stores table.
type StoreDirectory interface {
	ListAll(ctx context.Context) ([]*models.Store, error)
	GetByVendor(ctx context.Context, vendorID string) (*models.Store, error)
	Upsert(ctx context.Context, s *models.Store) error
}

// NotificationStore is the datastore view of the notifications table.
type NotificationStore interface {
	ListForUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id int64, userID string) (bool, error)
}

// DefaultFeedLimit is how many responses the landing feed shows.
const DefaultFeedLimit = 10

type Service struct {
	requests      RequestStore
	responses     ResponseStore
	stores        StoreDirectory
	notifications NotificationStore

	placeholders *Placeholders
	feedLimit    int
	now          func() time.Time
	newID        func() string
}

type Option func(*Service)

// WithPlaceholders turns on the mock rating/distance/avatar fields in the feed.
func WithPlaceholders(p *Placeholders) Option {
	return func(s *Service) { s.placeholders = p }
}

func WithFeedLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.feedLimit = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(requests RequestStore, responses ResponseStore, stores StoreDirectory, notifications NotificationStore, opts ...Option) *Service {
	s := &Service{
		requests:      requests,
		responses:     responses,
		stores:        stores,
		notifications: notifications,
		feedLimit:     DefaultFeedLimit,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
