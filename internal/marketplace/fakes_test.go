package marketplace

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/01moynul/locify-golang/internal/models"
)

// memStore is an in-memory stand-in for all four repositories.
type memStore struct {
	mu            sync.Mutex
	requests      []*models.ItemRequest
	responses     []*models.VendorResponse
	stores        []*models.Store
	notifications []*models.Notification

	failInsert    error
	failResponses error
	failStores    error
	storesDelay   time.Duration
}

func (m *memStore) Insert(ctx context.Context, req *models.ItemRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert != nil {
		return m.failInsert
	}
	cp := *req
	m.requests = append(m.requests, &cp)
	return nil
}

func (m *memStore) ListByStatus(ctx context.Context, status, search string) ([]*models.ItemRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.ItemRequest{}
	for _, r := range m.requests {
		if r.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Description), strings.ToLower(search)) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*models.ItemRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

// responseRepo adapts memStore to ResponseStore (Insert clashes with RequestStore).
type responseRepo struct{ *memStore }

func (r responseRepo) Insert(ctx context.Context, resp *models.VendorResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert != nil {
		return r.failInsert
	}
	r.responses = append(r.responses, resp)
	return nil
}

func (r responseRepo) InsertWithNotification(ctx context.Context, resp *models.VendorResponse, notif *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert != nil {
		return r.failInsert
	}
	r.responses = append(r.responses, resp)
	notif.ID = int64(len(r.notifications) + 1)
	r.notifications = append(r.notifications, notif)
	return nil
}

func (r responseRepo) List(ctx context.Context, limit int) ([]*models.VendorResponse, error) {
	if r.failResponses != nil {
		return nil, r.failResponses
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.responses) < limit {
		limit = len(r.responses)
	}
	return append([]*models.VendorResponse{}, r.responses[:limit]...), nil
}

func (r responseRepo) ListByRequest(ctx context.Context, requestID string) ([]*models.VendorResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.VendorResponse{}
	for _, resp := range r.responses {
		if resp.RequestID == requestID {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (m *memStore) ListAll(ctx context.Context) ([]*models.Store, error) {
	if m.storesDelay > 0 {
		select {
		case <-time.After(m.storesDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.failStores != nil {
		return nil, m.failStores
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Store{}, m.stores...), nil
}

func (m *memStore) GetByVendor(ctx context.Context, vendorID string) (*models.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stores {
		if s.VendorID == vendorID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStore) Upsert(ctx context.Context, s *models.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.stores {
		if existing.Slug == s.Slug && existing.VendorID != s.VendorID {
			return fmt.Errorf("duplicate slug %q", s.Slug)
		}
	}
	for i, existing := range m.stores {
		if existing.VendorID == s.VendorID {
			m.stores[i] = s
			return nil
		}
	}
	m.stores = append(m.stores, s)
	return nil
}

func (m *memStore) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.Notification{}
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) MarkRead(ctx context.Context, id int64, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestService(m *memStore, opts ...Option) *Service {
	n := 0
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	return NewService(m, responseRepo{m}, m, m, append(base, opts...)...)
}

func ptr[T any](v T) *T { return &v }
