package marketplace

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/01moynul/locify-golang/internal/models"
	"github.com/gosimple/slug"
)

// SaveStore creates or updates the caller's store profile.
func (s *Service) SaveStore(ctx context.Context, vendorID string, form *StoreForm) (*models.Store, error) {
	if vendorID == "" {
		return nil, ErrNoIdentity
	}

	name := strings.TrimSpace(form.StoreName)
	if name == "" {
		return nil, ErrStoreNameRequired
	}

	existing, err := s.stores.GetByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	now := s.now()
	store := &models.Store{
		VendorID:  vendorID,
		StoreName: name,
		Slug:      storeSlug(name, vendorID),
		Address:   strings.TrimSpace(form.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing != nil {
		store.CreatedAt = existing.CreatedAt
	}

	if err := s.stores.Upsert(ctx, store); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}
	return store, nil
}

// MyStore returns the caller's store profile.
func (s *Service) MyStore(ctx context.Context, vendorID string) (*models.Store, error) {
	if vendorID == "" {
		return nil, ErrNoIdentity
	}

	store, err := s.stores.GetByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

const (
	// maxSlugLen matches the stores.slug column.
	maxSlugLen = 255

	// slugSeparator never appears in slug.Make output.
	slugSeparator = "--"

	maxVendorSlug = 64
)

// storeSlug is unique per vendor: two vendors may pick the same store name.
// The name part is cut so the whole slug fits its column.
func storeSlug(name, vendorID string) string {
	suffix := vendorSlug(vendorID)

	body := slug.Make(name)
	if budget := maxSlugLen - len(slugSeparator) - len(suffix); len(body) > budget {
		body = strings.Trim(body[:budget], "-_")
	}
	if body == "" {
		body = "store"
	}
	return body + slugSeparator + suffix
}

// vendorSlug encodes the vendor ID one-to-one into URL-safe text. Vendor IDs
// compare case-insensitively in the stores table, so case is folded first.
func vendorSlug(vendorID string) string {
	id := strings.ToLower(vendorID)
	if escaped := url.PathEscape(id); len(escaped) <= maxVendorSlug {
		return escaped
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}
