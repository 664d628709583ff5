package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"ddate_server/models"
)

// Persister is the optional durability hook behind the in-memory store.
// Failures are logged, never surfaced: the store in memory is canonical and
// durability is best effort.
type Persister interface {
	SaveProfile(ctx context.Context, profile models.UserProfile) error
	DeleteProfile(ctx context.Context, userID string) error
}

// ProfileStore is the keyed collection of user profiles. All reads hand out
// deep copies and all writes happen under one mutex, so an operation either
// lands completely or not at all from any reader's point of view.
type ProfileStore struct {
	mu        sync.RWMutex
	profiles  map[string]models.UserProfile
	Persister Persister
}

// NewProfileStore creates an empty store. persister may be nil for
// memory-only operation.
func NewProfileStore(persister Persister) *ProfileStore {
	return &ProfileStore{
		profiles:  make(map[string]models.UserProfile),
		Persister: persister,
	}
}

// LoadAll seeds the store with previously persisted profiles. Meant for
// process start, before the server accepts requests.
func (ps *ProfileStore) LoadAll(profiles []models.UserProfile) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for _, p := range profiles {
		ps.profiles[p.UserID] = p.Clone()
	}
}

// Create validates the required fields and inserts the profile. The key is
// reserved even by inactive profiles, so a colliding id always fails.
func (ps *ProfileStore) Create(ctx context.Context, profile models.UserProfile) error {
	if err := validateRequiredFields(profile.ProfileAttributes); err != nil {
		return err
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.profiles[profile.UserID]; exists {
		return models.ErrProfileExists
	}
	ps.profiles[profile.UserID] = profile.Clone()
	ps.persist(ctx, profile)
	log.Printf("Created profile with userId: %s", profile.UserID)
	return nil
}

// Update applies a field-wise merge of patch onto the stored attributes.
// Identity and relationship fields are out of reach of this path.
func (ps *ProfileStore) Update(ctx context.Context, userID string, patch models.ProfileAttributes) (models.UserProfile, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	profile, ok := ps.profiles[userID]
	if !ok {
		return models.UserProfile{}, models.ErrProfileNotFound
	}
	if profile.Status != models.StatusActive {
		return models.UserProfile{}, models.ErrProfileInactive
	}

	updated := profile.Clone()
	updated.ProfileAttributes.Merge(patch)
	ps.profiles[userID] = updated
	ps.persist(ctx, updated)
	log.Printf("Updated profile with userId: %s", userID)
	return updated.Clone(), nil
}

// Delete removes the key entirely. Irreversible, unlike SetInactive.
func (ps *ProfileStore) Delete(ctx context.Context, userID string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	profile, ok := ps.profiles[userID]
	if !ok {
		return models.ErrProfileNotFound
	}
	if profile.Status != models.StatusActive {
		return models.ErrProfileInactive
	}
	delete(ps.profiles, userID)
	if ps.Persister != nil {
		if err := ps.Persister.DeleteProfile(ctx, userID); err != nil {
			log.Printf("Failed to delete persisted profile %s: %v", userID, err)
		}
	}
	log.Printf("Deleted profile with userId: %s", userID)
	return nil
}

// Get returns a copy of an active profile.
func (ps *ProfileStore) Get(ctx context.Context, userID string) (models.UserProfile, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	profile, ok := ps.profiles[userID]
	if !ok {
		return models.UserProfile{}, models.ErrProfileNotFound
	}
	if profile.Status != models.StatusActive {
		return models.UserProfile{}, models.ErrProfileInactive
	}
	return profile.Clone(), nil
}

// List returns one page of active profiles in creation order. page is
// 1-based; a start index at or past the end of the collection is out of
// range, which also covers an empty store.
func (ps *ProfileStore) List(ctx context.Context, page, size int) (models.PaginatedProfiles, error) {
	if page < 1 {
		return models.PaginatedProfiles{}, &models.ValidationError{Field: "page", Message: "page number must be greater than 0"}
	}
	if size < 1 {
		return models.PaginatedProfiles{}, &models.ValidationError{Field: "size", Message: "page size must be greater than 0"}
	}

	ps.mu.RLock()
	defer ps.mu.RUnlock()

	active := ps.activeProfilesLocked()
	total := len(active)

	start := (page - 1) * size
	if start >= total {
		return models.PaginatedProfiles{}, models.ErrPageOutOfRange
	}
	end := start + size
	if end > total {
		end = total
	}

	return models.PaginatedProfiles{
		TotalProfiles: total,
		Profiles:      active[start:end],
	}, nil
}

// SetInactive flips the profile out of every read and match path while its
// key stays reserved. Repeating the call is a no-op, not an error.
func (ps *ProfileStore) SetInactive(ctx context.Context, userID string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	profile, ok := ps.profiles[userID]
	if !ok {
		return models.ErrProfileNotFound
	}
	profile.Status = models.StatusInactive
	ps.profiles[userID] = profile
	ps.persist(ctx, profile)
	log.Printf("Profile %s has been made inactive", userID)
	return nil
}

// activeProfilesLocked collects copies of all active profiles sorted by
// creation time, then id, so pagination is stable for a given store state.
// Callers must hold at least the read lock.
func (ps *ProfileStore) activeProfilesLocked() []models.UserProfile {
	active := make([]models.UserProfile, 0, len(ps.profiles))
	for _, p := range ps.profiles {
		if p.Status == models.StatusActive {
			active = append(active, p.Clone())
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].CreatedAt != active[j].CreatedAt {
			return active[i].CreatedAt < active[j].CreatedAt
		}
		return active[i].UserID < active[j].UserID
	})
	return active
}

// persist writes changed records behind a committed mutation. Callers must
// hold the write lock; errors only log.
func (ps *ProfileStore) persist(ctx context.Context, changed ...models.UserProfile) {
	if ps.Persister == nil {
		return
	}
	for _, p := range changed {
		if err := ps.Persister.SaveProfile(ctx, p); err != nil {
			log.Printf("Failed to persist profile %s: %v", p.UserID, err)
		}
	}
}

func validateRequiredFields(attrs models.ProfileAttributes) error {
	if strings.TrimSpace(attrs.Name) == "" {
		return models.NewValidationError("name")
	}
	if strings.TrimSpace(attrs.Email) == "" {
		return models.NewValidationError("email")
	}
	if attrs.Age == nil {
		return models.NewValidationError("age")
	}
	if attrs.MinPreferredAge == nil {
		return models.NewValidationError("minPreferredAge")
	}
	if attrs.MaxPreferredAge == nil {
		return models.NewValidationError("maxPreferredAge")
	}
	if strings.TrimSpace(attrs.Location) == "" {
		return models.NewValidationError("location")
	}
	if strings.TrimSpace(attrs.PreferredLocation) == "" {
		return models.NewValidationError("preferredLocation")
	}
	if strings.TrimSpace(attrs.Gender) == "" {
		return models.NewValidationError("gender")
	}
	if strings.TrimSpace(attrs.PreferredGender) == "" {
		return models.NewValidationError("preferredGender")
	}
	return nil
}
