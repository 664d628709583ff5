package services

import (
	"context"
	"log"
	"time"

	"ddate_server/models"
	"ddate_server/utils"
)

// AccountService is the caller-facing surface over the profile store. It
// assigns server-generated ids and timestamps and stamps the creating
// caller onto new profiles. The id generator and clock are fields so tests
// can pin them.
type AccountService struct {
	Store *ProfileStore

	GenerateID func() (string, error)
	Now        func() time.Time
}

// NewAccountService wires an AccountService with the real id generator and
// clock.
func NewAccountService(store *ProfileStore) *AccountService {
	return &AccountService{
		Store:      store,
		GenerateID: utils.NewUserID,
		Now:        time.Now,
	}
}

// CreateAccount builds a fresh active profile from the submitted attributes
// and inserts it. Id generation happens before any store mutation; a
// failure there aborts the whole operation.
func (as *AccountService) CreateAccount(ctx context.Context, creator string, attrs models.ProfileAttributes) (string, error) {
	userID, err := as.GenerateID()
	if err != nil {
		return "", err
	}

	profile := models.UserProfile{
		UserID:            userID,
		CreatedAt:         as.Now().UnixMilli(),
		CreatedBy:         creator,
		ProfileAttributes: attrs,
		Status:            models.StatusActive,
	}

	if err := as.Store.Create(ctx, profile); err != nil {
		return "", err
	}
	log.Printf("Account created with userId: %s", userID)
	return userID, nil
}

// UpdateAccount merges a partial attribute patch into an active profile.
func (as *AccountService) UpdateAccount(ctx context.Context, userID string, patch models.ProfileAttributes) (models.UserProfile, error) {
	return as.Store.Update(ctx, userID, patch)
}

// DeleteAccount removes the profile for good.
func (as *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	return as.Store.Delete(ctx, userID)
}

// GetAccount returns a copy of an active profile.
func (as *AccountService) GetAccount(ctx context.Context, userID string) (models.UserProfile, error) {
	return as.Store.Get(ctx, userID)
}

// ListAccounts returns one page of active profiles.
func (as *AccountService) ListAccounts(ctx context.Context, page, size int) (models.PaginatedProfiles, error) {
	return as.Store.List(ctx, page, size)
}

// SetInactive soft-deletes the profile while keeping its key reserved.
func (as *AccountService) SetInactive(ctx context.Context, userID string) error {
	return as.Store.SetInactive(ctx, userID)
}
