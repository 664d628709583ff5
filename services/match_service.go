package services

import (
	"context"
	"log"

	"ddate_server/models"
)

// MatchService answers match queries. It is a pure read over the store.
type MatchService struct {
	Store *ProfileStore
}

// FindMatches returns the page of profiles that are mutually eligible with
// the given profile: both active, candidate age within the subject's
// preferred bounds, gender and location equal to the subject's preferences,
// and a right swipe recorded in both directions. Missing ages fall back to
// zero and unset gender/location preferences compare equal to unset
// candidate fields; both behaviors are kept as-is for compatibility.
func (ms *MatchService) FindMatches(ctx context.Context, profileID string, page, size int) (models.MatchResult, error) {
	log.Printf("Finding matches for profileId: %s", profileID)

	ms.Store.mu.RLock()
	defer ms.Store.mu.RUnlock()

	subject, ok := ms.Store.profiles[profileID]
	if !ok {
		return models.MatchResult{}, models.ErrProfileNotFound
	}
	if subject.Status != models.StatusActive {
		return models.MatchResult{}, models.ErrProfileInactive
	}
	if page < 1 {
		return models.MatchResult{}, &models.ValidationError{Field: "page", Message: "page number must be greater than 0"}
	}
	if size < 1 {
		return models.MatchResult{}, &models.ValidationError{Field: "size", Message: "page size must be greater than 0"}
	}

	var matched []models.UserProfile
	for _, candidate := range ms.Store.activeProfilesLocked() {
		if candidate.UserID == profileID {
			continue
		}
		if !isEligibleMatch(subject, candidate) {
			continue
		}
		matched = append(matched, candidate)
	}

	total := len(matched)
	start := (page - 1) * size
	if start >= total {
		return models.MatchResult{}, models.ErrPageOutOfRange
	}
	end := start + size
	if end > total {
		end = total
	}

	return models.MatchResult{
		TotalMatches:      total,
		PaginatedProfiles: matched[start:end],
	}, nil
}

func isEligibleMatch(subject, candidate models.UserProfile) bool {
	age := models.AgeOrZero(candidate.Age)
	return age >= models.AgeOrZero(subject.MinPreferredAge) &&
		age <= models.AgeOrZero(subject.MaxPreferredAge) &&
		candidate.Gender == subject.PreferredGender &&
		candidate.Location == subject.PreferredLocation &&
		candidate.RightSwipes[subject.UserID] &&
		subject.RightSwipes[candidate.UserID]
}
