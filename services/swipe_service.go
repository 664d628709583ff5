package services

import (
	"context"
	"log"

	"ddate_server/models"
)

// SwipeService maintains the left/right swipe sets across profiles and the
// match state derived from them. Swipes are stored per record on both ends,
// so this service owns keeping the cross-references consistent.
type SwipeService struct {
	Store *ProfileStore
}

// RecordSwipe adds target to actor's left or right swipe set. Re-swiping an
// existing member is a complete no-op. A set-changing right swipe queues a
// like notification for the target, and a mutual right swipe records the
// pair in both matched lists.
func (ss *SwipeService) RecordSwipe(ctx context.Context, actorID, targetID string, direction models.SwipeDirection) error {
	if direction != models.SwipeLeft && direction != models.SwipeRight {
		return &models.ValidationError{Field: "direction", Message: "direction must be left or right"}
	}
	if actorID == targetID {
		return &models.ValidationError{Field: "targetId", Message: "cannot swipe on own profile"}
	}

	ss.Store.mu.Lock()
	defer ss.Store.mu.Unlock()

	actor, ok := ss.Store.profiles[actorID]
	if !ok {
		return models.ErrProfileNotFound
	}
	if actor.Status != models.StatusActive {
		return models.ErrProfileInactive
	}
	target, ok := ss.Store.profiles[targetID]
	if !ok {
		return models.ErrProfileNotFound
	}
	if target.Status != models.StatusActive {
		return models.ErrProfileInactive
	}

	actor = actor.Clone()
	target = target.Clone()

	set := actor.LeftSwipes
	if direction == models.SwipeRight {
		set = actor.RightSwipes
	}
	if set[targetID] {
		return nil
	}
	if set == nil {
		set = make(map[string]bool)
	}
	set[targetID] = true
	if direction == models.SwipeRight {
		actor.RightSwipes = set
	} else {
		actor.LeftSwipes = set
	}

	changed := []models.UserProfile{actor}
	if direction == models.SwipeRight {
		target.Notifications = append(target.Notifications, models.Notification{
			SenderID:   actorID,
			ReceiverID: targetID,
			Type:       models.NotificationTypeLike,
		})
		if target.RightSwipes[actorID] {
			actor.MatchedProfiles = appendIfMissing(actor.MatchedProfiles, targetID)
			target.MatchedProfiles = appendIfMissing(target.MatchedProfiles, actorID)
			log.Printf("Mutual right swipe between %s and %s", actorID, targetID)
		}
		changed = append(changed, target)
	}

	for _, p := range changed {
		ss.Store.profiles[p.UserID] = p
	}
	ss.Store.persist(ctx, changed...)
	log.Printf("Recorded %s swipe from %s on %s", direction, actorID, targetID)
	return nil
}

// RemoveMatches tears down every trace of userID in the relationship state:
// the user's own matched list and swipe sets, the counterpart entries of
// everyone the user swiped on, and a full sweep for entries left by
// profiles that swiped on the user without reciprocation. All record
// changes are staged first and committed under one write lock, so readers
// never observe a half-finished cascade.
func (ss *SwipeService) RemoveMatches(ctx context.Context, userID string) error {
	ss.Store.mu.Lock()
	defer ss.Store.mu.Unlock()

	profile, ok := ss.Store.profiles[userID]
	if !ok {
		return models.ErrProfileNotFound
	}
	if profile.Status != models.StatusActive {
		return models.ErrProfileInactive
	}

	rightSwiped := make([]string, 0, len(profile.RightSwipes))
	for id := range profile.RightSwipes {
		rightSwiped = append(rightSwiped, id)
	}
	leftSwiped := make([]string, 0, len(profile.LeftSwipes))
	for id := range profile.LeftSwipes {
		leftSwiped = append(leftSwiped, id)
	}

	staged := make(map[string]models.UserProfile)
	stagedCopy := func(id string) (models.UserProfile, bool) {
		if p, ok := staged[id]; ok {
			return p, true
		}
		p, ok := ss.Store.profiles[id]
		if !ok {
			return models.UserProfile{}, false
		}
		return p.Clone(), true
	}

	cleared := profile.Clone()
	cleared.MatchedProfiles = nil
	cleared.RightSwipes = nil
	cleared.LeftSwipes = nil
	staged[userID] = cleared

	for _, otherID := range rightSwiped {
		if other, ok := stagedCopy(otherID); ok {
			delete(other.RightSwipes, userID)
			staged[otherID] = other
		}
	}
	for _, otherID := range leftSwiped {
		if other, ok := stagedCopy(otherID); ok {
			delete(other.LeftSwipes, userID)
			staged[otherID] = other
		}
	}

	// The snapshot only finds profiles the user swiped on. A unilateral
	// swipe on the user is invisible from the user's own sets, so every
	// record gets swept.
	for id, p := range ss.Store.profiles {
		if id == userID {
			continue
		}
		if !p.RightSwipes[userID] && !p.LeftSwipes[userID] {
			continue
		}
		other, ok := stagedCopy(id)
		if !ok {
			continue
		}
		delete(other.RightSwipes, userID)
		delete(other.LeftSwipes, userID)
		staged[id] = other
	}

	changed := make([]models.UserProfile, 0, len(staged))
	for id, p := range staged {
		ss.Store.profiles[id] = p
		changed = append(changed, p)
	}
	ss.Store.persist(ctx, changed...)
	log.Printf("Removed all matches for userId: %s", userID)
	return nil
}

func appendIfMissing(list []string, id string) []string {
	for _, v := range list {
		if v == id {
			return list
		}
	}
	return append(list, id)
}
