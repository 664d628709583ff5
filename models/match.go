package models

// PaginatedProfiles is one page of active profiles plus the total count of
// active profiles in the store at the time of the call.
type PaginatedProfiles struct {
	TotalProfiles int           `json:"totalProfiles"`
	Profiles      []UserProfile `json:"profiles"`
}

// MatchResult is the answer to a find-matches query. TotalMatches counts
// every eligible profile before pagination. ErrorMessage is reserved and
// stays empty on the success path.
type MatchResult struct {
	TotalMatches      int           `json:"totalMatches"`
	PaginatedProfiles []UserProfile `json:"paginatedProfiles"`
	ErrorMessage      string        `json:"errorMessage,omitempty"`
}

// SwipeDirection is the direction of a swipe: right = interest, left = pass.
type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)
