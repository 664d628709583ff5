package models

// ProfileStatus is the lifecycle state of a stored profile. A hard-deleted
// profile has no status because its key is gone from the store.
type ProfileStatus string

const (
	StatusActive   ProfileStatus = "active"
	StatusInactive ProfileStatus = "inactive"
)

// ProfileAttributes holds every optional, user-editable field of a profile.
// Each field stands on its own so partial updates can overwrite just the
// fields they carry. Numeric age fields are pointers to keep "never set"
// distinguishable from zero.
type ProfileAttributes struct {
	Name              string   `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Email             string   `json:"email,omitempty" dynamodbav:"email,omitempty"`
	MobileNumber      string   `json:"mobileNumber,omitempty" dynamodbav:"mobileNumber,omitempty"`
	DOB               string   `json:"dob,omitempty" dynamodbav:"dob,omitempty"`
	Gender            string   `json:"gender,omitempty" dynamodbav:"gender,omitempty"`
	GenderPronouns    string   `json:"genderPronouns,omitempty" dynamodbav:"genderPronouns,omitempty"`
	Religion          string   `json:"religion,omitempty" dynamodbav:"religion,omitempty"`
	Height            string   `json:"height,omitempty" dynamodbav:"height,omitempty"`
	Zodiac            string   `json:"zodiac,omitempty" dynamodbav:"zodiac,omitempty"`
	Diet              string   `json:"diet,omitempty" dynamodbav:"diet,omitempty"`
	Occupation        string   `json:"occupation,omitempty" dynamodbav:"occupation,omitempty"`
	LookingFor        string   `json:"lookingFor,omitempty" dynamodbav:"lookingFor,omitempty"`
	Smoking           string   `json:"smoking,omitempty" dynamodbav:"smoking,omitempty"`
	Drinking          string   `json:"drinking,omitempty" dynamodbav:"drinking,omitempty"`
	Pets              string   `json:"pets,omitempty" dynamodbav:"pets,omitempty"`
	InterestsIn       string   `json:"interestsIn,omitempty" dynamodbav:"interestsIn,omitempty"`
	Introduction      string   `json:"introduction,omitempty" dynamodbav:"introduction,omitempty"`
	Location          string   `json:"location,omitempty" dynamodbav:"location,omitempty"`
	PreferredLocation string   `json:"preferredLocation,omitempty" dynamodbav:"preferredLocation,omitempty"`
	PreferredGender   string   `json:"preferredGender,omitempty" dynamodbav:"preferredGender,omitempty"`
	Age               *int     `json:"age,omitempty" dynamodbav:"age,omitempty"`
	MinPreferredAge   *int     `json:"minPreferredAge,omitempty" dynamodbav:"minPreferredAge,omitempty"`
	MaxPreferredAge   *int     `json:"maxPreferredAge,omitempty" dynamodbav:"maxPreferredAge,omitempty"`
	Hobbies           []string `json:"hobbies,omitempty" dynamodbav:"hobbies,omitempty"`
	Sports            []string `json:"sports,omitempty" dynamodbav:"sports,omitempty"`
	ArtAndCulture     []string `json:"artAndCulture,omitempty" dynamodbav:"artAndCulture,omitempty"`
	GeneralHabits     []string `json:"generalHabits,omitempty" dynamodbav:"generalHabits,omitempty"`
	OutdoorActivities []string `json:"outdoorActivities,omitempty" dynamodbav:"outdoorActivities,omitempty"`
	Travel            []string `json:"travel,omitempty" dynamodbav:"travel,omitempty"`
	Movies            []string `json:"movies,omitempty" dynamodbav:"movies,omitempty"`
	Images            []string `json:"images,omitempty" dynamodbav:"images,omitempty"`
}

// UserProfile is the stored record for one user: immutable identity fields,
// the editable attributes, and the relationship state maintained by the
// swipe engine. Relationship fields are never touched by Merge.
type UserProfile struct {
	UserID    string `json:"userId" dynamodbav:"userId"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt"`
	CreatedBy string `json:"createdBy,omitempty" dynamodbav:"createdBy,omitempty"`

	ProfileAttributes

	LeftSwipes      map[string]bool `json:"leftSwipes,omitempty" dynamodbav:"leftSwipes,omitempty"`
	RightSwipes     map[string]bool `json:"rightSwipes,omitempty" dynamodbav:"rightSwipes,omitempty"`
	MatchedProfiles []string        `json:"matchedProfiles,omitempty" dynamodbav:"matchedProfiles,omitempty"`
	Notifications   []Notification  `json:"notifications,omitempty" dynamodbav:"notifications,omitempty"`

	Status ProfileStatus `json:"status" dynamodbav:"status"`
}

// Merge overwrites the receiver's attributes with every field the patch
// carries. Absent fields (empty strings, nil pointers, nil slices) leave the
// current value alone; slice fields are replaced whole, never appended.
func (a *ProfileAttributes) Merge(patch ProfileAttributes) {
	if patch.Name != "" {
		a.Name = patch.Name
	}
	if patch.Email != "" {
		a.Email = patch.Email
	}
	if patch.MobileNumber != "" {
		a.MobileNumber = patch.MobileNumber
	}
	if patch.DOB != "" {
		a.DOB = patch.DOB
	}
	if patch.Gender != "" {
		a.Gender = patch.Gender
	}
	if patch.GenderPronouns != "" {
		a.GenderPronouns = patch.GenderPronouns
	}
	if patch.Religion != "" {
		a.Religion = patch.Religion
	}
	if patch.Height != "" {
		a.Height = patch.Height
	}
	if patch.Zodiac != "" {
		a.Zodiac = patch.Zodiac
	}
	if patch.Diet != "" {
		a.Diet = patch.Diet
	}
	if patch.Occupation != "" {
		a.Occupation = patch.Occupation
	}
	if patch.LookingFor != "" {
		a.LookingFor = patch.LookingFor
	}
	if patch.Smoking != "" {
		a.Smoking = patch.Smoking
	}
	if patch.Drinking != "" {
		a.Drinking = patch.Drinking
	}
	if patch.Pets != "" {
		a.Pets = patch.Pets
	}
	if patch.InterestsIn != "" {
		a.InterestsIn = patch.InterestsIn
	}
	if patch.Introduction != "" {
		a.Introduction = patch.Introduction
	}
	if patch.Location != "" {
		a.Location = patch.Location
	}
	if patch.PreferredLocation != "" {
		a.PreferredLocation = patch.PreferredLocation
	}
	if patch.PreferredGender != "" {
		a.PreferredGender = patch.PreferredGender
	}
	if patch.Age != nil {
		a.Age = patch.Age
	}
	if patch.MinPreferredAge != nil {
		a.MinPreferredAge = patch.MinPreferredAge
	}
	if patch.MaxPreferredAge != nil {
		a.MaxPreferredAge = patch.MaxPreferredAge
	}
	if patch.Hobbies != nil {
		a.Hobbies = patch.Hobbies
	}
	if patch.Sports != nil {
		a.Sports = patch.Sports
	}
	if patch.ArtAndCulture != nil {
		a.ArtAndCulture = patch.ArtAndCulture
	}
	if patch.GeneralHabits != nil {
		a.GeneralHabits = patch.GeneralHabits
	}
	if patch.OutdoorActivities != nil {
		a.OutdoorActivities = patch.OutdoorActivities
	}
	if patch.Travel != nil {
		a.Travel = patch.Travel
	}
	if patch.Movies != nil {
		a.Movies = patch.Movies
	}
	if patch.Images != nil {
		a.Images = patch.Images
	}
}

// Clone returns a deep copy so callers can never mutate stored state
// through a returned record.
func (p UserProfile) Clone() UserProfile {
	out := p
	if p.LeftSwipes != nil {
		out.LeftSwipes = make(map[string]bool, len(p.LeftSwipes))
		for id := range p.LeftSwipes {
			out.LeftSwipes[id] = true
		}
	}
	if p.RightSwipes != nil {
		out.RightSwipes = make(map[string]bool, len(p.RightSwipes))
		for id := range p.RightSwipes {
			out.RightSwipes[id] = true
		}
	}
	out.MatchedProfiles = append([]string(nil), p.MatchedProfiles...)
	out.Notifications = append([]Notification(nil), p.Notifications...)
	out.Hobbies = append([]string(nil), p.Hobbies...)
	out.Sports = append([]string(nil), p.Sports...)
	out.ArtAndCulture = append([]string(nil), p.ArtAndCulture...)
	out.GeneralHabits = append([]string(nil), p.GeneralHabits...)
	out.OutdoorActivities = append([]string(nil), p.OutdoorActivities...)
	out.Travel = append([]string(nil), p.Travel...)
	out.Movies = append([]string(nil), p.Movies...)
	out.Images = append([]string(nil), p.Images...)
	return out
}

// AgeOrZero mirrors the unset-means-zero fallback used by the match filter.
func AgeOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
