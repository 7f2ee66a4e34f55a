package model

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"telegram-registration-bot/internal/domain"
)

// Gender is stored normalized regardless of the language the user answered in.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Profile is the permanent record created once the registration sequence
// completes. It is never mutated by the registration engine after commit.
type Profile struct {
	ID          string
	Contact     string
	Name        string
	Surname     string
	Gender      *Gender
	Age         *int
	RegionID    *int64
	Photo       *string
	Geolocation *string
	IsAdmin     bool
	Step        Step
}

// NewProfileFromDraft builds the permanent profile from a finished draft.
// A structurally incomplete draft is a contract violation on the engine's
// side, not a user-input error, so it fails with ErrIncompleteDraft.
func NewProfileFromDraft(d *Draft) (*Profile, error) {
	if !d.IsComplete() {
		return nil, fmt.Errorf("draft phone=%q name=%q surname=%q: %w",
			d.Phone, d.Name, d.Surname, domain.ErrIncompleteDraft)
	}
	return &Profile{
		ID:          uuid.NewString(),
		Contact:     d.Phone,
		Name:        d.Name,
		Surname:     d.Surname,
		Gender:      d.Gender,
		Age:         d.Age,
		RegionID:    d.RegionID,
		Photo:       d.Photo,
		Geolocation: d.Geolocation,
		IsAdmin:     d.IsAdmin,
		Step:        StepNone,
	}, nil
}

func (p *Profile) IsZero() bool { return p == nil || p.ID == "" }

// FormatGeolocation renders coordinates in the "lat,lon" wire form used by
// both the draft and the profile row.
func FormatGeolocation(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lon, 'f', 6, 64)
}
