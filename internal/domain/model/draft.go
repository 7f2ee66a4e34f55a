package model

// Draft is the partially-filled registration record staged while a user walks
// through the question sequence. Optional fields use pointers so "skipped"
// stays distinguishable from "collected empty value": a skipped field is nil
// and is simply absent from the serialized form.
//
// The draft is replaced wholesale on every save; callers merge before saving.
type Draft struct {
	Phone       string   `json:"phone,omitempty"`
	IsAdmin     bool     `json:"is_admin"`
	Name        string   `json:"name,omitempty"`
	Surname     string   `json:"surname,omitempty"`
	Gender      *Gender  `json:"gender,omitempty"`
	Age         *int     `json:"age,omitempty"`
	RegionID    *int64   `json:"region_id,omitempty"`
	Interests   []int64  `json:"interests"`
	Photo       *string  `json:"photo,omitempty"`
	Geolocation *string  `json:"geolocation,omitempty"`
}

// NewDraft stages a fresh draft the moment the phone number is captured.
func NewDraft(phone string, isAdmin bool) *Draft {
	return &Draft{
		Phone:     phone,
		IsAdmin:   isAdmin,
		Interests: []int64{},
	}
}

// HasInterest reports whether the interest id was already selected.
func (d *Draft) HasInterest(id int64) bool {
	for _, v := range d.Interests {
		if v == id {
			return true
		}
	}
	return false
}

// AddInterest appends the id unless it is already present.
// It returns false on a duplicate selection.
func (d *Draft) AddInterest(id int64) bool {
	if d.HasInterest(id) {
		return false
	}
	d.Interests = append(d.Interests, id)
	return true
}

// IsComplete reports whether every mandatory field was collected.
// Gender, age, region, photo and geolocation are optional (skippable).
func (d *Draft) IsComplete() bool {
	return d != nil && d.Phone != "" && d.Name != "" && d.Surname != ""
}

// IsZero reports whether the draft holds no collected data at all.
func (d *Draft) IsZero() bool {
	return d == nil || (d.Phone == "" && d.Name == "" && d.Surname == "" &&
		d.Gender == nil && d.Age == nil && d.RegionID == nil &&
		len(d.Interests) == 0 && d.Photo == nil && d.Geolocation == nil)
}
