package model

// Step is the ordinal position in the registration question sequence.
// It doubles as the resumption pointer: the persisted step tells the engine
// which handler processes the next inbound message after a restart.
type Step int

const (
	// StepNone means the user is not registering.
	StepNone Step = iota
	StepName
	StepSurname
	StepGender
	StepAge
	StepRegion
	StepInterests
	StepPhoto
	StepLocation
)

var stepNames = map[Step]string{
	StepNone:      "none",
	StepName:      "name",
	StepSurname:   "surname",
	StepGender:    "gender",
	StepAge:       "age",
	StepRegion:    "region",
	StepInterests: "interests",
	StepPhoto:     "photo",
	StepLocation:  "location",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether s is one of the defined registration steps.
func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}
