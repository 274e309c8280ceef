package member

import (
	"fmt"

	"fruitmall/internal/pkg/errs"
)

// Grade is the loyalty tier of a member, determined by accumulated purchases.
type Grade int

const (
	// UnknownGrade catches uninitialized Grade values.
	UnknownGrade Grade = iota

	Bronze
	Silver
	Gold
	Platinum
	VIP
)

func getGradeStrings() map[Grade]string {
	return map[Grade]string{
		UnknownGrade: "UNKNOWN",
		Bronze:       "BRONZE",
		Silver:       "SILVER",
		Gold:         "GOLD",
		Platinum:     "PLATINUM",
		VIP:          "VIP",
	}
}

// GradeFromString parses the persisted textual form of a grade.
func GradeFromString(s string) (Grade, error) {
	for grade, str := range getGradeStrings() {
		if str == s && grade != UnknownGrade {
			return grade, nil
		}
	}
	return UnknownGrade, errs.NewValueIsInvalidErrorWithCause(
		"grade", fmt.Errorf("%q is not a valid grade", s))
}

// Validate checks the Grade is one of the defined tiers.
func (g Grade) Validate() error {
	if g < Bronze || g > VIP {
		return errs.NewValueIsInvalidErrorWithCause(
			"grade", fmt.Errorf("%d is not a valid grade", g))
	}
	return nil
}

// String returns the persisted textual form of the grade.
func (g Grade) String() string {
	if str, ok := getGradeStrings()[g]; ok {
		return str
	}
	return "UNKNOWN"
}
