package position

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valid employment types. The store rejects anything outside this set.
const (
	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
)

// ValidTypes lists the allowed values for the Type field, in display order.
var ValidTypes = []string{TypeFullTime, TypePartTime, TypeContract, TypeInternship}

// IsValidType reports whether t is one of the enumerated employment types.
func IsValidType(t string) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Position is the persistent job-position model.
type Position struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title               string             `json:"title" bson:"title"`
	Department          string             `json:"department" bson:"department"`
	Location            string             `json:"location" bson:"location"`
	Type                string             `json:"type" bson:"type"`
	Description         string             `json:"description" bson:"description"`
	DetailedDescription string             `json:"detailedDescription" bson:"detailedDescription"`
	Requirements        []string           `json:"requirements" bson:"requirements"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UpdateFields carries a partial update; only non-nil fields overwrite,
// so a PUT that omits a field never clears it.
type UpdateFields struct {
	Title               *string   `json:"title"`
	Department          *string   `json:"department"`
	Location            *string   `json:"location"`
	Type                *string   `json:"type"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailedDescription"`
	Requirements        *[]string `json:"requirements"`
}
