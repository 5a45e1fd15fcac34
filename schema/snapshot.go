package schema

// AgeGenderSnapshotCollection - mongo collection of archived England age/gender snapshots
const AgeGenderSnapshotCollection = "age_gender_snapshots"

// Gender - label of an age/gender breakdown list
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Rank orders genders the way the dashboard groups them
func (g Gender) Rank() int {
	switch g {
	case GenderMale:
		return 0
	case GenderFemale:
		return 1
	default:
		return 2
	}
}

// AgeCount is one bracket of a cumulative per-gender breakdown
type AgeCount struct {
	Age   string  `json:"age" bson:"age"`
	Rate  float64 `json:"rate" bson:"rate"`
	Value int64   `json:"value" bson:"value"`
}

// AgeGenderCount is an AgeCount tagged with its gender
type AgeGenderCount struct {
	Age    string `json:"age" bson:"age"`
	Gender Gender `json:"gender" bson:"gender"`
	Count  int64  `json:"count" bson:"count"`
}

// AgeGenderSnapshot is one day of England's cumulative cases broken down by age and gender
type AgeGenderSnapshot struct {
	Date     Date       `json:"date" bson:"date"`
	AreaName string     `json:"areaName" bson:"area_name"`
	Male     []AgeCount `json:"maleCases" bson:"male"`
	Female   []AgeCount `json:"femaleCases" bson:"female"`
}

// Counts flattens both lists into gender-tagged rows, male rows first, keeping feed order
func (s AgeGenderSnapshot) Counts() []AgeGenderCount {
	counts := make([]AgeGenderCount, 0, len(s.Male)+len(s.Female))
	for _, c := range s.Male {
		counts = append(counts, AgeGenderCount{Age: c.Age, Gender: GenderMale, Count: c.Value})
	}
	for _, c := range s.Female {
		counts = append(counts, AgeGenderCount{Age: c.Age, Gender: GenderFemale, Count: c.Value})
	}
	return counts
}

// AgeGenderDelta is the day-over-day change for one (age, gender) bucket.
// Revised is set when the change is negative, which happens when the
// upstream corrects previously published counts.
type AgeGenderDelta struct {
	Age     string `json:"age"`
	Gender  Gender `json:"gender"`
	Delta   int64  `json:"delta"`
	Revised bool   `json:"revised,omitempty"`
}

// AgeGenderStructure is the field projection requested for age/gender snapshots
func AgeGenderStructure() map[string]string {
	return map[string]string{
		FieldDate:       FieldDate,
		FieldAreaName:   FieldAreaName,
		FieldMaleCases:  FieldMaleCases,
		FieldFemaleCase: FieldFemaleCase,
	}
}
