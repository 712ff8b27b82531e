package analytics

import "time"

// DataType tags a series with the health metric it measures. The tag is only
// used to select plausibility bounds, expected cadence and typical variability
// inside the quality assessor; the numeric engine itself is type-agnostic.
type DataType string

const (
	DataTypeWeight       DataType = "weight"
	DataTypeSteps        DataType = "steps"
	DataTypeHeartRate    DataType = "heart_rate"
	DataTypeBloodGlucose DataType = "blood_glucose"
	DataTypeBodyFat      DataType = "body_fat"
	DataTypeSleepHours   DataType = "sleep_hours"
	DataTypeCalories     DataType = "calories"
	DataTypeUnknown      DataType = "unknown"
)

// Profile describes the physiological expectations for a data type:
// the plausible value window, the expected sampling cadence and the
// coefficient of variation a healthy series typically shows.
type Profile struct {
	MinPlausible float64
	MaxPlausible float64
	Cadence      time.Duration
	TypicalCV    float64
}

var profiles = map[DataType]Profile{
	DataTypeWeight:       {MinPlausible: 20, MaxPlausible: 400, Cadence: 24 * time.Hour, TypicalCV: 0.02},
	DataTypeSteps:        {MinPlausible: 0, MaxPlausible: 100000, Cadence: 24 * time.Hour, TypicalCV: 0.45},
	DataTypeHeartRate:    {MinPlausible: 25, MaxPlausible: 230, Cadence: time.Hour, TypicalCV: 0.15},
	DataTypeBloodGlucose: {MinPlausible: 20, MaxPlausible: 600, Cadence: 6 * time.Hour, TypicalCV: 0.20},
	DataTypeBodyFat:      {MinPlausible: 2, MaxPlausible: 70, Cadence: 24 * time.Hour, TypicalCV: 0.03},
	DataTypeSleepHours:   {MinPlausible: 0, MaxPlausible: 24, Cadence: 24 * time.Hour, TypicalCV: 0.20},
	DataTypeCalories:     {MinPlausible: 0, MaxPlausible: 20000, Cadence: 24 * time.Hour, TypicalCV: 0.30},
}

// defaultProfile is used for unknown data types: no plausibility rejection,
// daily cadence, moderate variability.
var defaultProfile = Profile{
	MinPlausible: -1e308,
	MaxPlausible: 1e308,
	Cadence:      24 * time.Hour,
	TypicalCV:    0.25,
}

// ProfileFor returns the profile for a data type, falling back to a
// permissive default for unknown types.
func ProfileFor(dt DataType) Profile {
	if p, ok := profiles[dt]; ok {
		return p
	}
	return defaultProfile
}

// IsPlausible reports whether a value falls inside the plausible window
// for the data type. This models plausibility, not hard validation.
func (p Profile) IsPlausible(value float64) bool {
	return value >= p.MinPlausible && value <= p.MaxPlausible
}
