package analytics

// Policy bundles the named, overridable constants that tune classification,
// anomaly scoring and forecasting. The zero value is not usable; start from
// DefaultPolicy and override individual fields from configuration.
type Policy struct {
	// SmoothingAlpha is the exponential moving average factor used when
	// building the smoothed trend curve. Expected in (0,1].
	SmoothingAlpha float64

	// SlopeThreshold is the normalized slope magnitude below which a
	// series classifies as stable.
	SlopeThreshold float64

	// VolatilityThreshold is the coefficient-of-variation level above
	// which a series classifies as volatile, regardless of net slope.
	VolatilityThreshold float64

	// ZScoreMultiplier is the |z| level above which DetectOutliers flags
	// a value under the zscore method.
	ZScoreMultiplier float64

	// IQRMultiplier is the fence multiplier for the iqr outlier method.
	IQRMultiplier float64

	// AnomalySensitivity is the default deviation-score gate for
	// DetectAnomalies when the caller does not supply one.
	AnomalySensitivity float64

	// SeverityHighFactor and SeverityCriticalFactor scale the sensitivity
	// into the medium/high and high/critical severity boundaries.
	SeverityHighFactor     float64
	SeverityCriticalFactor float64

	// ConfidenceFitWeight and ConfidenceSizeWeight combine regression fit
	// quality and sample count into the analysis confidence score.
	ConfidenceFitWeight  float64
	ConfidenceSizeWeight float64

	// ConfidenceFullSampleSize is the record count at which the sample
	// contribution to confidence saturates.
	ConfidenceFullSampleSize int

	// MinConfidence floors the confidence for any valid analysis so it
	// stays strictly positive.
	MinConfidence float64

	// ForecastDailyDecay is the per-day multiplicative confidence decay
	// applied to predictions; forecasting never increases certainty.
	ForecastDailyDecay float64

	// ForecastValidity is how long a prediction stays valid, in days,
	// counted from the moment it is produced.
	ForecastValidityDays int

	// GapFactor scales the expected cadence into the interval beyond
	// which a data gap is reported (daily cadence -> gap after ~1.5 days).
	GapFactor float64
}

// DefaultPolicy returns the release policy values
func DefaultPolicy() Policy {
	return Policy{
		SmoothingAlpha:           0.3,
		SlopeThreshold:           0.005,
		VolatilityThreshold:      0.3,
		ZScoreMultiplier:         1.5,
		IQRMultiplier:            1.5,
		AnomalySensitivity:       2.0,
		SeverityHighFactor:       1.5,
		SeverityCriticalFactor:   2.0,
		ConfidenceFitWeight:      0.6,
		ConfidenceSizeWeight:     0.4,
		ConfidenceFullSampleSize: 30,
		MinConfidence:            0.1,
		ForecastDailyDecay:       0.97,
		ForecastValidityDays:     7,
		GapFactor:                1.5,
	}
}
