package scoring

// Risk describes the likelihood of ATS rejection for display on a gauge.
type Risk struct {
	RejectionPct    int    `json:"rejectionPct"`
	Level           string `json:"level"`
	Message         string `json:"message"`
	PointerPosition int    `json:"pointerPosition"`
}

// ComputeRisk bands the rejection percentage (the ATS score's complement)
// into Low, Moderate, or High with a fixed advisory message.
func ComputeRisk(atsScore int) Risk {
	rejectionPct := 100 - atsScore

	var level, message string
	switch {
	case rejectionPct <= riskLowMax:
		level = "Low"
		message = "Your resume has a good chance of passing ATS filters."
	case rejectionPct <= riskModerateMax:
		level = "Moderate"
		message = "Your resume has a moderate chance of rejection due to missing keywords."
	default:
		level = "High"
		message = "Your resume is at high risk of ATS rejection. Consider adding more relevant keywords."
	}

	return Risk{
		RejectionPct:    rejectionPct,
		Level:           level,
		Message:         message,
		PointerPosition: rejectionPct,
	}
}
