package analytics

// Severity buckets a figure for badge display.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// OvertimeSeverity tiers overtime hours.
func OvertimeSeverity(hours float64) Severity {
	switch {
	case hours <= 0:
		return SeverityNone
	case hours < 5:
		return SeverityLow
	case hours < 10:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// LatenessSeverity tiers minutes late.
func LatenessSeverity(minutes int) Severity {
	switch {
	case minutes <= 10:
		return SeverityLow
	case minutes <= 30:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
