package services

import (
	"time"

	"mrm-cyber-api/models"
)

// SampleIncidents synthesizes the demo incident feed. Incidents are never
// persisted; each request gets fresh timestamps.
func SampleIncidents(now time.Time) []models.Incident {
	return []models.Incident{
		{
			Country:           "US",
			Type:              "DDoS",
			Severity:          models.SeverityHigh,
			Time:              now,
			Description:       "Large-scale DDoS on hosting provider.",
			MitreAttackVector: "T1498",
		},
		{
			Country:           "DE",
			Type:              "Malware",
			Severity:          models.SeverityMedium,
			Time:              now,
			Description:       "Emotet activity resurgence.",
			MitreAttackVector: "T1204",
		},
		{
			Country:           "IN",
			Type:              "Phishing",
			Severity:          models.SeverityLow,
			Time:              now,
			Description:       "Targeted phishing campaign detected.",
			MitreAttackVector: "T1566",
		},
	}
}
