package analyzer

import "fmt"

// Verdict maps a classification into the tiered user-facing message.
// Tier boundaries are exclusive on the upper side: a confidence of
// exactly 0.8 falls into the middle tier, not the top one.
func Verdict(isPhishing bool, confidence float64) string {
	pct := fmt.Sprintf("%.1f%%", confidence*100)

	if isPhishing {
		switch {
		case confidence > 0.8:
			return fmt.Sprintf("⚠️ HIGH RISK: This link appears to be a phishing attempt with %s confidence. Proceed with extreme caution.", pct)
		case confidence > 0.6:
			return fmt.Sprintf("⚠️ SUSPICIOUS: This link shows signs of phishing with %s confidence. Consider avoiding this link.", pct)
		default:
			return fmt.Sprintf("⚠️ POTENTIAL RISK: This link has some suspicious characteristics with %s confidence.", pct)
		}
	}

	switch {
	case confidence > 0.8:
		return fmt.Sprintf("✅ SAFE: This link appears legitimate with %s confidence.", pct)
	case confidence > 0.6:
		return fmt.Sprintf("✅ LIKELY SAFE: This link appears to be legitimate with %s confidence.", pct)
	default:
		return "⚠️ UNCERTAIN: Unable to determine with high confidence. Proceed with caution."
	}
}
