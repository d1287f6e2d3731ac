package scanner

import (
	"time"

	"github.com/EricBell/local-project-manager/internal/models"
)

// Default classification thresholds, overridable through configuration.
const (
	DefaultActiveDays       = 30
	DefaultDormantDays      = 180
	DefaultLargeThresholdMB = 10.0
	DefaultTinyThresholdMB  = 1.0
)

// Classify buckets a project by how recently it was touched. Projects inside
// the active window are Active when they have a remote or a README and
// Work-in-Progress otherwise; older projects decay to Dormant and then Stale.
func Classify(lastModified time.Time, hasRemote, hasReadme bool, activeDays, dormantDays int, now time.Time) models.Classification {
	age := int(now.Sub(lastModified).Hours() / 24)

	switch {
	case age <= activeDays:
		if hasRemote || hasReadme {
			return models.ClassActive
		}
		return models.ClassWIP
	case age <= dormantDays:
		return models.ClassDormant
	default:
		return models.ClassStale
	}
}

// Prunable reports whether a project is a removal candidate: only stale
// projects with no remote qualify, and then only when they are either large
// (worth archiving) or tiny (a throwaway experiment).
func Prunable(class models.Classification, hasRemote bool, sizeMB, largeThresholdMB, tinyThresholdMB float64) bool {
	if class != models.ClassStale {
		return false
	}
	if hasRemote {
		return false
	}
	return sizeMB > largeThresholdMB || sizeMB < tinyThresholdMB
}
