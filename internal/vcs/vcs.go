// Package vcs inspects version-control state for scanned directories.
// The scanner depends only on the Inspector interface so tests can supply
// canned facts without a git binary.
package vcs

import "github.com/EricBell/local-project-manager/internal/models"

// Info is the snapshot of version-control facts for one directory.
//
// Present is true whenever a VCS marker directory exists, even if its
// metadata turned out to be unreadable. Remote is empty when no remote is
// configured or nothing could be resolved. Status is nil when Present is
// false, or when the metadata was too broken to determine anything.
type Info struct {
	Present bool
	Remote  string
	Status  *models.VCSStatus
}

// Inspector reports version-control facts for a path. Implementations must
// never fail: unreadable or corrupt repositories degrade to
// "present, facts unknown" rather than returning an error.
type Inspector interface {
	Inspect(path string) Info
}
