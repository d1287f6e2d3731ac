package models

import (
	"fmt"
	"time"
)

// ProjectType identifies the language ecosystem of a project, inferred
// from manifest files in its directory.
type ProjectType string

const (
	TypePython  ProjectType = "Python"
	TypeNodeJS  ProjectType = "Node.js"
	TypeRust    ProjectType = "Rust"
	TypeGo      ProjectType = "Go"
	TypeJava    ProjectType = "Java"
	TypePHP     ProjectType = "PHP"
	TypeCSharp  ProjectType = "C#/.NET"
	TypeRuby    ProjectType = "Ruby"
	TypeUnknown ProjectType = "Unknown"
)

// VCSStatus describes the state of a project's version-control working tree
// relative to its remote.
type VCSStatus string

const (
	StatusClean    VCSStatus = "clean"
	StatusDirty    VCSStatus = "dirty"     // uncommitted or untracked changes
	StatusUnpushed VCSStatus = "unpushed"  // local commits ahead of upstream
	StatusNoRemote VCSStatus = "no_remote" // no remote or no tracking branch
)

// Classification is the derived health bucket of a project.
type Classification string

const (
	ClassActive  Classification = "Active"
	ClassWIP     Classification = "Work-in-Progress"
	ClassDormant Classification = "Dormant"
	ClassStale   Classification = "Stale"
)

// Project is a snapshot of one detected project directory. It is built once
// during a scan and never mutated; its identity is Path.
type Project struct {
	Path           string
	Name           string
	Type           ProjectType
	HasVCS         bool
	VCSRemote      string     // empty when no remote is configured or known
	VCSStatus      *VCSStatus // nil when HasVCS is false or facts are unknown
	ReadmePath     string     // empty when no README was found
	LastModified   time.Time
	SizeMB         float64
	Classification Classification
	Prunable       bool
}

// HasRemote reports whether a usable remote was resolved for the project.
func (p *Project) HasRemote() bool {
	return p.VCSRemote != ""
}

// HasReadme reports whether a README file was found in the project root.
func (p *Project) HasReadme() bool {
	return p.ReadmePath != ""
}

// AgeDays returns the whole days elapsed since the project was last touched.
func (p *Project) AgeDays() int {
	return int(time.Since(p.LastModified).Hours() / 24)
}

// AgeDisplay returns a compact human-readable age like "3d ago" or "2mo ago".
func (p *Project) AgeDisplay() string {
	days := p.AgeDays()
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1d ago"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1mo ago"
		}
		return fmt.Sprintf("%dmo ago", months)
	default:
		years := days / 365
		if years == 1 {
			return "1y ago"
		}
		return fmt.Sprintf("%dy ago", years)
	}
}

// StatusIcon returns the compact indicator column used by the scan table:
// git presence, recent activity, and pending local changes.
func (p *Project) StatusIcon() string {
	icon := "✗"
	if p.HasVCS {
		icon = "✓"
	}
	if p.AgeDays() < 7 {
		icon += " ⚡"
	}
	if p.VCSStatus != nil && (*p.VCSStatus == StatusDirty || *p.VCSStatus == StatusUnpushed) {
		icon += " ⚠"
	}
	return icon
}
