// Package scanner walks a directory tree, detects projects, and derives
// their health classification. The walk is read-only: filesystem errors
// degrade to partial results and are never surfaced to the caller.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/EricBell/local-project-manager/internal/models"
	"github.com/EricBell/local-project-manager/internal/vcs"
)

// ProgressFunc is called once per visited directory with the directory path
// and the number of projects found so far. It cannot halt the scan; a panic
// raised inside it propagates to the Scan caller.
type ProgressFunc func(path string, found int)

// Options configures a scan.
type Options struct {
	// IgnorePatterns are exact directory base names that are neither
	// evaluated nor descended into.
	IgnorePatterns []string

	ActiveDays  int
	DormantDays int

	LargeThresholdMB float64
	TinyThresholdMB  float64

	// Inspector supplies version-control facts. Defaults to the git CLI.
	Inspector vcs.Inspector

	// Progress, if set, receives per-directory progress updates.
	Progress ProgressFunc
}

// DefaultOptions returns scan options with the stock thresholds.
func DefaultOptions() Options {
	return Options{
		ActiveDays:       DefaultActiveDays,
		DormantDays:      DefaultDormantDays,
		LargeThresholdMB: DefaultLargeThresholdMB,
		TinyThresholdMB:  DefaultTinyThresholdMB,
	}
}

func (o *Options) validate() error {
	if o.ActiveDays < 0 || o.DormantDays < 0 {
		return fmt.Errorf("thresholds must be non-negative: active=%d dormant=%d", o.ActiveDays, o.DormantDays)
	}
	if o.DormantDays < o.ActiveDays {
		return fmt.Errorf("dormant threshold must not be below active: active=%d dormant=%d", o.ActiveDays, o.DormantDays)
	}
	if o.LargeThresholdMB < 0 || o.TinyThresholdMB < 0 {
		return fmt.Errorf("size thresholds must be non-negative: large=%.1f tiny=%.1f", o.LargeThresholdMB, o.TinyThresholdMB)
	}
	return nil
}

// Scan walks the tree rooted at root and returns every detected project in
// depth-first pre-order. The root itself is evaluated exactly once; every
// non-ignored child directory is both evaluated and descended into, so
// nested projects yield independent entries. The only errors are contract
// errors (bad root, negative thresholds) — everything else degrades to a
// partial result.
func Scan(root string, opts Options) ([]models.Project, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s: not a directory", root)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Inspector == nil {
		opts.Inspector = vcs.NewGitInspector()
	}

	var projects []models.Project

	if opts.Progress != nil {
		opts.Progress(root, 0)
	}
	if IsProject(root) {
		projects = append(projects, Evaluate(root, opts))
	}

	walk(root, opts, &projects)
	return projects, nil
}

// walk descends into the non-ignored, non-symlink child directories of dir,
// appending every detected project. Directories that cannot be read are
// skipped along with their subtrees.
func walk(dir string, opts Options, projects *[]models.Project) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		// DirEntry types come from lstat, so symlinked directories are
		// excluded here; that is the cycle-avoidance policy.
		if !entry.IsDir() {
			continue
		}
		if slices.Contains(opts.IgnorePatterns, entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if opts.Progress != nil {
			opts.Progress(path, len(*projects))
		}
		if IsProject(path) {
			*projects = append(*projects, Evaluate(path, opts))
		}
		walk(path, opts, projects)
	}
}

// Evaluate builds the Project record for a single directory. It does not
// recurse into children beyond the metadata aggregation and does not decide
// whether dir is a project; callers gate on IsProject first. A nil
// Inspector falls back to the git CLI, as in Scan.
func Evaluate(dir string, opts Options) models.Project {
	if opts.Inspector == nil {
		opts.Inspector = vcs.NewGitInspector()
	}
	info := opts.Inspector.Inspect(dir)
	readme := FindReadme(dir)
	lastModified := LastModified(dir)
	sizeMB := DirSize(dir)

	class := Classify(lastModified, info.Remote != "", readme != "", opts.ActiveDays, opts.DormantDays, time.Now())
	prunable := Prunable(class, info.Remote != "", sizeMB, opts.LargeThresholdMB, opts.TinyThresholdMB)

	return models.Project{
		Path:           dir,
		Name:           filepath.Base(dir),
		Type:           DetectType(dir),
		HasVCS:         info.Present,
		VCSRemote:      info.Remote,
		VCSStatus:      info.Status,
		ReadmePath:     readme,
		LastModified:   lastModified,
		SizeMB:         sizeMB,
		Classification: class,
		Prunable:       prunable,
	}
}
