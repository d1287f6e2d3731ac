package scanner

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/EricBell/local-project-manager/internal/models"
)

// typeMarkers binds a project type to the manifest files that identify it.
// Markers containing a wildcard are matched against the directory's direct
// entries; everything else is a plain existence check.
type typeMarkers struct {
	Type    models.ProjectType
	Markers []string
}

// markerTable is ordered: when a directory carries manifests for several
// ecosystems, the first matching row wins.
var markerTable = []typeMarkers{
	{models.TypePython, []string{"pyproject.toml", "setup.py", "requirements.txt"}},
	{models.TypeNodeJS, []string{"package.json"}},
	{models.TypeRust, []string{"Cargo.toml"}},
	{models.TypeGo, []string{"go.mod"}},
	{models.TypeJava, []string{"pom.xml", "build.gradle"}},
	{models.TypePHP, []string{"composer.json"}},
	{models.TypeCSharp, []string{"*.csproj", "*.sln"}},
	{models.TypeRuby, []string{"Gemfile"}},
}

// readmeNames is the fixed probe order for README detection.
var readmeNames = []string{
	"README.md",
	"README.txt",
	"readme.md",
	"readme.txt",
	"Readme.md",
	"Readme.txt",
}

// DetectType infers the project type of dir from its direct entries.
// Unreadable directories report models.TypeUnknown.
func DetectType(dir string) models.ProjectType {
	for _, row := range markerTable {
		for _, marker := range row.Markers {
			if matchMarker(dir, marker) {
				return row.Type
			}
		}
	}
	return models.TypeUnknown
}

func matchMarker(dir, marker string) bool {
	if !containsWildcard(marker) {
		_, err := os.Stat(filepath.Join(dir, marker))
		return err == nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if ok, err := doublestar.Match(marker, entry.Name()); err == nil && ok {
			return true
		}
	}
	return false
}

func containsWildcard(marker string) bool {
	for _, r := range marker {
		if r == '*' || r == '?' || r == '[' {
			return true
		}
	}
	return false
}

// FindReadme returns the path of the first README variant found directly in
// dir, or "" when none exists.
func FindReadme(dir string) string {
	for _, name := range readmeNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// IsProject reports whether dir looks like a project: it has a VCS marker,
// a README, or any manifest marker.
func IsProject(dir string) bool {
	if _, err := os.Lstat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	if FindReadme(dir) != "" {
		return true
	}
	return DetectType(dir) != models.TypeUnknown
}
