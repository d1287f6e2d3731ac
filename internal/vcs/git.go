package vcs

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/EricBell/local-project-manager/internal/models"
)

// GitInspector implements Inspector by shelling out to the git binary.
type GitInspector struct{}

// NewGitInspector returns an Inspector backed by the git CLI.
func NewGitInspector() *GitInspector {
	return &GitInspector{}
}

func gitCmd(path string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", path}, args...)
	out, err := exec.Command("git", fullArgs...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Inspect gathers git facts for path. A missing .git entry yields
// Present=false; a .git entry whose repository cannot be read yields
// Present=true with Remote and Status unknown.
func (g *GitInspector) Inspect(path string) Info {
	if _, err := os.Lstat(filepath.Join(path, ".git")); err != nil {
		return Info{}
	}

	// Marker exists. If git itself cannot make sense of the repo, report
	// presence with unknown facts instead of failing.
	if _, err := gitCmd(path, "rev-parse", "--git-dir"); err != nil {
		return Info{Present: true}
	}

	remote := g.resolveRemote(path)
	status := g.resolveStatus(path, remote)
	return Info{Present: true, Remote: remote, Status: status}
}

// resolveRemote picks the remote URL, preferring one literally named
// "origin", then the first remote in git's enumeration order.
func (g *GitInspector) resolveRemote(path string) string {
	out, err := gitCmd(path, "remote")
	if err != nil || out == "" {
		return ""
	}

	names := strings.Split(out, "\n")
	chosen := names[0]
	for _, name := range names {
		if name == "origin" {
			chosen = name
			break
		}
	}

	url, err := gitCmd(path, "remote", "get-url", chosen)
	if err != nil {
		return ""
	}
	return url
}

func (g *GitInspector) resolveStatus(path, remote string) *models.VCSStatus {
	if remote == "" {
		return statusPtr(models.StatusNoRemote)
	}

	porcelain, err := gitCmd(path, "status", "--porcelain")
	if err != nil {
		return nil
	}
	if porcelain != "" {
		return statusPtr(models.StatusDirty)
	}

	// Detached HEAD with a clean tree counts as clean.
	head, err := gitCmd(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil
	}
	if head == "HEAD" {
		return statusPtr(models.StatusClean)
	}

	// No tracking upstream means nothing to compare against.
	if _, err := gitCmd(path, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}"); err != nil {
		return statusPtr(models.StatusNoRemote)
	}

	out, err := gitCmd(path, "rev-list", "--count", "@{u}..HEAD")
	if err != nil {
		return statusPtr(models.StatusClean)
	}
	if ahead, err := strconv.Atoi(out); err == nil && ahead > 0 {
		return statusPtr(models.StatusUnpushed)
	}
	return statusPtr(models.StatusClean)
}

func statusPtr(s models.VCSStatus) *models.VCSStatus {
	return &s
}
