package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeDisplay(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo int
		want    string
	}{
		{"today", 0, "today"},
		{"one day", 1, "1d ago"},
		{"days", 5, "5d ago"},
		{"one week", 8, "1w ago"},
		{"weeks", 21, "3w ago"},
		{"one month", 35, "1mo ago"},
		{"months", 120, "4mo ago"},
		{"one year", 400, "1y ago"},
		{"years", 800, "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Project{LastModified: time.Now().Add(-time.Duration(tt.daysAgo)*24*time.Hour - time.Hour)}
			assert.Equal(t, tt.want, p.AgeDisplay())
		})
	}
}

func TestStatusIcon(t *testing.T) {
	dirty := StatusDirty

	recent := &Project{HasVCS: true, VCSStatus: &dirty, LastModified: time.Now()}
	assert.Equal(t, "✓ ⚡ ⚠", recent.StatusIcon())

	old := &Project{LastModified: time.Now().Add(-90 * 24 * time.Hour)}
	assert.Equal(t, "✗", old.StatusIcon())
}

func TestHasRemoteAndReadme(t *testing.T) {
	p := &Project{}
	assert.False(t, p.HasRemote())
	assert.False(t, p.HasReadme())

	p.VCSRemote = "git@github.com:me/thing.git"
	p.ReadmePath = "/tmp/thing/README.md"
	assert.True(t, p.HasRemote())
	assert.True(t, p.HasReadme())
}
