package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const bytesPerMB = 1 << 20

// DirSize sums the sizes of all regular files under dir and returns the
// total in binary megabytes. Unreadable files and subtrees contribute
// nothing; an unreadable dir reports 0.
func DirSize(dir string) float64 {
	var total int64

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip whatever could not be read and keep going.
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})

	return float64(total) / bytesPerMB
}

// LastModified returns the most recent modification time across dir itself
// and everything under it. Unreadable entries are ignored; if nothing under
// dir can be read the directory's own mtime is returned, and a completely
// inaccessible dir reports the zero time.
func LastModified(dir string) time.Time {
	var latest time.Time
	if info, err := os.Stat(dir); err == nil {
		latest = info.ModTime()
	}

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if mt := info.ModTime(); mt.After(latest) {
			latest = mt
		}
		return nil
	})

	return latest
}
