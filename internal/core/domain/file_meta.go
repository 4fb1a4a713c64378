package domain

import (
	"io/fs"
	"time"
)

// FileMeta is the subset of filesystem metadata the caches rely on.
type FileMeta struct {
	ModTime time.Time
	Size    int64
	Mode    fs.FileMode
}

// FileMetaFrom converts an fs.FileInfo.
func FileMetaFrom(info fs.FileInfo) FileMeta {
	return FileMeta{
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Mode:    info.Mode(),
	}
}

// IsRegular reports whether the metadata describes a regular file.
func (m FileMeta) IsRegular() bool {
	return m.Mode.IsRegular()
}

// IsDir reports whether the metadata describes a directory.
func (m FileMeta) IsDir() bool {
	return m.Mode.IsDir()
}

// Latest returns the later of a and b.
func Latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
