// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package thumbnail

import (
	"github.com/absfs/absfs"
	"github.com/absfs/memfs"
)

// NewMemCache returns a Cache backed by an in-memory absfs.FileSystem
// (github.com/absfs/memfs), suitable for a process-lifetime sprite
// cache that never touches disk.
func NewMemCache(source FrameSource, dir string) (*Cache, error) {
	fs, err := memfs.NewFS()
	if err != nil {
		return nil, err
	}
	return New(fs, source, dir), nil
}

// NewFSCache returns a Cache backed by any absfs.FileSystem (os-backed
// via github.com/absfs/osfs, memory-backed via memfs, or otherwise),
// letting the caller choose durability.
func NewFSCache(fs absfs.FileSystem, source FrameSource, dir string) *Cache {
	return New(fs, source, dir)
}
