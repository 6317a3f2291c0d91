// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package facade

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/mrjoshuak/timelinecore/tracks"
)

// Snapshot is the byte-stable wire form of a tracks.Model used to
// encode/decode history entries for diffing, logging, and test replay.
type Snapshot struct {
	Tracks []*tracks.Track `json:"tracks"`
}

// CurrentSnapshot captures the facade's current tracks.
func (f *Facade) CurrentSnapshot() Snapshot {
	return Snapshot{Tracks: tracks.CloneTracks(f.model.Tracks)}
}

// EncodeSnapshot marshals s with sonic.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := sonic.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("facade: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot unmarshals data produced by EncodeSnapshot, sanitizing
// non-standard JSON float values (Inf/NaN) to null before handing the
// bytes to sonic.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := sonic.Unmarshal(sanitizeJSON(data), &s); err != nil {
		return Snapshot{}, fmt.Errorf("facade: decode snapshot: %w", err)
	}
	return s, nil
}

// RestoreSnapshot installs s as the facade's current tracks via history
// so the restore itself is undoable.
func (f *Facade) RestoreSnapshot(s Snapshot) {
	f.applyModel(f.model.WithTracks(tracks.CloneTracks(s.Tracks)))
}

// sanitizeJSON replaces the non-standard Inf/-Infinity/NaN literals a
// float64 can marshal to with null, so a snapshot surviving a brief
// excursion through an invalid duration still decodes.
func sanitizeJSON(data []byte) []byte {
	if !bytes.Contains(data, []byte("Inf")) && !bytes.Contains(data, []byte("NaN")) {
		return data
	}
	replacer := strings.NewReplacer("-Infinity", "null", "Infinity", "null", "NaN", "null")
	return []byte(replacer.Replace(string(data)))
}
