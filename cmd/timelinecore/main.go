// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Command timelinecore launches an interactive terminal timeline editor
// over a small demo composition.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/media"
	"github.com/mrjoshuak/timelinecore/tracks"
	"github.com/mrjoshuak/timelinecore/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "timelinecore:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := timelinecore.DefaultConfig()
	m := tui.New(cfg, demoTracks())
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// demoTracks seeds a short video/audio/text composition so the editor
// opens with something to select, split, and reorder.
func demoTracks() []*tracks.Track {
	video := tracks.NewTrack("video-1", "Video")
	video.Items = []*tracks.Item{
		{ID: "clip-a", TrackID: "video-1", Start: 0, End: 4, Label: "Intro", Type: tracks.TypeVideo, Media: media.NewRef(0, 30, 1)},
		{ID: "clip-b", TrackID: "video-1", Start: 4, End: 10, Label: "Main", Type: tracks.TypeVideo, Media: media.NewRef(4, 60, 1)},
	}

	audio := tracks.NewTrack("audio-1", "Audio")
	audio.Items = []*tracks.Item{
		{ID: "music-a", TrackID: "audio-1", Start: 0, End: 10, Label: "Score", Type: tracks.TypeAudio, Media: media.NewRef(0, 20, 1)},
	}

	titles := tracks.NewTrack("text-1", "Titles")
	titles.Items = []*tracks.Item{
		{ID: "title-a", TrackID: "text-1", Start: 0, End: 2, Label: "Opening title", Type: tracks.TypeText},
	}

	return []*tracks.Track{video, audio, titles}
}
