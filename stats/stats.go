// Package stats reduces a decoded sequence to summary numbers for the
// report command.
package stats

import "github.com/jsphweid/midiseq/model"

type TrackStats struct {
	Name         string
	Program      uint8
	Channel      uint8
	IsDrum       bool
	NoteCount    int
	MinPitch     uint8
	MaxPitch     uint8
	ControlCount int
}

type FileStats struct {
	TrackCount int
	NoteCount  int
	// Beats is the end of the last note, in quarter notes.
	Beats  float64
	Tempos int
	Tracks []TrackStats
}

func collectTrack(tr model.Track) TrackStats {
	ts := TrackStats{
		Name:     tr.Name,
		Program:  tr.Program,
		Channel:  tr.Channel,
		IsDrum:   tr.IsDrum,
		MinPitch: 127,
	}
	ts.NoteCount = len(tr.Notes)
	if ts.NoteCount == 0 {
		ts.MinPitch = 0
	}
	for _, n := range tr.Notes {
		if n.Pitch < ts.MinPitch {
			ts.MinPitch = n.Pitch
		}
		if n.Pitch > ts.MaxPitch {
			ts.MaxPitch = n.Pitch
		}
	}
	for _, curve := range tr.Controls {
		ts.ControlCount += len(curve)
	}
	return ts
}

func Collect(seq *model.Sequence) FileStats {
	var fs FileStats
	fs.TrackCount = len(seq.Tracks)
	fs.Tempos = len(seq.Tempos)
	for _, tr := range seq.Tracks {
		ts := collectTrack(tr)
		fs.NoteCount += ts.NoteCount
		fs.Tracks = append(fs.Tracks, ts)
		for _, n := range tr.Notes {
			if n.End() > fs.Beats {
				fs.Beats = n.End()
			}
		}
	}
	return fs
}
