package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// Recorder wraps an input source and records every event it produces
type Recorder struct {
	source    game.InputSource
	data      ReplayData
	recording bool
	frame     int
	err       error
}

// NewRecorder creates a recorder that forwards events from source
func NewRecorder(source game.InputSource) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Poll forwards the wrapped source's events and records them.
func (r *Recorder) Poll() []scene.Event {
	evs := r.source.Poll()
	if r.recording {
		r.RecordFrame(evs)
	}
	return evs
}

// RecordFrame records a single frame's events. Events that cannot be
// encoded are skipped; the first such failure is kept and reported by Err.
func (r *Recorder) RecordFrame(evs []scene.Event) {
	if !r.recording {
		return
	}

	fi := FrameInput{F: r.frame}
	for _, ev := range evs {
		rec, err := Encode(ev)
		if err != nil {
			if r.err == nil {
				r.err = fmt.Errorf("frame %d: %w", r.frame, err)
			}
			continue
		}
		fi.Events = append(fi.Events, rec)
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Done reports whether the wrapped source has run out.
func (r *Recorder) Done() bool {
	f, ok := r.source.(game.FiniteSource)
	return ok && f.Done()
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Err returns the first event that could not be recorded.
func (r *Recorder) Err() error {
	return r.err
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
