package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/scenestack/internal/application/scene"
)

// Replayer plays recorded frames back as an input source
type Replayer struct {
	frames [][]scene.Event
	frame  int
}

// NewReplayer decodes data into a replayer. It fails on the first event it
// cannot decode.
func NewReplayer(data ReplayData) (*Replayer, error) {
	frames := make([][]scene.Event, len(data.Frames))
	for i, fi := range data.Frames {
		for _, rec := range fi.Events {
			ev, err := rec.Decode()
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", fi.F, err)
			}
			frames[i] = append(frames[i], ev)
		}
	}
	return &Replayer{frames: frames}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the events of the current frame and advances. Once the
// recording is exhausted it returns nil.
func (r *Replayer) Poll() []scene.Event {
	if r.frame >= len(r.frames) {
		return nil
	}
	evs := r.frames[r.frame]
	r.frame++
	return evs
}

// Done reports whether every recorded frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
