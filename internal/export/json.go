package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/san-kum/tweeny/internal/storage"
	"github.com/san-kum/tweeny/internal/trace"
	"github.com/san-kum/tweeny/internal/tween"
)

type RunData struct {
	storage.RunMetadata
	Elapsed []float64     `json:"elapsed_ms"`
	Values  []tween.Props `json:"values"`
}

// RunJSON writes a stored run and its frames as one indented JSON document.
func RunJSON(w io.Writer, meta storage.RunMetadata, frames []trace.Frame) error {
	data := RunData{
		RunMetadata: meta,
		Elapsed:     make([]float64, len(frames)),
		Values:      make([]tween.Props, len(frames)),
	}
	for i, f := range frames {
		data.Elapsed[i] = float64(f.Elapsed) / float64(time.Millisecond)
		data.Values[i] = f.Values
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
