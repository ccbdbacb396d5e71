package app

import (
	"fmt"
	"log/slog"
)

// StepKey identifies an activity step for the image cache. Keying by
// position instead of step title means two steps sharing a title can never
// alias each other's illustration.
type StepKey struct {
	Week    int `json:"week"`
	Section int `json:"section"`
	Step    int `json:"step"`
}

// ImageStatus is the state of one image cache entry.
type ImageStatus int

const (
	ImageLoading ImageStatus = iota
	ImageReady
)

// ImageEntry is a populated image cache slot: either a request in flight
// or generated image data. Absent keys mean no image and no request.
type ImageEntry struct {
	Status   ImageStatus `json:"status"`
	MIMEType string      `json:"mime_type,omitempty"`
	Data     []byte      `json:"data,omitempty"`
}

// BeginImage marks a step's image as loading and reports whether a request
// should be issued. If an entry already exists for the key, loading or
// done, this is a no-op and no new request may be sent.
func (s *State) BeginImage(key StepKey) bool {
	if _, ok := s.Images[key]; ok {
		return false
	}
	s.Images[key] = &ImageEntry{Status: ImageLoading}
	return true
}

// CompleteImage applies the outcome of an image generation. On success the
// data replaces the loading marker; on failure, or a success carrying no
// image payload, the entry reverts to absent so a later request can retry.
// Failures are logged for diagnostics only; the user just sees "absent".
func (s *State) CompleteImage(key StepKey, mimeType string, data []byte, err error) {
	if err != nil || len(data) == 0 {
		if err != nil {
			slog.Warn("image generation failed", "week", key.Week, "section", key.Section, "step", key.Step, "error", err)
		}
		delete(s.Images, key)
		return
	}
	s.Images[key] = &ImageEntry{Status: ImageReady, MIMEType: mimeType, Data: data}
}

// ImageAt returns the cache entry for a step, if present.
func (s *State) ImageAt(key StepKey) (*ImageEntry, bool) {
	e, ok := s.Images[key]
	return e, ok
}

// ImagePrompt synthesizes the generation prompt for an activity step: the
// step's title and description plus the fixed style directive.
func ImagePrompt(title, desc string) string {
	return fmt.Sprintf("Professional 3D isometric illustration for a vocational computer course. "+
		"Scene: %s. Detail: %s. Style: clean, modern, educational, white background, "+
		"soft lighting, tech-focused.", title, desc)
}
