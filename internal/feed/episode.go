package feed

import "github.com/samber/mo"

// Episode is one finalized feed item
type Episode struct {
	Title       string            `json:"title" example:"episode #1"`
	Description string            `json:"description" example:"In this episode..."`
	AudioURL    mo.Option[string] `json:"audio_url" swaggertype:"string" example:"https://example.com/ep1.mp3"`
}

// HasAudio reports whether the episode carries an enclosure URL
func (e Episode) HasAudio() bool {
	return e.AudioURL.IsPresent()
}
