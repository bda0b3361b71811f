package alarm

import (
	"errors"
	"fmt"
)

var ErrUnknownSound = errors.New("unknown alarm sound")

// Sound is one entry of the wake-up sound catalog.
type Sound struct {
	ID  string
	URL string
}

var Sounds = []Sound{
	{ID: "forest", URL: "https://assets.mixkit.co/active_storage/sfx/2432/2432-preview.mp3"},
	{ID: "sea", URL: "https://assets.mixkit.co/active_storage/sfx/1110/1110-preview.mp3"},
	{ID: "water", URL: "https://assets.mixkit.co/active_storage/sfx/1114/1114-preview.mp3"},
	{ID: "birds", URL: "https://assets.mixkit.co/active_storage/sfx/2431/2431-preview.mp3"},
	{ID: "rain", URL: "https://assets.mixkit.co/active_storage/sfx/1112/1112-preview.mp3"},
	{ID: "wind", URL: "https://assets.mixkit.co/active_storage/sfx/1116/1116-preview.mp3"},
	{ID: "zen", URL: "https://assets.mixkit.co/active_storage/sfx/1118/1118-preview.mp3"},
}

// SoundIDs lists catalog ids in display order.
func SoundIDs() []string {
	ids := make([]string, len(Sounds))
	for i, s := range Sounds {
		ids[i] = s.ID
	}
	return ids
}

func LookupSound(id string) (Sound, error) {
	for _, s := range Sounds {
		if s.ID == id {
			return s, nil
		}
	}
	return Sound{}, fmt.Errorf("%w: %q", ErrUnknownSound, id)
}
