package models

import (
	"encoding/json"
	"fmt"
)

// Facilities is the fixed set of capabilities a room can offer. A flag is
// true when the room has the facility; requests reuse the same shape, where
// true means the facility is required and false imposes no constraint.
type Facilities struct {
	Projector  bool `json:"projector"`
	Lab        bool `json:"lab"`
	Accessible bool `json:"accessible"`
	Whiteboard bool `json:"whiteboard"`
	Audio      bool `json:"audio"`
	Smartboard bool `json:"smartboard"`
}

// UnmarshalJSON accepts a name-to-bool object and rejects names outside the
// fixed vocabulary. Silently dropping an unknown required facility would
// turn an impossible request into a satisfiable one.
func (f *Facilities) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, enabled := range raw {
		switch name {
		case "projector":
			f.Projector = enabled
		case "lab":
			f.Lab = enabled
		case "accessible":
			f.Accessible = enabled
		case "whiteboard":
			f.Whiteboard = enabled
		case "audio":
			f.Audio = enabled
		case "smartboard":
			f.Smartboard = enabled
		default:
			return fmt.Errorf("unknown facility %q", name)
		}
	}
	return nil
}

// Covers reports whether f satisfies every facility required by req.
func (f Facilities) Covers(req Facilities) bool {
	if req.Projector && !f.Projector {
		return false
	}
	if req.Lab && !f.Lab {
		return false
	}
	if req.Accessible && !f.Accessible {
		return false
	}
	if req.Whiteboard && !f.Whiteboard {
		return false
	}
	if req.Audio && !f.Audio {
		return false
	}
	if req.Smartboard && !f.Smartboard {
		return false
	}
	return true
}
