package views

import (
	"bytes"
	"encoding/json"

	"github.com/hitrip/tripops/pkg/altplace"
	"github.com/hitrip/tripops/pkg/api/types/places"
)

// Alternative is an alternative place recommended for a Place.
type Alternative struct {
	PlaceId     int             `json:"place_id"`
	Recognized  bool            `json:"recognized"`
	Alternative *altplace.Place `json:"alternative,omitempty"`
	Reason      string          `json:"reason,omitempty"`

	// Raw is the hint as the backend sent, when it is not recognized.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// AlternativeOf reads the alternative place hint of p.
func AlternativeOf(p places.Place) Alternative {
	alt := Alternative{PlaceId: p.Id}
	if raw := bytes.TrimSpace(p.AlternativePlaceInfo); len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		alt.Reason = "no alternative place"
		return alt
	}
	switch r := altplace.Normalize(p.AlternativePlaceInfo).(type) {
	case altplace.Recognized:
		alt.Recognized = true
		alt.Alternative = &r.Place
	case altplace.Unrecognized:
		alt.Reason = r.Reason
		alt.Raw = p.AlternativePlaceInfo
	}
	return alt
}
