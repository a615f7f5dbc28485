package model

// TapRequest identifies the tapped pitch in one of three ways; exactly one
// of Pitch, Note or Position is expected.
type TapRequest struct {
	Pitch    *int          `json:"pitch,omitempty" validate:"omitempty,min=0,max=127"`
	Note     string        `json:"note,omitempty" validate:"omitempty,max=4"`
	Position *FretPosition `json:"position,omitempty"`

	// only used by the stateless endpoint
	State *SelectionBody `json:"state,omitempty"`
}

type FretPosition struct {
	String int `json:"string" validate:"min=0"`
	Fret   int `json:"fret" validate:"min=0"`
}

type SelectionBody struct {
	Root            string `json:"root"`
	ReferenceOctave int    `json:"reference_octave"`
	Intervals       []int  `json:"intervals"`
	Octaves         []int  `json:"octaves"`
}

type SelectionResponse struct {
	SessionId string        `json:"session_id,omitempty"`
	Mode      ViewMode      `json:"mode,omitempty"`
	State     string        `json:"state"`
	Selection SelectionBody `json:"selection"`
	Notes     []string      `json:"notes"`
	Labels    []string      `json:"labels"`
	Key       string        `json:"key"`
}

type ModeRequest struct {
	Mode ViewMode `json:"mode" validate:"required,oneof=scale chord interval"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
