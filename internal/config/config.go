package config

import (
	"encoding/json"
	"path/filepath"

	"culler/internal/domain"
)

// Document is the persisted configuration. The JSON field names are the
// on-disk schema; the v1 shape carried only src and keep, v2 added the
// mapping and option sections.
type Document struct {
	SourceRoot string         `json:"src"`
	KeepRoot   string         `json:"keep"`
	RejectRoot string         `json:"reject"`
	Buttons    ButtonMappings `json:"button_mappings"`
	Wheel      WheelMappings  `json:"wheel_mappings"`
	Options    Options        `json:"options"`
}

type ButtonMappings struct {
	LeftClick  domain.Action `json:"left_click"`
	RightClick domain.Action `json:"right_click"`
}

type WheelMappings struct {
	WheelUp   domain.Action `json:"wheel_up"`
	WheelDown domain.Action `json:"wheel_down"`
}

type Options struct {
	RecursiveLoading bool `json:"recursive_loading"`
}

// rejectDirName is the conventional reject folder used when no explicit
// reject root is configured.
const rejectDirName = "_REJECTS"

func DefaultDocument() Document {
	return Document{
		Buttons: ButtonMappings{
			LeftClick:  domain.ActionKeep,
			RightClick: domain.ActionReject,
		},
		Wheel: WheelMappings{
			WheelUp:   domain.ActionPrevious,
			WheelDown: domain.ActionNext,
		},
		Options: Options{RecursiveLoading: false},
	}
}

// RejectDir resolves the reject destination: the configured root when set,
// otherwise the _REJECTS subfolder of the source root.
func (doc Document) RejectDir() string {
	if doc.RejectRoot != "" {
		return doc.RejectRoot
	}
	if doc.SourceRoot == "" {
		return ""
	}
	return filepath.Join(doc.SourceRoot, rejectDirName)
}

// Mapping returns the configured action for one of the four physical-event
// identifiers, or false for an identifier outside the schema.
func (doc Document) Mapping(event string) (domain.Action, bool) {
	switch event {
	case "left_click":
		return doc.Buttons.LeftClick, true
	case "right_click":
		return doc.Buttons.RightClick, true
	case "wheel_up":
		return doc.Wheel.WheelUp, true
	case "wheel_down":
		return doc.Wheel.WheelDown, true
	default:
		return "", false
	}
}

// toRaw converts a typed document to its nested-map form, the shape the
// dotted-path accessors and the raw validator operate on.
func toRaw(doc Document) map[string]any {
	data, err := json.Marshal(doc)
	if err != nil {
		return map[string]any{}
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return map[string]any{}
	}
	return raw
}

func decodeDocument(raw map[string]any) (Document, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
