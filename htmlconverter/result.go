package htmlconverter

import "github.com/rgonek/draftail-anchors/converter"

// Result holds the output of an HTML to content state conversion.
type Result struct {
	ContentState converter.ContentState `json:"contentState"`
	Warnings     []converter.Warning    `json:"warnings,omitempty"`
}
