package converter

// Result holds the output of a conversion.
type Result struct {
	HTML     string    `json:"html"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownBlock        WarningType = "unknown_block"
	WarningUnknownEntity       WarningType = "unknown_entity"
	WarningUnknownStyle        WarningType = "unknown_style"
	WarningDroppedFeature      WarningType = "dropped_feature"
	WarningMissingAttribute    WarningType = "missing_attribute"
	WarningUnresolvedReference WarningType = "unresolved_reference"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
