package converter

// Result holds the output of a conversion.
type Result struct {
	Data     []byte    `json:"data"`
	Format   Format    `json:"format"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningDroppedFeature   WarningType = "dropped_feature"
	WarningUnbalancedMarker WarningType = "unbalanced_marker"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type      WarningType `json:"type"`
	BlockKind string      `json:"blockKind,omitempty"`
	Line      int         `json:"line"`
	Message   string      `json:"message"`
}
