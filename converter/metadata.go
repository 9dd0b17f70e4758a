package converter

// Metadata is the document property set written into a docx package.
type Metadata struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Comment     string `json:"comment"`
}

// MetadataFromSummary fills every property from the one-line summary.
func MetadataFromSummary(summary string) Metadata {
	return Metadata{
		Title:       summary,
		Subject:     summary,
		Description: summary,
		Comment:     summary,
	}
}
