package models

// ReportArtifact describes a report written to disk
type ReportArtifact struct {
	Name     string `json:"name"`
	HTMLPath string `json:"htmlPath"`
	PDFPath  string `json:"pdfPath,omitempty"` // empty when PDF export is disabled
}

// SyncReport summarizes a barcode sync run
type SyncReport struct {
	Total      int      `json:"total"`
	Downloaded int      `json:"downloaded"`
	Skipped    int      `json:"skipped"`
	Failed     []string `json:"failed"` // "<sku>: <error>"
}
