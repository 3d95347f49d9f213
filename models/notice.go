package models

// Notice is a single legislative notice as listed by the backend.
type Notice struct {
	Num              int         `json:"num"`
	Subject          string      `json:"subject"`
	ProposerCategory string      `json:"proposerCategory"`
	Committee        string      `json:"committee"`
	NumComments      int         `json:"numComments"`
	Link             string      `json:"link"`
	Attachments      Attachments `json:"attachments"`
}

// Attachments holds download links for the bill documents.
type Attachments struct {
	PDFFile string `json:"pdfFile"`
	HWPFile string `json:"hwpFile"`
}
