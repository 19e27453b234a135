package models

// Submission carries one checkout request as received from the storefront
// form, before validation. Qty and Total are the raw form strings.
type Submission struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Address string
	Song    string
	Message string
	Note    string
	Qty     string
	Total   string

	Photo *Photo
}

// Photo is the uploaded file payload with its declared filename and
// content type.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}
