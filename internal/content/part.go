package content

// Part is a normalized binary payload plus its MIME type, ready to attach to
// a multimodal model request. It is pure data: Data serializes as base64 in
// JSON, so a Part is safe to pass across process boundaries.
type Part struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Fallback MIME types used when neither the remote response nor the caller
// declares one.
const (
	FallbackImageMIME    = "image/jpeg"
	FallbackDocumentMIME = "application/pdf"
)
