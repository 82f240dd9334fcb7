package llm

import (
	"encoding/base64"
	"net/http"
)

// MaxVisionBytes caps the image payload sent to the model.
const MaxVisionBytes = 20 << 20

// ImageDataURL encodes image bytes as a data URL, sniffing the MIME type.
func ImageDataURL(b []byte) (string, bool) {
	if len(b) == 0 || len(b) > MaxVisionBytes {
		return "", false
	}
	mt := http.DetectContentType(b)
	switch mt {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
	default:
		mt = "image/png"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), true
}
