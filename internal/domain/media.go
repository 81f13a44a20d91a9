package domain

import "strings"

// DefaultVideoMIMEType is used for video sources whose content type does not
// name a concrete video subtype.
const DefaultVideoMIMEType = "video/mp4"

// RenderMode selects how a media descriptor is presented.
type RenderMode int

const (
	RenderImage RenderMode = iota
	RenderVideo
)

func (m RenderMode) String() string {
	if m == RenderVideo {
		return "video"
	}
	return "image"
}

// MediaDescriptor is an asset reference as delivered by the CMS.
// ContentType is the raw content-type hint (e.g. "image/jpeg", "video/webm").
type MediaDescriptor struct {
	URL         string `yaml:"url" json:"url"`
	ContentType string `yaml:"content_type" json:"contentType"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Width       int    `yaml:"width" json:"width" validate:"gte=0"`
	Height      int    `yaml:"height" json:"height" validate:"gte=0"`
}

// IsZero reports whether the descriptor carries no source.
func (m MediaDescriptor) IsZero() bool {
	return strings.TrimSpace(m.URL) == ""
}

// Mode returns RenderVideo when the content type mentions "video", and
// RenderImage otherwise (including when it is empty).
func (m MediaDescriptor) Mode() RenderMode {
	if strings.Contains(strings.ToLower(m.ContentType), "video") {
		return RenderVideo
	}
	return RenderImage
}

// VideoMIMEType returns the MIME type to advertise on a <source> element.
// Concrete "video/*" types are passed through; anything else falls back to
// DefaultVideoMIMEType.
func (m MediaDescriptor) VideoMIMEType() string {
	ct := strings.ToLower(strings.TrimSpace(m.ContentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if strings.HasPrefix(ct, "video/") && len(ct) > len("video/") {
		return ct
	}
	return DefaultVideoMIMEType
}
