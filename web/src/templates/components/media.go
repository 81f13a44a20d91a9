package components

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nfrund/pattivana/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// srcsetWidths are the renditions requested from the Contentful Images API.
var srcsetWidths = []int{640, 1080, 1920}

// ImageProps are layout hints for Image.
type ImageProps struct {
	// Class is appended to the image's classes.
	Class string
	// Fill positions the image over its (relative) container.
	Fill bool
	// Sizes is the sizes attribute paired with the generated srcset.
	Sizes string
	// Eager disables lazy loading for above-the-fold images.
	Eager bool
}

// Image renders a CMS image. Contentful-hosted assets get a webp srcset;
// other URLs are used as-is. A descriptor without URL renders nothing.
func Image(m domain.MediaDescriptor, props ImageProps) cmp.Node {
	if m.IsZero() {
		return nil
	}
	classes := props.Class
	if props.Fill {
		classes = strings.TrimSpace("absolute inset-0 h-full w-full " + classes)
	}
	loading := "lazy"
	if props.Eager {
		loading = "eager"
	}
	srcset := srcSet(m.URL)

	return g.Img(
		g.Src(ImageURL(m.URL, 0)),
		g.Alt(firstNonEmpty(m.Description, m.Title)),
		cmp.If(classes != "", g.Class(classes)),
		cmp.If(srcset != "", cmp.Attr("srcset", srcset)),
		cmp.If(srcset != "" && props.Sizes != "", cmp.Attr("sizes", props.Sizes)),
		cmp.If(!props.Fill && m.Width > 0, g.Width(strconv.Itoa(m.Width))),
		cmp.If(!props.Fill && m.Height > 0, g.Height(strconv.Itoa(m.Height))),
		cmp.Attr("loading", loading),
		cmp.Attr("decoding", "async"),
	)
}

// ImageURL returns the rendition URL for width (0 keeps the original size).
// Only Contentful asset hosts are rewritten.
func ImageURL(raw string, width int) string {
	u, err := url.Parse(raw)
	if err != nil || !isContentfulAsset(u) {
		return raw
	}
	q := u.Query()
	q.Set("fm", "webp")
	q.Set("q", "75")
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func srcSet(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !isContentfulAsset(u) {
		return ""
	}
	parts := make([]string, 0, len(srcsetWidths))
	for _, w := range srcsetWidths {
		parts = append(parts, fmt.Sprintf("%s %dw", ImageURL(raw, w), w))
	}
	return strings.Join(parts, ", ")
}

func isContentfulAsset(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	return host == "ctfassets.net" || strings.HasSuffix(host, ".ctfassets.net")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
