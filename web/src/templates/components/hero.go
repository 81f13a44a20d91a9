package components

import (
	"github.com/nfrund/pattivana/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	// MenuPath is where the landing overlay navigates to.
	MenuPath = "/menu"
	// LogoPath is the white logo drawn over the hero media.
	LogoPath = "/static/images/logo_white.svg"
	// HeroCaption is the tagline shown over the hero media.
	HeroCaption = "Real memories were made from real experiences"
)

// HeroMediaClass marks the background media of the hero, as opposed to the logo.
const HeroMediaClass = "hero-media"

// HeroDisplay is the full-viewport landing section. Video content types are
// played inline (autoplay, looped, muted); everything else is drawn as a
// covering image. The logo and caption form a single link to the menu.
func HeroDisplay(media domain.MediaDescriptor) cmp.Node {
	return g.Section(
		g.ID("hero"),
		g.Class("hero relative h-screen w-screen bg-cover bg-center grayscale"),
		cmp.Attr("data-media", media.Mode().String()),
		heroMedia(media),
		g.A(
			g.Href(MenuPath),
			g.Class("hero-link"),
			g.Div(
				g.Class("flex w-full justify-center pt-[5vh]"),
				g.Div(
					g.Class("relative h-[15vh] w-[25vh]"),
					g.Img(
						g.Src(LogoPath),
						g.Alt("Pattivana"),
						g.Class("absolute inset-0 h-full w-full object-contain"),
					),
				),
			),
			g.Div(
				g.Class("fade-up absolute inset-0 flex items-center justify-center px-10 text-center"),
				g.H1(
					g.Class("text-lg text-white opacity-75 lg:text-4xl"),
					cmp.Text(HeroCaption),
				),
			),
		),
	)
}

func heroMedia(media domain.MediaDescriptor) cmp.Node {
	if media.Mode() == domain.RenderVideo {
		return g.Video(
			cmp.Attr("autoplay"),
			cmp.Attr("loop"),
			cmp.Attr("muted"),
			cmp.Attr("playsinline"),
			g.Class(HeroMediaClass+" absolute inset-0 h-full w-full object-cover"),
			g.Source(
				g.Src(media.URL),
				g.Type(media.VideoMIMEType()),
			),
		)
	}
	return Image(media, ImageProps{
		Class: HeroMediaClass + " object-cover",
		Fill:  true,
		Sizes: "100vw",
		Eager: true,
	})
}
