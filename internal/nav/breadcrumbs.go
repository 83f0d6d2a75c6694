package nav

import (
	"strings"
)

// Labeler resolves a message identifier to display text.
type Labeler interface {
	T(id string) string
}

// Crumb is one entry of a breadcrumb trail.
type Crumb struct {
	Label string
	// URL is empty for the current page.
	URL string
}

// Breadcrumbs builds the trail for a localized page path such as
// /en/contributing/translation-program/acknowledgements/. The leading locale
// segment becomes the home crumb; every following segment is labeled by the
// breadcrumb-<segment> message.
func Breadcrumbs(pathname string, l Labeler) []Crumb {
	var segments []string
	for _, s := range strings.Split(strings.TrimSpace(pathname), "/") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return []Crumb{}
	}

	locale, segments := segments[0], segments[1:]
	crumbs := make([]Crumb, 0, len(segments)+1)
	crumbs = append(crumbs, Crumb{Label: label(l, "home"), URL: "/" + locale + "/"})

	pathSoFar := "/" + locale
	for i, segment := range segments {
		pathSoFar += "/" + segment
		crumb := Crumb{Label: label(l, segment)}
		if i < len(segments)-1 {
			crumb.URL = pathSoFar + "/"
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

func label(l Labeler, segment string) string {
	if l == nil {
		return segment
	}
	id := "breadcrumb-" + segment
	if text := l.T(id); text != "" && text != id {
		return text
	}
	return segment
}
