package dto

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// APIPrefix is the versioned mount point. Every route is also served at the
// root, and links keep whichever prefix the request arrived on.
const APIPrefix = "/api/v1"

// Links builds absolute URLs for resources reachable from one request.
type Links struct {
	base string
	path string
}

// LinksFor derives the scheme, host and mount prefix from r. A
// X-Forwarded-Proto header set by a proxy takes precedence over r.TLS.
func LinksFor(r *http.Request) Links {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	base := scheme + "://" + r.Host
	if r.URL.Path == APIPrefix || strings.HasPrefix(r.URL.Path, APIPrefix+"/") {
		base += APIPrefix
	}
	return Links{base: base, path: scheme + "://" + r.Host + r.URL.Path}
}

// Resource returns the self link of a document.
func (l Links) Resource(kind domain.Kind, id int64) string {
	return l.base + "/" + string(kind) + "/" + strconv.FormatInt(id, 10)
}

// Next returns the link to the page after page, on the request's own path.
func (l Links) Next(page domain.Page) string {
	return l.path + "?limit=" + strconv.Itoa(page.Limit) + "&offset=" + strconv.Itoa(page.Offset+page.Limit)
}
