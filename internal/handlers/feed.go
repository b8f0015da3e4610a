package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/feeds"
)

func (h *handlers) feedHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := h.activityReport(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	name := r.PathValue("name")
	link := &url.URL{Scheme: requestScheme(r), Host: r.Host, Path: "/repo/" + name + "/activity"}
	feed := &feeds.Feed{
		Title:       name,
		Link:        &feeds.Link{Href: link.String()},
		Description: rep.Span,
		Created:     h.now(),
	}

	for _, e := range rep.Entries {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          e.Hash,
			Title:       e.Summary,
			Link:        &feeds.Link{Href: link.String()},
			Author:      &feeds.Author{Name: e.Author},
			Description: e.Day + ", " + e.Ago,
			Created:     e.When,
		})
	}

	atom, err := feed.ToAtom()
	if err != nil {
		h.write500(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(atom))
}

// requestScheme is the scheme the client used, trusting X-Forwarded-Proto
// from a proxy in front of the server.
func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	switch proto = strings.ToLower(strings.TrimSpace(proto)); proto {
	case "http", "https":
		return proto
	}
	return "http"
}
