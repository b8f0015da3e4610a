package handlers

import (
	"html/template"
	"io/fs"
	"net/http"

	"olexsmir.xyz/whenwords/internal/markdown"
	"olexsmir.xyz/whenwords/web"
)

type indexPage struct {
	Docs    template.HTML
	Version string
}

func (h *handlers) indexHandler(w http.ResponseWriter, r *http.Request) {
	src, err := fs.ReadFile(web.DocsFS, "api.md")
	if err != nil {
		h.write500(w, err)
		return
	}

	docs, err := markdown.Render(src)
	if err != nil {
		h.write500(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.templ(w, "index", indexPage{
		Docs:    template.HTML(docs),
		Version: h.version,
	})
}
