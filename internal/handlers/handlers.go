package handlers

import (
	"html/template"
	"net/http"
	"time"

	"olexsmir.xyz/whenwords/internal/cache"
	"olexsmir.xyz/whenwords/internal/config"
	"olexsmir.xyz/whenwords/internal/git"
	"olexsmir.xyz/whenwords/web"
)

type handlers struct {
	c       *config.Config
	t       *template.Template
	version string
	now     func() time.Time

	commitsCache cache.Cacher[string, []git.Commit]
}

// Routes serves the web api. Close releases the commit cache.
type Routes struct {
	http.Handler
	commits cache.Cacher[string, []git.Commit]
}

func (r *Routes) Close() { r.commits.Close() }

func InitRoutes(cfg *config.Config, version string) *Routes {
	return initRoutes(cfg, version, time.Now)
}

func initRoutes(cfg *config.Config, version string, now func() time.Time) *Routes {
	tmpls := template.Must(template.New("").ParseFS(web.TemplatesFS, "*"))
	h := handlers{
		c:            cfg,
		t:            tmpls,
		version:      version,
		now:          now,
		commitsCache: cache.NewInMemory[string, []git.Commit](cfg.ActivityTTL()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.indexHandler)
	mux.HandleFunc("GET /api/ago", h.agoHandler)
	mux.HandleFunc("GET /api/duration", h.durationHandler)
	mux.HandleFunc("GET /api/parse", h.parseHandler)
	mux.HandleFunc("GET /api/date", h.dateHandler)
	mux.HandleFunc("GET /api/range", h.rangeHandler)
	mux.HandleFunc("GET /repo/{name}/activity", h.activityHandler)
	mux.HandleFunc("GET /repo/{name}/feed", h.feedHandler)

	handler := h.recoverMiddleware(mux)
	return &Routes{
		Handler: h.loggingMiddleware(handler),
		commits: h.commitsCache,
	}
}
