package handlers

import (
	"net/http"
	"strconv"

	"olexsmir.xyz/whenwords/humanize"
)

// refParam reads an optional reference instant, defaulting to the server
// clock.
func (h *handlers) refParam(r *http.Request, name string) humanize.Instant {
	if v := r.URL.Query().Get(name); v != "" {
		return humanize.ParseInstant(v)
	}
	return humanize.Time(h.now())
}

func (h *handlers) tzParam(r *http.Request) string {
	if r.URL.Query().Has("tz") {
		return r.URL.Query().Get("tz")
	}
	return h.c.Defaults.Timezone
}

func (h *handlers) agoHandler(w http.ResponseWriter, r *http.Request) {
	ts, err := requireParam(r, "ts")
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := humanize.TimeAgo(humanize.ParseInstant(ts), h.refParam(r, "ref"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeResult(w, res)
}

func (h *handlers) durationHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := requireParam(r, "seconds")
	if err != nil {
		h.writeError(w, err)
		return
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.writeError(w, badParam("seconds", raw))
		return
	}

	compact, err := queryBool(r, "compact", h.c.Defaults.Compact)
	if err != nil {
		h.writeError(w, err)
		return
	}
	maxUnits, err := queryInt(r, "max_units", h.c.Defaults.MaxUnits)
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := humanize.Duration(seconds, humanize.DurationOptions{
		Compact:  compact,
		MaxUnits: maxUnits,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeResult(w, res)
}

func (h *handlers) parseHandler(w http.ResponseWriter, r *http.Request) {
	secs, err := humanize.ParseDuration(r.URL.Query().Get("text"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeResult(w, secs)
}

func (h *handlers) dateHandler(w http.ResponseWriter, r *http.Request) {
	ts, err := requireParam(r, "ts")
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := humanize.HumanDate(humanize.ParseInstant(ts), h.refParam(r, "ref"), h.tzParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeResult(w, res)
}

func (h *handlers) rangeHandler(w http.ResponseWriter, r *http.Request) {
	start, err := requireParam(r, "start")
	if err != nil {
		h.writeError(w, err)
		return
	}
	end, err := requireParam(r, "end")
	if err != nil {
		h.writeError(w, err)
		return
	}

	res, err := humanize.DateRange(humanize.ParseInstant(start), humanize.ParseInstant(end), h.tzParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeResult(w, res)
}
