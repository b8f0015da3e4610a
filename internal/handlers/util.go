package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"olexsmir.xyz/whenwords/humanize"
)

func (h *handlers) templ(w http.ResponseWriter, name string, data any) {
	if err := h.t.ExecuteTemplate(w, name, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		slog.Error("template", "name", name, "err", err)
	}
}

type resultResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func (h *handlers) writeResult(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, resultResponse{Result: v})
}

// writeError answers 404 for unknown repositories, 400 for bad input and
// 500 for everything else.
func (h *handlers) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errRepoNotFound) {
		h.write404(w, err)
		return
	}
	if isBadInput(err) {
		slog.Info("400", "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.write500(w, err)
}

func (h *handlers) write404(w http.ResponseWriter, err error) {
	slog.Info("404", "err", err)
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func (h *handlers) write500(w http.ResponseWriter, err error) {
	slog.Error("500", "err", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

var errBadParam = errors.New("bad parameter")

func isBadInput(err error) bool {
	return errors.Is(err, errBadParam) ||
		errors.Is(err, humanize.ErrInvalidTimestamp) ||
		errors.Is(err, humanize.ErrInvalidTimezone) ||
		errors.Is(err, humanize.ErrInvalidDuration) ||
		errors.Is(err, humanize.ErrUnparseableDuration)
}

func badParam(name, value string) error {
	return fmt.Errorf("%w: %s=%q", errBadParam, name, value)
}

func requireParam(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", errBadParam, name)
	}
	return v, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badParam(name, v)
	}
	return b, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badParam(name, v)
	}
	return n, nil
}
