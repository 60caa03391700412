// internal/httpapi/server.go
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/droid-bridge/internal/status"
)

// StatusSource is the read side of the session tracker.
type StatusSource interface {
	Snapshot() status.Snapshot
}

// Build carries the version strings reported by /version.
type Build struct {
	Version string
	Date    string
}

// Handler serves the read-only status surface.
type Handler struct {
	src   StatusSource
	build Build
}

// New returns an http.Handler with all routes installed.
func New(src StatusSource, build Build) http.Handler {
	h := &Handler{src: src, build: build}

	router := mux.NewRouter()
	router.HandleFunc("/status", h.getStatus).Methods("GET")
	router.HandleFunc("/version", h.versionInfo).Methods("GET")
	router.HandleFunc("/frame", h.getFrame).Methods("GET")

	return router
}

// ListenAddr accepts ":[port]" as well as "[port]".
func ListenAddr(s string) string {
	if i, err := strconv.Atoi(s); err == nil {
		return fmt.Sprintf(":%d", i)
	}
	return s
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	b, err := status.Encode(h.src.Snapshot())
	if err != nil {
		log.Errorf("Status encode failed: %v", err)
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (h *Handler) versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	v := struct {
		Version   string `json:"version"`
		BuildDate string `json:"build_date"`
	}{Version: h.build.Version, BuildDate: h.build.Date}
	j, _ := json.Marshal(v)
	w.Write(j)
}

func (h *Handler) getFrame(w http.ResponseWriter, r *http.Request) {
	snap := h.src.Snapshot()
	if snap.LastFrame == "" {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No frame sent yet"))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	e.Encode(struct {
		Frame string `json:"frame"`
		State string `json:"state"`
	}{Frame: snap.LastFrame, State: snap.State})
}
