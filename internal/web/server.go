//Package web exposes the curvature analysis over HTTP. Uploaded XYZ
//files are analyzed, persisted and served back as records, statistics,
//histograms, atom colorings and rendered figures for the structure
//viewer front end.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	curv "github.com/gvallverdu/curview"
	"github.com/gvallverdu/curview/cmap"
	"github.com/gvallverdu/curview/internal/logger"
	"github.com/gvallverdu/curview/internal/store"
)

type Server struct {
	store  *store.Store
	colors map[string]string
	limit  int64
	log    *slog.Logger
	mux    *http.ServeMux
}

//New builds the API server. elementColors may be nil, in which case the
//built-in Jmol table is used for atoms without selected data. uploadLimit
//caps the accepted XYZ body size in bytes.
func New(st *store.Store, elementColors map[string]string, uploadLimit int64) *Server {
	if elementColors == nil {
		elementColors = curv.SymbolColors()
	}
	S := &Server{
		store:  st,
		colors: elementColors,
		limit:  uploadLimit,
		log:    logger.ForComponent("web"),
		mux:    http.NewServeMux(),
	}
	S.routes()
	return S
}

func (S *Server) routes() {
	S.mux.HandleFunc("POST /api/molecules", S.handleUpload)
	S.mux.HandleFunc("GET /api/molecules", S.handleList)
	S.mux.HandleFunc("GET /api/molecules/{id}", S.handleGet)
	S.mux.HandleFunc("PATCH /api/molecules/{id}", S.handleEditCell)
	S.mux.HandleFunc("DELETE /api/molecules/{id}", S.handleDelete)
	S.mux.HandleFunc("GET /api/molecules/{id}/stats", S.handleStats)
	S.mux.HandleFunc("GET /api/molecules/{id}/histogram", S.handleHistogram)
	S.mux.HandleFunc("GET /api/molecules/{id}/colors", S.handleColors)
	S.mux.HandleFunc("GET /api/molecules/{id}/export.csv", S.handleExportCSV)
	S.mux.HandleFunc("GET /api/molecules/{id}/plot.png", S.handlePlot)
	S.mux.HandleFunc("GET /api/colormaps", S.handleColormaps)
	S.mux.HandleFunc("GET /healthz", S.handleHealth)
}

func (S *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	S.mux.ServeHTTP(w, r)
}

//Error is the JSON envelope of every failed request.
type Error struct {
	IsError  bool   `json:"error"`
	Status   int    `json:"status"`
	Function string `json:"function,omitempty"`
	Message  string `json:"message"`
}

func (J *Error) Error() string {
	return J.Message
}

func (S *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		S.log.Error("encode response", "err", err)
	}
}

func (S *Server) writeError(w http.ResponseWriter, status int, function string, err error) {
	if status >= 500 {
		S.log.Error("request failed", "function", function, "err", err)
	} else {
		S.log.Debug("request rejected", "function", function, "err", err)
	}
	S.writeJSON(w, status, &Error{
		IsError:  true,
		Status:   status,
		Function: function,
		Message:  err.Error(),
	})
}

func (S *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	S.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (S *Server) handleColormaps(w http.ResponseWriter, r *http.Request) {
	S.writeJSON(w, http.StatusOK, map[string]interface{}{"colormaps": cmap.Names()})
}
