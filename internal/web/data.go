package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gonum.org/v1/plot"

	"github.com/gvallverdu/curview/chemplot"
	"github.com/gvallverdu/curview/cmap"
	"github.com/gvallverdu/curview/dataset"
	"github.com/gvallverdu/curview/histo"
	"github.com/gvallverdu/curview/internal/store"
)

//column fetches one float column of the record, writing the error
//response itself when it fails.
func (S *Server) column(w http.ResponseWriter, rec *store.Record, name, function string) ([]float64, bool) {
	if name == "" {
		S.writeError(w, http.StatusBadRequest, function,
			fmt.Errorf("a column parameter is required"))
		return nil, false
	}
	vals, err := rec.Data.Column(name)
	if err != nil {
		S.writeError(w, http.StatusNotFound, function, err)
		return nil, false
	}
	return vals, true
}

func (S *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	rec := S.record(w, r, "handleStats")
	if rec == nil {
		return
	}
	name := r.URL.Query().Get("column")
	if name == "" {
		S.writeError(w, http.StatusBadRequest, "handleStats",
			fmt.Errorf("a column parameter is required"))
		return
	}
	if !rec.Data.HasColumn(name) || name == dataset.SpeciesColumn {
		S.writeError(w, http.StatusNotFound, "handleStats",
			fmt.Errorf("no numeric column %q", name))
		return
	}
	summary, err := rec.Data.Describe(name)
	if err != nil {
		S.writeError(w, http.StatusBadRequest, "handleStats", err)
		return
	}
	S.writeJSON(w, http.StatusOK, summary)
}

func (S *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	rec := S.record(w, r, "handleHistogram")
	if rec == nil {
		return
	}
	vals, ok := S.column(w, rec, r.URL.Query().Get("column"), "handleHistogram")
	if !ok {
		return
	}
	bins := histo.DefaultBins
	if q := r.URL.Query().Get("bins"); q != "" {
		var err error
		if bins, err = strconv.Atoi(q); err != nil {
			S.writeError(w, http.StatusBadRequest, "handleHistogram",
				fmt.Errorf("bad bins parameter %q", q))
			return
		}
	}
	h, err := histo.FromValues(vals, bins)
	if err != nil {
		S.writeError(w, http.StatusBadRequest, "handleHistogram", err)
		return
	}
	h.Normalize()
	S.writeJSON(w, http.StatusOK, h)
}

//floatParam parses an optional float query parameter.
func floatParam(r *http.Request, key string) (*float64, error) {
	q := r.URL.Query().Get(key)
	if q == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return nil, fmt.Errorf("bad %s parameter %q", key, q)
	}
	return &v, nil
}

//atomStyle is one entry of the styles object the structure viewer
//consumes, keyed by the atom index.
type atomStyle struct {
	Color             string `json:"color"`
	VisualizationType string `json:"visualization_type"`
}

func (S *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	rec := S.record(w, r, "handleColors")
	if rec == nil {
		return
	}
	name := r.URL.Query().Get("column")
	var colors []string
	if name == "" || name == dataset.SpeciesColumn {
		colors = cmap.ElementColors(rec.Data.Species(), S.colors)
	} else {
		vals, ok := S.column(w, rec, name, "handleColors")
		if !ok {
			return
		}
		min, err := floatParam(r, "min")
		if err != nil {
			S.writeError(w, http.StatusBadRequest, "handleColors", err)
			return
		}
		max, err := floatParam(r, "max")
		if err != nil {
			S.writeError(w, http.StatusBadRequest, "handleColors", err)
			return
		}
		colors, err = cmap.MapValues(vals, r.URL.Query().Get("cmap"), min, max,
			r.URL.Query().Get("nan"))
		if err != nil {
			S.writeError(w, http.StatusBadRequest, "handleColors", err)
			return
		}
	}
	styles := make(map[string]atomStyle, len(colors))
	for i, c := range colors {
		styles[strconv.Itoa(i)] = atomStyle{Color: c, VisualizationType: "stick"}
	}
	S.writeJSON(w, http.StatusOK, map[string]interface{}{"styles": styles})
}

func (S *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	rec := S.record(w, r, "handleExportCSV")
	if rec == nil {
		return
	}
	var columns []string
	if q := r.URL.Query().Get("columns"); q != "" {
		columns = strings.Split(q, ",")
		for _, c := range columns {
			if !rec.Data.HasColumn(c) {
				S.writeError(w, http.StatusNotFound, "handleExportCSV",
					fmt.Errorf("no column %q", c))
				return
			}
		}
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", rec.Name+".csv"))
	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		if err := rec.Data.WriteCSVGZ(w, columns...); err != nil {
			S.log.Error("export csv", "id", rec.ID, "err", err)
		}
		return
	}
	if err := rec.Data.WriteCSV(w, columns...); err != nil {
		S.log.Error("export csv", "id", rec.ID, "err", err)
	}
}

func (S *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	rec := S.record(w, r, "handlePlot")
	if rec == nil {
		return
	}
	yname := r.URL.Query().Get("y")
	yvals, ok := S.column(w, rec, yname, "handlePlot")
	if !ok {
		return
	}
	var plt *plot.Plot
	var err error
	if xname := r.URL.Query().Get("x"); xname != "" {
		var xvals []float64
		xvals, ok = S.column(w, rec, xname, "handlePlot")
		if !ok {
			return
		}
		plt, err = chemplot.Scatter(xvals, yvals, rec.Name, xname, yname)
	} else {
		bins := histo.DefaultBins
		if q := r.URL.Query().Get("bins"); q != "" {
			if bins, err = strconv.Atoi(q); err != nil {
				S.writeError(w, http.StatusBadRequest, "handlePlot",
					fmt.Errorf("bad bins parameter %q", q))
				return
			}
		}
		plt, err = chemplot.Histogram(yvals, bins, rec.Name, yname, true)
	}
	if err != nil {
		S.writeError(w, http.StatusBadRequest, "handlePlot", err)
		return
	}
	var buf bytes.Buffer
	if err := chemplot.WritePNG(&buf, plt); err != nil {
		S.writeError(w, http.StatusInternalServerError, "handlePlot", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(buf.Bytes()); err != nil {
		S.log.Error("write png", "id", rec.ID, "err", err)
	}
}
