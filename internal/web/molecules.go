package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	curv "github.com/gvallverdu/curview"
	"github.com/gvallverdu/curview/dataset"
	"github.com/gvallverdu/curview/internal/store"
)

//modelAtom and modelBond follow the model data layout the 3D structure
//viewer consumes.
type modelAtom struct {
	Serial    int        `json:"serial"`
	Name      string     `json:"name"`
	Element   string     `json:"elem"`
	Positions [3]float64 `json:"positions"`
}

type modelBond struct {
	Atom1 int `json:"atom1_index"`
	Atom2 int `json:"atom2_index"`
}

type modelData struct {
	Atoms []modelAtom `json:"atoms"`
	Bonds []modelBond `json:"bonds"`
}

type moleculeResponse struct {
	ID      string                   `json:"id"`
	Name    string                   `json:"name"`
	NAtoms  int                      `json:"natoms"`
	Columns []string                 `json:"columns"`
	Records []map[string]interface{} `json:"records"`
	Model   *modelData               `json:"model,omitempty"`
}

func buildModel(mol *curv.Molecule) *modelData {
	m := &modelData{
		Atoms: make([]modelAtom, mol.Len()),
		Bonds: []modelBond{},
	}
	for i, at := range mol.Atoms {
		m.Atoms[i] = modelAtom{
			Serial:  at.Index,
			Name:    at.Symbol,
			Element: at.Symbol,
			Positions: [3]float64{
				mol.Coords.At(i, 0),
				mol.Coords.At(i, 1),
				mol.Coords.At(i, 2),
			},
		}
	}
	for _, b := range mol.BondList() {
		m.Bonds = append(m.Bonds, modelBond{Atom1: b.At1.Index, Atom2: b.At2.Index})
	}
	return m
}

//readUpload extracts the XYZ content from a multipart form (field
//"file") or from the raw request body.
func readUpload(r *http.Request) ([]byte, string, error) {
	name := "molecule"
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "multipart/") {
		f, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("no file field in the form: %w", err)
		}
		defer f.Close()
		if header.Filename != "" {
			name = strings.TrimSuffix(header.Filename, ".xyz")
		}
		b, err := io.ReadAll(f)
		return b, name, err
	}
	b, err := io.ReadAll(r.Body)
	if q := r.URL.Query().Get("name"); q != "" {
		name = q
	}
	return b, name, err
}

func (S *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, S.limit)
	body, name, err := readUpload(r)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			S.writeError(w, http.StatusRequestEntityTooLarge, "handleUpload",
				fmt.Errorf("upload larger than %d bytes", S.limit))
			return
		}
		S.writeError(w, http.StatusBadRequest, "handleUpload", err)
		return
	}
	mol, err := curv.XYZReaderRead(bytes.NewReader(body), name)
	if err != nil {
		S.writeError(w, http.StatusBadRequest, "handleUpload", err)
		return
	}
	data, err := curv.Analyze(mol)
	if err != nil {
		S.writeError(w, http.StatusBadRequest, "handleUpload", err)
		return
	}
	rec := &store.Record{
		Name:   mol.Name,
		NAtoms: mol.Len(),
		XYZ:    string(body),
		Data:   data,
	}
	if err := S.store.Put(rec); err != nil {
		S.writeError(w, http.StatusInternalServerError, "handleUpload", err)
		return
	}
	S.log.Info("molecule analyzed", "id", rec.ID, "name", rec.Name, "natoms", rec.NAtoms)
	S.writeJSON(w, http.StatusCreated, &moleculeResponse{
		ID:      rec.ID,
		Name:    rec.Name,
		NAtoms:  rec.NAtoms,
		Columns: data.Columns(),
		Records: data.Records(),
		Model:   buildModel(mol),
	})
}

func (S *Server) handleList(w http.ResponseWriter, r *http.Request) {
	infos, err := S.store.List()
	if err != nil {
		S.writeError(w, http.StatusInternalServerError, "handleList", err)
		return
	}
	S.writeJSON(w, http.StatusOK, map[string]interface{}{"molecules": infos})
}

//record fetches the molecule of the request, writing the error response
//itself when it fails.
func (S *Server) record(w http.ResponseWriter, r *http.Request, function string) *store.Record {
	rec, err := S.store.Get(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		S.writeError(w, http.StatusNotFound, function, err)
		return nil
	}
	if err != nil {
		S.writeError(w, http.StatusInternalServerError, function, err)
		return nil
	}
	return rec
}

//model rebuilds the viewer model from the stored geometry.
func (S *Server) model(rec *store.Record) (*modelData, error) {
	mol, err := curv.XYZReaderRead(strings.NewReader(rec.XYZ), rec.Name)
	if err != nil {
		return nil, err
	}
	if err := curv.AssignBonds(mol); err != nil {
		return nil, err
	}
	return buildModel(mol), nil
}

func (S *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec := S.record(w, r, "handleGet")
	if rec == nil {
		return
	}
	data := rec.Data
	if q := r.URL.Query().Get("columns"); q != "" {
		sub, err := data.Select(strings.Split(q, ",")...)
		if err != nil {
			S.writeError(w, http.StatusNotFound, "handleGet", err)
			return
		}
		data = sub
	}
	resp := &moleculeResponse{
		ID:      rec.ID,
		Name:    rec.Name,
		NAtoms:  rec.NAtoms,
		Columns: data.Columns(),
		Records: data.Records(),
	}
	if r.URL.Query().Get("model") != "false" {
		model, err := S.model(rec)
		if err != nil {
			S.writeError(w, http.StatusInternalServerError, "handleGet", err)
			return
		}
		resp.Model = model
	}
	S.writeJSON(w, http.StatusOK, resp)
}

type cellEdit struct {
	Row    int      `json:"row"`
	Column string   `json:"column"`
	Value  *float64 `json:"value"`
}

func (S *Server) handleEditCell(w http.ResponseWriter, r *http.Request) {
	var edit cellEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		S.writeError(w, http.StatusBadRequest, "handleEditCell", err)
		return
	}
	if edit.Value == nil {
		S.writeError(w, http.StatusBadRequest, "handleEditCell",
			fmt.Errorf("a numeric value is required"))
		return
	}
	rec := S.record(w, r, "handleEditCell")
	if rec == nil {
		return
	}
	if edit.Column == dataset.SpeciesColumn {
		S.writeError(w, http.StatusBadRequest, "handleEditCell",
			fmt.Errorf("the %s column is not editable", dataset.SpeciesColumn))
		return
	}
	if !rec.Data.HasColumn(edit.Column) {
		S.writeError(w, http.StatusNotFound, "handleEditCell",
			fmt.Errorf("no column %q", edit.Column))
		return
	}
	if edit.Row < 0 || edit.Row >= rec.Data.Len() {
		S.writeError(w, http.StatusBadRequest, "handleEditCell",
			fmt.Errorf("row %d out of range", edit.Row))
		return
	}
	rec, err := S.store.UpdateCell(rec.ID, edit.Row, edit.Column, *edit.Value)
	if err != nil {
		S.writeError(w, http.StatusInternalServerError, "handleEditCell", err)
		return
	}
	S.writeJSON(w, http.StatusOK, &moleculeResponse{
		ID:      rec.ID,
		Name:    rec.Name,
		NAtoms:  rec.NAtoms,
		Columns: rec.Data.Columns(),
		Records: rec.Data.Records(),
	})
}

func (S *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := S.store.Delete(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		S.writeError(w, http.StatusNotFound, "handleDelete", err)
		return
	}
	if err != nil {
		S.writeError(w, http.StatusInternalServerError, "handleDelete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
