package server

import (
	"encoding/json"
	"net/http"
	"os"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getAnalysis serves the exported analysis document. A missing export
// is a distinct not-found condition, never an empty result.
func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, s.analysisPath,
		"analysis not found. Run the analyze command first.")
}

// getSample serves the bundled demo document. Its shape is richer than
// the real export (importance, roadmap, insights) and is not validated
// here.
func (s *Server) getSample(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, s.cfg.SamplePath, "sample document not found.")
}

func (s *Server) serveDocument(w http.ResponseWriter, path, missingMsg string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, missingMsg)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
