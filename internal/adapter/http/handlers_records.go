package adapthttp

import (
	"net/http"

	"healthdash/internal/domain"
)

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		order, err := orderQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		items, err := s.records.History(ctx, order)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var raw domain.RawInput
		if err := parseJSON(r, &raw); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec, err := s.records.Record(ctx, raw)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"record": rec})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRecordPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var raw domain.RawInput
	if err := parseJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m, err := s.records.Preview(raw)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"metrics": m})
}
