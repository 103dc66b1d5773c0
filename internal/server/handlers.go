package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eventify-go/eventify/pkg/network"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type countResponse struct {
	Network string `json:"network"`
	Table   string `json:"table"`
	Count   int64  `json:"count"`
}

// handleCount returns a handler counting rows in "<network>.<table>". The
// path parameter is validated against the closed Network set before it is
// ever interpolated into SQL, per §4.3's "no user-controlled identifiers"
// rule — table is always one of the three constants passed at route
// registration, never request input.
func (s *Server) handleCount(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, err := network.Parse(mux.Vars(r)["network"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		var count int64
		row := s.pool.QueryRow(r.Context(), "SELECT count(*) FROM "+tag.Schema()+"."+table)
		if err := row.Scan(&count); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, countResponse{Network: tag.String(), Table: table, Count: count})
	}
}
