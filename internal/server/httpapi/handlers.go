package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/dmitrijs2005/vmis/internal/server/models"
	"github.com/gorilla/mux"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserPayload(u *models.User) userPayload {
	return userPayload{ID: u.ID, Email: u.Email, Name: u.Name}
}

func payloads(recs []*models.Record) []resources.Record {
	out := make([]resources.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Payload())
	}
	return out
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "user_id", res.User.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"token": res.Token,
		"user":  toUserPayload(res.User),
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, toUserPayload(u))
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	u, err := s.users.User(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}

	d, err := s.records.Dashboard(r.Context(), u)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) list(kind resources.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())

		recs, err := s.records.List(r.Context(), userID, kind)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payloads(recs))
	}
}

func (s *Server) create(kind resources.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())

		var data resources.Record
		if err := decodeBody(w, r, &data); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if data == nil {
			writeError(w, http.StatusBadRequest, "body must be a JSON object")
			return
		}

		rec, err := s.records.Create(r.Context(), userID, kind, data)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec.Payload())
	}
}

// search serves the legacy GET /search/{kind}?searchQuery=&category= lookup.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	kind := resources.Kind(mux.Vars(r)["kind"])
	q := r.URL.Query()

	recs, err := s.records.Search(r.Context(), userID, kind, q.Get("searchQuery"), q.Get("category"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payloads(recs))
}
