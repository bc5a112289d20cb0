package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/manager"
	"github.com/dvrz/dvrz/pkg/pagination"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server exposes the reconciliation engine over HTTP.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.Manager
	validate   *validator.Validate
}

func New(logger *zap.SugaredLogger, manager manager.Manager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		validate:   validator.New(),
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{Error: err.Error()})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// writeError maps the error taxonomy onto status codes: expired sessions
// are 401, a missing server address is 409 so the client can redirect to
// setup, unknown shows are 404.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, jellyfin.ErrUnauthorized):
		writeErrorResponse(w, http.StatusUnauthorized, err)
	case errors.Is(err, jellyfin.ErrHostNotConfigured):
		writeErrorResponse(w, http.StatusConflict, err)
	case errors.Is(err, manager.ErrNotFound):
		writeErrorResponse(w, http.StatusNotFound, err)
	default:
		writeErrorResponse(w, http.StatusInternalServerError, err)
	}
}

// Handler builds the full route tree. Split from Serve for tests.
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/login", s.Login()).Methods(http.MethodPost)
	v1.HandleFunc("/guide", s.Guide()).Methods(http.MethodGet)
	v1.HandleFunc("/series/{id}", s.Series()).Methods(http.MethodGet)
	v1.HandleFunc("/library", s.Library()).Methods(http.MethodGet)
	v1.HandleFunc("/lookup", s.Lookup()).Methods(http.MethodGet)
	v1.HandleFunc("/timers", s.Record()).Methods(http.MethodPost)
	v1.HandleFunc("/timers/{id}", s.CancelTimer()).Methods(http.MethodDelete)
	v1.HandleFunc("/seriestimers/{id}", s.CancelSeriesTimer()).Methods(http.MethodDelete)
	v1.HandleFunc("/recordings/{id}", s.DeleteRecording()).Methods(http.MethodDelete)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Emby-Token", "X-User-Id"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
	)(rtr)
}

// Serve starts the http server and blocks until interrupted.
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes.
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token.
func (s Server) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		res, err := s.manager.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			log.Warnw("login failed", "username", req.Username, "error", err)
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: res})
	}
}

// GuidePage is a guide response narrowed to one page of channels.
type GuidePage struct {
	Channels []manager.GuideChannel `json:"channels"`
	MaxDate  string                 `json:"maxDate,omitempty"`
	Meta     pagination.Meta        `json:"meta"`
}

// Guide returns the reconciled channel/program grid.
func (s Server) Guide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)

		guide, err := s.manager.Guide(r.Context(), session.UserID, session.Token)
		if err != nil {
			writeError(w, err)
			return
		}

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		channels, meta := pagination.Page(guide.Channels, params)

		writeResponse(w, http.StatusOK, GenericResponse{Response: GuidePage{
			Channels: channels,
			MaxDate:  guide.MaxDate,
			Meta:     meta,
		}})
	}
}

// Series returns the reconciled per-series view.
func (s Server) Series() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		id := mux.Vars(r)["id"]

		res, err := s.manager.Series(r.Context(), id, session.UserID, session.Token)
		if err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: res})
	}
}

// Library returns the monitored-series aggregation.
func (s Server) Library() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)

		rows, err := s.manager.Monitored(r.Context(), session.UserID, session.Token)
		if err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: rows})
	}
}

// Lookup resolves a show by name.
func (s Server) Lookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		name := r.URL.Query().Get("name")
		if name == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		res, err := s.manager.Lookup(r.Context(), name, session.UserID, session.Token)
		if err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: res})
	}
}

type RecordRequest struct {
	ProgramID  string `json:"programId" validate:"required_without=SeriesName"`
	SeriesName string `json:"seriesName" validate:"required_without=ProgramID"`
	Series     bool   `json:"series"`
}

// Record schedules a recording by program id or series name.
func (s Server) Record() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)

		var req RecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var outcome jellyfin.ScheduleOutcome
		var err error
		if req.ProgramID != "" {
			outcome, err = s.manager.Record(r.Context(), req.ProgramID, req.Series, session.UserID, session.Token)
		} else {
			outcome, err = s.manager.RecordSeriesByName(r.Context(), req.SeriesName, session.UserID, session.Token)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: outcome})
	}
}

// CancelTimer cancels a pending recording.
func (s Server) CancelTimer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		id := mux.Vars(r)["id"]

		if err := s.manager.CancelTimer(r.Context(), id, session.Token); err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: "cancelled"})
	}
}

// DeleteRecording deletes a finished recording from the library.
func (s Server) DeleteRecording() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		id := mux.Vars(r)["id"]

		if err := s.manager.DeleteRecording(r.Context(), id, session.Token); err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: "deleted"})
	}
}

// CancelSeriesTimer removes a standing series-recording rule.
func (s Server) CancelSeriesTimer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r)
		id := mux.Vars(r)["id"]

		if err := s.manager.CancelSeriesTimer(r.Context(), id, session.Token); err != nil {
			writeError(w, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: "cancelled"})
	}
}
