package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/availarr/availarr/pkg/availability"
	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/pagination"
	"github.com/availarr/availarr/pkg/storage"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *error `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses the dependencies the HTTP surface needs: the catalog store,
// the reconciliation engine and a logger.
type Server struct {
	baseLogger *zap.SugaredLogger
	store      storage.Storage
	engine     *availability.Engine
}

// New creates a new availability server
func New(logger *zap.SugaredLogger, store storage.Storage, engine *availability.Engine) Server {
	return Server{
		baseLogger: logger,
		store:      store,
		engine:     engine,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: &err,
	})
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

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/media", s.ListMedia()).Methods(http.MethodGet)
	v1.HandleFunc("/media/{id}", s.GetMedia()).Methods(http.MethodGet)

	v1.HandleFunc("/availability/sync", s.TriggerSync()).Methods(http.MethodPost)
	v1.HandleFunc("/availability/sync", s.CancelSync()).Methods(http.MethodDelete)
	v1.HandleFunc("/availability/status", s.SyncStatus()).Methods(http.MethodGet)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
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

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// MediaResponse is one catalog entry as rendered by the API
type MediaResponse struct {
	ID       int32  `json:"id"`
	Type     string `json:"type"`
	TmdbID   int32  `json:"tmdbId"`
	Status   string `json:"status"`
	Status4k string `json:"status4k"`
	Seasons  int    `json:"seasons,omitempty"`
}

// MediaListResponse pairs a page of catalog entries with pagination metadata
type MediaListResponse struct {
	Items []MediaResponse `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

var typeCaser = cases.Title(language.English)

func toMediaResponse(item *storage.MediaItem) MediaResponse {
	return MediaResponse{
		ID:       item.ID,
		Type:     typeCaser.String(item.MediaType),
		TmdbID:   item.TmdbID,
		Status:   item.Status,
		Status4k: item.Status4k,
		Seasons:  len(item.Seasons),
	}
}

// ListMedia lists catalog entries a page at a time
func (s Server) ListMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		offset, limit := params.CalculateOffsetLimit()
		items, err := s.store.ListMedia(r.Context(), offset, limit)
		if err != nil {
			log.Error("failed to list media", zap.Error(err))
			http.Error(w, "failed to list media", http.StatusInternalServerError)
			return
		}

		total, err := s.store.CountMedia(r.Context())
		if err != nil {
			log.Error("failed to count media", zap.Error(err))
			http.Error(w, "failed to list media", http.StatusInternalServerError)
			return
		}

		response := MediaListResponse{
			Items: make([]MediaResponse, 0, len(items)),
			Meta:  params.BuildMeta(int(total)),
		}
		for _, item := range items {
			response.Items = append(response.Items, toMediaResponse(item))
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: response})
	}
}

// GetMedia returns a single catalog entry with its seasons
func (s Server) GetMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		vars := mux.Vars(r)

		id, err := parseID(vars["id"])
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		item, err := s.store.GetMediaItem(r.Context(), id)
		if err != nil {
			if err == storage.ErrNotFound {
				http.Error(w, "media not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get media", zap.Error(err), zap.Int64("id", id))
			http.Error(w, "failed to get media", http.StatusInternalServerError)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: item})
	}
}
