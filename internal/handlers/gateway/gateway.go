// Package gateway exposes the read side of the encounter budget service and
// the stateless chart calculation over HTTP/JSON.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
)

// Config holds dependencies for the gateway
type Config struct {
	Service v1alpha1.EncounterBudgetServiceServer
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.Service == nil {
		return errors.InvalidArgument("service is required")
	}
	return nil
}

// Gateway routes HTTP requests to the gRPC service implementation
type Gateway struct {
	service v1alpha1.EncounterBudgetServiceServer
	router  *mux.Router
}

// New creates a gateway with its routes registered
func New(cfg *Config) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Gateway{
		service: cfg.Service,
		router:  mux.NewRouter(),
	}

	g.router.Use(logRequests)
	g.router.HandleFunc("/healthz", g.handleHealth).Methods(http.MethodGet)

	api := g.router.PathPrefix("/v1alpha1").Subrouter()
	api.HandleFunc("/chart", g.handleCalculateChart).Methods(http.MethodPost)
	api.HandleFunc("/plans", g.handleListPlans).Methods(http.MethodGet)
	api.HandleFunc("/plans", g.handleCreatePlan).Methods(http.MethodPost)
	api.HandleFunc("/plans/{id}", g.handleGetPlan).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}", g.handleDeletePlan).Methods(http.MethodDelete)
	api.HandleFunc("/plans/{id}/budget", g.handleGetBudget).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}/chart", g.handleGetChart).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}/suggest", g.handleSuggestMonsters).Methods(http.MethodPost)

	return g, nil
}

// ServeHTTP implements http.Handler
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

func (g *Gateway) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (g *Gateway) handleCalculateChart(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.CalculateChartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respond(w, r.Context(), &req, g.service.CalculateChart)
}

func (g *Gateway) handleListPlans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, err := queryInt(query.Get("limit"), "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	offset, err := queryInt(query.Get("offset"), "offset")
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, r.Context(), &v1alpha1.ListPlansRequest{Limit: limit, Offset: offset}, g.service.ListPlans)
}

func (g *Gateway) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.CreatePlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := g.service.CreatePlan(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (g *Gateway) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	respond(w, r.Context(), planRequest(r), g.service.GetPlan)
}

func (g *Gateway) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if _, err := g.service.DeletePlan(r.Context(), planRequest(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	respond(w, r.Context(), planRequest(r), g.service.GetBudget)
}

func (g *Gateway) handleGetChart(w http.ResponseWriter, r *http.Request) {
	respond(w, r.Context(), planRequest(r), g.service.GetChart)
}

func (g *Gateway) handleSuggestMonsters(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.SuggestMonstersRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}
	req.PlanID = mux.Vars(r)["id"]
	respond(w, r.Context(), &req, g.service.SuggestMonsters)
}

func planRequest(r *http.Request) *v1alpha1.PlanRequest {
	return &v1alpha1.PlanRequest{PlanID: mux.Vars(r)["id"]}
}

func respond[Req, Resp any](
	w http.ResponseWriter,
	ctx context.Context,
	req *Req,
	call func(context.Context, *Req) (*Resp, error),
) {
	resp, err := call(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	return decode(w, r, v, false)
}

// decodeOptionalBody leaves v untouched when the body is empty, whatever the
// request's Content-Length says
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	return decode(w, r, v, true)
}

func decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(v)
	if err == io.EOF && optional {
		return true
	}
	if err != nil {
		writeError(w, errors.InvalidArgumentf("invalid JSON body: %v", err))
		return false
	}
	return true
}

func queryInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", name, raw)
	}
	return value, nil
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	var customErr *errors.Error
	if !errors.As(errors.FromGRPCError(err), &customErr) {
		customErr = errors.Internal(err.Error())
	}

	writeJSON(w, customErr.Code.HTTPStatus(), errorBody{
		Code:    customErr.Code.String(),
		Message: customErr.Message,
		Meta:    customErr.Meta,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
