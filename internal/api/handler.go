package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"bacchus/winery/internal/config"
	"bacchus/winery/internal/database"
	"bacchus/winery/internal/migrations"
	"bacchus/winery/internal/reports"
	"bacchus/winery/internal/table"
)

type ctxKey string

const ctxOperator ctxKey = "operator"

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	cfg config.Config
	// now decides the in-progress quarter of the employee report.
	now func() time.Time
}

// New constructs a Handler. Every request opens its own connection from cfg.
func New(cfg config.Config) *Handler {
	return &Handler{cfg: cfg, now: time.Now}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Route("/reports", func(r chi.Router) {
			r.Get("/", h.listReports)
			r.Get("/{name}", h.report)
		})
		pr.Get("/tables/{name}", h.dumpTable)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Authentication helpers

type authClaims struct {
	jwt.RegisteredClaims
}

func (h *Handler) generateToken(operator string) (string, error) {
	now := time.Now()
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.Secret))
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenString := strings.TrimSpace(header[len("Bearer "):])
		token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(h.cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		claims, ok := token.Claims.(*authClaims)
		if !ok || claims.Subject != h.cfg.ReportUser {
			respondError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}
		ctx := context.WithValue(r.Context(), ctxOperator, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth Handlers

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.cfg.ReportPasswordHash == "" {
		respondError(w, http.StatusServiceUnavailable, "report login is not configured")
		return
	}
	if req.Username != h.cfg.ReportUser ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.ReportPasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.generateToken(req.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to generate token")
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, Username: req.Username})
}

// Report Handlers

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"reports": reports.Names})
}

func (h *Handler) withEngine(ctx context.Context, fn func(*reports.Engine) error) error {
	return database.With(ctx, h.cfg, h.cfg.Database, func(db *sqlx.DB) error {
		return fn(reports.New(db, database.For(h.cfg.Driver)).WithClock(h.now))
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !knownReport(name) {
		respondError(w, http.StatusNotFound, "unknown report")
		return
	}

	var res reports.Result
	err := h.withEngine(r.Context(), func(e *reports.Engine) error {
		var err error
		res, err = e.Run(r.Context(), name)
		return err
	})
	if err != nil {
		h.databaseError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

type tableResponse struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (h *Handler) dumpTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !knownTable(name) {
		respondError(w, http.StatusNotFound, "unknown table")
		return
	}

	var t table.Table
	err := h.withEngine(r.Context(), func(e *reports.Engine) error {
		var err error
		t, err = e.DumpTable(r.Context(), name)
		return err
	})
	if err != nil {
		h.databaseError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tableResponse{Name: name, Headers: t.Headers, Rows: t.Cells()})
}

func (h *Handler) databaseError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithError(err).WithField("path", r.URL.Path).Error("report request failed")
	status := http.StatusInternalServerError
	if database.Classify(err) == database.KindMissingDatabase {
		status = http.StatusServiceUnavailable
	}
	respondError(w, status, database.Describe(err))
}

func knownReport(name string) bool {
	for _, n := range reports.Names {
		if n == name {
			return true
		}
	}
	return false
}

func knownTable(name string) bool {
	for _, n := range migrations.TableNames() {
		if n == name {
			return true
		}
	}
	return false
}

// Utility helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
