package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/normlab/internal/logger"
	"github.com/samcharles93/normlab/internal/version"
	"github.com/samcharles93/normlab/internal/webui"
	"github.com/samcharles93/normlab/pkg/lab"
)

// Server exposes the playground: session CRUD, parameter updates, and the
// norm readout. Every session owns an independent lab.
type Server struct {
	store    *SessionStore
	defaults lab.Params
	log      logger.Logger
	clock    func() time.Time
}

func NewServer(store *SessionStore, defaults lab.Params, log logger.Logger) *Server {
	if store == nil {
		store = NewSessionStore(DefaultSessionLimit)
	}
	if log == nil {
		log = logger.Default()
	}
	return &Server{
		store:    store,
		defaults: defaults,
		log:      log,
		clock:    time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.handleIndex)
	e.POST("/v1/sessions", s.handleCreateSession)
	e.GET("/v1/sessions/:id", s.handleGetSession)
	e.PATCH("/v1/sessions/:id/params", s.handlePatchParams)
	e.GET("/v1/sessions/:id/norms", s.handleGetNorms)
	e.DELETE("/v1/sessions/:id", s.handleDeleteSession)
	e.GET("/healthz", s.handleHealthz)
}

func (s *Server) handleIndex(c *echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	_, err := res.Write(webui.Index())
	return err
}

func (s *Server) handleCreateSession(c *echo.Context) error {
	patch, err := decodeOptionalJSON[ParamsPatch](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	params, err := applyPatch(s.defaults, patch)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			return writeBadRequest(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}

	sess, err := s.store.Create(params, s.clock())
	if err != nil {
		if errors.Is(err, ErrSessionLimit) {
			return writeError(c, http.StatusTooManyRequests, "session_limit_error", "session limit reached, delete one first")
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	s.log.Info("session created", "id", sess.ID, "dims", params.Dims.String(), "sessions", s.store.Len())

	return c.JSON(http.StatusCreated, SessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt.Unix(),
		Snapshot:  NewSnapshotDTO(sess.Snapshot()),
	})
}

func (s *Server) handleGetSession(c *echo.Context) error {
	sess, ok := s.lookup(c)
	if !ok {
		return writeNotFound(c, "session not found")
	}
	return c.JSON(http.StatusOK, SessionResponse{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt.Unix(),
		Snapshot:  NewSnapshotDTO(sess.Snapshot()),
	})
}

func (s *Server) handlePatchParams(c *echo.Context) error {
	sess, ok := s.lookup(c)
	if !ok {
		return writeNotFound(c, "session not found")
	}
	patch, err := decodeJSON[ParamsPatch](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	next, err := applyPatch(sess.Snapshot().Params, patch)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			return writeBadRequest(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}

	snap, regenerated := sess.Set(next)
	s.log.Debug("session updated", "id", sess.ID, "regenerated", regenerated)

	return c.JSON(http.StatusOK, PatchResponse{
		ID:          sess.ID,
		Regenerated: regenerated,
		Snapshot:    NewSnapshotDTO(snap),
	})
}

func (s *Server) handleGetNorms(c *echo.Context) error {
	sess, ok := s.lookup(c)
	if !ok {
		return writeNotFound(c, "session not found")
	}
	snap := sess.Snapshot()
	return c.JSON(http.StatusOK, NormsDTO{
		Kind: string(snap.Params.Norm),
		A:    jsonFloat(snap.Norms.A),
		B:    jsonFloat(snap.Norms.B),
		C:    jsonFloat(snap.Norms.C),
	})
}

func (s *Server) handleDeleteSession(c *echo.Context) error {
	id := c.Param("id")
	if id == "" || !s.store.Delete(id) {
		return writeNotFound(c, "session not found")
	}
	s.log.Info("session deleted", "id", id, "sessions", s.store.Len())
	return c.JSON(http.StatusOK, DeleteSessionResponse{ID: id, Deleted: true})
}

func (s *Server) handleHealthz(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  version.String(),
		"sessions": s.store.Len(),
	})
}

func (s *Server) lookup(c *echo.Context) (*Session, bool) {
	id := c.Param("id")
	if id == "" {
		return nil, false
	}
	return s.store.Get(id)
}
