package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/seatboard/internal/pipeline"
	"github.com/KaramelBytes/seatboard/internal/render"
	"github.com/KaramelBytes/seatboard/internal/todo"
)

// Options configures a Server.
type Options struct {
	Source   pipeline.Source
	HostPage string
	Tasks    *todo.List
	Logger   *zap.Logger
	DevMode  bool
}

// Server serves the dashboard and the task list over HTTP.
type Server struct {
	router   *gin.Engine
	source   pipeline.Source
	hostPage string
	tasks    *todo.List
	log      *zap.Logger
}

// New builds a server with its routes registered.
func New(opt Options) *Server {
	if !opt.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Tasks == nil {
		opt.Tasks = todo.New()
	}
	s := &Server{
		router:   gin.New(),
		source:   opt.Source,
		hostPage: opt.HostPage,
		tasks:    opt.Tasks,
		log:      opt.Logger,
	}
	s.router.Use(gin.Recovery(), s.requestLog())
	s.router.GET("/", s.dashboard)
	s.RegisterRoutes(s.router.Group("/api"))
	return s
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler { return s.router }

// RegisterRoutes mounts the JSON API on group.
func (s *Server) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/summary", s.summary)
	api.GET("/tasks", s.listTasks)
	api.POST("/tasks", s.addTask)
	api.PATCH("/tasks/:id", s.editTask)
	api.POST("/tasks/:id/toggle", s.toggleTask)
	api.DELETE("/tasks/:id", s.removeTask)
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) dashboard(c *gin.Context) {
	page, err := render.LoadPageFile(s.hostPage)
	if err != nil {
		s.log.Error("load host page", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	status := http.StatusOK
	res, err := pipeline.Run(c.Request.Context(), s.source, s.log)
	if err != nil {
		status = http.StatusBadGateway
		err = page.MountError(err)
	} else {
		err = page.Mount(res.Groups)
	}
	if err != nil {
		s.log.Error("mount dashboard", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) summary(c *gin.Context) {
	res, err := pipeline.Run(c.Request.Context(), s.source, s.log)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": res.RunID, "summary": res.Groups.Summary()})
}

type taskRequest struct {
	Text string `json:"text"`
}

func (s *Server) listTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": s.tasks.Tasks()})
}

func (s *Server) addTask(c *gin.Context) {
	var req taskRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusCreated, s.tasks.Add(req.Text))
}

func (s *Server) editTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.tasks.SetText(id, req.Text) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	t, _ := s.tasks.Get(id)
	c.JSON(http.StatusOK, t)
}

func (s *Server) toggleTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	t, found := s.tasks.Toggle(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) removeTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if !s.tasks.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}
