package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jlave-dev/squarewise/internal/generator"
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/puzzle"
	"github.com/jlave-dev/squarewise/internal/solver"
	"github.com/jlave-dev/squarewise/internal/validator"
)

type generateRequest struct {
	Size       int               `json:"size" binding:"required,min=2,max=9"`
	Difficulty puzzle.Difficulty `json:"difficulty" binding:"required"`
	Seed       string            `json:"seed"`
	Sync       bool              `json:"sync"` // skip uniqueness verification
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := generator.DefaultOptions()
	opts.Seed = req.Seed
	opts.Presets = s.presets
	gen := generator.New(opts)

	start := time.Now()
	var (
		p   *puzzle.Puzzle
		err error
	)
	if req.Sync {
		p, err = gen.GenerateSync(req.Size, req.Difficulty)
	} else {
		p, err = gen.Generate(c.Request.Context(), req.Size, req.Difficulty)
	}
	generateSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		generateTotal.WithLabelValues(string(req.Difficulty), "failure").Inc()
		s.log.Error("generate failed", "size", req.Size, "difficulty", req.Difficulty, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, puzzle.ErrUnknownDifficulty) || errors.Is(err, grid.ErrInvalidSize) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	generateTotal.WithLabelValues(string(req.Difficulty), "success").Inc()
	s.log.Info("generated", "id", p.ID, "size", p.Size, "difficulty", p.Difficulty)
	c.JSON(http.StatusOK, p)
}

type validateRequest struct {
	Puzzle puzzle.Puzzle `json:"puzzle" binding:"required"`
	Grid   grid.Grid     `json:"grid" binding:"required"`
	Cell   grid.Cell     `json:"cell"`
	Value  int           `json:"value" binding:"required,min=1"`
}

func (s *Server) handleValidate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !inBounds(req.Cell, req.Puzzle.Size) || req.Value > req.Puzzle.Size {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cell or value out of range"})
		return
	}
	if !gridFits(req.Grid, req.Puzzle.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid does not match puzzle size"})
		return
	}
	res := validator.New(&req.Puzzle).IsValidMove(req.Grid, req.Cell, req.Value)
	c.JSON(http.StatusOK, res)
}

type hintRequest struct {
	Puzzle puzzle.Puzzle `json:"puzzle" binding:"required"`
	Grid   grid.Grid     `json:"grid" binding:"required"`
}

func (s *Server) handleHint(c *gin.Context) {
	var req hintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !gridFits(req.Grid, req.Puzzle.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid does not match puzzle size"})
		return
	}
	// nil hint means the grid is full; serialize that as an explicit null.
	c.JSON(http.StatusOK, gin.H{"hint": solver.Hint(&req.Puzzle, req.Grid)})
}

type scoreRequest struct {
	Puzzle puzzle.Puzzle `json:"puzzle" binding:"required"`
}

func (s *Server) handleScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": solver.Score(&req.Puzzle)})
}

func inBounds(c grid.Cell, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

func gridFits(g grid.Grid, size int) bool {
	if len(g) != size {
		return false
	}
	for _, row := range g {
		if len(row) != size {
			return false
		}
	}
	return true
}
