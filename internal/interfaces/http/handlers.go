// Package http exposes the analysis, recommendation and simulation
// pipeline over a gin-backed JSON API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavorlab/cocktailiq/internal/application/analysis"
	"github.com/flavorlab/cocktailiq/internal/application/recommend"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Handlers carries the application services the routes dispatch to.
type Handlers struct {
	source      analysis.CocktailSource
	analyzer    *analysis.Service
	recommender *recommend.Service
	simulator   *recommend.Simulator
	logger      logging.Logger
}

// NewHandlers wires the handler set.
func NewHandlers(
	source analysis.CocktailSource,
	analyzer *analysis.Service,
	recommender *recommend.Service,
	simulator *recommend.Simulator,
	logger logging.Logger,
) *Handlers {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Handlers{
		source:      source,
		analyzer:    analyzer,
		recommender: recommender,
		simulator:   simulator,
		logger:      logger.Named("handlers"),
	}
}

// ListCocktails returns the known recipe names.
func (h *Handlers) ListCocktails(c *gin.Context) {
	names := h.analyzer.Names()
	c.JSON(http.StatusOK, gin.H{"cocktails": names, "count": len(names)})
}

// Analyze runs the analysis pipeline for one cocktail. An optional target
// query parameter pins a balance goal.
func (h *Handlers) Analyze(c *gin.Context) {
	target, ok := h.parseTarget(c)
	if !ok {
		return
	}

	report, err := h.analyzer.Analyze(c.Request.Context(), c.Param("name"), target)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Recommend returns suggestions; best=true verifies the top candidates by
// simulation and marks the winner.
func (h *Handlers) Recommend(c *gin.Context) {
	target, ok := h.parseTarget(c)
	if !ok {
		return
	}
	best := c.Query("best") == "true" || c.Query("best") == "1"

	result, err := h.recommender.Recommend(c.Request.Context(), c.Param("name"), target, best)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type simulateRequest struct {
	Modifications []cocktail.Modification `json:"modifications" binding:"required"`
}

// Simulate applies a modification list to a cocktail and reports the
// before/after comparison.
func (h *Handlers) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid simulation request"))
		return
	}

	name := c.Param("name")
	base, ok := h.source.Find(name)
	if !ok {
		h.writeError(c, errors.Newf(errors.ErrCodeCocktailNotFound, "cocktail %q not found", name))
		return
	}
	result, err := h.simulator.Simulate(base, req.Modifications)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) parseTarget(c *gin.Context) (flavor.Target, bool) {
	raw := c.Query("target")
	target, err := flavor.ParseTarget(raw)
	if err != nil {
		h.writeError(c, errors.Wrap(err, errors.ErrCodeTargetInvalid, "invalid target"))
		return "", false
	}
	return target, true
}

// writeError maps AppError codes to HTTP statuses: not-found to 404,
// validation to 400, everything else to 500.
func (h *Handlers) writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request error", logging.Err(err), logging.String("path", c.Request.URL.Path))
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    string(code),
			"message": err.Error(),
		},
	})
}
