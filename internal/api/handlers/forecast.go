package handlers

import (
	"net/http"

	"power-bidding/internal/api/models"
	"power-bidding/internal/forecast"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ForecastHandler handles forecast-related requests
type ForecastHandler struct {
	engine *forecast.Engine
	log    zerolog.Logger
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(engine *forecast.Engine, log zerolog.Logger) *ForecastHandler {
	return &ForecastHandler{engine: engine, log: log}
}

// Forecast handles POST /api/v1/forecast
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	date, err := forecast.ParseDate(req.Date)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.engine.Forecast(date, req.Model)
	if err != nil {
		writeError(c, err)
		return
	}

	if res.Requested != res.Model.Name {
		h.log.Debug().
			Str("requested", res.Requested).
			Str("ran", res.Model.Name).
			Msg("model name resolved to default")
	}
	h.log.Info().
		Str("date", req.Date).
		Str("model", res.Model.Name).
		Msg("forecast generated")

	c.JSON(http.StatusOK, toForecastResponse(res))
}

// ListModels handles GET /api/v1/models
func (h *ForecastHandler) ListModels(c *gin.Context) {
	infos := h.engine.Models()
	out := make([]models.ModelInfo, len(infos))
	for i, m := range infos {
		out[i] = models.ModelInfo{Name: m.Name, Source: m.Source, Version: m.Version}
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}
