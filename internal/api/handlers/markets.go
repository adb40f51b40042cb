package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"property-advisor/internal/api/models"
	"property-advisor/internal/config"
	"property-advisor/internal/invest"
)

// marketDir returns the directory that holds market preset YAML files.
func marketDir() string {
	if dir := os.Getenv("MARKET_DIR"); dir != "" {
		return dir
	}
	return "examples/markets"
}

// ListMarkets handles GET /api/v1/markets
func ListMarkets(c *gin.Context) {
	entries, err := os.ReadDir(marketDir())
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"markets": []models.MarketInfo{}})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MARKETS_LOAD_ERROR",
				Message: fmt.Sprintf("Failed to list markets: %v", err),
			},
		})
		return
	}

	markets := []models.MarketInfo{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		mc, err := config.LoadMarketFile(filepath.Join(marketDir(), name))
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		rates := mc.ToRates()
		markets = append(markets, models.MarketInfo{
			ID:   id,
			Name: mc.Name,
			File: name,
			Rates: models.MarketRates{
				AppreciationRate: rates.AppreciationRate,
				VacancyRate:      rates.VacancyRate,
				MaintenanceRate:  rates.MaintenanceRate,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"markets": markets, "count": len(markets)})
}

// resolveEngine builds an engine from the server defaults, an optional market
// preset and optional per-request rate overrides. Precedence, lowest first:
// engine defaults, server config, preset, request rates.
func resolveEngine(defaults config.MarketConfig, marketFile string, rates *models.RatesOverride) (*invest.Engine, error) {
	mc := defaults

	if marketFile != "" {
		if strings.ContainsAny(marketFile, `/\`) || strings.Contains(marketFile, "..") {
			return nil, fmt.Errorf("invalid market file name %q", marketFile)
		}
		path := filepath.Join(marketDir(), marketFile+".yaml")
		loaded, err := config.LoadMarketFile(path)
		if err != nil {
			return nil, fmt.Errorf("market file %q: %w", marketFile, err)
		}
		mc = config.MergeMarket(mc, loaded)
	}

	if rates != nil {
		mc = config.MergeMarket(mc, config.MarketConfig{
			AppreciationRate: rates.AppreciationRate,
			VacancyRate:      rates.VacancyRate,
			MaintenanceRate:  rates.MaintenanceRate,
		})
	}

	return invest.New(mc.ToRates())
}
