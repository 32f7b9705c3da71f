package controllers

import (
	"net/http"
	"time"

	"rentora/app"
	"rentora/cache"
	"rentora/db"

	"github.com/gin-gonic/gin"
)

type StatsController struct{ *Srv }

func GetStatsController(s *Srv) *StatsController { return &StatsController{Srv: s} }

// GET /api/v1/stats — dashboard snapshot. Served from the redis cache when
// fresh; any cache trouble falls through to the database.
func (sc *StatsController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var cached db.Snapshot
	hit, err := sc.Cache.Get(ctx, cache.SnapshotKey, &cached)
	if err != nil {
		sc.Log.Debug().Err(err).Msg("snapshot cache read failed")
	}
	if hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	snap, err := sc.Repo.DashboardStats(ctx, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"message": err.Error()})
		return
	}
	if err := sc.Cache.Set(ctx, cache.SnapshotKey, snap); err != nil {
		sc.Log.Debug().Err(err).Msg("snapshot cache write failed")
	}

	c.JSON(http.StatusOK, snap)
}
