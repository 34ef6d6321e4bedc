package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/core/log"
)

// SetupRouter exposes the human seat of a table over HTTP.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/tables", createTable)
	tables := r.Group("/tables/:id")
	tables.GET("", getTable)
	tables.POST("/draw", drawCard)
	tables.POST("/play", playCard)
	tables.POST("/restart", restartTable)
	tables.DELETE("", deleteTable)
	return r
}

func createTable(c *gin.Context) {
	tbl := database.CreateTable(c.DefaultQuery("name", game.DefaultPlayerName))
	if err := tbl.Start(); err != nil {
		database.DeleteTable(tbl.ID)
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, tableResp{ID: tbl.ID, View: tbl.View()})
}

func getTable(c *gin.Context) {
	tbl := lookup(c)
	if tbl == nil {
		return
	}
	c.JSON(http.StatusOK, tableResp{ID: tbl.ID, View: tbl.View()})
}

func drawCard(c *gin.Context) {
	act(c, func(tbl *table.Table) error {
		return tbl.PlayerDraw()
	})
}

func playCard(c *gin.Context) {
	var req playReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, consts.ErrorsInputInvalid)
		return
	}
	act(c, func(tbl *table.Table) error {
		return tbl.PlayerPlay(req.CardID)
	})
}

func restartTable(c *gin.Context) {
	act(c, func(tbl *table.Table) error {
		return tbl.Start()
	})
}

func deleteTable(c *gin.Context) {
	if !database.DeleteTable(c.Param("id")) {
		abort(c, consts.ErrorsTableInvalid)
		return
	}
	c.Status(http.StatusNoContent)
}

// act runs a move and answers with the view once the opponent is done,
// unless the caller asked not to wait.
func act(c *gin.Context, move func(tbl *table.Table) error) {
	tbl := lookup(c)
	if tbl == nil {
		return
	}
	if err := move(tbl); err != nil {
		abort(c, err)
		return
	}
	if !strings.EqualFold(c.Query("wait"), "false") {
		ctx, cancel := context.WithTimeout(c.Request.Context(), consts.SettleTimeout)
		defer cancel()
		if err := tbl.Settle(ctx); err != nil {
			log.Errorf("table %s did not settle: %v\n", tbl.ID, err)
		}
	}
	c.JSON(http.StatusOK, tableResp{ID: tbl.ID, View: tbl.View()})
}

func lookup(c *gin.Context) *table.Table {
	tbl := database.GetTable(c.Param("id"))
	if tbl == nil {
		abort(c, consts.ErrorsTableInvalid)
	}
	return tbl
}

func abort(c *gin.Context, err error) {
	err = consts.Translate(err)
	code := 0
	if e, ok := err.(consts.Error); ok {
		code = e.Code
	}
	c.AbortWithStatusJSON(status(err), errResp{Code: code, Error: strings.TrimSpace(err.Error())})
}

func status(err error) int {
	switch err {
	case consts.ErrorsTableInvalid:
		return http.StatusNotFound
	case consts.ErrorsIllegalTurn:
		return http.StatusConflict
	case consts.ErrorsInvalidMove, consts.ErrorsCardNotInHand:
		return http.StatusUnprocessableEntity
	case consts.ErrorsInputInvalid:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
