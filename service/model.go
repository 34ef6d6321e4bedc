package service

import (
	"github.com/ratel-online/chaos/chaos/game"
)

type tableResp struct {
	ID   string    `json:"id"`
	View game.View `json:"view"`
}

type errResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type playReq struct {
	CardID string `json:"card_id" binding:"required"`
}
