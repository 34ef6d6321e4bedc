package service_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/chaos/service"
	"github.com/stretchr/testify/require"
)

type viewBody struct {
	ID   string `json:"id"`
	View struct {
		PlayerHand []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"player_hand"`
		Playable          []string `json:"playable"`
		OpponentHandCount int      `json:"opponent_hand_count"`
		DeckCount         int      `json:"deck_count"`
		Phase             string   `json:"phase"`
		Winner            string   `json:"winner"`
	} `json:"view"`
}

type errBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestTableLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database.SetThinkDelay(time.Millisecond)
	r := service.SetupRouter()

	w := do(t, r, http.MethodPost, "/tables?name=Ada", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created viewBody
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.View.PlayerHand, 5)
	require.Equal(t, 5, created.View.OpponentHandCount)
	require.Equal(t, 77, created.View.DeckCount)
	require.Equal(t, "playerTurn", created.View.Phase)
	require.Equal(t, "none", created.View.Winner)

	w = do(t, r, http.MethodGet, "/tables/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	if len(created.View.Playable) > 0 {
		w = do(t, r, http.MethodPost, "/tables/"+created.ID+"/play", map[string]string{"card_id": created.View.Playable[0]})
	} else {
		w = do(t, r, http.MethodPost, "/tables/"+created.ID+"/draw", nil)
	}
	require.Equal(t, http.StatusOK, w.Code)
	var moved viewBody
	decode(t, w, &moved)
	require.Contains(t, []string{"playerTurn", "gameOver"}, moved.View.Phase)

	w = do(t, r, http.MethodPost, "/tables/"+created.ID+"/restart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var restarted viewBody
	decode(t, w, &restarted)
	require.Len(t, restarted.View.PlayerHand, 5)

	w = do(t, r, http.MethodDelete, "/tables/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/tables/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var missing errBody
	decode(t, w, &missing)
	require.Equal(t, consts.ErrorsTableInvalid.Code, missing.Code)
	require.Equal(t, "Table invalid.", missing.Error)
}

func TestErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database.SetThinkDelay(time.Hour)
	defer database.SetThinkDelay(consts.ThinkDelay)
	r := service.SetupRouter()

	w := do(t, r, http.MethodPost, "/tables", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created viewBody
	decode(t, w, &created)
	defer database.DeleteTable(created.ID)
	path := "/tables/" + created.ID

	scenarios := []struct {
		description string
		path        string
		body        interface{}
		status      int
		code        int
	}{
		{
			description: "unknown_card",
			path:        path + "/play",
			body:        map[string]string{"card_id": "nope"},
			status:      http.StatusUnprocessableEntity,
			code:        consts.ErrorsCardNotInHand.Code,
		},
		{
			description: "missing_card_id",
			path:        path + "/play",
			body:        map[string]string{},
			status:      http.StatusBadRequest,
			code:        consts.ErrorsInputInvalid.Code,
		},
		{
			description: "unknown_table",
			path:        "/tables/nope/draw",
			status:      http.StatusNotFound,
			code:        consts.ErrorsTableInvalid.Code,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			w := do(t, r, http.MethodPost, scenario.path, scenario.body)
			require.Equal(t, scenario.status, w.Code)
			var body errBody
			decode(t, w, &body)
			require.Equal(t, scenario.code, body.Code)
		})
	}

	t.Run("out_of_turn", func(t *testing.T) {
		w := do(t, r, http.MethodPost, path+"/draw?wait=false", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var drawn viewBody
		decode(t, w, &drawn)
		require.Equal(t, "opponentTurn", drawn.View.Phase)

		w = do(t, r, http.MethodPost, path+"/draw", nil)
		require.Equal(t, http.StatusConflict, w.Code)
		var body errBody
		decode(t, w, &body)
		require.Equal(t, consts.ErrorsIllegalTurn.Code, body.Code)
	})
}
