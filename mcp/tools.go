package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/consts"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(drawCardTool(), handleDrawCard)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Deal a new game of Chaos Cards against the computer opponent. "+
			"Match the top card by color or number, or draw. Any running game is replaced."),
		mcp.WithString("player_name", mcp.Description("Name to play under, defaults to 'You'")),
	)
}

func drawCardTool() mcp.Tool {
	return mcp.NewTool("draw_card",
		mcp.WithDescription("Draw the next number card from the deck and end your turn. Returns the state after the opponent has moved."),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a number card from your hand on the discard pile. Returns the state after the opponent has moved."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("ID of the card, as listed in view.player_hand; view.playable lists legal choices")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current view of the game and the events since the last call. Read-only."),
	)
}

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(request.GetString("player_name", game.DefaultPlayerName))
	if name == "" {
		name = game.DefaultPlayerName
	}
	sess, err := NewGameSession(name)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	if activeSession != nil {
		activeSession.Close()
	}
	activeSession = sess
	return respond(ctx, sess)
}

func handleDrawCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	if err := activeSession.table.PlayerDraw(); err != nil {
		return mcp.NewToolResultError(strings.TrimSpace(consts.Translate(err).Error())), nil
	}
	return respond(ctx, activeSession)
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	id := request.GetString("card_id", "")
	if id == "" {
		return mcp.NewToolResultError("card_id is required"), nil
	}
	if err := activeSession.table.PlayerPlay(id); err != nil {
		return mcp.NewToolResultError(strings.TrimSpace(consts.Translate(err).Error())), nil
	}
	return respond(ctx, activeSession)
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return respond(ctx, activeSession)
}

func respond(ctx context.Context, sess *GameSession) (*mcp.CallToolResult, error) {
	resp, err := sess.respond(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for the opponent: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
