package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
)

const defaultBoardSize = 3

var errMissingPosition = errors.New("row and col are required")

type gameUseCase interface {
	CreateGame(ctx context.Context, size int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
	MakeTurn(ctx context.Context, gameID string, mark entity.Mark, pos entity.Position) (*entity.Game, entity.WinResult, error)

	RecordResult(ctx context.Context, result entity.GameResult) error
	Stats(ctx context.Context) ([]entity.PlayerStats, error)
}

type handlers struct {
	logger *slog.Logger
	uGame  gameUseCase
}

type createGameRequest struct {
	Size int `json:"size"`
}

type turnRequest struct {
	Mark string `json:"mark"`
	Row  *int   `json:"row"`
	Col  *int   `json:"col"`
}

type recordResultRequest struct {
	Player string `json:"player"`
	Result string `json:"result"`
}

type gameResponse struct {
	*entity.Game
	Size int `json:"size"`
}

type turnResponse struct {
	Game   gameResponse      `json:"game"`
	Winner *entity.Mark      `json:"winner"`
	Line   *entity.Line      `json:"line,omitempty"`
	Cells  []entity.Position `json:"cells,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(game *entity.Game) gameResponse {
	return gameResponse{Game: game, Size: game.Board.Size()}
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.ContentLength != 0 {
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			that.renderError(w, r, http.StatusBadRequest, err)
			return
		}
	}

	if req.Size == 0 {
		req.Size = defaultBoardSize
	}

	game, err := that.uGame.CreateGame(r.Context(), req.Size)
	if err != nil {
		that.renderAppError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, newGameResponse(game))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.renderAppError(w, r, err)
		return
	}

	render.JSON(w, r, newGameResponse(game))
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.renderAppError(w, r, err)
		return
	}

	render.NoContent(w, r)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		that.renderError(w, r, http.StatusBadRequest, err)
		return
	}

	if req.Row == nil || req.Col == nil {
		that.renderError(w, r, http.StatusBadRequest, errMissingPosition)
		return
	}

	mark, err := entity.ParseMark(req.Mark)
	if err != nil {
		that.renderError(w, r, http.StatusBadRequest, err)
		return
	}

	pos := entity.Position{Row: *req.Row, Col: *req.Col}

	game, result, err := that.uGame.MakeTurn(r.Context(), chi.URLParam(r, "id"), mark, pos)
	if err != nil {
		that.renderAppError(w, r, err)
		return
	}

	resp := turnResponse{Game: newGameResponse(game)}
	if winner, ok := result.Winner(); ok {
		line := result.Line()
		resp.Winner = &winner
		resp.Line = &line
		resp.Cells = line.Cells(game.Board.Size())
	}

	render.JSON(w, r, resp)
}

func (that *handlers) recordResult(w http.ResponseWriter, r *http.Request) {
	var req recordResultRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		that.renderError(w, r, http.StatusBadRequest, err)
		return
	}

	mark, err := entity.ParseMark(req.Player)
	if err != nil {
		that.renderError(w, r, http.StatusBadRequest, err)
		return
	}

	if err = that.uGame.RecordResult(r.Context(), entity.GameResult{Player: mark, Result: req.Result}); err != nil {
		that.renderAppError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"status": "Game result stored successfully"})
}

func (that *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.uGame.Stats(r.Context())
	if err != nil {
		that.renderAppError(w, r, err)
		return
	}

	render.JSON(w, r, stats)
}

// renderAppError - maps domain errors to HTTP statuses.
func (that *handlers) renderAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		that.renderError(w, r, http.StatusNotFound, err)
	case errors.Is(err, apperror.ErrInvalidBoardSize),
		errors.Is(err, entity.ErrInvalidCell),
		errors.Is(err, entity.ErrInvalidMark),
		errors.Is(err, entity.ErrInvalidResult):
		that.renderError(w, r, http.StatusBadRequest, err)
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		that.renderError(w, r, http.StatusConflict, err)
	default:
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		that.renderError(w, r, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func (that *handlers) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}
