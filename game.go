package main

import (
	"fmt"
	"math/rand"
	"time"
)

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

// Game drives one local match between the configured players. It owns the
// live board; readers get clones.
type Game struct {
	settings    GameSettings
	board       *Board
	status      GameStatus
	winner      Color
	winningLine []Point
	lastMessage string
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	turnStart   time.Time
	hash        uint64
}

func NewGame(settings GameSettings, rng *rand.Rand) *Game {
	g := &Game{}
	g.Reset(settings, rng)
	return g
}

func (g *Game) Reset(settings GameSettings, rng *rand.Rand) {
	g.settings = settings
	g.board = NewBoard(settings.BoardSize)
	g.status = StatusNotStarted
	g.winner = Empty
	g.winningLine = nil
	g.lastMessage = ""
	g.history.Clear()
	g.blackPlayer = makePlayer(settings.BlackType, settings, rng)
	g.whitePlayer = makePlayer(settings.WhiteType, settings, rng)
	g.turnStart = time.Now()
	g.hash = ComputeHash(g.board)
}

func makePlayer(kind PlayerType, settings GameSettings, rng *rand.Rand) IPlayer {
	if kind == PlayerAI {
		workers := GetConfig().SimWorkers
		return NewAIPlayer(settings.Playouts, workers, settings.Policy, rng)
	}
	return NewHumanPlayer()
}

func (g *Game) Start() {
	if g.status == StatusNotStarted {
		g.status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) Settings() GameSettings { return g.settings }
func (g *Game) Status() GameStatus     { return g.status }
func (g *Game) Winner() Color          { return g.winner }
func (g *Game) LastMessage() string    { return g.lastMessage }
func (g *Game) History() MoveHistory   { return g.history }

// Hash identifies the current position; async AI suggestions computed for a
// different hash are stale and must be discarded.
func (g *Game) Hash() uint64 { return g.hash }

// Board returns a clone; the live board never escapes the game.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

func (g *Game) ToMove() Color {
	return g.board.CurrentPlayer()
}

// WinningLine returns the five points of the winning streak as moves, for
// display. Nil while the game has no winner.
func (g *Game) WinningLine() []Move {
	var moves []Move
	for _, p := range g.winningLine {
		moves = append(moves, MoveFromPoint(p, g.settings.BoardSize))
	}
	return moves
}

func (g *Game) currentPlayer() IPlayer {
	if g.board.CurrentPlayer() == Black {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) CurrentPlayerIsHuman() bool {
	return g.status == StatusRunning && g.currentPlayer().IsHuman()
}

func (g *Game) CurrentPlayerIsAI() bool {
	return g.status == StatusRunning && !g.currentPlayer().IsHuman()
}

// TryApplyMove validates and plays a move for the side to move, records it
// in the history, and updates status on a five in a row or a full board.
func (g *Game) TryApplyMove(move Move, isAi bool) (bool, string) {
	if g.status != StatusRunning {
		return false, "game not running"
	}
	if !move.IsValid(g.settings.BoardSize) {
		g.lastMessage = "Illegal move: out of bounds"
		return false, g.lastMessage
	}
	color := g.board.CurrentPlayer()
	point := move.ToPoint(g.settings.BoardSize)
	if !g.board.PlayMove(point, color) {
		g.lastMessage = "Illegal move: occupied"
		return false, g.lastMessage
	}
	g.lastMessage = ""
	elapsed := float64(time.Since(g.turnStart).Milliseconds())
	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    color,
		ElapsedMs: elapsed,
		IsAi:      isAi,
		Playouts:  move.Playouts,
	})
	g.hash = ComputeHash(g.board)
	g.turnStart = time.Now()
	g.updateStatus()
	return true, ""
}

func (g *Game) updateStatus() {
	winner, line := g.board.FiveInARowLine()
	if winner != Empty {
		g.winner = winner
		g.winningLine = line
		if winner == Black {
			g.status = StatusBlackWon
		} else {
			g.status = StatusWhiteWon
		}
		return
	}
	if len(g.board.GetEmptyPoints()) == 0 {
		g.status = StatusDraw
	}
}

// SubmitHumanMove stages a move for the human side to move and applies it.
func (g *Game) SubmitHumanMove(move Move) (bool, string) {
	if !g.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	human, ok := g.currentPlayer().(*HumanPlayer)
	if !ok {
		return false, "not human turn"
	}
	human.SetPendingMove(move)
	return g.PlayHumanMove()
}

// PlayHumanMove applies the staged move of the human side to move, if any.
func (g *Game) PlayHumanMove() (bool, string) {
	if !g.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	move, ok := g.currentPlayer().ChooseMove(g.board.Copy(), g.board.CurrentPlayer())
	if !ok {
		return false, "no move staged"
	}
	return g.TryApplyMove(move, false)
}

// ComputeAIMove runs the simulator for the AI side to move without touching
// the live game, so it is safe to call from a goroutine while other
// goroutines keep reading the game. It returns the hash of the position the
// move was computed for; ApplySuggestedMove uses it to discard the move if
// the game has moved on in the meantime.
func (g *Game) ComputeAIMove() (Move, uint64, bool) {
	if !g.CurrentPlayerIsAI() {
		return Move{}, 0, false
	}
	forHash := g.hash
	move, ok := g.currentPlayer().ChooseMove(g.board.Copy(), g.board.CurrentPlayer())
	return move, forHash, ok
}

// ApplySuggestedMove applies a move from ComputeAIMove. A move computed for
// a position whose hash no longer matches is stale and is dropped.
func (g *Game) ApplySuggestedMove(move Move, forHash uint64) bool {
	if g.hash != forHash || !g.CurrentPlayerIsAI() {
		return false
	}
	if ok, reason := g.TryApplyMove(move, true); !ok {
		g.lastMessage = fmt.Sprintf("AI move rejected: %s", reason)
		return false
	}
	return true
}

// PlayAIMove computes and applies the AI move for the side to move.
func (g *Game) PlayAIMove() (Move, bool) {
	move, forHash, ok := g.ComputeAIMove()
	if !ok {
		return Move{}, false
	}
	if !g.ApplySuggestedMove(move, forHash) {
		return Move{}, false
	}
	return move, true
}

func (g GameStatus) String() string {
	switch g {
	case StatusNotStarted:
		return "not started"
	case StatusRunning:
		return "running"
	case StatusBlackWon:
		return "black won"
	case StatusWhiteWon:
		return "white won"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}
