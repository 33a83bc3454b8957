package main

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StartUI runs the interactive terminal mode: a start-screen form, the
// board as a selectable table, and the AI turn on a goroutine so the
// interface stays responsive while rollouts run.
func StartUI(settings GameSettings, rng *rand.Rand) {
	app := tview.NewApplication()

	var playerColorOption string
	var policyOption string
	var playoutsOption string

	var showStartScreen func()
	var startGame func()

	game := NewGame(settings, rng)

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Choose your color", []string{"Black", "White"}, 0, func(option string, index int) {
				playerColorOption = option
			}).
			AddDropDown("Rollout policy", []string{"rule_based", "random"}, 0, func(option string, index int) {
				policyOption = option
			}).
			AddDropDown("Playouts per move", []string{"10", "25", "50", "100"}, 0, func(option string, index int) {
				playoutsOption = option
			}).
			AddButton("Start Game", func() {
				if playerColorOption == "White" {
					settings.BlackType = PlayerAI
					settings.WhiteType = PlayerHuman
				} else {
					settings.BlackType = PlayerHuman
					settings.WhiteType = PlayerAI
				}
				if policy, err := ParsePolicy(policyOption); err == nil {
					settings.Policy = policy
				}
				fmt.Sscanf(playoutsOption, "%d", &settings.Playouts)
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Gomoku").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		game.Reset(settings, rng)
		game.Start()

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetBorderColor(tcell.ColorGreen)
		boardTable.SetBorders(true)

		statusBox := tview.NewTextView()
		statusBox.SetBorder(true)
		statusBox.SetTitle("Status")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(statusBox, 40, 1, false)

		size := settings.BoardSize
		board := game.Board()

		updateBoard := func() {
			board = game.Board()
			winning := map[Move]bool{}
			for _, m := range game.WinningLine() {
				winning[Move{X: m.X, Y: m.Y}] = true
			}
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					symbol := " "
					switch board.ColorAt(CoordToPoint(y+1, x+1, size)) {
					case Black:
						symbol = "●"
					case White:
						symbol = "○"
					}
					cell := tview.NewTableCell(symbol)
					cell.SetAlign(tview.AlignCenter)
					if winning[Move{X: x, Y: y}] {
						cell.SetTextColor(tcell.ColorRed)
					}
					boardTable.SetCell(y, x, cell)
				}
			}
			boardTable.SetTitle(fmt.Sprintf(" Gomoku - %s to move ", game.ToMove()))
			status := fmt.Sprintf("Status: %s\nMoves: %d\nPolicy: %s\nPlayouts: %d",
				game.Status(), game.History().Size(), settings.Policy, settings.Playouts)
			if msg := game.LastMessage(); msg != "" {
				status += "\n" + msg
			}
			statusBox.SetText(status)
		}

		updateBoard()

		var (
			aiThinking   int32
			spinnerIndex int
			spinners     = []string{"|", "/", "-", "\\"}
		)

		var processNextTurn func()

		processNextTurn = func() {
			if game.Status() != StatusRunning {
				text := "Draw!"
				if game.Winner() != Empty {
					text = fmt.Sprintf("%s wins!", game.Winner())
				}
				modal := tview.NewModal().
					SetText(fmt.Sprintf("Game Over!\n%s", text)).
					AddButtons([]string{"New Game", "Quit"}).
					SetDoneFunc(func(buttonIndex int, buttonLabel string) {
						if buttonLabel == "New Game" {
							showStartScreen()
						} else {
							app.Stop()
						}
					})
				app.SetRoot(modal, false).SetFocus(modal)
				return
			}

			if game.CurrentPlayerIsAI() {
				atomic.StoreInt32(&aiThinking, 1)
				spinnerIndex = 0
				mover := game.ToMove()

				ticker := time.NewTicker(100 * time.Millisecond)
				go func() {
					for range ticker.C {
						if atomic.LoadInt32(&aiThinking) == 0 {
							ticker.Stop()
							return
						}
						spinner := spinners[spinnerIndex%len(spinners)]
						spinnerIndex++
						app.QueueUpdateDraw(func() {
							boardTable.SetTitle(fmt.Sprintf(" Gomoku - %s thinking %s ", mover, spinner))
						})
					}
				}()

				// The goroutine only computes; the move lands on the event
				// loop, where ApplySuggestedMove drops it if stale.
				go func() {
					move, forHash, ok := game.ComputeAIMove()
					app.QueueUpdateDraw(func() {
						if ok {
							game.ApplySuggestedMove(move, forHash)
						}
						atomic.StoreInt32(&aiThinking, 0)
						updateBoard()
						processNextTurn()
					})
				}()
			} else {
				updateBoard()
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if atomic.LoadInt32(&aiThinking) == 1 {
				return
			}
			if ok, _ := game.SubmitHumanMove(NewMove(column, row)); !ok {
				updateBoard()
				return
			}
			updateBoard()
			processNextTurn()
		})

		app.SetRoot(flex, true).SetFocus(boardTable)
		processNextTurn()
	}

	showStartScreen()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
