// termello is a terminal application to play Othello with two players at
// one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/rivo/tview"

	"termello/config"
	"termello/game"
	"termello/shell"
	"termello/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlain   = flag.Bool("plain", false, "Play on a line-based prompt instead of the full-screen board")
	flagNoHints = flag.Bool("nohints", false, "Do not mark legal moves on the board")
	flagPlay    = flag.Bool("play", false, "Skip the setup screen and start immediately")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termello %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	if *flagNoHints {
		cfg.Game.ShowLegalMoves = false
	}

	if *flagPlain || cfg.Game.PlainMode {
		runShell()
		return
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬥ termello ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)

	// Game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil && !gameBoard.IsFinished() {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlaySelected()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'p':
				gameBoard.Pass()
			}
		}
		return event
	})

	// Game-over modal with final score
	gameBoard.SetGameOverFunc(func(result game.Result) {
		modal := tview.NewModal().
			SetText(ui.FormatResultText(result)).
			AddButtons([]string{"New Game", "Quit"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("gameover")
				if buttonLabel == "New Game" {
					startGame()
				} else {
					app.Stop()
				}
			})
		rootPage.AddPage("gameover", modal, true, true)
	})

	// Game setup screen
	setupUI := ui.NewSetup(cfg,
		func() {
			gameBoard.SetConfig(cfg)
			startGame()
		},
		func() {
			app.Stop()
		},
	)

	rootPage.AddPage("setup", setupUI.Form(), true, !*flagPlay)
	rootPage.AddPage("gameview", gameFrame, true, *flagPlay)

	if *flagPlay {
		startGame()
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame attaches a fresh session to the board and shows it.
func startGame() {
	gameBoard.StartGame(game.NewSession())
	rootPage.SwitchToPage("gameview")
}

// runShell plays the game on stdin/stdout without tview.
func runShell() {
	out := termenv.NewOutput(os.Stdout)
	sh := shell.New(game.NewSession(), os.Stdin, out)
	if err := sh.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
