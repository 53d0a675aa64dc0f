package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
)

// SetupUI provides a form for configuring a new game.
type SetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	cfg      *config.Config
	onStart  func()
	onCancel func()
}

// NewSetup creates a new game setup form. Theme and hint choices are
// written straight into cfg; onStart fires when the player confirms.
func NewSetup(cfg *config.Config, onStart func(), onCancel func()) *SetupUI {
	setup := &SetupUI{
		cfg:      cfg,
		onStart:  onStart,
		onCancel: onCancel,
	}

	themeNames := make([]string, len(config.Themes))
	themeIndex := 0
	for i, theme := range config.Themes {
		themeNames[i] = theme.Name
		if theme.Name == cfg.Theme.Name {
			themeIndex = i
		}
	}

	form := tview.NewForm()

	form.AddCheckbox("Show legal moves", cfg.Game.ShowLegalMoves, func(checked bool) {
		setup.cfg.Game.ShowLegalMoves = checked
	})

	form.AddDropDown("Theme", themeNames, themeIndex, func(option string, index int) {
		if index >= 0 && index < len(config.Themes) {
			setup.cfg.Theme = config.Themes[index]
		}
	})

	form.AddButton("Start Game", func() {
		setup.cfg.Save()
		onStart()
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(tcell.ColorDarkGreen)
	form.SetButtonTextColor(tcell.ColorWhite)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *SetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *SetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
