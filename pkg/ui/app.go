package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/config"
	"github.com/intothevoid/legendchess/pkg/controller"
	"github.com/intothevoid/legendchess/pkg/locale"
)

// App is the window showing one controller.
type App struct {
	win  fyne.Window
	ctrl *controller.Controller

	board *BoardWidget
	tr    *locale.Translator

	// widgets of the screen currently shown
	shown       controller.Mode
	langButtons []*widget.Button
	yesButton   *widget.Button
	noButton    *widget.Button
	quitButton  *widget.Button
	restartBtn  *widget.Button
	turnLabel   *canvas.Text
	statusLabel *widget.Label
	resultLabel *widget.Label
}

// NewApp creates the main window and shows the first screen.
func NewApp(a fyne.App, cfg config.Window, ctrl *controller.Controller) *App {
	win := a.NewWindow(cfg.Title)
	win.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	view := &App{
		win:   win,
		ctrl:  ctrl,
		shown: -1,
	}
	view.board = NewBoardWidget(ctrl, NewAssets(false), func(sq chess.Square) {
		ctrl.HandleSquareClick(sq)
		view.Render()
	})
	view.Render()
	return view
}

// Window returns the main window.
func (a *App) Window() fyne.Window {
	return a.win
}

// ShowAndRun shows the window and runs the event loop.
func (a *App) ShowAndRun() {
	a.win.ShowAndRun()
}

// Render is one render pass: the game status is queried, the screen is
// rebuilt if the mode changed, and all dynamic parts are refreshed.
func (a *App) Render() {
	status := a.ctrl.CheckStatus()
	mode := a.ctrl.Mode()

	if mode != a.shown {
		a.build(mode)
		a.shown = mode
	}

	switch mode {
	case controller.Playing:
		a.refreshPlaying(status)
	case controller.GameOver:
		a.refreshGameOver()
	}
}

func (a *App) build(mode controller.Mode) {
	display := a.ctrl.Display()
	a.tr = display.Translator()
	a.board.SetAssets(NewAssets(display.FlavorActive()))

	var content fyne.CanvasObject
	switch mode {
	case controller.LanguageSelect:
		content = a.languageScreen()
	case controller.ModePrompt:
		content = a.modeScreen()
	case controller.Playing:
		a.win.SetTitle(a.tr.T(locale.Title))
		content = a.playingScreen()
	case controller.GameOver:
		content = a.gameOverScreen()
	}
	a.win.SetContent(content)
}

func (a *App) languageScreen() fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(locale.Bilingual(locale.Welcome), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	prompt := widget.NewLabelWithStyle(locale.Bilingual(locale.ChooseLanguage), fyne.TextAlignCenter, fyne.TextStyle{})

	box := container.NewVBox(heading, prompt, layout.NewSpacer())
	a.langButtons = a.langButtons[:0]
	for _, l := range locale.Locales {
		l := l
		btn := widget.NewButton(l.Name(), func() {
			a.ctrl.ChooseLocale(l)
			a.Render()
		})
		a.langButtons = append(a.langButtons, btn)
		box.Add(btn)
	}
	return container.NewCenter(box)
}

func (a *App) modeScreen() fyne.CanvasObject {
	prompt := widget.NewLabelWithStyle(a.tr.T(locale.ModePrompt), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.yesButton = widget.NewButton(a.tr.T(locale.Yes), func() {
		a.ctrl.ChooseFlavor(true)
		a.Render()
	})
	a.noButton = widget.NewButton(a.tr.T(locale.No), func() {
		a.ctrl.ChooseFlavor(false)
		a.Render()
	})
	return container.NewCenter(container.NewVBox(prompt, a.yesButton, a.noButton))
}

// controls builds the quit and restart buttons shared by the game screens.
func (a *App) controls() (quit, restart *widget.Button) {
	a.quitButton = widget.NewButton(a.tr.T(locale.Quit), a.ctrl.Exit)
	a.restartBtn = widget.NewButton(a.tr.T(locale.Restart), func() {
		a.ctrl.Restart()
		a.Render()
	})
	return a.quitButton, a.restartBtn
}

func (a *App) playingScreen() fyne.CanvasObject {
	quit, restart := a.controls()
	a.turnLabel = canvas.NewText("", color.White)
	a.turnLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.statusLabel = widget.NewLabel("")

	top := container.NewHBox(quit, restart)
	bottom := container.NewVBox(a.turnLabel, a.statusLabel)
	return container.NewBorder(top, bottom, nil, nil, a.board)
}

func (a *App) refreshPlaying(status chess.Status) {
	a.board.Repaint()

	turn := a.ctrl.Game().Turn()
	a.turnLabel.Text = a.tr.T(locale.TurnMessage(turn))
	a.turnLabel.Color = a.board.assets.TurnColor(turn)
	a.turnLabel.Refresh()

	if status == chess.Check {
		a.statusLabel.SetText(a.tr.T(locale.StatusCheck))
	} else {
		a.statusLabel.SetText(a.tr.T(locale.StatusInProgress))
	}
}

func (a *App) gameOverScreen() fyne.CanvasObject {
	quit, restart := a.controls()
	heading := widget.NewLabelWithStyle(a.tr.T(locale.GameOver), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.resultLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	return container.NewCenter(container.NewVBox(heading, a.resultLabel, quit, restart))
}

func (a *App) refreshGameOver() {
	a.resultLabel.SetText(a.tr.T(locale.ResultMessage(a.ctrl.Game().Result())))
}
