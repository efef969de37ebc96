package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/intothevoid/legendchess/pkg/chess"
	"github.com/intothevoid/legendchess/pkg/controller"
)

const labelMargin = float32(16)

// BoardSource is what the board widget paints from.
type BoardSource interface {
	Decorations() [8][8]controller.Decoration
	Game() chess.Game
}

// BoardWidget is a clickable chessboard painted from the controller's
// decorations on every repaint.
type BoardWidget struct {
	widget.BaseWidget

	source BoardSource
	assets *Assets
	onTap  func(chess.Square)

	// Pre-built canvas objects
	squares [8][8]*canvas.Rectangle
	pieces  [8][8]*canvas.Text
	labels  []fyne.CanvasObject
	root    *fyne.Container
}

// NewBoardWidget creates a board widget. onTap receives the square under
// every tap that lands on the board.
func NewBoardWidget(source BoardSource, assets *Assets, onTap func(chess.Square)) *BoardWidget {
	b := &BoardWidget{source: source, assets: assets, onTap: onTap}
	b.ExtendBaseWidget(b)

	// Labels: 0-7 bottom files, 8-15 left ranks
	objects := make([]fyne.CanvasObject, 0, 64+64+16)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			rect := canvas.NewRectangle(color.Transparent)
			b.squares[row][col] = rect
			objects = append(objects, rect)

			glyph := canvas.NewText("", color.Black)
			glyph.Alignment = fyne.TextAlignCenter
			b.pieces[row][col] = glyph
			objects = append(objects, glyph)
		}
	}

	// File labels (a-h) along the bottom
	for col := 0; col < 8; col++ {
		t := canvas.NewText(string(rune('a'+col)), color.White)
		t.TextSize = 11
		t.Alignment = fyne.TextAlignCenter
		b.labels = append(b.labels, t)
		objects = append(objects, t)
	}

	// Rank labels (8-1) along the left
	for row := 0; row < 8; row++ {
		t := canvas.NewText(string(rune('8'-row)), color.White)
		t.TextSize = 11
		t.Alignment = fyne.TextAlignCenter
		b.labels = append(b.labels, t)
		objects = append(objects, t)
	}

	b.root = container.NewWithoutLayout(objects...)
	b.Repaint()
	return b
}

// SetAssets switches the piece set, e.g. after the flavor was chosen.
func (b *BoardWidget) SetAssets(a *Assets) {
	b.assets = a
}

// Repaint re-reads every square from the source. Nothing from an earlier
// pass is reused.
func (b *BoardWidget) Repaint() {
	decorations := b.source.Decorations()
	game := b.source.Game()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			rect := b.squares[row][col]
			rect.FillColor = b.assets.SquareColor(decorations[row][col])
			rect.Refresh()

			p := game.PieceAt(chess.Square{Row: row, Col: col})
			glyph := b.pieces[row][col]
			glyph.Text = b.assets.Glyph(p)
			glyph.Color = b.assets.PieceColor(p)
			glyph.Refresh()
		}
	}
}

// Tapped implements fyne.Tappable.
func (b *BoardWidget) Tapped(ev *fyne.PointEvent) {
	sq, ok := squareAt(b.Size(), ev.Position)
	if ok && b.onTap != nil {
		b.onTap(sq)
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{b: b}
}

// boardGeometry returns the top-left corner of the a8 square and the square
// size for a widget of the given size. The board is centred with room for
// the labels.
func boardGeometry(size fyne.Size) (offsetX, offsetY, sqSize float32) {
	boardSize := size.Width - 2*labelMargin
	if h := size.Height - 2*labelMargin; h < boardSize {
		boardSize = h
	}
	if boardSize < 0 {
		boardSize = 0
	}
	sqSize = boardSize / 8

	totalBoard := sqSize*8 + 2*labelMargin
	offsetX = labelMargin + (size.Width-totalBoard)/2
	offsetY = labelMargin + (size.Height-totalBoard)/2
	return
}

// squareAt maps a position inside the widget to the square under it.
func squareAt(size fyne.Size, pos fyne.Position) (chess.Square, bool) {
	offsetX, offsetY, sqSize := boardGeometry(size)
	if sqSize <= 0 {
		return chess.Square{}, false
	}
	x, y := pos.X-offsetX, pos.Y-offsetY
	if x < 0 || y < 0 {
		return chess.Square{}, false
	}
	sq := chess.Square{Row: int(y / sqSize), Col: int(x / sqSize)}
	return sq, sq.Valid()
}

type boardRenderer struct {
	b *BoardWidget
}

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(8*40+2*labelMargin, 8*40+2*labelMargin)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.b.root}
}

func (r *boardRenderer) Refresh() {
	r.b.root.Refresh()
}

func (r *boardRenderer) Layout(size fyne.Size) {
	offsetX, offsetY, sqSize := boardGeometry(size)

	r.b.root.Resize(size)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := offsetX + float32(col)*sqSize
			y := offsetY + float32(row)*sqSize

			r.b.squares[row][col].Move(fyne.NewPos(x, y))
			r.b.squares[row][col].Resize(fyne.NewSize(sqSize, sqSize))

			glyph := r.b.pieces[row][col]
			glyph.TextSize = sqSize * 0.7
			glyph.Move(fyne.NewPos(x, y))
			glyph.Resize(fyne.NewSize(sqSize, sqSize))
		}
	}

	// File labels (a-h) below the board
	for i := 0; i < 8; i++ {
		lbl := r.b.labels[i]
		lbl.Move(fyne.NewPos(offsetX+float32(i)*sqSize, offsetY+8*sqSize))
		lbl.Resize(fyne.NewSize(sqSize, labelMargin))
	}

	// Rank labels (8-1) to the left of the board
	for i := 0; i < 8; i++ {
		lbl := r.b.labels[8+i]
		lbl.Move(fyne.NewPos(offsetX-labelMargin, offsetY+float32(i)*sqSize))
		lbl.Resize(fyne.NewSize(labelMargin, sqSize))
	}
}
