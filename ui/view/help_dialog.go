package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const shortcutsText = `Mouse
  drag            draw a new selection
  drag inside     move the selection
  drag a handle   resize from that side or corner

Keyboard
  Enter / Space   save the crop
  Left / Right    previous / next image in folder
  Escape          clear the selection
  Ctrl+O          open an image
  F1              this window`

// HelpDialog shows the keyboard and mouse shortcuts.
type HelpDialog struct {
	win *ToplevelWidget
}

func (d *HelpDialog) OpenOrFocus() {
	if d.win != nil {
		WmGeometry(d.win.Window)
		return
	}
	win := App.Toplevel()
	win.WmTitle("Shortcuts")
	d.win = win
	lbl := win.Label(Txt(shortcutsText), Anchor("w"), Justify("left"))
	Grid(lbl, Row(0), Column(0), Sticky("nsew"), Padx("1m"), Pady("1m"))
	closeBtn := win.Button(Txt("Close"), Command(func() { d.close() }))
	Grid(closeBtn, Row(1), Column(0), Pady("0.5m"))
	Bind(win, "<Escape>", Command(func() { d.close() }))
}

func (d *HelpDialog) close() {
	if d.win != nil {
		Destroy(d.win)
		d.win = nil
	}
}
