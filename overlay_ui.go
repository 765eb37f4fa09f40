package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/gameplay"
)

// Overlay is the centered pause and level complete panel.
type Overlay struct {
	UI *ebitenui.UI

	root     *widget.Container
	panel    *widget.Container
	title    *widget.Text
	subtitle *widget.Text
	resume   *widget.Button
	next     *widget.Button

	mode     gameplay.Mode
	showNext bool
	shown    bool
}

// OverlayActions are invoked from button clicks during UI.Update.
type OverlayActions struct {
	Resume  func()
	Restart func()
	Next    func()
	Quit    func()
}

func NewOverlay(actions OverlayActions) *Overlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	o := &Overlay{}

	o.title = widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	o.subtitle = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}

	o.resume = button("Resume", actions.Resume)
	o.next = button("Next Level", actions.Next)
	restart := button("Restart", actions.Restart)
	quit := button("Quit", actions.Quit)

	o.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	o.panel.AddChild(o.title)
	o.panel.AddChild(o.subtitle)
	o.panel.AddChild(o.resume)
	o.panel.AddChild(o.next)
	o.panel.AddChild(restart)
	o.panel.AddChild(quit)
	o.panel.GetWidget().Visibility = widget.Visibility_Hide

	o.root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	o.root.AddChild(o.panel)

	o.UI = &ebitenui.UI{Container: o.root}
	return o
}

// Visible reports whether the panel is shown.
func (o *Overlay) Visible() bool {
	return o.shown
}

// Sync shows the panel for the paused and won modes and updates its labels.
func (o *Overlay) Sync(s gameplay.Snapshot) {
	shown := s.Mode == gameplay.ModePaused || s.Mode == gameplay.ModeWon
	if shown == o.shown && s.Mode == o.mode && s.NextUnlocked == o.showNext {
		if shown && s.Mode == gameplay.ModeWon {
			o.subtitle.Label = winSubtitle(s)
		}
		return
	}
	o.shown, o.mode, o.showNext = shown, s.Mode, s.NextUnlocked

	if !shown {
		o.panel.GetWidget().Visibility = widget.Visibility_Hide
		o.root.RequestRelayout()
		return
	}

	switch s.Mode {
	case gameplay.ModePaused:
		o.title.Label = "Paused"
		o.subtitle.Label = fmt.Sprintf("Level %d/%d", s.LevelIndex+1, s.LevelCount)
		setVisible(o.resume, true)
		setVisible(o.next, false)
	case gameplay.ModeWon:
		o.title.Label = "Level Complete"
		o.subtitle.Label = winSubtitle(s)
		setVisible(o.resume, false)
		setVisible(o.next, s.NextUnlocked)
	}

	o.panel.GetWidget().Visibility = widget.Visibility_Show
	o.panel.RequestRelayout()
	o.root.RequestRelayout()
}

func winSubtitle(s gameplay.Snapshot) string {
	if s.Win == nil {
		return ""
	}
	return fmt.Sprintf("Score %d · Rating %d/3", s.Win.Score, s.Win.Rating)
}

func setVisible(b *widget.Button, visible bool) {
	if visible {
		b.GetWidget().Visibility = widget.Visibility_Show
	} else {
		b.GetWidget().Visibility = widget.Visibility_Hide
	}
}
