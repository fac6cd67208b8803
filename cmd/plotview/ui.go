package main

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/vdobler/plotpanel"
	"github.com/vdobler/plotpanel/config"
	"github.com/vdobler/plotpanel/data"
	"github.com/vdobler/plotpanel/figure"
	"github.com/vdobler/plotpanel/settings"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI holds the state of and draws the plot window.
type UI struct {
	w    *app.Window
	cfg  *config.Config
	th   *material.Theme
	expl *explorer.Explorer

	fig   *figure.Figure
	view  *plotpanel.ViewState
	panel *panelWidget

	settings *settingsView

	settingsBtn  widget.Clickable
	autoscaleBtn widget.Clickable
	settingsIcon *widget.Icon
	autoIcon     *widget.Icon

	// reload and status are fed by background goroutines.
	reload chan []data.Series
	status chan string
	line   string
}

// NewUI returns the UI of window w showing view.
func NewUI(w *app.Window, cfg *config.Config, fig *figure.Figure, view *plotpanel.ViewState) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ui := &UI{
		w:      w,
		cfg:    cfg,
		th:     th,
		expl:   explorer.NewExplorer(w),
		fig:    fig,
		view:   view,
		panel:  newPanelWidget(view),
		reload: make(chan []data.Series, 4),
		status: make(chan string, 4),
	}
	ui.panel.panel.Controller.ZoomRate = cfg.Figure.ZoomRate
	ui.panel.panel.Controller.OnSettings = ui.openSettings
	if icon, err := widget.NewIcon(icons.ActionSettings); err == nil {
		ui.settingsIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionAutorenew); err == nil {
		ui.autoIcon = icon
	}

	// Gestures change the limits while the dialog is open.
	view.Subscribe(func() {
		if ui.settings != nil {
			ui.settings.sync()
		}
	})
	return ui
}

// Run processes window events until the window closes.
func (ui *UI) Run() error {
	var ops op.Ops
	for {
		e := ui.w.Event()
		ui.expl.ListenEvents(e)
		switch e := e.(type) {
		case app.DestroyEvent:
			ui.panel.panel.Destroy()
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (ui *UI) openSettings() {
	if ui.settings != nil {
		ui.settings.sync()
		return
	}
	d := settings.New(ui.view, ui.panel.panel.Size())
	d.VectorWidth.Set(ui.cfg.Export.VectorWidth)
	d.VectorHeight.Set(ui.cfg.Export.VectorHeight)
	if !ui.panel.panel.Size().Known() {
		d.ImageWidth.Set(ui.cfg.Export.ImageWidth)
		d.ImageHeight.Set(ui.cfg.Export.ImageHeight)
	}
	ui.settings = newSettingsView(d, ui.expl, ui.report)
}

// report shows msg in the status line. It may be called from any
// goroutine.
func (ui *UI) report(msg string) {
	ui.status <- msg
	ui.w.Invalidate()
}

// Reload hands new data series to the UI. It may be called from any
// goroutine.
func (ui *UI) Reload(series []data.Series) {
	ui.reload <- series
	ui.w.Invalidate()
}

// Update handles the input of one frame.
func (ui *UI) Update(gtx C) {
	for done := false; !done; {
		select {
		case series := <-ui.reload:
			ui.setData(series)
		case msg := <-ui.status:
			ui.line = msg
		default:
			done = true
		}
	}

	if ui.settingsBtn.Clicked(gtx) {
		if ui.settings == nil {
			ui.openSettings()
		} else {
			ui.settings = nil
		}
	}
	if ui.autoscaleBtn.Clicked(gtx) {
		ui.panel.panel.DoubleClick(plotpanel.ButtonLeft)
	}
	if ui.settings != nil && ui.settings.update(gtx) {
		ui.settings = nil
	}
}

// setData replaces the data series of the figure.
func (ui *UI) setData(series []data.Series) {
	if err := ui.fig.RemoveAll(); err != nil {
		ui.line = err.Error()
		return
	}
	for _, s := range series {
		if err := ui.fig.Add(s.Name, s.XY, ui.cfg.Kind()); err != nil {
			ui.line = err.Error()
			return
		}
	}
	// Keep what the user looks at unless it follows the data.
	ui.view.Clear()
	ui.panel.panel.Update()
	ui.line = "data reloaded"
}

// Layout draws the window.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	paint.FillShape(gtx.Ops, ui.th.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutToolbar),
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, ui.panel.Layout),
				layout.Rigid(func(gtx C) D {
					if ui.settings == nil {
						return D{}
					}
					w := gtx.Dp(unit.Dp(320))
					gtx.Constraints.Min.X, gtx.Constraints.Max.X = w, w
					return ui.settings.layout(gtx, ui.th)
				}),
			)
		}),
		layout.Rigid(func(gtx C) D {
			l := material.Caption(ui.th, ui.line)
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, l.Layout)
		}),
	)
}

func (ui *UI) layoutToolbar(gtx C) D {
	bar := color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			paint.FillShape(gtx.Ops, bar, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(ui.iconButton(&ui.autoscaleBtn, ui.autoIcon, "Autoscale")),
					layout.Rigid(ui.iconButton(&ui.settingsBtn, ui.settingsIcon, "Settings")),
					layout.Flexed(1, func(gtx C) D {
						x, y := ui.view.XLim(), ui.view.YLim()
						l := material.Body2(ui.th, "x "+x.String()+"  y "+y.String())
						l.Alignment = text.End
						return l.Layout(gtx)
					}),
				)
			})
		},
	)
}

func (ui *UI) iconButton(c *widget.Clickable, icon *widget.Icon, description string) layout.Widget {
	return func(gtx C) D {
		if icon == nil {
			return material.Button(ui.th, c, description).Layout(gtx)
		}
		b := material.IconButton(ui.th, c, icon, description)
		b.Size = unit.Dp(18)
		b.Inset = layout.UniformInset(unit.Dp(6))
		return b.Layout(gtx)
	}
}
