package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/vdobler/plotpanel/settings"
)

var invalidColor = color.NRGBA{R: 0xe6, G: 0x6b, B: 0x00, A: 0xff}

// fieldEditor binds a gio editor to a settings.Field.
type fieldEditor struct {
	label   string
	ed      widget.Editor
	text    func() string
	setText func(string) bool
	valid   func() bool
	enabled func() bool
}

func bind[T any](f *settings.Field[T]) *fieldEditor {
	fe := &fieldEditor{
		label:   f.Name,
		text:    f.Text,
		setText: f.SetText,
		valid:   f.Valid,
		enabled: f.Enabled,
	}
	fe.ed.SingleLine = true
	fe.ed.Submit = true
	fe.load()
	return fe
}

// load shows the text of the field.
func (fe *fieldEditor) load() {
	if t := fe.text(); fe.ed.Text() != t {
		fe.ed.SetText(t)
	}
}

// update validates every edit and reports whether the user pressed
// enter.
func (fe *fieldEditor) update(gtx layout.Context) (submitted bool) {
	for {
		ev, ok := fe.ed.Update(gtx)
		if !ok {
			return submitted
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			fe.setText(fe.ed.Text())
		case widget.SubmitEvent:
			submitted = true
		}
	}
}

func (fe *fieldEditor) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if !fe.enabled() {
		gtx = gtx.Disabled()
	}
	return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(96))
			return material.Body2(th, fe.label).Layout(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			e := material.Editor(th, &fe.ed, fe.label)
			if !fe.valid() {
				e.Color = invalidColor
			}
			return e.Layout(gtx)
		}),
	)
}

// settingsView is the gio view of a settings.Dialog, shown next to the
// panel.
type settingsView struct {
	dialog *settings.Dialog
	expl   *explorer.Explorer
	status func(string)

	labeling []*fieldEditor
	limits   []*fieldEditor
	image    []*fieldEditor
	vector   []*fieldEditor

	autoscale     widget.Bool
	applyLabeling widget.Clickable
	applyLimits   widget.Clickable
	saveImage     widget.Clickable
	saveVector    widget.Clickable
	close         widget.Clickable
	imageFormat   widget.Enum
	vectorFormat  widget.Enum
	list          widget.List

	closeIcon *widget.Icon
	saveIcon  *widget.Icon

	message string
}

func newSettingsView(d *settings.Dialog, expl *explorer.Explorer, status func(string)) *settingsView {
	sv := &settingsView{
		dialog:   d,
		expl:     expl,
		status:   status,
		labeling: []*fieldEditor{bind(d.Title), bind(d.XLabel), bind(d.YLabel)},
		limits:   []*fieldEditor{bind(d.XMin), bind(d.XMax), bind(d.YMin), bind(d.YMax)},
		image:    []*fieldEditor{bind(d.ImageWidth), bind(d.ImageHeight)},
		vector:   []*fieldEditor{bind(d.VectorWidth), bind(d.VectorHeight)},
	}
	sv.imageFormat.Value = "png"
	sv.vectorFormat.Value = "svg"
	sv.list.Axis = layout.Vertical
	if icon, err := widget.NewIcon(icons.NavigationClose); err == nil {
		sv.closeIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ContentSave); err == nil {
		sv.saveIcon = icon
	}
	sv.sync()
	return sv
}

// sync reloads autoscale and limits from the dialog. Limit edits not yet
// applied stay in their editors.
func (sv *settingsView) sync() {
	sv.dialog.Sync()
	sv.autoscale.Value = sv.dialog.Autoscale()
	for _, fe := range sv.limits {
		fe.load()
	}
}

// update handles the input of one frame. It reports whether the view
// should be closed.
func (sv *settingsView) update(gtx layout.Context) (closed bool) {
	submitLabeling := false
	for _, fe := range sv.labeling {
		submitLabeling = fe.update(gtx) || submitLabeling
	}
	submitLimits := false
	for _, fe := range sv.limits {
		submitLimits = fe.update(gtx) || submitLimits
	}
	for _, fe := range sv.image {
		fe.update(gtx)
	}
	for _, fe := range sv.vector {
		fe.update(gtx)
	}
	sv.imageFormat.Update(gtx)
	sv.vectorFormat.Update(gtx)

	if sv.applyLabeling.Clicked(gtx) || submitLabeling {
		sv.report(sv.dialog.UpdateLabeling())
	}
	if sv.autoscale.Update(gtx) {
		sv.dialog.SetAutoscale(sv.autoscale.Value)
		sv.sync()
	}
	if sv.applyLimits.Clicked(gtx) || submitLimits {
		err := sv.dialog.UpdateLimits()
		sv.report(err)
		if err == nil {
			sv.sync()
		}
	}
	if sv.saveImage.Clicked(gtx) {
		sv.export(sv.imageFormat.Value, sv.dialog.SaveImage)
	}
	if sv.saveVector.Clicked(gtx) {
		sv.export(sv.vectorFormat.Value, sv.dialog.SaveVector)
	}
	return sv.close.Clicked(gtx)
}

func (sv *settingsView) report(err error) {
	if err != nil {
		sv.message = err.Error()
		slog.Warn("settings", "err", err)
		return
	}
	sv.message = ""
}

// export renders the figure now and writes it to a file chosen by the
// user in the background.
func (sv *settingsView) export(format string, render func(w io.Writer, format string) error) {
	var buf bytes.Buffer
	if err := render(&buf, format); err != nil {
		sv.report(err)
		return
	}
	sv.message = ""
	go func() {
		f, err := sv.expl.CreateFile("figure." + format)
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				slog.Error("save figure", "err", err)
				sv.status(err.Error())
			}
			return
		}
		if _, err := buf.WriteTo(f); err != nil {
			f.Close()
			slog.Error("save figure", "err", err)
			sv.status(err.Error())
			return
		}
		if err := f.Close(); err != nil {
			slog.Error("save figure", "err", err)
			sv.status(err.Error())
			return
		}
		slog.Info("saved figure", "format", format)
		sv.status(fmt.Sprintf("saved %s", format))
	}()
}

func (sv *settingsView) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	rows := []layout.Widget{
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, material.H6(th, sv.dialog.WindowTitle()).Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if sv.closeIcon == nil {
						return material.Button(th, &sv.close, "Close").Layout(gtx)
					}
					return material.IconButton(th, &sv.close, sv.closeIcon, "Close").Layout(gtx)
				}),
			)
		},
		heading(th, "Labeling"),
	}
	rows = append(rows, editors(th, sv.labeling)...)
	rows = append(rows,
		button(th, &sv.applyLabeling, "Update labeling"),
		heading(th, "Limits"),
		material.CheckBox(th, &sv.autoscale, "Autoscale").Layout,
	)
	rows = append(rows, editors(th, sv.limits)...)
	rows = append(rows,
		button(th, &sv.applyLimits, "Update limits"),
		heading(th, "Image"),
		formats(th, &sv.imageFormat, "png", "jpg", "tif"),
	)
	rows = append(rows, editors(th, sv.image)...)
	rows = append(rows,
		sv.saveButton(th, &sv.saveImage, "Save image"),
		heading(th, "Vector (inches)"),
		formats(th, &sv.vectorFormat, "svg", "eps", "pdf"),
	)
	rows = append(rows, editors(th, sv.vector)...)
	rows = append(rows, sv.saveButton(th, &sv.saveVector, "Save vector"))
	if sv.message != "" {
		rows = append(rows, func(gtx layout.Context) layout.Dimensions {
			l := material.Body2(th, sv.message)
			l.Color = invalidColor
			return l.Layout(gtx)
		})
	}

	return material.List(th, &sv.list).Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.UniformInset(unit.Dp(4)).Layout(gtx, rows[i])
	})
}

func (sv *settingsView) saveButton(th *material.Theme, c *widget.Clickable, text string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		b := material.Button(th, c, text)
		if sv.saveIcon == nil {
			return b.Layout(gtx)
		}
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(20))
				return sv.saveIcon.Layout(gtx, th.Fg)
			}),
			layout.Flexed(1, b.Layout),
		)
	}
}

func heading(th *material.Theme, text string) layout.Widget {
	return material.Subtitle1(th, text).Layout
}

func button(th *material.Theme, c *widget.Clickable, text string) layout.Widget {
	return material.Button(th, c, text).Layout
}

func editors(th *material.Theme, fes []*fieldEditor) []layout.Widget {
	ws := make([]layout.Widget, len(fes))
	for i, fe := range fes {
		ws[i] = func(gtx layout.Context) layout.Dimensions { return fe.layout(gtx, th) }
	}
	return ws
}

func formats(th *material.Theme, e *widget.Enum, names ...string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, len(names))
		for i, n := range names {
			children[i] = layout.Rigid(material.RadioButton(th, e, n, n).Layout)
		}
		return layout.Flex{}.Layout(gtx, children...)
	}
}
