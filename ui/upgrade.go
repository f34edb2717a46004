package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/prefabs"
)

// UpgradeMenu is the pause overlay where experience is spent on stats.
type UpgradeMenu struct {
	ui      *ebitenui.UI
	player  PlayerView
	exp     *widget.Text
	buttons map[string]*widget.Button
	log     *zap.Logger
}

// NewUpgradeMenu builds a centered panel with one button per stat.
func NewUpgradeMenu(player PlayerView, log *zap.Logger) *UpgradeMenu {
	if log == nil {
		log = zap.NewNop()
	}
	m := &UpgradeMenu{player: player, buttons: make(map[string]*widget.Button), log: log}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x33, A: 0xff})

	var face ebtext.Face = defaultFace()
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Upgrade", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	m.exp = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(m.exp)

	for _, stat := range prefabs.StatNames {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: hoverImg}),
			widget.ButtonOpts.Text(stat, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(360, 32)),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				m.Upgrade(stat)
			}),
		)
		m.buttons[stat] = btn
		panel.AddChild(btn)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	m.ui = &ebitenui.UI{Container: root}
	m.refresh()
	return m
}

// Upgrade spends experience on stat and refreshes the labels.
func (m *UpgradeMenu) Upgrade(stat string) bool {
	if m.player == nil {
		return false
	}
	ok := m.player.Upgrade(stat)
	m.log.Debug("upgrade", zap.String("stat", stat), zap.Bool("applied", ok), zap.Int("exp", m.player.Exp()))
	m.refresh()
	return ok
}

func (m *UpgradeMenu) refresh() {
	if m.player == nil {
		return
	}
	if m.exp != nil {
		m.exp.Label = fmt.Sprintf("exp %d", m.player.Exp())
	}
	for stat, btn := range m.buttons {
		if text := btn.Text(); text != nil {
			text.Label = StatLabel(m.player, stat)
		}
	}
}

// StatLabel formats one menu line: value, maximum and next cost.
func StatLabel(p PlayerView, stat string) string {
	return fmt.Sprintf("%s  %d / %d  cost %d", stat,
		int(p.Stat(stat)), int(p.MaxStat(stat)), int(p.UpgradeCost(stat)))
}

func (m *UpgradeMenu) Update() {
	m.refresh()
	m.ui.Update()
}

func (m *UpgradeMenu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
