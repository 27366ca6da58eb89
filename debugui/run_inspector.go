package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/oneshot/game"
)

var (
	colorOK   = imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
	colorWarn = imgui.NewVec4(1.0, 0.8, 0.0, 1.0)
	colorBad  = imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
)

// RunInspector shows pool occupancy and the current run, and lets the
// developer edit gold and ammo or toggle dev mode.
type RunInspector struct {
	world *game.World
}

func NewRunInspector(w *game.World) *RunInspector {
	return &RunInspector{world: w}
}

func (ri *RunInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)
	if !imgui.BeginV("Run", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w := ri.world
	sum := w.Summary()
	imgui.Text(fmt.Sprintf("Screen: %s", sum.Screen))
	imgui.Text(fmt.Sprintf("Level: %s", sum.Level))
	switch sum.Screen {
	case game.ScreenPlaying:
		imgui.TextColored(colorOK, "PLAYING")
	case game.ScreenFail:
		imgui.TextColored(colorBad, "FAILED")
	case game.ScreenMenu, game.ScreenLevelSelect, game.ScreenShop, game.ScreenSuccess, game.ScreenCredits:
		imgui.TextColored(colorWarn, "IDLE")
	}
	imgui.Text(fmt.Sprintf("Alive: %d (big %d, boss %d)", w.Alive, w.BigAlive, w.BossAlive))
	imgui.Text(fmt.Sprintf("Kills: %d", sum.Kills))

	imgui.Separator()
	gold := int32(w.Progress.Gold)
	imgui.Text("Gold:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("##gold", &gold) && gold >= 0 {
		w.Progress.Gold = int(gold)
	}
	ammo := int32(w.Progress.Ammo)
	imgui.Text("Ammo:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("##ammo", &ammo) && ammo >= 0 {
		w.Progress.Ammo = int(ammo)
	}
	dev := w.Progress.DevMode
	if imgui.Checkbox("Dev mode", &dev) {
		w.ToggleDevMode()
	}

	if imgui.TreeNodeStr("Pools") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PoolTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Pool")
			imgui.TableSetupColumn("Usage")
			imgui.TableSetupColumn("High")
			imgui.TableSetupColumn("Drops")
			imgui.TableHeadersRow()

			for _, p := range w.PoolUsage() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(p.Name)
				imgui.TableNextColumn()
				var fill float32
				if p.Capacity > 0 {
					fill = float32(p.Active) / float32(p.Capacity)
				}
				imgui.ProgressBarV(fill, imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d", p.Active, p.Capacity))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", p.HighWater))
				imgui.TableNextColumn()
				if p.Drops > 0 {
					imgui.TextColored(colorBad, fmt.Sprintf("%d", p.Drops))
				} else {
					imgui.Text("0")
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
