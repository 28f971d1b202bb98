package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/utils"
)

// HUD 视觉常量
var (
	// 面板背景（半透明深色）
	hudPanelColor = color.RGBA{R: 16, G: 18, B: 24, A: 170}

	// 控制栏背景
	hudBarColor = color.RGBA{R: 24, G: 26, B: 34, A: 235}

	// 正文文字颜色
	hudTextColor = color.RGBA{R: 225, G: 228, B: 235, A: 255}

	// 标题（轨道名）文字颜色
	hudTitleColor = color.RGBA{R: 255, G: 214, B: 96, A: 255}

	// 次要提示文字颜色
	hudHintColor = color.RGBA{R: 160, G: 166, B: 178, A: 255}

	// 圈数闪现文字颜色
	hudLapFlashColor = color.RGBA{R: 255, G: 214, B: 96, A: 255}

	// 暂停指示颜色
	hudPauseColor = color.RGBA{R: 255, G: 120, B: 90, A: 255}
)

// HUD 字体大小
const (
	hudFontSize      = 14.0
	hudTitleFontSize = 19.0
	hudFlashFontSize = 36.0
)

// 圈数闪现时长（秒）
const lapFlashDuration = 1.2

// HUDRenderSystem 抬头显示渲染系统
// 绘制速度/圈数/里程等实时读数、轨道名、相机模式提示和按键帮助
// 跨越起点时在屏幕中央闪现圈数
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	trackName     string

	font      *text.GoTextFace
	titleFont *text.GoTextFace
	flashFont *text.GoTextFace

	// 控制栏上边缘的屏幕 Y，0 表示不绘制控制栏背景
	controlBarTop float64

	// 圈数闪现状态
	lastLap   int
	lapFlash  float64 // 剩余进度 1→0
	flashText string
}

// NewHUDRenderSystem 创建抬头显示渲染系统
func NewHUDRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, trackName string) *HUDRenderSystem {
	return &HUDRenderSystem{
		entityManager: em,
		trackName:     trackName,
		font:          rm.FontFace(hudFontSize),
		titleFont:     rm.FontFace(hudTitleFontSize),
		flashFont:     rm.FontFace(hudFlashFontSize),
		lastLap:       -1,
	}
}

// SetControlBarTop 设置控制栏上边缘，HUD 负责画控制栏的底色
func (s *HUDRenderSystem) SetControlBarTop(y float64) {
	s.controlBarTop = y
}

// Update 推进圈数闪现计时
func (s *HUDRenderSystem) Update(deltaTime float64) {
	ride := s.firstRide()
	if ride == nil {
		return
	}

	if s.lastLap < 0 {
		s.lastLap = ride.Lap
	} else if ride.Lap != s.lastLap {
		s.lastLap = ride.Lap
		s.lapFlash = 1.0
		s.flashText = fmt.Sprintf("LAP %d", ride.Lap)
	}

	if s.lapFlash > 0 {
		s.lapFlash -= deltaTime / lapFlashDuration
		if s.lapFlash < 0 {
			s.lapFlash = 0
		}
	}
}

// Draw 渲染 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	if s.controlBarTop > 0 {
		vector.DrawFilledRect(screen, 0, float32(s.controlBarTop), float32(screenW), float32(screenH-s.controlBarTop), hudBarColor, true)
		vector.StrokeLine(screen, 0, float32(s.controlBarTop), float32(screenW), float32(s.controlBarTop), 1, buttonBorderColor, true)
	}

	ride := s.firstRide()
	if ride != nil {
		s.drawReadouts(screen, ride)
		s.drawCameraHint(screen, screenW)
		s.drawPauseIndicator(screen, screenW, ride)
		s.drawLapFlash(screen, screenW, screenH)
	}
	s.drawHelpHint(screen, screenH)
}

// drawReadouts 左上角读数面板
func (s *HUDRenderSystem) drawReadouts(screen *ebiten.Image, ride *components.RideComponent) {
	const margin = 10.0
	const pad = 8.0
	const lineH = 19.0
	const panelW = 168.0

	lines := []string{
		fmt.Sprintf("Speed  %5.1f m/s", ride.SpeedMPS),
		fmt.Sprintf("Lap    %d", ride.Lap),
		fmt.Sprintf("Dist   %.0f m", ride.Odometer),
		fmt.Sprintf("Top    %5.1f m/s", ride.TopSpeed),
	}
	panelH := pad*2 + 24 + lineH*float64(len(lines))

	vector.DrawFilledRect(screen, margin, margin, panelW, float32(panelH), hudPanelColor, true)

	if s.titleFont != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(margin+pad, margin+pad-2)
		op.ColorScale.ScaleWithColor(hudTitleColor)
		text.Draw(screen, s.trackName, s.titleFont, op)
	}

	if s.font != nil {
		y := margin + pad + 24
		for _, line := range lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(margin+pad, y)
			op.ColorScale.ScaleWithColor(hudTextColor)
			text.Draw(screen, line, s.font, op)
			y += lineH
		}
	}
}

// drawCameraHint 右上角相机模式提示
func (s *HUDRenderSystem) drawCameraHint(screen *ebiten.Image, screenW float64) {
	if s.font == nil {
		return
	}

	rig := s.firstRig()
	if rig == nil {
		return
	}

	hint := "Orbit cam - drag rotate, wheel zoom"
	if rig.Mode == components.CameraModeOnboard {
		hint = "Onboard cam - press C for orbit"
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(screenW-10, 10)
	op.ColorScale.ScaleWithColor(hudHintColor)
	text.Draw(screen, hint, s.font, op)
}

// drawPauseIndicator 顶部中央暂停指示
func (s *HUDRenderSystem) drawPauseIndicator(screen *ebiten.Image, screenW float64, ride *components.RideComponent) {
	if !ride.Paused || s.titleFont == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(screenW/2, 12)
	op.ColorScale.ScaleWithColor(hudPauseColor)
	text.Draw(screen, "PAUSED", s.titleFont, op)
}

// drawLapFlash 屏幕中央的圈数闪现
// 淡出进度走缓动曲线，前段停留久、尾段快速消失
func (s *HUDRenderSystem) drawLapFlash(screen *ebiten.Image, screenW, screenH float64) {
	if s.lapFlash <= 0 || s.flashFont == nil {
		return
	}

	alpha := utils.EaseOutQuad(s.lapFlash)
	clr := hudLapFlashColor
	clr.A = uint8(255 * alpha)

	// 淡出的同时轻微上浮
	rise := 14 * utils.EaseOutQuad(1-s.lapFlash)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(screenW/2, screenH*0.30-rise)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s.flashText, s.flashFont, op)
}

// drawHelpHint 底部按键帮助
func (s *HUDRenderSystem) drawHelpHint(screen *ebiten.Image, screenH float64) {
	if s.font == nil {
		return
	}

	bottom := screenH - 6
	if s.controlBarTop > 0 {
		bottom = s.controlBarTop - 6
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(10, bottom)
	op.ColorScale.ScaleWithColor(hudHintColor)
	text.Draw(screen, "Space pause | Left/Right direction | Up/Down speed | C camera | R reset view", s.font, op)
}

func (s *HUDRenderSystem) firstRide() *components.RideComponent {
	for _, entityID := range ecs.GetEntitiesWith1[*components.RideComponent](s.entityManager) {
		ride, _ := ecs.GetComponent[*components.RideComponent](s.entityManager, entityID)
		if ride != nil {
			return ride
		}
	}
	return nil
}

func (s *HUDRenderSystem) firstRig() *components.CameraRigComponent {
	for _, entityID := range ecs.GetEntitiesWith1[*components.CameraRigComponent](s.entityManager) {
		rig, _ := ecs.GetComponent[*components.CameraRigComponent](s.entityManager, entityID)
		if rig != nil {
			return rig
		}
	}
	return nil
}
