package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/game"
	"github.com/gonewx/coaster/pkg/track"
	"github.com/gonewx/coaster/pkg/utils"
)

// 加载界面配色
var (
	loadingBackColor   = color.RGBA{18, 20, 28, 255}
	loadingTitleColor  = color.RGBA{255, 214, 96, 255}
	loadingBarBack     = color.RGBA{30, 33, 44, 255}
	loadingBarFill     = color.RGBA{86, 156, 214, 255}
	loadingBarBorder   = color.RGBA{110, 116, 130, 255}
	loadingHintColor   = color.RGBA{200, 204, 214, 255}
	loadingDetailColor = color.RGBA{140, 146, 160, 255}
	loadingErrorColor  = color.RGBA{230, 110, 100, 255}
)

// LoadingScene 启动加载界面
//
// 逐条预构建注册表里的轨道几何：既把剖分计算挪到进菜单之前，
// 又能在进入菜单前发现配置错误。全部完成后点击任意处进入主菜单。
type LoadingScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	registry        *track.Registry

	pending []*track.Config // 尚未预构建的轨道，每帧处理一条
	total   int
	failed  []string // 预构建失败的轨道ID

	elapsedTime     float64
	progress        float64 // 实际完成比例 [0,1]
	loadingComplete bool
	currentName     string // 正在构建的轨道名，显示在进度条下方

	titleFont *text.GoTextFace
	hintFont  *text.GoTextFace
}

// NewLoadingScene 创建加载场景
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, registry *track.Registry) *LoadingScene {
	scene := &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		registry:        registry,
		pending:         registry.List(),
		titleFont:       rm.FontFace(config.LoadingTitleFontSize),
		hintFont:        rm.FontFace(config.LoadingHintFontSize),
	}
	scene.total = len(scene.pending)
	if scene.total == 0 {
		// 注册表为空时直接视为完成，菜单会显示空列表提示
		scene.progress = 1.0
		scene.loadingComplete = true
	}
	log.Printf("[LoadingScene] 开始预构建 %d 条轨道", scene.total)
	return scene
}

// Update 推进加载进度并处理点击继续
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	s.buildNext()

	// 进度条至少展示一小段时间，避免一闪而过
	if s.progress >= 1.0 && s.elapsedTime >= config.LoadingMinSeconds {
		s.loadingComplete = true
	}

	if s.loadingComplete {
		if ok, _, _ := utils.IsPointerJustReleased(); ok {
			s.enterMenu()
			return
		}
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			s.enterMenu()
			return
		}
	}
}

// buildNext 预构建下一条轨道的几何，每帧最多一条
func (s *LoadingScene) buildNext() {
	if len(s.pending) == 0 {
		s.progress = 1.0
		s.currentName = ""
		return
	}

	cfg := s.pending[0]
	s.pending = s.pending[1:]
	s.currentName = cfg.Name

	if _, err := s.registry.Geometry(cfg.ID); err != nil {
		log.Printf("[LoadingScene] 轨道 %s 预构建失败: %v", cfg.ID, err)
		s.failed = append(s.failed, cfg.ID)
	}

	s.progress = float64(s.total-len(s.pending)) / float64(s.total)
}

// enterMenu 切换到主菜单
func (s *LoadingScene) enterMenu() {
	if am := game.GetGameState().GetAudioManager(); am != nil {
		am.PlaySound(game.SoundClick)
	}
	s.sceneManager.SwitchTo(NewMainMenuScene(s.resourceManager, s.sceneManager, s.registry))
}

// Draw 绘制标题、进度条与提示
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(loadingBackColor)

	centerX := float64(config.ScreenWidth) / 2

	if s.titleFont != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(centerX, float64(config.ScreenHeight)/2-60)
		op.ColorScale.ScaleWithColor(loadingTitleColor)
		text.Draw(screen, config.WindowTitle, s.titleFont, op)
	}

	s.drawProgressBar(screen)
	s.drawHint(screen)
}

// drawProgressBar 绘制进度条：底槽 + 按进度裁剪的填充 + 边框
func (s *LoadingScene) drawProgressBar(screen *ebiten.Image) {
	barX := float32(config.ScreenWidth-config.LoadingBarWidth) / 2
	barY := float32(config.LoadingBarY)
	barW := float32(config.LoadingBarWidth)
	barH := float32(config.LoadingBarHeight)

	vector.DrawFilledRect(screen, barX, barY, barW, barH, loadingBarBack, false)

	// 填充段做缓出，进度推进时有追赶感
	shown := utils.EaseOutQuad(s.progress)
	if shown > 0 {
		vector.DrawFilledRect(screen, barX, barY, barW*float32(shown), barH, loadingBarFill, false)
	}

	vector.StrokeRect(screen, barX, barY, barW, barH, 1, loadingBarBorder, false)
}

// drawHint 绘制进度条下方的状态文字
func (s *LoadingScene) drawHint(screen *ebiten.Image) {
	if s.hintFont == nil {
		return
	}

	centerX := float64(config.ScreenWidth) / 2
	hintY := config.LoadingBarY + config.LoadingBarHeight + 16

	var hint string
	clr := loadingDetailColor
	switch {
	case s.loadingComplete && len(s.failed) > 0:
		hint = fmt.Sprintf("%d track(s) failed to load - click to continue", len(s.failed))
		clr = loadingErrorColor
	case s.loadingComplete:
		hint = "Click anywhere to start"
		clr = loadingHintColor
	case s.currentName != "":
		hint = fmt.Sprintf("Building %s ...", s.currentName)
	default:
		hint = "Loading ..."
	}

	// 完成提示做呼吸闪烁，未完成时恒定
	alpha := 1.0
	if s.loadingComplete {
		alpha = 0.65 + 0.35*math.Sin(s.elapsedTime*3.0)
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, hintY)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, hint, s.hintFont, op)
}
