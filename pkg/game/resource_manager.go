package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 资源管理器
// 职责：
//   - 持有全局音频上下文
//   - 按字号创建并缓存字体
//
// 程序本体没有外置资源文件：字体用内置的 Go Regular，
// 音频由 internal/audio 合成，轨道定义走 embedded 包
type ResourceManager struct {
	audioContext  *audio.Context
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - audioContext: 全局音频上下文，可为 nil（无音频环境）
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	rm := &ResourceManager{
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// 内置字体解析失败说明构建损坏，记录后以 nil 字体降级
		log.Printf("[ResourceManager] Warning: Failed to parse builtin font: %v", err)
	} else {
		rm.fontSource = source
	}

	return rm
}

// AudioContext 返回全局音频上下文，可为 nil
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// FontFace 返回指定字号的字体，按字号缓存
// 字体源不可用时返回 nil，渲染系统对 nil 字体跳过文字绘制
func (rm *ResourceManager) FontFace(size float64) *text.GoTextFace {
	if rm.fontSource == nil {
		return nil
	}

	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

// MeasureWidth 返回文字在指定字号下的像素宽度
func (rm *ResourceManager) MeasureWidth(s string, size float64) (float64, error) {
	face := rm.FontFace(size)
	if face == nil {
		return 0, fmt.Errorf("font source unavailable")
	}
	w, _ := text.Measure(s, face, 0)
	return w, nil
}
