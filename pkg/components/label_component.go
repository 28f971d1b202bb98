package components

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelAlign 标签水平对齐方式
type LabelAlign int

const (
	// AlignLeft 左对齐（锚点为左上角）
	AlignLeft LabelAlign = iota
	// AlignCenter 居中对齐（锚点为中心）
	AlignCenter
	// AlignRight 右对齐（锚点为右上角）
	AlignRight
)

// LabelComponent 静态文本标签组件
// 标题、按键提示等不随帧变化的文字；实时数值由 HUD 渲染系统直接绘制
type LabelComponent struct {
	// Text 显示的文字
	Text string
	// Font 字体
	Font *text.GoTextFace
	// Color 文字颜色（RGBA）
	Color [4]uint8
	// Align 水平对齐
	Align LabelAlign
}
