package render3d

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Target 软件渲染的最小像素目标
// 实现方需要自行裁剪越界坐标
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode 光栅化模式
type RenderMode uint8

const (
	// RenderWireframe 线框模式
	RenderWireframe RenderMode = iota
	// RenderSolidFlat 平面着色实体模式
	RenderSolidFlat
	// RenderSolidVertexColor 顶点色插值实体模式
	RenderSolidVertexColor
)

// ImageTarget RGBA 像素缓冲目标
// 每帧渲染完成后通过 Blit 一次性上传到 Ebitengine 图像，
// 避免逐像素调用 GPU 侧接口
type ImageTarget struct {
	w, h int
	pix  []byte
}

// NewImageTarget 创建指定尺寸的像素缓冲目标
func NewImageTarget(w, h int) *ImageTarget {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ImageTarget{
		w:   w,
		h:   h,
		pix: make([]byte, w*h*4),
	}
}

// Size 返回缓冲尺寸
func (t *ImageTarget) Size() (int, int) { return t.w, t.h }

// SetPixel 写入单个像素，越界坐标忽略
func (t *ImageTarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	i := (y*t.w + x) * 4
	t.pix[i+0] = c.R
	t.pix[i+1] = c.G
	t.pix[i+2] = c.B
	t.pix[i+3] = c.A
}

// At 读取单个像素，越界返回零值
func (t *ImageTarget) At(x, y int) Color {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return Color{}
	}
	i := (y*t.w + x) * 4
	return Color{R: t.pix[i+0], G: t.pix[i+1], B: t.pix[i+2], A: t.pix[i+3]}
}

// Clear 以指定颜色填充整个缓冲
func (t *ImageTarget) Clear(c Color) {
	if len(t.pix) < 4 {
		return
	}
	t.pix[0] = c.R
	t.pix[1] = c.G
	t.pix[2] = c.B
	t.pix[3] = c.A
	// 倍增复制填充
	for n := 4; n < len(t.pix); n *= 2 {
		copy(t.pix[n:], t.pix[:n])
	}
}

// Pix 返回底层 RGBA 字节切片（行优先，每像素 4 字节）
// 供截图保存等直接读取场景使用
func (t *ImageTarget) Pix() []byte { return t.pix }

// Blit 把缓冲整体上传到 Ebitengine 图像
// 目标图像尺寸必须与缓冲一致，否则不做任何事
func (t *ImageTarget) Blit(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	b := dst.Bounds()
	if b.Dx() != t.w || b.Dy() != t.h {
		return
	}
	dst.WritePixels(t.pix)
}
