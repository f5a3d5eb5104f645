package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/roadhop/pkg/direction"
	"github.com/decker502/roadhop/pkg/input"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD 颜色
var (
	hudTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudShadowColor  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	buttonFillColor = color.RGBA{R: 255, G: 255, B: 255, A: 70}
	buttonLineColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	retryFillColor  = color.RGBA{R: 230, G: 90, B: 60, A: 255}
	winTitleColor   = color.RGBA{R: 255, G: 215, B: 70, A: 255}
)

// 文字对齐方式
const (
	alignLeft = iota
	alignCenter
)

// rect 屏幕矩形
type rect struct {
	X, Y, W, H float64
}

// Contains 点是否在矩形内
func (r rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// hud 计分文字、屏幕方向按钮和结束界面
//
// 布局只依赖屏幕尺寸，Resize 时重新计算。
type hud struct {
	face    *text.GoXFace
	width   float64
	height  float64
	buttons []input.Button
	retry   rect
}

func newHUD(width, height int) *hud {
	h := &hud{face: text.NewGoXFace(bitmapfont.Face)}
	h.resize(width, height)
	return h
}

func (h *hud) resize(width, height int) {
	h.width, h.height = float64(width), float64(height)
	h.buttons = directionButtons(h.width, h.height)
	h.retry = retryButton(h.width, h.height)
}

// textScale 文字缩放，随屏幕高度变化
func (h *hud) textScale() float64 {
	return math.Max(1, math.Floor(h.height/300))
}

// directionButtons 右下角十字排列的四个方向按钮
func directionButtons(width, height float64) []input.Button {
	size := math.Min(width, height) / 10
	size = math.Max(40, math.Min(80, size))
	margin := size / 3

	// 3x3 网格的左上角
	gx := width - margin - 3*size
	gy := height - margin - 3*size

	cell := func(dir direction.Direction, col, row float64) input.Button {
		return input.Button{Dir: dir, X: gx + col*size, Y: gy + row*size, Width: size, Height: size}
	}
	return []input.Button{
		cell(direction.Forward, 1, 0),
		cell(direction.Left, 0, 1),
		cell(direction.Right, 2, 1),
		cell(direction.Backward, 1, 2),
	}
}

// retryButton 结束界面中央偏下的重试按钮
func retryButton(width, height float64) rect {
	w := math.Max(120, width/5)
	h := math.Max(36, height/14)
	return rect{X: (width - w) / 2, Y: height*0.6 - h/2, W: w, H: h}
}

// drawText 绘制带阴影的文字
// y 为文字顶部
func (h *hud) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align int) {
	if align == alignCenter {
		x -= text.Advance(s, h.face) * scale / 2
	}

	for _, pass := range []struct {
		offset float64
		clr    color.Color
	}{{scale, hudShadowColor}, {0, clr}} {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+pass.offset, y+pass.offset)
		op.ColorScale.ScaleWithColor(pass.clr)
		text.Draw(dst, s, h.face, op)
	}
}

// drawScore 左上角的分数和最高分
func (h *hud) drawScore(dst *ebiten.Image, score string, best string) {
	s := h.textScale()
	h.drawText(dst, score, 16, 16, s*2, hudTextColor, alignLeft)
	if best != "" {
		h.drawText(dst, best, 16, 16+s*2*16, s, hudTextColor, alignLeft)
	}
}

// drawButtons 绘制屏幕方向按钮
func (h *hud) drawButtons(dst *ebiten.Image) {
	labels := map[direction.Direction]string{
		direction.Forward:  "^",
		direction.Backward: "v",
		direction.Left:     "<",
		direction.Right:    ">",
	}
	for _, b := range h.buttons {
		fillRect(dst, b.X+2, b.Y+2, b.Width-4, b.Height-4, buttonFillColor)
		strokeRect(dst, b.X+2, b.Y+2, b.Width-4, b.Height-4, 2, buttonLineColor)
		scale := math.Max(1, math.Floor(b.Height/24))
		h.drawText(dst, labels[b.Dir], b.X+b.Width/2, b.Y+b.Height/2-8*scale, scale, hudTextColor, alignCenter)
	}
}

// drawEndScreen 游戏结束或胜利界面
//
// 参数:
//   - title: 标题（如 "GAME OVER"）
//   - lines: 标题下方的说明文字
//   - titleColor: 标题颜色
func (h *hud) drawEndScreen(dst *ebiten.Image, title string, lines []string, titleColor color.Color) {
	fillRect(dst, 0, 0, h.width, h.height, overlayColor)

	s := h.textScale()
	y := h.height * 0.25
	h.drawText(dst, title, h.width/2, y, s*4, titleColor, alignCenter)
	y += s * 4 * 20
	for _, line := range lines {
		h.drawText(dst, line, h.width/2, y, s*1.5, hudTextColor, alignCenter)
		y += s * 1.5 * 20
	}

	r := h.retry
	fillRect(dst, r.X, r.Y, r.W, r.H, retryFillColor)
	strokeRect(dst, r.X, r.Y, r.W, r.H, 2, hudTextColor)
	h.drawText(dst, "RETRY (R)", r.X+r.W/2, r.Y+r.H/2-8*s, s, hudTextColor, alignCenter)
}
