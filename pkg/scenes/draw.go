package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// point 屏幕坐标
type point struct {
	X, Y float64
}

// shapeDrawer 用 vector.Path 填充任意多边形
// 顶点缓冲在帧之间复用
type shapeDrawer struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func newShapeDrawer() *shapeDrawer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &shapeDrawer{fillImg: fillImg}
}

// fillPolygon 填充多边形，少于 3 个顶点时不绘制
func (d *shapeDrawer) fillPolygon(dst *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	d.vs, d.is = path.AppendVerticesAndIndicesForFilling(d.vs[:0], d.is[:0])
	for i := range d.vs {
		d.vs[i].SrcX = 0
		d.vs[i].SrcY = 0
		d.vs[i].ColorR = float32(clr.R) / 255
		d.vs[i].ColorG = float32(clr.G) / 255
		d.vs[i].ColorB = float32(clr.B) / 255
		d.vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(d.vs, d.is, d.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// fillRect 填充矩形（屏幕坐标）
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// strokeRect 描边矩形
func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, true)
}

// shade 按系数调暗颜色
func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
