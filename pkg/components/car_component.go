package components

// CarColorCount 车辆配色数量，CarComponent.Color 取值 [0, CarColorCount)
const CarColorCount = 6

// CarComponent 连续模式中的车辆
type CarComponent struct {
	Lane  int     // 所在行索引
	Speed float64 // X 方向速度（世界单位/秒），负值向左
	Color int     // 配色索引，仅用于渲染
}
