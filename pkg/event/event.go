// Package event 定义世界步进函数返回的事件，以及把事件分发给订阅者的 Dispatcher
package event

// Type 事件类型
type Type string

const (
	ScoreChanged  Type = "ScoreChanged"  // 分数变化
	StepCompleted Type = "StepCompleted" // 一次跳跃完成
	MoveRejected  Type = "MoveRejected"  // 已排队的移动在开始时失效被丢弃
	GameOver      Type = "GameOver"      // 游戏结束（碰撞、落水、出界）
	Won           Type = "Won"           // 到达终点行
	LaneSpawned   Type = "LaneSpawned"   // 新行生成，渲染层应添加到场景
	LaneRemoved   Type = "LaneRemoved"   // 行被回收，渲染层应从场景移除
)

// Cause 游戏结束原因
type Cause string

const (
	CauseNone      Cause = ""
	CauseCollision Cause = "collision" // 被车辆撞到
	CauseDrowned   Cause = "drowned"   // 落水
	CauseOffBoard  Cause = "off-board" // 漂出或走出边界
)

// Event 单个事件
type Event struct {
	Type  Type
	Lane  int   // 相关行索引（LaneSpawned/LaneRemoved/StepCompleted）
	Score int   // ScoreChanged/GameOver/Won 时的分数
	Cause Cause // GameOver 时的原因
}

// Listener 事件订阅者
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc 将普通函数适配为 Listener
type ListenerFunc func(e Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher 事件分发器
// 单线程使用，所有调用都发生在帧回调内
type Dispatcher struct {
	listeners map[Type][]Listener
	any       []Listener
}

// NewDispatcher 创建新的分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll 订阅所有事件
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.any = append(d.any, l)
}

// Dispatch 将事件发送给所有订阅者（先按类型，再是全部订阅者）
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.any {
		l.OnEvent(e)
	}
}

// DispatchAll 按顺序分发一批事件
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}

// Queue 帧内事件缓冲：系统在 Update 中 Push，世界在帧末 Drain
type Queue struct {
	events []Event
}

// Push 追加事件
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len 缓冲中的事件数
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain 取出并清空全部事件，没有事件时返回 nil
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
