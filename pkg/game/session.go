package game

// Session 本次运行期间的成绩记录
//
// 只保存在内存中，程序退出后丢失。
// 场景在游戏结束时调用 Record，HUD 通过 Best 显示最高分。
type Session struct {
	best  map[string]int
	plays map[string]int
}

// NewSession 创建空的成绩记录
func NewSession() *Session {
	return &Session{
		best:  make(map[string]int),
		plays: make(map[string]int),
	}
}

// Record 记录一局的最终分数
//
// 参数:
//   - mode: 游戏模式
//   - score: 本局分数
//
// 返回:
//   - bool: 是否刷新了该模式的最高分
func (s *Session) Record(mode string, score int) bool {
	s.plays[mode]++
	if score > s.best[mode] {
		s.best[mode] = score
		return true
	}
	return false
}

// Best 该模式的最高分，没有记录时为 0
func (s *Session) Best(mode string) int {
	return s.best[mode]
}

// Plays 该模式已结束的局数
func (s *Session) Plays(mode string) int {
	return s.plays[mode]
}
