package components

// UIState 控件的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停在控件上
	UIHovered
	// UIClicked 控件正被按住
	UIClicked
	// UIDisabled 控件被禁用，不响应交互
	UIDisabled
)

// UIComponent 标记实体为 UI 控件并记录其交互状态
// 交互系统写入状态，渲染系统按状态挑选配色
type UIComponent struct {
	// State 当前交互状态
	State UIState
}
