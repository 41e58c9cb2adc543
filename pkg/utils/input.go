// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsConfirmJustPressed 空格或回车，用于启动加载动画
func IsConfirmJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// ============================================================================
// 滚动输入：鼠标滚轮、键盘、触摸拖拽
// ============================================================================

// ScrollKeys 本帧按下的滚动按键
type ScrollKeys struct {
	Up, Down         bool
	PageUp, PageDown bool
	Home, End        bool
}

// ReadScrollKeys 读取本帧的滚动按键
func ReadScrollKeys() ScrollKeys {
	return ScrollKeys{
		Up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		PageUp:   inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		PageDown: inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Home:     inpututil.IsKeyJustPressed(ebiten.KeyHome),
		End:      inpututil.IsKeyJustPressed(ebiten.KeyEnd),
	}
}

// KeyScrollDelta 将按键换算为滚动距离（像素，正数向下）
// Home/End 返回 ±Inf，由调用方的滚动范围截断
func KeyScrollDelta(keys ScrollKeys, step, page float64) float64 {
	switch {
	case keys.Home:
		return math.Inf(-1)
	case keys.End:
		return math.Inf(1)
	}
	var d float64
	if keys.Up {
		d -= step
	}
	if keys.Down {
		d += step
	}
	if keys.PageUp {
		d -= page
	}
	if keys.PageDown {
		d += page
	}
	return d
}

// WheelScrollDelta 将滚轮偏移换算为滚动距离
// ebiten 的 Wheel() 向上滚为正，页面滚动方向相反
func WheelScrollDelta(wheelY, step float64) float64 {
	return -wheelY * step
}

// ReadScrollDelta 汇总本帧所有来源的滚动距离
func ReadScrollDelta(dm *DragManager, step, page float64) float64 {
	_, wy := ebiten.Wheel()
	d := WheelScrollDelta(wy, step) + KeyScrollDelta(ReadScrollKeys(), step, page)
	if dm != nil {
		// 手指向上拖，内容向下滚
		d -= float64(dm.DeltaY())
	}
	return d
}

// ============================================================================
// 拖拽状态管理器 - 用于移动端的触摸滚动
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	State              DragState
	StartX, StartY     int
	CurrentX, CurrentY int
	// 上一帧位置，用于计算逐帧位移
	PrevX, PrevY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID      ebiten.TouchID
	IsTouchInput bool
}

// PointerSample 一帧的指针采样
type PointerSample struct {
	Down    bool
	X, Y    int
	Touch   bool
	TouchID ebiten.TouchID
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 读取 ebiten 输入并更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Apply(samplePointer(dm.info))
}

func samplePointer(info DragInfo) PointerSample {
	if info.State != DragStateNone && info.State != DragStateEnded {
		if info.IsTouchInput {
			for _, id := range ebiten.AppendTouchIDs(nil) {
				if id == info.TouchID {
					x, y := ebiten.TouchPosition(id)
					return PointerSample{Down: true, X: x, Y: y, Touch: true, TouchID: id}
				}
			}
			return PointerSample{Touch: true, TouchID: info.TouchID}
		}
		x, y := ebiten.CursorPosition()
		return PointerSample{Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), X: x, Y: y, TouchID: -1}
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSample{Down: true, X: x, Y: y, Touch: true, TouchID: ids[0]}
	}
	x, y := ebiten.CursorPosition()
	return PointerSample{Down: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), X: x, Y: y, TouchID: -1}
}

// Apply 用一帧的指针采样推进状态机
func (dm *DragManager) Apply(s PointerSample) {
	switch dm.info.State {
	case DragStateNone:
		if s.Down {
			dm.info = DragInfo{
				State:        DragStateStarted,
				StartX:       s.X,
				StartY:       s.Y,
				CurrentX:     s.X,
				CurrentY:     s.Y,
				PrevX:        s.X,
				PrevY:        s.Y,
				TouchID:      s.TouchID,
				IsTouchInput: s.Touch,
			}
		}

	case DragStateStarted, DragStateDragging:
		dm.info.PrevX, dm.info.PrevY = dm.info.CurrentX, dm.info.CurrentY
		if !s.Down {
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y

	case DragStateEnded:
		// 结束状态只持续一帧
		dm.Reset()
		dm.Apply(s)
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// DeltaY 本帧的纵向位移
func (dm *DragManager) DeltaY() int {
	if dm.info.State != DragStateDragging {
		return 0
	}
	return dm.info.CurrentY - dm.info.PrevY
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}
