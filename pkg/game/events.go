package game

import "github.com/decker502/artillery/pkg/types"

// maxPendingEvents 未被取走的事件上限，超出后丢弃最旧的
const maxPendingEvents = 64

// Emit 记录一个事件
func (gs *GameState) Emit(e types.Event) {
	if len(gs.events) >= maxPendingEvents {
		gs.events = gs.events[1:]
	}
	gs.events = append(gs.events, e)
}

// DrainEvents 取走自上次调用以来的全部事件
func (gs *GameState) DrainEvents() []types.Event {
	out := gs.events
	gs.events = nil
	return out
}
