package types

// Event 模拟过程中发生的离散事件，供展示层播放音效或提示
type Event int

const (
	EventFired Event = iota
	EventBounce
	EventSettled
	EventRebound
	EventOutOfBounds
	EventLevelCleared
	EventVictory
	EventGameOver
)

var eventNames = map[Event]string{
	EventFired:        "fired",
	EventBounce:       "bounce",
	EventSettled:      "settled",
	EventRebound:      "rebound",
	EventOutOfBounds:  "out-of-bounds",
	EventLevelCleared: "level-cleared",
	EventVictory:      "victory",
	EventGameOver:     "game-over",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}
