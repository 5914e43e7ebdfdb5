package components

// Barriers 鼓风机关卡中两块竖直挡板的中心高度
// UpY 从上方逐渐下移，DownY 从下方逐渐上移，中间的缺口随时间收窄
type Barriers struct {
	UpY   float64
	DownY float64
}
