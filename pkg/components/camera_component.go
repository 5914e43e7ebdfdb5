package components

// CameraComponent 镜头缩放与平移
// 只是展示层的状态，模拟本身不读取
type CameraComponent struct {
	Zoom float64
	Pan  float64
}
