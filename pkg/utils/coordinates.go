// Package utils 提供与具体渲染库无关的工具函数
//
// coordinates.go 提供屏幕坐标与世界坐标的换算。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在屏幕中心，X 向右，Y 向上，横向 [-8, 8]、纵向 [-4, 4]
//   - **屏幕坐标**：相对于窗口左上角，Y 向下（Ebiten / 终端默认）
//
// # 核心转换公式
//
// 指针换算（不考虑镜头，输入层使用）：
//
//	worldX = (px - width/2) / unitsToPixelX
//	worldY = -(py - height/2) / unitsToPixelY
//
// 渲染换算（考虑镜头缩放/平移）：
//
//	可见区域 X ∈ [-halfW+zoom+pan, halfW-zoom+pan]，Y ∈ [-halfH+zoom, halfH-zoom]
package utils

import (
	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/config"
)

// ScreenToWorld 将指针的屏幕坐标转换为世界坐标
//
// 参数：
//   - px, py: 屏幕坐标（像素或终端单元格）
//   - layout: 渲染表面的布局
//
// 返回：
//   - wx, wy: 世界坐标
func ScreenToWorld(px, py float64, layout config.Layout) (wx, wy float64) {
	wx = (px - layout.Width/2) / layout.UnitsToPixelX
	wy = -(py - layout.Height/2) / layout.UnitsToPixelY
	return wx, wy
}

// WorldToScreen 将世界坐标转换为屏幕坐标（应用镜头缩放与平移）
//
// 参数：
//   - wx, wy: 世界坐标
//   - layout: 渲染表面的布局
//   - camera: 镜头状态，零值表示不缩放不平移
//
// 返回：
//   - sx, sy: 屏幕坐标
func WorldToScreen(wx, wy float64, layout config.Layout, camera components.CameraComponent) (sx, sy float64) {
	left, right, bottom, top := ViewBounds(layout, camera)
	sx = (wx - left) / (right - left) * layout.Width
	sy = (top - wy) / (top - bottom) * layout.Height
	return sx, sy
}

// WorldScale 返回当前镜头下每个世界单位对应的屏幕长度
func WorldScale(layout config.Layout, camera components.CameraComponent) (scaleX, scaleY float64) {
	left, right, bottom, top := ViewBounds(layout, camera)
	return layout.Width / (right - left), layout.Height / (top - bottom)
}

// ViewBounds 返回镜头可见的世界坐标范围
func ViewBounds(layout config.Layout, camera components.CameraComponent) (left, right, bottom, top float64) {
	halfW := layout.Width / layout.UnitsToPixelX / 2
	halfH := layout.Height / layout.UnitsToPixelY / 2

	left = -halfW + camera.Zoom + camera.Pan
	right = halfW - camera.Zoom + camera.Pan
	bottom = -halfH + camera.Zoom
	top = halfH - camera.Zoom
	return left, right, bottom, top
}
