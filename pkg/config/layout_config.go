package config

// 布局配置常量
// 本文件定义了窗口尺寸以及屏幕像素与世界坐标之间的换算比例

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1366

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 768

	// PixelsPerUnitX 水平方向每个世界单位对应的像素数
	// 世界横向范围 [-8, 8]：1366 / 16 = 85.375
	PixelsPerUnitX = 85.375

	// PixelsPerUnitY 竖直方向每个世界单位对应的像素数
	// 世界纵向范围 [-4, 4]：768 / 8 = 96
	PixelsPerUnitY = 96.0
)

// Terminal Configuration (终端前端配置)
const (
	// TerminalCellsPerUnitX 终端前端每个世界单位对应的列数
	TerminalCellsPerUnitX = 5.0

	// TerminalCellsPerUnitY 终端前端每个世界单位对应的行数
	TerminalCellsPerUnitY = 2.5
)

// Layout 描述一个渲染表面的尺寸与比例
// 桌面端与终端前端共用同一套坐标换算
type Layout struct {
	Width         float64
	Height        float64
	UnitsToPixelX float64
	UnitsToPixelY float64
}

// DefaultLayout 返回桌面窗口的布局
func DefaultLayout() Layout {
	return Layout{
		Width:         GameWindowWidth,
		Height:        GameWindowHeight,
		UnitsToPixelX: PixelsPerUnitX,
		UnitsToPixelY: PixelsPerUnitY,
	}
}

// TerminalLayout 返回指定终端尺寸的布局
func TerminalLayout(cols, rows int) Layout {
	return Layout{
		Width:         float64(cols),
		Height:        float64(rows),
		UnitsToPixelX: TerminalCellsPerUnitX,
		UnitsToPixelY: TerminalCellsPerUnitY,
	}
}
