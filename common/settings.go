package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
	TileSize   = 64
	FPS        = 60
)
