package utils

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	defaultFace     text.Face
	defaultFaceOnce sync.Once
)

// DefaultFace 返回内置的 7x13 位图字体
// 不依赖字体文件，桌面端和移动端都可用
func DefaultFace() text.Face {
	defaultFaceOnce.Do(func() {
		defaultFace = text.NewGoXFace(basicfont.Face7x13)
	})
	return defaultFace
}
