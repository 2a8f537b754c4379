package utils

import (
	"bytes"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle 字体样式
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
)

var (
	faceSourcesOnce sync.Once
	faceSources     map[FontStyle]*text.GoTextFaceSource
	faceSourcesErr  error
)

// loadFaceSources 解析内置 Go 字体（只解析一次）
func loadFaceSources() (map[FontStyle]*text.GoTextFaceSource, error) {
	faceSourcesOnce.Do(func() {
		fonts := map[FontStyle][]byte{
			FontRegular: goregular.TTF,
			FontBold:    gobold.TTF,
			FontItalic:  goitalic.TTF,
		}
		faceSources = make(map[FontStyle]*text.GoTextFaceSource, len(fonts))
		for style, data := range fonts {
			src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
			if err != nil {
				faceSourcesErr = err
				return
			}
			faceSources[style] = src
		}
	})
	return faceSources, faceSourcesErr
}

// NewFace 创建指定样式与字号的字体
func NewFace(style FontStyle, size float64) (*text.GoTextFace, error) {
	sources, err := loadFaceSources()
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: sources[style], Size: size}, nil
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 如果单词太长超过最大宽度，单独成行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if measureTextWidth(testLine, font) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
			continue
		}
		currentLine = testLine
	}

	// 添加最后一行
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	// 如果没有换行，至少返回原文本
	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// DrawTextCentered 以 (cx, y) 为顶部中心绘制文本
// alpha <= 0 时跳过绘制
func DrawTextCentered(screen *ebiten.Image, s string, font *text.GoTextFace, cx, y float64, paint Paint) {
	if font == nil || paint.A <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(paint.NRGBA())
	text.Draw(screen, s, font, op)
}

// DrawTextLines 逐行居中绘制多行文本，返回绘制后的底部 y
func DrawTextLines(screen *ebiten.Image, lines []string, font *text.GoTextFace, cx, y, lineHeight float64, paint Paint) float64 {
	for _, line := range lines {
		DrawTextCentered(screen, line, font, cx, y, paint)
		y += lineHeight
	}
	return y
}
