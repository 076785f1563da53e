package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelColor      = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	textColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	trackColor      = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	trackHoverColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	fillColor       = color.NRGBA{R: 0x3c, G: 0x8d, B: 0xd8, A: 0xff}
	handleColor     = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	tooltipColor    = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 230}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// LoadFace builds a Go Regular face of the given size.
func LoadFace(size float64) (*text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}
	var face text.Face = &text.GoTextFace{Source: s, Size: size}
	return &face, nil
}

func newTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		DefaultFace:      fontFace,
		DefaultTextColor: textColor,
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{0x33, 0x33, 0x33, 255}),
				Hover:   solidNineSlice(color.RGBA{0x44, 0x44, 0x44, 255}),
				Pressed: solidNineSlice(color.RGBA{0x22, 0x22, 0x22, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: textColor,
			},
		},
		ProgressBarTheme: &widget.ProgressBarParams{
			TrackImage: &widget.ProgressBarImage{
				Idle:  solidNineSlice(trackColor),
				Hover: solidNineSlice(trackHoverColor),
			},
			FillImage: &widget.ProgressBarImage{
				Idle:  solidNineSlice(fillColor),
				Hover: solidNineSlice(fillColor),
			},
		},
	}
}
