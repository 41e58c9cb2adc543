package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
)

// FaceSource returns the shared Go Regular font source.
func FaceSource() (*text.GoTextFaceSource, error) {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if faceSourceErr != nil {
			faceSourceErr = fmt.Errorf("failed to create font source: %w", faceSourceErr)
		}
	})
	return faceSource, faceSourceErr
}

// NewFace creates a left-to-right face of the given pixel size.
func NewFace(size float64) (*text.GoTextFace, error) {
	src, err := FaceSource()
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}
