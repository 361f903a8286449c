package render

import (
	"errors"
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Stage and dialogue code only talk to this interface so the
// backend can be swapped (or faked in tests) without touching scene logic.
type Renderer interface {
	// Shape operations
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// Blend selects how a source image is composited onto its destination.
type Blend int

const (
	// BlendNormal is regular source-over alpha compositing.
	BlendNormal Blend = iota
	// BlendDarken keeps the darker of source and destination.
	BlendDarken
)

// String returns the blend mode name.
func (b Blend) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendDarken:
		return "darken"
	default:
		return "unknown"
	}
}

// ColorScale multiplies the source colour channels while drawing.
// Values are straight (not premultiplied) and usually in [0, 1].
type ColorScale struct {
	R, G, B, A float32
}

// TintScale builds a ColorScale from a 0xRRGGBB tint and an opacity.
func TintScale(rgb uint32, alpha float64) ColorScale {
	return ColorScale{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
		A: float32(alpha),
	}
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// ColorScale is applied when non-nil.
	ColorScale *ColorScale
	Blend      Blend
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the stage listens to
const (
	KeySpace Key = iota
	KeyEnter
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft is the primary mouse button.
const MouseButtonLeft MouseButton = 0

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
	NewImageFromImage(img image.Image) Image
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// Termination is returned from Game.Update to end the game loop without
// reporting an error.
var Termination = errors.New("render: regular termination")
