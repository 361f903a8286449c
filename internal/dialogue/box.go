package dialogue

import (
	"image/color"
	"strings"

	"chosenoffset.com/footlights/internal/render"
)

// Box is the text panel along the bottom of the stage. Message lines are
// wrapped with the renderer's text metrics.
type Box struct {
	renderer render.Renderer

	// Dimensions
	X, Y          int
	Width, Height int

	// Content
	speaker string
	message string
	lines   []string // Wrapped message lines

	// Visual settings
	bgColor      color.RGBA
	borderColor  color.RGBA
	textColor    color.RGBA
	speakerColor color.RGBA
	lineHeight   int
	padding      int
}

// NewBox creates a dialogue box covering the given rectangle.
func NewBox(r render.Renderer, x, y, width, height int) *Box {
	return &Box{
		renderer:     r,
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		bgColor:      color.RGBA{20, 20, 30, 230},
		borderColor:  color.RGBA{60, 60, 80, 255},
		textColor:    color.RGBA{220, 220, 220, 255},
		speakerColor: color.RGBA{255, 255, 150, 255},
		lineHeight:   18,
		padding:      12,
	}
}

// SetText shows a script line. A line of the form "<speaker>:\n<message>"
// puts the speaker on its own row above the wrapped message.
func (b *Box) SetText(line string) {
	b.speaker = ""
	message := line
	if name, rest, ok := strings.Cut(line, "\n"); ok && strings.HasSuffix(name, ":") {
		b.speaker = strings.TrimSuffix(name, ":")
		message = rest
	}
	b.message = message
	b.lines = b.wrapText(message, b.Width-b.padding*2)
}

// Clear empties the box.
func (b *Box) Clear() {
	b.speaker = ""
	b.message = ""
	b.lines = nil
}

// Speaker returns the name shown above the message, if any.
func (b *Box) Speaker() string {
	return b.speaker
}

// Lines returns the wrapped message lines.
func (b *Box) Lines() []string {
	return b.lines
}

// Resize fits the box to the bottom of a screen of the given size.
func (b *Box) Resize(screenWidth, screenHeight int) {
	margin := b.padding
	b.X = margin
	b.Width = screenWidth - margin*2
	b.Y = screenHeight - b.Height - margin
	if b.message != "" {
		b.lines = b.wrapText(b.message, b.Width-b.padding*2)
	}
}

// Draw renders the box. Nothing is drawn while it is empty.
func (b *Box) Draw(screen render.Image) {
	r := b.renderer
	if b.speaker == "" && len(b.lines) == 0 {
		return
	}

	// Border, then background inset by one pixel
	r.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), b.borderColor)
	r.FillRect(screen, float32(b.X+1), float32(b.Y+1), float32(b.Width-2), float32(b.Height-2), b.bgColor)

	y := b.Y + b.padding
	if b.speaker != "" {
		r.DrawText(screen, b.speaker, b.X+b.padding, y, b.speakerColor, 1)
		y += b.lineHeight + 4
	}

	maxY := b.Y + b.Height - b.padding
	for _, line := range b.lines {
		if y+b.lineHeight > maxY {
			break
		}
		r.DrawText(screen, line, b.X+b.padding, y, b.textColor, 1)
		y += b.lineHeight
	}
}

// wrapText breaks text into lines no wider than maxWidth pixels. A word
// wider than maxWidth gets a line of its own. Explicit newlines are kept as
// paragraph breaks.
func (b *Box) wrapText(text string, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			candidate := currentLine + " " + word
			if w, _ := b.renderer.MeasureText(candidate, 1); w > maxWidth {
				lines = append(lines, currentLine)
				currentLine = word
				continue
			}
			currentLine = candidate
		}
		lines = append(lines, currentLine)
	}

	return lines
}
