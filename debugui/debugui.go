// Package debugui provides a Dear ImGui inspection overlay for the windowed
// frontend: live board state, the piece table, and frame timing.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. Must run before
// ebiten.RunGame takes over the main loop.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
	return ImguiBackend{EbitenBackend: backend}
}

// ImguiItem holds a Dear ImGui render function. Items run between
// BeginFrame and EndFrame, in the order they were added.
type ImguiItem struct {
	Render func()
}

// Overlay plugs a list of ImguiItems into the game shell's debug layer.
type Overlay struct {
	backend ImguiBackend
	items   []ImguiItem
}

func NewOverlay(backend ImguiBackend) *Overlay {
	return &Overlay{backend: backend}
}

func (o *Overlay) Add(items ...ImguiItem) {
	o.items = append(o.items, items...)
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

func (o *Overlay) EndFrame() {
	for _, item := range o.items {
		item.Render()
	}
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
