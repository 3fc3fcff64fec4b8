// Package viewer displays the pipeline's published frames in an SDL2
// window. It consumes 3D positions, visibility and color only; all 4D
// math stays in the pipeline.
package viewer

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL event handling must stay on the main thread
	runtime.LockOSThread()
}

// WindowConfig holds window creation settings.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps the SDL2 window and its accelerated 2D renderer.
type Window struct {
	config    WindowConfig
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
}

// NewWindow creates a window with a 2D rendering context.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(win, -1, rflags)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	return &Window{
		config:    cfg,
		sdlWindow: win,
		renderer:  renderer,
	}, nil
}

// Renderer returns the SDL 2D renderer.
func (w *Window) Renderer() *sdl.Renderer {
	return w.renderer
}

// Size returns the current drawable size.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}
	sdl.Quit()
}
