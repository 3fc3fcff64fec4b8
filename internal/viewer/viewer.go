package viewer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hyperscope/internal/config"
	"github.com/Faultbox/hyperscope/internal/pipeline"
	"github.com/Faultbox/hyperscope/internal/polytope"
	"github.com/Faultbox/hyperscope/internal/projection"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

const (
	// Radians of manual rotation per pixel of mouse drag.
	dragSensitivity = 0.01

	// Camera distance bounds for the 3D stage, in scene units.
	minCameraDist = 1.5
	maxCameraDist = 12.0

	sliceStep     = 0.05
	thicknessStep = 0.05

	titleInterval = 500 * time.Millisecond
)

// Viewer owns the window, the input poller and the pipeline, and runs
// the frame loop.
type Viewer struct {
	log      *zap.Logger
	cfg      *config.Config
	window   *Window
	input    *Input
	pipeline *pipeline.Pipeline

	width  int
	height int

	display pipeline.Display
	slice   pipeline.SliceConfig
	autoOn  bool

	// Mouse drag maps horizontal motion onto the XW plane and vertical
	// motion onto YW. The springs ease the displayed angles toward the
	// drag targets so rotation stays smooth at any event rate.
	dragging     bool
	lastMouseX   int
	lastMouseY   int
	targetXW     float64
	targetYW     float64
	springXW     harmonica.Spring
	springYW     harmonica.Spring
	velXW        float64
	velYW        float64
	manualXW     float64
	manualYW     float64
	cameraDist   float64
	cameraTarget float64
	cameraVel    float64
	springCam    harmonica.Spring

	frames     int
	titleAt    time.Time
	baseTitle  string
	shapeIndex int
}

// New creates a viewer from the loaded configuration. It opens the
// window immediately.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	shape, err := polytope.Parse(cfg.Scene.Shape)
	if err != nil {
		return nil, err
	}
	mode, err := projection.ParseMode(cfg.Projection.Mode)
	if err != nil {
		return nil, err
	}

	win, err := NewWindow(WindowConfig{
		Title:      "Hyperscope",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	p := pipeline.New(shape, cfg.Scene.Size, log)
	p.SetProjection(projection.Config{
		Mode:         mode,
		ViewDistance: cfg.Projection.ViewDistance,
	})
	p.SetAutoVelocities(math4.Angles{
		XY: cfg.Rotation.XY,
		XZ: cfg.Rotation.XZ,
		XW: cfg.Rotation.XW,
		YZ: cfg.Rotation.YZ,
		YW: cfg.Rotation.YW,
		ZW: cfg.Rotation.ZW,
	})
	p.SetAutoRotation(cfg.Rotation.Auto)

	display := pipeline.Display{
		ShowVertices: cfg.Display.ShowVertices,
		ShowEdges:    cfg.Display.ShowEdges,
		ColorByW:     cfg.Display.ColorByW,
	}
	p.SetDisplay(display)

	slice := pipeline.SliceConfig{
		Enabled:   cfg.Slice.Enabled,
		Position:  cfg.Slice.Position,
		Thickness: cfg.Slice.Thickness,
		Scan:      cfg.Slice.Scan,
		ScanSpeed: cfg.Slice.ScanSpeed,
	}
	p.SetSlice(slice)

	shapeIndex := 0
	for i, s := range polytope.All {
		if s == shape {
			shapeIndex = i
			break
		}
	}

	// Fullscreen windows come up at the desktop resolution, not the
	// configured one.
	width, height := win.Size()

	v := &Viewer{
		log:          log,
		cfg:          cfg,
		window:       win,
		input:        NewInput(),
		pipeline:     p,
		width:        width,
		height:       height,
		display:      display,
		slice:        slice,
		autoOn:       cfg.Rotation.Auto,
		springXW:     harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
		springYW:     harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
		springCam:    harmonica.NewSpring(harmonica.FPS(60), 4.0, 1.0),
		cameraDist:   4.0,
		cameraTarget: 4.0,
		baseTitle:    "Hyperscope",
		titleAt:      time.Now(),
		shapeIndex:   shapeIndex,
	}
	return v, nil
}

// Close releases the window.
func (v *Viewer) Close() {
	v.window.Close()
}

// Run executes the frame loop until the window is closed.
func (v *Viewer) Run() error {
	v.log.Info("viewer started",
		zap.Int("width", v.width),
		zap.Int("height", v.height),
	)

	last := time.Now()
	for {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		if dt > 0.25 {
			dt = 0.25 // clamp after pauses so state does not jump
		}

		if !v.input.Update() {
			break
		}
		v.handleEvents()
		v.animate()

		v.pipeline.Tick(dt)
		v.draw(v.pipeline.Frame())

		v.frames++
		if v.cfg.Graphics.ShowFPS && now.Sub(v.titleAt) >= titleInterval {
			fps := float64(v.frames) / now.Sub(v.titleAt).Seconds()
			v.window.SetTitle(fmt.Sprintf("%s  %s  %.0f fps",
				v.baseTitle, v.pipeline.Shape(), fps))
			v.frames = 0
			v.titleAt = now
		}
	}

	v.log.Info("viewer stopped")
	return nil
}

// animate advances the drag and camera springs and pushes the eased
// manual rotation into the pipeline.
func (v *Viewer) animate() {
	v.manualXW, v.velXW = v.springXW.Update(v.manualXW, v.velXW, v.targetXW)
	v.manualYW, v.velYW = v.springYW.Update(v.manualYW, v.velYW, v.targetYW)
	v.cameraDist, v.cameraVel = v.springCam.Update(v.cameraDist, v.cameraVel, v.cameraTarget)

	m := v.pipeline.ManualRotation()
	m.XW = v.manualXW
	m.YW = v.manualYW
	v.pipeline.SetManualRotation(m)
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case EventWindowResize:
			v.width = e.Width
			v.height = e.Height

		case EventKeyDown:
			v.handleKey(e.Key)

		case EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				v.dragging = true
				v.lastMouseX = e.MouseX
				v.lastMouseY = e.MouseY
			}

		case EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}

		case EventMouseMove:
			if v.dragging {
				dx := e.MouseX - v.lastMouseX
				dy := e.MouseY - v.lastMouseY
				v.lastMouseX = e.MouseX
				v.lastMouseY = e.MouseY
				v.targetXW += float64(dx) * dragSensitivity
				v.targetYW += float64(dy) * dragSensitivity
			}

		case EventMouseWheel:
			v.cameraTarget -= float64(e.WheelY) * 0.5
			if v.cameraTarget < minCameraDist {
				v.cameraTarget = minCameraDist
			}
			if v.cameraTarget > maxCameraDist {
				v.cameraTarget = maxCameraDist
			}
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT})

	case sdl.SCANCODE_TAB:
		v.shapeIndex = (v.shapeIndex + 1) % len(polytope.All)
		v.pipeline.SetShape(polytope.All[v.shapeIndex], v.cfg.Scene.Size)

	case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3,
		sdl.SCANCODE_4, sdl.SCANCODE_5, sdl.SCANCODE_6,
		sdl.SCANCODE_7, sdl.SCANCODE_8, sdl.SCANCODE_9:
		idx := int(key - sdl.SCANCODE_1)
		if idx < len(polytope.All) {
			v.shapeIndex = idx
			v.pipeline.SetShape(polytope.All[idx], v.cfg.Scene.Size)
		}

	case sdl.SCANCODE_P:
		cfg := v.pipeline.Projection()
		cfg.Mode = (cfg.Mode + 1) % 3
		v.pipeline.SetProjection(cfg)
		v.log.Debug("projection changed", zap.Stringer("mode", cfg.Mode))

	case sdl.SCANCODE_SPACE:
		v.autoOn = !v.autoOn
		v.pipeline.SetAutoRotation(v.autoOn)

	case sdl.SCANCODE_R:
		v.pipeline.ResetRotation()
		v.targetXW, v.targetYW = 0, 0
		v.manualXW, v.manualYW = 0, 0
		v.velXW, v.velYW = 0, 0

	case sdl.SCANCODE_S:
		v.slice.Enabled = !v.slice.Enabled
		v.pipeline.SetSlice(v.slice)

	case sdl.SCANCODE_C:
		v.slice.Scan = !v.slice.Scan
		v.pipeline.SetSlice(v.slice)

	case sdl.SCANCODE_UP:
		v.slice = v.pipeline.Slice()
		v.slice.Position += sliceStep
		v.pipeline.SetSlice(v.slice)

	case sdl.SCANCODE_DOWN:
		v.slice = v.pipeline.Slice()
		v.slice.Position -= sliceStep
		v.pipeline.SetSlice(v.slice)

	case sdl.SCANCODE_RIGHT:
		v.slice.Thickness += thicknessStep
		v.pipeline.SetSlice(v.slice)

	case sdl.SCANCODE_LEFT:
		if v.slice.Thickness > thicknessStep {
			v.slice.Thickness -= thicknessStep
		}
		v.pipeline.SetSlice(v.slice)

	case sdl.SCANCODE_V:
		v.display.ShowVertices = !v.display.ShowVertices
		v.pipeline.SetDisplay(v.display)

	case sdl.SCANCODE_E:
		v.display.ShowEdges = !v.display.ShowEdges
		v.pipeline.SetDisplay(v.display)

	case sdl.SCANCODE_W:
		v.display.ColorByW = !v.display.ColorByW
		v.pipeline.SetDisplay(v.display)
	}
}

// toScreen maps a projected 3D point to window pixels with a simple
// perspective camera looking down -Z from cameraDist.
func (v *Viewer) toScreen(p math4.Vec3) (int32, int32, bool) {
	depth := v.cameraDist - p.Z
	if depth < 0.1 {
		return 0, 0, false
	}
	scale := float64(v.height) * 0.5
	f := scale / depth
	x := float64(v.width)/2 + p.X*f
	y := float64(v.height)/2 - p.Y*f
	return int32(x), int32(y), true
}

func (v *Viewer) draw(frame *pipeline.Frame) {
	r := v.window.Renderer()
	r.SetDrawColor(10, 10, 18, 255)
	r.Clear()

	for i := range frame.Edges {
		e := &frame.Edges[i]
		if !e.Visible {
			continue
		}
		x1, y1, ok1 := v.toScreen(e.A)
		x2, y2, ok2 := v.toScreen(e.B)
		if !ok1 || !ok2 {
			continue
		}
		// SDL lines are single-color; average the endpoint colors.
		cr := uint8((e.ColorA.R + e.ColorB.R) * 0.5 * 255)
		cg := uint8((e.ColorA.G + e.ColorB.G) * 0.5 * 255)
		cb := uint8((e.ColorA.B + e.ColorB.B) * 0.5 * 255)
		r.SetDrawColor(cr, cg, cb, 255)
		r.DrawLine(x1, y1, x2, y2)
	}

	for i := range frame.Vertices {
		vert := &frame.Vertices[i]
		if !vert.Visible {
			continue
		}
		x, y, ok := v.toScreen(vert.Pos)
		if !ok {
			continue
		}
		cr, cg, cb := vert.Color.Bytes()
		r.SetDrawColor(cr, cg, cb, 255)
		r.FillRect(&sdl.Rect{X: x - 2, Y: y - 2, W: 5, H: 5})
	}

	r.Present()
}
