// trophy - Terminal 3D Model Viewer
// View glTF/GLB models in your terminal with full 3D rendering.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	T           - Toggle texture on/off
//	X           - Toggle wireframe mode (x-ray)
//	L           - Light positioning mode (move mouse, click to set, Esc to cancel)
//	?           - Toggle HUD overlay (FPS, filename, poly count, mode status)
//	+/-         - Adjust zoom
//	Esc         - Quit (or cancel light mode)
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
	"github.com/trophyraster/raster/pkg/models"
	"github.com/trophyraster/raster/pkg/present"
	"github.com/trophyraster/raster/pkg/raster"
	"github.com/trophyraster/raster/pkg/texture"
	"github.com/trophyraster/raster/pkg/transform"
)

var (
	texturePath = flag.String("texture", "", "Path to texture image (PNG/JPEG/BMP/WebP)")
	targetFPS   = flag.Int("fps", 60, "Target FPS")
	bgColor     = flag.String("bg", "30,30,40", "Background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "trophy - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: trophy [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "With no model argument, spins a procedural cube.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var modelPath string
	if flag.NArg() > 0 {
		modelPath = flag.Arg(0)
	}

	if err := run(modelPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// axisSpring tracks a rotation axis's position and velocity, decaying
// velocity back to zero through a critically damped spring instead of a
// fixed friction constant.
type axisSpring struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newAxisSpring(fps int) axisSpring {
	return axisSpring{velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *axisSpring) update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// orbitState holds the model's spring-damped pitch/yaw/roll.
type orbitState struct {
	Pitch, Yaw, Roll axisSpring
	fps              int
}

func newOrbitState(fps int) *orbitState {
	return &orbitState{
		Pitch: newAxisSpring(fps),
		Yaw:   newAxisSpring(fps),
		Roll:  newAxisSpring(fps),
		fps:   fps,
	}
}

func (o *orbitState) update() {
	o.Pitch.update()
	o.Yaw.update()
	o.Roll.update()
}

func (o *orbitState) applyImpulse(pitch, yaw, roll float64) {
	o.Pitch.Velocity += pitch
	o.Yaw.Velocity += yaw
	o.Roll.Velocity += roll
}

func (o *orbitState) reset() {
	*o = *newOrbitState(o.fps)
}

func (o *orbitState) rotation() math3d.Quat {
	return math3d.QuatFromEuler(o.Yaw.Position, o.Pitch.Position, o.Roll.Position)
}

// renderMode controls how the mesh is drawn each frame.
type renderMode int

const (
	modeTextured renderMode = iota
	modeFlat
	modeWireframe
)

// viewState is UI state, not library code: which render mode is active,
// whether the HUD is shown, and where the light currently points.
type viewState struct {
	TextureEnabled bool
	Mode           renderMode
	LightMode      bool
	LightDir       math3d.Vec3
	PendingLight   math3d.Vec3
	ShowHUD        bool
}

func newViewState() *viewState {
	return &viewState{
		TextureEnabled: true,
		Mode:           modeTextured,
		LightDir:       raster.DefaultLightDir,
		ShowHUD:        true,
	}
}

// screenToLightDir maps a screen position to a light direction on the
// hemisphere facing the camera.
func (v *viewState) screenToLightDir(screenX, screenY, width, height int) math3d.Vec3 {
	nx := (float64(screenX)/float64(width))*2 - 1
	ny := (float64(screenY)/float64(height))*2 - 1

	lenSq := nx*nx + ny*ny
	if lenSq > 1 {
		l := math.Sqrt(lenSq)
		nx /= l
		ny /= l
		lenSq = 1
	}
	nz := math.Sqrt(1 - lenSq)
	return math3d.V3(nx, -ny, nz).Normalize()
}

// hud renders an ANSI overlay with model info and controls, clearing its
// two rows even when hidden so toggling it off leaves no stale text.
type hud struct {
	filename  string
	polyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func newHUD(filename string, polyCount int) *hud {
	return &hud{filename: filename, polyCount: polyCount, fpsTime: time.Now()}
}

func (h *hud) updateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *hud) render(width, height int, v *viewState) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string { return fmt.Sprintf("\x1b[%d;%dH", row, col) }

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if v.LightMode {
		msg := fmt.Sprintf("%s%s%s ◉ LIGHT MODE - move mouse, click to set, Esc to cancel %s", bgBlack, bold, fgYellow, reset)
		fmt.Print(moveTo(height, max((width-60)/2, 1)) + msg)
		return
	}
	if !v.ShowHUD {
		return
	}

	fmt.Print(fmt.Sprintf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset))

	title := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.filename, reset)
	fmt.Print(moveTo(1, max((width-len(h.filename)-2)/2, 1)) + title)

	poly := fmt.Sprintf("%s%s%s %d polys %s", bgBlack, fgCyan, bold, h.polyCount, reset)
	fmt.Print(moveTo(1, max(width-12, 1)) + poly)

	checkTex, checkWire := "[ ]", "[ ]"
	if v.TextureEnabled && v.Mode != modeWireframe {
		checkTex = "[✓]"
	}
	if v.Mode == modeWireframe {
		checkWire = "[✓]"
	}
	modeStr := fmt.Sprintf("%s%s %s Texture  %s X-Ray (wireframe) %s", bgBlack, fgWhite, checkTex, checkWire, reset)
	fmt.Print(moveTo(height, 1) + modeStr)

	hint := fmt.Sprintf("%s%s%s L: position light %s", bgBlack, dim, fgYellow, reset)
	fmt.Print(moveTo(height, max(width-18, 1)) + hint)
}

// loadModel loads a glTF/GLB file, or builds a procedural cube when path is
// empty so the viewer always has something to spin.
func loadModel(path string) (*mesh.Mesh, *texture.Texture, error) {
	if path == "" {
		return buildCube(1), nil, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		return models.LoadGLTFWithTexture(path)
	default:
		return nil, nil, fmt.Errorf("unsupported format %q (use .glb or .gltf)", ext)
	}
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	background := present.RGB(bgR, bgG, bgB)

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	fmt.Fprint(os.Stdout, "\x1b[?1003h\x1b[?1006h") // any-event + SGR mouse tracking

	presenter := present.NewTerminal(term, cols, rows)
	fbWidth, fbHeight := presenter.FramebufferSize()
	r := raster.New(fbWidth, fbHeight)

	cam := transform.NewCamera()
	cam.SetProjection(math.Pi/3, float64(fbWidth)/float64(fbHeight), 0.1, 100)
	cameraZ := 5.0
	cam.SetTransform(transform.FromTranslation(math3d.V3(0, 0, cameraZ)))

	var tex *texture.Texture
	if *texturePath != "" {
		tex, err = texture.Load(*texturePath)
		if err != nil {
			fmt.Printf("Warning: could not load texture: %v\n", err)
		}
	}

	m, embedded, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if tex == nil && embedded != nil {
		tex = embedded
		fmt.Printf("Using embedded texture: %dx%d\n", tex.Width, tex.Height)
	}
	if tex == nil {
		tex = texture.NewSoftenedChecker(64, 64, 8, present.RGB(200, 200, 200), present.RGB(100, 100, 100), 1.2, 1.05)
	}

	displayName := "cube (no model given)"
	if modelPath != "" {
		displayName = filepath.Base(modelPath)
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", displayName, m.VertexCount(), m.TriangleCount())

	// Center and scale the model to fit within a 2-unit cube.
	min, max := m.Bounds()
	size := max.Sub(min)
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	modelTransform := transform.Identity()
	if maxDim > 0 {
		scale := 2.0 / maxDim
		modelTransform.Translation = m.Center().Negate().Scale(scale)
		modelTransform.Scale = math3d.V3(scale, scale, scale)
	}

	h := newHUD(displayName, m.TriangleCount())
	orbit := newOrbitState(*targetFPS)
	view := newViewState()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 3.0
	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				term.Erase()
				term.Resize(cols, rows)
				presenter.Resize(cols, rows)
				fbWidth, fbHeight = presenter.FramebufferSize()
				r = raster.New(fbWidth, fbHeight)
				cam.SetProjection(cam.FOV, float64(fbWidth)/float64(fbHeight), cam.Near, cam.Far)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"):
					if view.LightMode {
						view.LightMode = false
					} else {
						cancel()
						return
					}
				case ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("r"):
					orbit.reset()
					cameraZ = 5.0
					cam.SetTransform(transform.FromTranslation(math3d.V3(0, 0, cameraZ)))
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					orbit.applyImpulse((rand.Float64()-0.5)*1.5, (rand.Float64()-0.5)*1.5, (rand.Float64()-0.5)*1.5)
				case ev.MatchString("+", "="):
					cameraZ = math.Max(1, cameraZ-0.5)
					cam.SetTransform(transform.FromTranslation(math3d.V3(0, 0, cameraZ)))
				case ev.MatchString("-", "_"):
					cameraZ = math.Min(20, cameraZ+0.5)
					cam.SetTransform(transform.FromTranslation(math3d.V3(0, 0, cameraZ)))
				case ev.MatchString("t"):
					view.TextureEnabled = !view.TextureEnabled
				case ev.MatchString("x"):
					if view.Mode == modeWireframe {
						view.Mode = modeTextured
					} else {
						view.Mode = modeWireframe
					}
				case ev.MatchString("l"):
					view.LightMode = true
					view.PendingLight = view.LightDir
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					view.ShowHUD = !view.ShowHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}

			case uv.MouseClickEvent:
				if view.LightMode {
					view.LightDir = view.PendingLight
					view.LightMode = false
				} else {
					mouseDown = true
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseReleaseEvent:
				if !view.LightMode {
					mouseDown = false
				}

			case uv.MouseMotionEvent:
				if view.LightMode {
					view.PendingLight = view.screenToLightDir(ev.X, ev.Y, cols, rows)
				} else if mouseDown {
					dx, dy := ev.X-lastMouseX, ev.Y-lastMouseY
					orbit.applyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cameraZ = math.Max(1, cameraZ-0.5)
				case uv.MouseWheelDown:
					cameraZ = math.Min(20, cameraZ+0.5)
				}
				cam.SetTransform(transform.FromTranslation(math3d.V3(0, 0, cameraZ)))
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		orbit.applyImpulse(inputTorque.pitch*dt, inputTorque.yaw*dt, inputTorque.roll*dt)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9
		orbit.update()

		modelTransform.Rotation = orbit.rotation()
		model := modelTransform.Local()
		mvp := cam.ViewProjection().Mul(model)

		r.Clear(background)

		lightDir := view.LightDir
		if view.LightMode {
			lightDir = view.PendingLight
		}

		switch view.Mode {
		case modeWireframe:
			r.DrawMeshWireframe(m, mvp, present.ColorGreen)
		case modeFlat:
			r.DrawMesh(m, mvp, model, nil, lightDir)
		default:
			if view.TextureEnabled {
				r.DrawMesh(m, mvp, model, tex, lightDir)
			} else {
				r.DrawMesh(m, mvp, model, nil, lightDir)
			}
		}

		presenter.Render(r.FB)
		if err := presenter.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		h.updateFPS()
		h.render(cols, rows, view)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
