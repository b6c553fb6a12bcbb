// Package app wires the window, shader program, camera and scene together
// and runs the render loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/app/shaders"
	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/camera"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/scene"
	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/engine/window"
	"github.com/Faultbox/deskscene/internal/logger"
)

// App is the running application instance.
type App struct {
	config  *config.Config
	running bool

	window  *window.Window
	program *shader.Program
	camera  *camera.Camera
	scene   *scene.Scene
}

// New creates the window, compiles the scene shader and prepares the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing application",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{config: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Desk Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.15, 1)

	a.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene shader: %w", err)
	}
	a.program.Use()

	a.camera = camera.New()
	a.pushCamera()

	a.scene = scene.New(
		a.program,
		texture.NewRegistry(texture.NewGLUploader()),
		mesh.NewGLDrawer(),
		scene.WithTextureDir(cfg.Assets.TextureDir),
	)
	if err := a.scene.Prepare(); err != nil {
		a.program.Delete()
		a.window.Close()
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	logger.Info("application initialized")
	return a, nil
}

// Run starts the render loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		a.pollEvents()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.scene.Render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the scene, the shader program and the window.
func (a *App) Close() {
	logger.Info("closing application")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.program != nil {
		a.program.Delete()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// pollEvents drains the SDL event queue, handling quit and resize.
func (a *App) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			a.running = false
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				a.running = false
			}
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				a.resize()
			}
		}
	}
}

// resize updates the viewport and projection after a window size change.
func (a *App) resize() {
	width, height := a.window.GetSize()
	if height == 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	a.pushCamera()
	logger.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
}

// pushCamera uploads the view and projection matrices.
func (a *App) pushCamera() {
	width, height := a.window.GetSize()
	aspect := float32(width) / float32(height)
	a.program.SetMat4("view", a.camera.ViewMatrix())
	a.program.SetMat4("projection", a.camera.ProjectionMatrix(aspect))
}
