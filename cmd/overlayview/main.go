// Package main is a viewer for the physics debug overlay: a canned 2D
// physics snapshot rendered as colored lines, with the overlay policy
// togglable from the keyboard.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/physview/internal/config"
	"github.com/Faultbox/physview/internal/gizmo"
	"github.com/Faultbox/physview/internal/logger"
	"github.com/Faultbox/physview/internal/window"
	"github.com/Faultbox/physview/pkg/overlay"
	"github.com/Faultbox/physview/pkg/overlay/attach"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.DefaultConfig(cfg.Logging.Level, cfg.Logging.LogFile))
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	opts, err := cfg.Overlay.Options()
	if err != nil {
		return fmt.Errorf("overlay options: %w", err)
	}
	if cfg.Overlay.AxesLength <= 0 {
		// The viewer is 2D: axes need the pixel-scale default.
		opts.Style.RigidBodyAxesLength = overlay.DefaultStyle2D().RigidBodyAxesLength
	}

	win, err := window.New(window.Config{
		Title:  "physview overlay",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}

	lines, err := gizmo.NewRenderer()
	if err != nil {
		return err
	}
	defer lines.Close()

	scene := buildScene()

	// Two entities carry attachments: the first crate is opted in (so
	// it stays visible with global off) and the ball gets a sky-blue
	// override.
	store := attach.NewStore()
	store.MarkVisible(entityCrateA)
	store.SetColor(entityBall, overlay.FromRGB(0.3, 0.7, 1.0, 1.0))

	ctx := overlay.NewContext(opts)
	renderer := overlay.NewRenderer(ctx, cfg.Overlay.Scale,
		attach.UserDataResolver(scene.userData), store, store)
	renderer.Log = logger.Log

	logger.Info("overlay viewer ready",
		zap.Bool("enabled", ctx.Enabled),
		zap.Bool("global", ctx.Global),
		zap.Float32("scale", cfg.Overlay.Scale),
		zap.String("mode", ctx.Mode.String()),
	)

	batch := gizmo.NewBatch()
	for {
		if quit := handleEvents(ctx); quit {
			return nil
		}

		w, h := win.Size()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.10, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Display units are pixels, origin bottom-left.
		mvp := mgl32.Ortho2D(0, float32(w), 0, float32(h))

		renderer.RenderScene(scene, batch)
		lines.Flush(batch, mvp)

		win.SwapBuffers()
	}
}

// handleEvents applies keyboard toggles between frames. Mutating the
// context here is safe: the frame pass is not running.
func handleEvents(ctx *overlay.Context) (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				return true
			case sdl.K_e:
				ctx.Enabled = !ctx.Enabled
				logger.Info("overlay toggled", zap.Bool("enabled", ctx.Enabled))
			case sdl.K_g:
				ctx.Global = !ctx.Global
				logger.Info("global visibility toggled", zap.Bool("global", ctx.Global))
			default:
				if bit, ok := modeKey(ev.Keysym.Sym); ok {
					ctx.Mode ^= bit
					logger.Info("render mode changed", zap.String("mode", ctx.Mode.String()))
				}
			}
		}
	}
	return false
}

func modeKey(sym sdl.Keycode) (overlay.Mode, bool) {
	switch sym {
	case sdl.K_1:
		return overlay.ModeColliderShapes, true
	case sdl.K_2:
		return overlay.ModeRigidBodyAxes, true
	case sdl.K_3:
		return overlay.ModeImpulseJoints, true
	case sdl.K_4:
		return overlay.ModeMultibodyJoints, true
	case sdl.K_5:
		return overlay.ModeSolverContacts, true
	case sdl.K_6:
		return overlay.ModeContactPairs, true
	case sdl.K_7:
		return overlay.ModeColliderAABBs, true
	default:
		return 0, false
	}
}
