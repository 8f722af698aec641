// Example shows the parameter widgets in a plugin-sized window: four knobs of
// different sizes bound to two values, toggles, a slider, a frame time graph
// and an About panel.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Keys: F1 toggles the About panel, Esc quits. Run with -verbose to log
// gestures.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cozyui"
	"github.com/go-theft-auto/cozyui/backend/opengl"
)

const windowTitle = "cozyui example"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type config struct {
	width, height int
	vsync         bool
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 520, "window width")
	flag.IntVar(&cfg.height, "height", 420, "window height")
	flag.BoolVar(&cfg.vsync, "vsync", true, "wait for vertical sync")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log gestures and widget events")
	flag.Parse()

	if cfg.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		cozyui.SetVerbose(true)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// params stands in for a plugin's parameter set.
type params struct {
	a, b           float32
	mod            float32
	bypass, stereo bool
	mix            float32
}

// automation returns gesture callbacks that log what a host would record.
func automation(name string) []cozyui.Option {
	return []cozyui.Option{
		cozyui.WithBeginSet(func() { slog.Debug("begin set parameter", "param", name) }),
		cozyui.WithEndSet(func() { slog.Debug("end set parameter", "param", name) }),
	}
}

func run(cfg config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.width, cfg.height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.width, cfg.height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := cozyui.New(renderer, cozyui.WithStyle(cozyui.CozyStyle()))
	history := cozyui.NewFrameHistory()
	bgR, bgG, bgB, _ := cozyui.UnpackRGBA(ui.Style().PanelColor)

	p := params{a: 0.5, b: 0.5, mod: 0.8, mix: 0.5}
	showAbout := false
	last := glfw.GetTime()
	var frameTime float32
	var fbW, fbH int

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now
		history.OnNewFrame(now, frameTime)

		inputAdapter.NewFrame(dt)
		glfw.PollEvents()
		input := inputAdapter.Update()

		if input.KeyPressed(cozyui.KeyEscape) {
			window.SetShouldClose(true)
		}
		if input.KeyPressed(cozyui.KeyF1) {
			showAbout = !showAbout
		}

		w, h := window.GetFramebufferSize()
		if w != fbW || h != fbH {
			fbW, fbH = w, h
			ui.Resize(w, h)
		}
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(bgR)/255, float32(bgG)/255, float32(bgB)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, cozyui.Vec2{X: float32(w), Y: float32(h)}, dt)
		ctx.SetCursorPos(8, 8)
		ctx.VStack(cozyui.Gap(cozyui.SpaceMD))(func() {
			topBar(ctx, &showAbout, history)
			parameters(ctx, &p)
			frameGraph(ctx, history)
		})
		if showAbout {
			about(ctx, &showAbout)
		}

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		inputAdapter.ApplyCursor(ctx.CursorHidden)

		frameTime = float32(glfw.GetTime() - now)
		window.SwapBuffers()
	}

	return nil
}

func topBar(ctx *cozyui.Context, showAbout *bool, history *cozyui.FrameHistory) {
	ctx.HStack(cozyui.Gap(cozyui.SpaceLG))(func() {
		ctx.Toggle("about", "About", cozyui.Bind(showAbout), cozyui.WithSmall())
		ctx.Text(fmt.Sprintf("fps: %.1f", history.FPS()))
		ctx.Text(fmt.Sprintf("mean frame time: %.2fms", history.MeanFrameTime()*1000))
	})
	ctx.Separator()
}

func parameters(ctx *cozyui.Context, p *params) {
	ctx.HStack(cozyui.Gap(cozyui.SpaceMD))(func() {
		ctx.Knob("a-small", 50, cozyui.Bind(&p.a), append(automation("a"), cozyui.WithDefault(0.5))...)
		ctx.Knob("b-labelled", 75, cozyui.Bind(&p.b), append(automation("b"),
			cozyui.WithDefault(0.5),
			cozyui.WithLabel("I GOT LABELS"),
			cozyui.WithDescription("drag to turn\nshift for fine control\ndouble-click to reset"),
		)...)
		ctx.Knob("a-modulated", 100, cozyui.Bind(&p.a), append(automation("a"),
			cozyui.WithDefault(0.5),
			cozyui.WithModulated(p.mod),
		)...)
		ctx.Knob("b-large", 125, cozyui.Bind(&p.b), append(automation("b"), cozyui.WithDefault(0.5))...)
	})

	ctx.HStack(cozyui.Gap(cozyui.SpaceMD))(func() {
		ctx.Toggle("bypass", "button 1", cozyui.Bind(&p.bypass), automation("bypass")...)
		ctx.Toggle("stereo", "button 2", cozyui.Bind(&p.stereo), append(automation("stereo"), cozyui.WithSmall())...)
	})

	ctx.HStack(cozyui.Gap(cozyui.SpaceMD))(func() {
		ctx.Slider("mix", cozyui.Bind(&p.mix), append(automation("mix"),
			cozyui.WithDescription("this is a slider.\ndo newlines work?"),
			cozyui.WithDefault(0.5),
		)...)
		ctx.Text(fmt.Sprintf("%.2f", p.mix))
	})
}

func frameGraph(ctx *cozyui.Context, history *cozyui.FrameHistory) {
	if !ctx.CollapsingHeader("Frame times") {
		return
	}
	ms := make([]float32, history.Len())
	for i, v := range history.Values() {
		ms[i] = v * 1000
	}
	ctx.Graph("frame-times", []cozyui.GraphData{
		{Label: "ms", Values: ms, Color: cozyui.ColorWhite},
	}, 80, cozyui.WithGraphGridLines(4))
}

func about(ctx *cozyui.Context, open *bool) {
	ctx.CenteredPanel("About", cozyui.Padding(cozyui.SpaceLG), cozyui.Gap(6))(func() {
		ctx.Text("cozyui")
		ctx.TextDisabled("vector knobs for plugin interfaces")
		ctx.Spacing(4)
		ctx.BulletText("F1 toggles this panel")
		ctx.BulletText("Esc quits")
		if ctx.Button("Close") {
			*open = false
		}
	})
}
