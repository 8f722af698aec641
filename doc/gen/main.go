// Command gen renders each widget in a few states, captures the framebuffer,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/cozyui"
	"github.com/go-theft-auto/cozyui/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                    // filename without extension
	width  int                       // viewport width
	height int                       // viewport height
	draw   func(ctx *cozyui.Context) // widget drawing function
	mouse  *cozyui.Vec2              // pointer position, for hover states
	frames int                       // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection changes; the hidden window stays at 800x600, larger
	// than every screenshot, so the framebuffer and scissor boxes agree.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so no state leaks between captures.
	style := cozyui.CozyStyle()
	ui := cozyui.New(renderer, cozyui.WithStyle(style))
	input := cozyui.NewInputState()
	if s.mouse != nil {
		input.SetMousePos(s.mouse.X, s.mouse.Y)
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	r, g, b, _ := cozyui.UnpackRGBA(style.PanelColor)
	for range frames {
		input.Reset()
		input.Tick(1.0 / 60.0)

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := cozyui.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows run bottom-up.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns every screenshot to generate.
func buildScreenshots() []screenshot {
	var (
		low      = float32(0.2)
		half     = float32(0.5)
		high     = float32(0.85)
		on       = true
		off      = false
		mix      = float32(0.65)
		sections = true
	)

	// Hover animations need a few frames to settle.
	const settle = 12

	return []screenshot{
		{
			name: "knob_sizes", width: 440, height: 150,
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.HStack(cozyui.Gap(8))(func() {
					ctx.Knob("k50", 50, cozyui.Bind(&low))
					ctx.Knob("k75", 75, cozyui.Bind(&half))
					ctx.Knob("k100", 100, cozyui.Bind(&high))
					ctx.Knob("k125", 125, cozyui.Bind(&half))
				})
			},
		},
		{
			name: "knob_label", width: 160, height: 130,
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(30, 8)
				ctx.Knob("labelled", 75, cozyui.Bind(&half), cozyui.WithLabel("I GOT LABELS"))
			},
		},
		{
			name: "knob_modulated", width: 130, height: 130,
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.Knob("mod", 100, cozyui.Bind(&low), cozyui.WithModulated(0.75))
			},
		},
		{
			name: "knob_hover", width: 260, height: 130, frames: settle,
			mouse: &cozyui.Vec2{X: 55, Y: 55},
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.Knob("hover", 90, cozyui.Bind(&high),
					cozyui.WithDescription("cutoff\ndouble-click to reset"))
			},
		},
		{
			name: "toggles", width: 260, height: 60,
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.VStack(cozyui.Gap(6))(func() {
					ctx.HStack(cozyui.Gap(8))(func() {
						ctx.Toggle("t-on", "button 1", cozyui.Bind(&on))
						ctx.Toggle("t-off", "button 2", cozyui.Bind(&off))
					})
					ctx.Toggle("t-small", "small toggle", cozyui.Bind(&on), cozyui.WithSmall())
				})
			},
		},
		{
			name: "slider", width: 260, height: 90, frames: settle,
			mouse: &cozyui.Vec2{X: 70, Y: 15},
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.HStack(cozyui.Gap(8))(func() {
					ctx.Slider("mix", cozyui.Bind(&mix),
						cozyui.WithDescription("this is a slider.\ndo newlines work?"))
					ctx.Text(fmt.Sprintf("%.2f", mix))
				})
			},
		},
		{
			name: "graph", width: 320, height: 140,
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.VStack()(func() {
					if ctx.CollapsingHeader("Frame times", cozyui.DefaultOpen()) {
						ctx.Graph("frames", []cozyui.GraphData{
							{Label: "ms", Values: sampleFrameTimes(), Color: cozyui.ColorWhite},
						}, 90, cozyui.WithWidth(300), cozyui.WithGraphGridLines(4))
					}
				})
			},
		},
		{
			name: "panel", width: 300, height: 200,
			draw: func(ctx *cozyui.Context) {
				ctx.SetCursorPos(8, 8)
				ctx.Panel("Filter", cozyui.Padding(10), cozyui.Gap(6))(func() {
					ctx.HStack(cozyui.Gap(8))(func() {
						ctx.Knob("cutoff", 60, cozyui.Bind(&high), cozyui.WithLabel("Cutoff"))
						ctx.Knob("res", 60, cozyui.Bind(&low), cozyui.WithLabel("Res"))
					})
					if ctx.CollapsingHeader("Options", cozyui.DefaultOpen()) {
						ctx.Toggle("keytrack", "keytrack", cozyui.Bind(&sections), cozyui.WithSmall())
					}
				})
			},
		},
	}
}

// sampleFrameTimes is a plausible frame time trace in milliseconds.
func sampleFrameTimes() []float32 {
	out := make([]float32, 60)
	for i := range out {
		out[i] = 16.6 + float32(i%7)*0.4
		if i%17 == 0 {
			out[i] += 6
		}
	}
	return out
}
