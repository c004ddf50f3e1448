package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggsvg"
	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/pixmap"
	"github.com/gogpu/ggsvg/scenefile"
	"github.com/gogpu/ggsvg/tree"
)

// renderOpts holds the resolved settings of one render.
type renderOpts struct {
	scene  string // input scene file
	output string // output PNG path
	Config
}

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		watch  bool
		flags  Config
	)
	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Render a scene file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("width") {
				cfg.Width = flags.Width
			}
			if fl.Changed("height") {
				cfg.Height = flags.Height
			}
			if fl.Changed("scale") {
				cfg.Scale = flags.Scale
			}
			if fl.Changed("background") {
				cfg.Background = flags.Background
			}
			if fl.Changed("max-depth") {
				cfg.MaxDepth = flags.MaxDepth
			}

			opts := renderOpts{
				scene:  args[0],
				output: outputPath(args[0], output, cfg.OutputDir),
				Config: cfg,
			}
			if err := c.render(opts); err != nil {
				if !watch {
					return err
				}
				c.Logger.Error("render failed", "err", err)
			}
			if watch {
				return c.watch(cmd.Context(), opts)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output PNG (default: scene name with .png)")
	f.IntVar(&flags.Width, "width", 0, "output width in pixels")
	f.IntVar(&flags.Height, "height", 0, "output height in pixels")
	f.Float64Var(&flags.Scale, "scale", 1, "scale factor when width and height are unset")
	f.StringVar(&flags.Background, "background", "transparent", "background color")
	f.IntVar(&flags.MaxDepth, "max-depth", ggsvg.DefaultMaxDepth, "maximum group nesting depth")
	f.BoolVar(&watch, "watch", false, "re-render whenever the scene file changes")
	return cmd
}

// outputPath derives the PNG path. An explicit output wins; otherwise the
// scene's base name is used, inside dir when set.
func outputPath(scene, output, dir string) string {
	if output != "" {
		return output
	}
	name := strings.TrimSuffix(filepath.Base(scene), filepath.Ext(scene)) + ".png"
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(filepath.Dir(scene), name)
}

// pixelSize returns the output size and the transform fitting the scene
// into it. A single explicit dimension keeps the aspect ratio.
func pixelSize(size geom.Size, cfg Config) (int, int, geom.Matrix, error) {
	sx, sy := cfg.Scale, cfg.Scale
	switch {
	case cfg.Width > 0 && cfg.Height > 0:
		sx = float64(cfg.Width) / size.Width
		sy = float64(cfg.Height) / size.Height
	case cfg.Width > 0:
		sx = float64(cfg.Width) / size.Width
		sy = sx
	case cfg.Height > 0:
		sy = float64(cfg.Height) / size.Height
		sx = sy
	}
	if !(sx > 0) || !(sy > 0) {
		return 0, 0, geom.Matrix{}, fmt.Errorf("invalid scale %gx%g", sx, sy)
	}
	w := int(math.Ceil(size.Width*sx - 1e-9))
	h := int(math.Ceil(size.Height*sy - 1e-9))
	return w, h, geom.Scale(sx, sy), nil
}

// render runs one decode, rasterize and encode cycle.
func (c *CLI) render(opts renderOpts) error {
	start := time.Now()

	t, err := scenefile.Load(opts.scene)
	if err != nil {
		return err
	}
	pm, err := rasterize(t, opts.Config)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := pm.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	c.Logger.Info("rendered", "output", opts.output, "size", fmt.Sprintf("%dx%d", pm.Width(), pm.Height()),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func rasterize(t *tree.Tree, cfg Config) (*pixmap.Pixmap, error) {
	w, h, ts, err := pixelSize(t.Size, cfg)
	if err != nil {
		return nil, err
	}
	pm, err := pixmap.New(w, h)
	if err != nil {
		return nil, err
	}
	if cfg.Background != "" {
		bg, err := scenefile.ParseColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		pm.Fill(bg)
	}
	ggsvg.Render(t, ts, pm, ggsvg.WithMaxDepth(cfg.MaxDepth))
	return pm, nil
}
