package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg-svg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"
	"github.com/spf13/cobra"

	"github.com/gogpu/molview"
	"github.com/gogpu/molview/model"
)

var errUnknownFormat = errors.New("unknown output format")

type renderOptions struct {
	output     string
	config     string
	scale      float64
	margin     float64
	background string
	highlight  []int
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render <molecule.yaml>",
		Short: "Render a molecule to PNG or SVG",
		Long: `Render draws the bonds of a YAML molecule document.

The output format follows the extension of --output (.png or .svg).
Bonds listed with --highlight, by zero-based index, get a highlight halo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "Output file (.png or .svg)")
	f.StringVarP(&o.config, "config", "c", "", "Style configuration file")
	f.Float64Var(&o.scale, "scale", 40, "Pixels per model unit")
	f.Float64Var(&o.margin, "margin", 20, "Margin around the molecule in pixels")
	f.StringVar(&o.background, "background", "white", "Background color")
	f.IntSliceVar(&o.highlight, "highlight", nil, "Indexes of bonds to highlight")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// outputBackend maps an output path to the recording backend that writes it.
func outputBackend(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "raster", nil
	case ".svg":
		return "svg", nil
	default:
		return "", fmt.Errorf("%w %q", errUnknownFormat, ext)
	}
}

// canvasSize returns the image size holding [lo, hi] at scale with margin.
func canvasSize(lo, hi gg.Point, scale, margin float64) (int, int) {
	// Round before Ceil so float noise in the span does not add a pixel.
	w := int(math.Ceil(round3((hi.X-lo.X)*scale + 2*margin)))
	h := int(math.Ceil(round3((hi.Y-lo.Y)*scale + 2*margin)))
	return max(w, 1), max(h, 1)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func runRender(input string, o renderOptions) error {
	backend, err := outputBackend(o.output)
	if err != nil {
		return err
	}
	if o.scale <= 0 {
		return fmt.Errorf("invalid scale %v", o.scale)
	}

	cfg := molview.DefaultConfig()
	if o.config != "" {
		if cfg, err = molview.LoadConfig(o.config); err != nil {
			return err
		}
	}
	bg, err := molview.ParseColor(o.background)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	mol, err := model.ReadMolecule(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	lo, hi := mol.Bounds()
	width, height := canvasSize(lo, hi, o.scale, o.margin)
	view := molview.FitTransform(lo, hi, width, height, o.margin, o.scale)

	scene := molview.NewScene()
	scene.Background = bg.RGBA()
	br, err := molview.NewBondRenderer(scene, molview.WithConfig(cfg), molview.WithTransform(view))
	if err != nil {
		return err
	}

	// Halos go first so bonds are drawn over them.
	for _, i := range o.highlight {
		if i < 0 || i >= len(mol.Bonds) {
			return fmt.Errorf("highlight: bond %d out of range [0, %d)", i, len(mol.Bonds))
		}
		if _, err := br.HighlightOn(mol.Bonds[i], nil); err != nil {
			return fmt.Errorf("highlight bond %d: %w", i, err)
		}
	}
	if _, err := br.RenderMolecule(mol, nil); err != nil {
		return err
	}

	out, err := scene.Export(backend, width, height)
	if err != nil {
		return err
	}
	fb, ok := out.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("%s backend cannot write files", backend)
	}
	if err := fb.SaveToFile(o.output); err != nil {
		return err
	}

	molview.Logger().Info("molview: rendered",
		"molecule", mol.Name, "atoms", len(mol.Atoms), "bonds", len(mol.Bonds),
		"elements", scene.Len(), "size", fmt.Sprintf("%dx%d", width, height), "output", o.output)
	return nil
}
