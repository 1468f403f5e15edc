package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/willbeason/escape-bitmap/pkg/bitmap"
	"github.com/willbeason/escape-bitmap/pkg/escape"
	"github.com/willbeason/escape-bitmap/pkg/render"
	"github.com/willbeason/escape-bitmap/pkg/transforms"
)

const (
	// OutputPath is where the image is written unless --out says otherwise.
	OutputPath = "MandelbrotSet.bmp"

	outFlag         = "out"
	widthFlag       = "width"
	heightFlag      = "height"
	boxFlag         = "box"
	insideFlag      = "inside"
	outsideFlag     = "outside"
	recurrenceFlag  = "recurrence"
	juliaCFlag      = "julia-c"
	printHeaderFlag = "print-header"
	verboseFlag     = "verbose"
)

type options struct {
	out         string
	width       int
	height      int
	box         boxValue
	inside      colorValue
	outside     colorValue
	recurrence  string
	juliaC      complexValue
	printHeader bool
	verbose     bool
}

func mainCmd() *cobra.Command {
	defaults := render.DefaultConfig()
	opts := &options{
		box:     boxValue(defaults.Box),
		inside:  colorValue(defaults.Inside),
		outside: colorValue(defaults.Outside),
		juliaC:  complexValue(complex(-0.8, 0.156)),
	}

	cmd := &cobra.Command{
		Use:   "escape [iterations]",
		Short: "Render an escape-time fractal to a 32-bit bitmap",
		Long: fmt.Sprintf(`Render an escape-time fractal to a 32-bit bitmap.

iterations is the per-pixel iteration budget, at most %d (default %d).
A point is outside the set once its orbit leaves the rendered box.`,
			escape.MaxIterations, defaults.Iterations),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, outFlag, "o", OutputPath, "bitmap file to write")
	flags.IntVar(&opts.width, widthFlag, defaults.Width, "image width in pixels")
	flags.IntVar(&opts.height, heightFlag, defaults.Height, "image height in pixels")
	flags.Var(&opts.box, boxFlag, "region of the plane as xlower,xupper,ylower,yupper")
	flags.Var(&opts.inside, insideFlag, "color of points in the set")
	flags.Var(&opts.outside, outsideFlag, "color of points outside the set")
	flags.StringVar(&opts.recurrence, recurrenceFlag, "mandelbrot", fmt.Sprintf("recurrence, one of %v", transforms.Names))
	flags.Var(&opts.juliaC, juliaCFlag, "parameter of the julia recurrence as re,im")
	flags.BoolVar(&opts.printHeader, printHeaderFlag, false, "print the bitmap header fields")
	flags.BoolVarP(&opts.verbose, verboseFlag, "v", false, "log progress")

	cmd.AddCommand(inspectCmd(), previewCmd())

	return cmd
}

func parseIterations(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("iterations must be an integer, got %q", args[0])
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d is not positive", escape.ErrIterations, n)
	}
	if err := escape.ValidateIterations(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (opts *options) config(args []string) (render.Config, error) {
	cfg := render.DefaultConfig()

	iterations, err := parseIterations(args, cfg.Iterations)
	if err != nil {
		return render.Config{}, err
	}

	recurrence, err := transforms.ByName(opts.recurrence, complex128(opts.juliaC))
	if err != nil {
		return render.Config{}, err
	}

	cfg.Box = escape.Box(opts.box)
	cfg.Width = opts.width
	cfg.Height = opts.height
	cfg.Iterations = iterations
	cfg.Inside = bitmap.Color(opts.inside)
	cfg.Outside = bitmap.Color(opts.outside)
	cfg.Recurrence = recurrence

	return cfg, cfg.Validate()
}

func runCmd(cmd *cobra.Command, args []string, opts *options) error {
	// Nothing is written before the configuration is known to be valid.
	cfg, err := opts.config(args)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if opts.verbose {
		log.Printf("rendering %dx%d of %v with %d iterations", cfg.Width, cfg.Height, cfg.Box, cfg.Iterations)
	}

	if opts.printHeader {
		head, err := bitmap.NewHeader(cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		err = head.Dump(cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	grid, err := render.Render(cfg)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("%d of %d pixels inside", grid.Inside, len(grid.Pixels))
	}

	err = grid.WriteFile(opts.out)
	if err != nil {
		return fmt.Errorf("writing %s: %w", opts.out, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Complete :)")

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
