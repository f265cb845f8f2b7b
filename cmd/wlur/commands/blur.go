package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wlur/wlur"
	"github.com/wlur/wlur/cmd/wlur/internal/config"
	"github.com/wlur/wlur/imageio"
)

var (
	blurRadius  float64
	blurOutput  string
	blurFormat  string
	blurQuality int
	blurWorkers int
)

var blurCmd = &cobra.Command{
	Use:   "blur <input>",
	Short: "Blur an image file",
	Long: `Blur an image file with a Gaussian kernel of the given radius.

The output format follows the --format flag, then the output file extension,
then the configured default (png). Without -o the result is written as
blurred_image.<ext> in the configured output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlur,
}

func init() {
	f := blurCmd.Flags()
	f.Float64VarP(&blurRadius, "radius", "r", 0, fmt.Sprintf(
		"blur radius in pixels (0-%d matches the original slider, at most %d)",
		config.SliderMaxRadius, wlur.MaxRadius))
	f.StringVarP(&blurOutput, "output", "o", "", "output file")
	f.StringVar(&blurFormat, "format", "", "output format (png, jpeg, bmp, tiff)")
	f.IntVar(&blurQuality, "quality", imageio.DefaultJPEGQuality, "JPEG quality (1-100, 0 = default)")
	f.IntVarP(&blurWorkers, "workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	rootCmd.AddCommand(blurCmd)
}

// blurSettings is the merged result of config file and flags.
type blurSettings struct {
	radius    float64
	workers   int
	quality   int
	cacheSize int
	output    string
	format    imageio.Format
}

func resolveBlurSettings(cmd *cobra.Command) (*blurSettings, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}

	s := &blurSettings{
		radius:    cfg.Radius,
		workers:   cfg.Workers,
		quality:   cfg.JPEGQuality,
		cacheSize: cfg.KernelCacheSize,
	}
	flags := cmd.Flags()
	if flags.Changed("radius") {
		s.radius = blurRadius
	}
	if flags.Changed("workers") {
		s.workers = blurWorkers
	}
	if flags.Changed("quality") {
		s.quality = blurQuality
	}
	switch {
	case flags.Changed("format"):
		if s.format, err = imageio.ParseFormat(blurFormat); err != nil {
			return nil, err
		}
	case blurOutput != "" && filepath.Ext(blurOutput) != "":
		if s.format, err = imageio.FormatFromPath(blurOutput); err != nil {
			return nil, err
		}
	default:
		name := cfg.Format
		if name == "" {
			name = string(imageio.FormatPNG)
		}
		if s.format, err = imageio.ParseFormat(name); err != nil {
			return nil, err
		}
	}
	if !s.format.CanEncode() {
		return nil, fmt.Errorf("%w: cannot write %s", imageio.ErrUnsupportedFormat, s.format)
	}
	if s.format == imageio.FormatJPEG && (s.quality < 0 || s.quality > 100) {
		return nil, fmt.Errorf("quality must be 0 (default) or 1..100, got %d", s.quality)
	}

	s.output = blurOutput
	if s.output == "" {
		base := strings.TrimSuffix(imageio.DefaultFileName, filepath.Ext(imageio.DefaultFileName))
		s.output = filepath.Join(cfg.OutputDir, base+s.format.Ext())
	}
	return s, nil
}

func runBlur(cmd *cobra.Command, args []string) error {
	s, err := resolveBlurSettings(cmd)
	if err != nil {
		return err
	}

	src := &imageio.FileSource{Path: args[0]}
	buf, err := src.Read()
	if err != nil {
		return err
	}

	opts := []wlur.Option{wlur.WithWorkers(s.workers)}
	if s.cacheSize > 0 {
		opts = append(opts, wlur.WithKernelCacheSize(s.cacheSize))
	}
	b := wlur.NewBlurrer(opts...)
	defer b.Close()

	out, err := b.Apply(buf, s.radius)
	if err != nil {
		return err
	}

	sink := &imageio.FileSink{Path: s.output, Format: s.format, Quality: s.quality}
	if err := sink.Write(out); err != nil {
		return err
	}

	dims := fmt.Sprintf("%dx%d", out.Width, out.Height)
	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "blurred %s %s image, %d pixels (radius %v) -> %s\n",
		dims, src.Format, out.Width*out.Height, s.radius, s.output)
	return nil
}
