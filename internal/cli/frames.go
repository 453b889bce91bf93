package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/marquee/internal/carousel"
)

// maxFrameSeconds bounds a frames run in case the spring never rests.
const maxFrameSeconds = 30

func newFramesCmd(opts *options) *cobra.Command {
	var from, target int

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print the active index animation frame by frame",
		Long: `Print the active index and the transform of the target poster for every
frame of the spring animation from --from to --target, until it settles.
Indices outside the poster range are clamped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := loadPosters(opts.cfg)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("animating", "posters", len(items), "from", from, "target", target)

			frames := printFrames(cmd.OutOrStdout(), springConfig(opts.cfg), len(items), from, target)
			logger.Debug("settled", "frames", frames)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "index the carousel rests on before moving")
	cmd.Flags().IntVar(&target, "target", 1, "index the carousel moves to")

	return cmd
}

// printFrames animates a carousel of count items from one index to another
// and writes one line per frame. It returns the number of frames printed.
func printFrames(w io.Writer, spring carousel.SpringConfig, count, from, target int) int {
	c := carousel.New(count, spring)
	c.SetTarget(from)
	c.Driver().Jump(float64(c.Index()))
	c.SetTarget(target)

	fmt.Fprintf(w, "%5s  %9s  %9s  %7s  %5s\n", "frame", "active", "offset", "scale", "depth")
	printFrame(w, c, 0)

	limit := c.Driver().Config().FPS * maxFrameSeconds
	frame := 0
	for !c.Settled() && frame < limit {
		c.Step()
		frame++
		printFrame(w, c, frame)
	}
	return frame
}

func printFrame(w io.Writer, c *carousel.Carousel, frame int) {
	t := c.Transform(c.Index())
	fmt.Fprintf(w, "%5d  %9.4f  %9.3f  %7.4f  %5d\n", frame, c.Active(), t.Offset, t.Scale, t.Depth)
}
