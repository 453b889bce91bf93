package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/app"
	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/stderr"
	"github.com/llehouerou/marquee/internal/ui/posterart"
)

// runTUI loads the posters and runs the carousel until the user quits.
func runTUI(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logPath, err := cfg.LogPath()
	if err != nil {
		return failed(errmsg.OpLogOpen, err)
	}
	logFile, err := openLogFile(logPath)
	if err != nil {
		return failed(errmsg.OpLogOpen, err)
	}
	defer logFile.Close()

	logger := newLogger(logFile, loggerFromContext(ctx).GetLevel())
	ctx = withLogger(ctx, logger)

	icons.Init(cfg.Icons)

	items, err := loadPosters(cfg)
	if err != nil {
		return err
	}

	art := newRenderer(ctx, cfg)
	logger.Info("starting",
		"version", version,
		"posters", len(items),
		"images", art.ProtocolName())

	m := app.New(app.Options{
		Items:  items,
		Spring: springConfig(cfg),
		Deck:   deckConfig(cfg),
		Art:    art,
		Logger: logger,
	})

	capture, err := stderr.Start(logger.WithPrefix("stderr"))
	if err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	_, err = p.Run()
	capture.Stop()

	// Free the terminal's copy of the last poster image.
	if seq := art.Clear(); seq != "" {
		fmt.Fprint(out, seq)
	}

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return failed(errmsg.OpInitialize, err)
	}
	logger.Info("stopped")
	return ctx.Err()
}

// newRenderer sets up poster images for the detected terminal protocol. The
// renderer is disabled, never nil, when images are off or unsupported.
func newRenderer(ctx context.Context, cfg *config.Config) *posterart.Renderer {
	logger := loggerFromContext(ctx).WithPrefix("posterart")

	if !cfg.ImagesEnabled() {
		return posterart.New(nil, nil, nil, logger)
	}
	proto := posterart.Detect(cfg.ImageProtocol)
	if proto == nil {
		logger.Info("no terminal image protocol, showing gradients")
		return posterart.New(nil, nil, nil, logger)
	}

	images := cfg.GetImagesConfig()

	// Relative image paths in a data file are relative to that file.
	baseDir := ""
	if cfg.DataFile != "" {
		baseDir = filepath.Dir(cfg.DataFile)
	}
	fetcher := posterart.NewFetcher(time.Duration(images.TimeoutSeconds)*time.Second, baseDir)

	cache, err := posterart.NewCache(images.CacheDir)
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpImageCache, err))
		cache = nil
	}

	logger.Debug("poster images enabled", "protocol", proto.Name(), "cache", cacheDir(cache))
	return posterart.New(proto, fetcher, cache, logger)
}

func cacheDir(c *posterart.Cache) string {
	if c == nil {
		return "off"
	}
	return c.Dir()
}
