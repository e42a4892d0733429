package app

import (
	"image"
	"log/slog"

	"cropstudio/assets"
	"cropstudio/config"
	"cropstudio/domain/export"
	"cropstudio/imageio"
	"cropstudio/ui/model"
	"cropstudio/ui/presenter"
	"cropstudio/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Doc     *model.DocumentModel
	Browser *model.BrowserModel
	Counter *export.Counter
	Store   *imageio.Provider

	RootView *view.RootView
	Settings *view.SettingsDialog
	Help     *view.HelpDialog

	Editor *presenter.EditorPresenter
	Export *presenter.ExportPresenter
	Nav    *presenter.NavPresenter
}

// BuildContainer constructs all components. Side-effects limited to asset
// loading; widgets are built later by App.Start on the Tk thread.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Doc = &model.DocumentModel{}
	c.Browser = &model.BrowserModel{}
	c.Counter = export.NewCounter()
	c.Store = imageio.NewProvider(logger)
	c.Store.JPEGQuality = cfg.JPEGQuality

	var placeholder image.Image
	if img, err := assets.PlaceholderImage(); err == nil {
		placeholder = img
	} else {
		logger.Warn("placeholder art unavailable", "error", err)
	}

	c.RootView = view.NewRootView(c.Doc, c.Browser, c.Store, c.Counter, placeholder, logger)
	c.Settings = view.NewSettingsDialog(cfg, cfgPath, logger, func() {
		c.Store.JPEGQuality = cfg.JPEGQuality
	})
	c.Help = &view.HelpDialog{}

	c.Editor = presenter.NewEditorPresenter(c.Doc, c.RootView)
	c.Export = presenter.NewExportPresenter(c.Doc, c.Counter, c.Store, c.RootView, logger,
		cfg.Policy, c.RootView.CanvasSize)
	c.Nav = presenter.NewNavPresenter(c.Doc, c.Browser, c.Store, c.RootView, logger,
		c.RootView.CanvasSize, imageio.ListFolder,
		func(path string) {
			cfg.LastFile = path
			if err := cfg.Save(cfgPath); err != nil {
				logger.Warn("session save failed", "error", err)
			}
		})
	return c
}
