package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Binkle/DefaultApplication/internal/config"
	apperrors "github.com/Binkle/DefaultApplication/internal/errors"
	"github.com/Binkle/DefaultApplication/internal/gateway"
	"github.com/Binkle/DefaultApplication/internal/gateway/launchsvc"
	"github.com/Binkle/DefaultApplication/internal/output"
	"github.com/Binkle/DefaultApplication/internal/picker"
	"github.com/Binkle/DefaultApplication/internal/registry"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

// app bundles everything a command needs to run: the resolved
// configuration, the assembled workflow controller, and the terminal
// rendering context.
type app struct {
	cfg     *config.Configuration
	ctl     *workflow.Controller
	store   *registry.Store
	caps    output.TerminalCapabilities
	symbols output.Symbols
}

// newApp loads configuration, applies flag overrides, and wires the
// controller. chooser overrides the interactive picker; pass nil to get
// the platform default.
func newApp(cmd *cobra.Command, chooser picker.Picker) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, apperrors.NewConfigError(err.Error())
	}

	if cmd.Flags().Changed("apps-dir") {
		cfg.ApplicationsDir, _ = cmd.Flags().GetString("apps-dir")
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
	}
	if cmd.Flags().Changed("scripted") {
		cfg.Scripted, _ = cmd.Flags().GetBool("scripted")
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, apperrors.NewConfigError(err.Error())
	}

	gw, err := newGateway(cfg, store)
	if err != nil {
		return nil, apperrors.NewConfigError(err.Error())
	}

	if chooser == nil {
		chooser = defaultPicker(cfg)
	}

	caps := output.DetectTerminalCapabilities()
	if cfg.NoColor {
		caps.SupportsColor = false
	}

	return &app{
		cfg:     cfg,
		ctl:     workflow.New(gw, chooser, workflow.WithApplicationsDir(cfg.ApplicationsDir)),
		store:   store,
		caps:    caps,
		symbols: output.SelectSymbols(caps),
	}, nil
}

func newStore(cfg *config.Configuration) (*registry.Store, error) {
	path := cfg.ExtensionsFile
	if path == "" {
		var err error
		path, err = registry.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return registry.NewStore(path), nil
}

// newGateway selects the LaunchServices gateway on macOS and the scripted
// gateway everywhere else, unless scripted mode is forced.
func newGateway(cfg *config.Configuration, store *registry.Store) (gateway.Gateway, error) {
	if cfg.Scripted || runtime.GOOS != "darwin" {
		return gateway.NewScripted(), nil
	}
	return launchsvc.New(store)
}

func defaultPicker(cfg *config.Configuration) picker.Picker {
	if cfg.Scripted || runtime.GOOS != "darwin" {
		return picker.Cancelled{}
	}
	return picker.NewOSAScript()
}

// spinner returns a loading spinner session for this terminal.
func (a *app) spinner() *output.Session {
	return output.NewSession(a.caps)
}
