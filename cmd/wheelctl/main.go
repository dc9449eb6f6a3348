// wheelctl drives a Logitech G29 from the command line: monitor input
// events, set the rev lights, rotation range, autocenter profile and
// force-feedback effects, or list what the host can see.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/seagrayinc/g29/internal/hid"
	"github.com/seagrayinc/g29/internal/log"
	"github.com/seagrayinc/g29/internal/rawusb"
	"github.com/seagrayinc/g29/pkg/g29"
)

type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" env:"WHEELCTL_LOG_LEVEL"`
	LogFile  string `help:"Also write logs to this file." env:"WHEELCTL_LOG_FILE"`

	Monitor    MonitorCmd    `cmd:"" help:"Print wheel input events until interrupted."`
	LED        LEDCmd        `cmd:"" name:"led" help:"Set the rev lights."`
	Range      RangeCmd      `cmd:"" help:"Set the wheel rotation range."`
	Autocenter AutocenterCmd `cmd:"" help:"Control the centering spring."`
	Force      ForceCmd      `cmd:"" help:"Control force-feedback effects."`
	List       ListCmd       `cmd:"" help:"List HID devices, marking the wheel."`
}

func main() {
	cfgDir, _ := os.UserConfigDir()
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wheelctl"),
		kong.Description("Logitech G29 racing wheel control"),
		kong.UsageOnError(),
		// flags and env override config file values
		kong.Configuration(kong.JSON, filepath.Join(cfgDir, "wheelctl", "config.json")),
		kong.Configuration(kongyaml.Loader, filepath.Join(cfgDir, "wheelctl", "config.yaml")),
		kong.Configuration(kongtoml.Loader, filepath.Join(cfgDir, "wheelctl", "config.toml")),
	)

	logger, closers, err := log.Setup(cli.LogLevel, cli.LogFile)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run())
}

func openWheel(ctx context.Context, logger *slog.Logger, rotationRange int, autocenter bool) (*g29.Wheel, error) {
	logger.Info("opening wheel")
	w, err := g29.Open(ctx, g29.Options{
		Autocenter: autocenter,
		Range:      rotationRange,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("wheel ready")
	return w, nil
}

type MonitorCmd struct {
	Range      int  `help:"Rotation range in degrees." default:"900"`
	Autocenter bool `help:"Enable the centering spring." default:"true" negatable:""`
	Raw        bool `help:"Also print raw report bytes."`
}

func (c *MonitorCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := openWheel(ctx, logger, c.Range, c.Autocenter)
	if err != nil {
		return err
	}
	defer w.Close()

	w.OnChanges(func(changes []g29.Change) {
		for _, ch := range changes {
			fmt.Printf("%-25s %v\n", ch.Field, ch.Value)
		}
	})
	w.OnError(func(err error) {
		logger.Error("transport error", slog.Any("error", err))
	})
	if c.Raw {
		w.OnData(func(raw []byte) {
			fmt.Printf("raw % x\n", raw)
		})
	}

	<-ctx.Done()
	return nil
}

type LEDCmd struct {
	Mask  *int `help:"Raw 5-bit mask, 0-31." xor:"setting" required:""`
	Level *int `help:"Severity level 0-5." xor:"setting"`
}

func (c *LEDCmd) Run(logger *slog.Logger) error {
	return withWheel(logger, func(w *g29.Wheel) error {
		if c.Level != nil {
			return w.SetLEDLevel(*c.Level)
		}
		return w.SetLEDs(*c.Mask)
	})
}

type RangeCmd struct {
	Degrees int `arg:"" help:"Rotation range in degrees, clamped to 40-900."`
}

func (c *RangeCmd) Run(logger *slog.Logger) error {
	return withWheel(logger, func(w *g29.Wheel) error {
		return w.SetWheelRange(c.Degrees)
	})
}

type AutocenterCmd struct {
	Off      bool     `help:"Disable the centering spring."`
	Strength *float64 `help:"Custom spring strength, 0-1."`
	Rise     float64  `help:"Custom rise rate, 0-1." default:"0.5"`
}

func (c *AutocenterCmd) Run(logger *slog.Logger) error {
	return withWheel(logger, func(w *g29.Wheel) error {
		switch {
		case c.Off:
			return w.SetAutocenter(false)
		case c.Strength != nil:
			return w.SetAutocenterProfile(*c.Strength, c.Rise)
		default:
			return w.SetAutocenter(true)
		}
	})
}

type ForceCmd struct {
	Constant ForceConstantCmd `cmd:"" help:"Apply a constant turning force."`
	Friction ForceFrictionCmd `cmd:"" help:"Apply rotation resistance."`
	Off      ForceOffCmd      `cmd:"" help:"Clear an effect slot (0 for all)."`
}

type ForceConstantCmd struct {
	Level float64 `arg:"" help:"0 full left, 0.5 off, 1 full right."`
}

func (c *ForceConstantCmd) Run(logger *slog.Logger) error {
	return withWheel(logger, func(w *g29.Wheel) error {
		return w.SetForceConstant(c.Level)
	})
}

type ForceFrictionCmd struct {
	Level float64 `arg:"" help:"0 none, 1 maximum."`
}

func (c *ForceFrictionCmd) Run(logger *slog.Logger) error {
	return withWheel(logger, func(w *g29.Wheel) error {
		return w.SetForceFriction(c.Level)
	})
}

type ForceOffCmd struct {
	Slot int `arg:"" optional:"" help:"Effect slot 1-4, or 0 for all." default:"0"`
}

func (c *ForceOffCmd) Run(logger *slog.Logger) error {
	return withWheel(logger, func(w *g29.Wheel) error {
		return w.SetForceOff(c.Slot)
	})
}

// withWheel opens the wheel, runs one control action, and closes it.
func withWheel(logger *slog.Logger, fn func(*g29.Wheel) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := openWheel(ctx, logger, 0, false)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(w)
}

type ListCmd struct {
	USB bool `help:"Also list raw USB devices (bypassing HID)."`
}

func (c *ListCmd) Run(logger *slog.Logger) error {
	mgr, err := hid.NewManager()
	if err != nil {
		return fmt.Errorf("hid manager: %w", err)
	}
	infos, err := mgr.List()
	if err != nil {
		return fmt.Errorf("hid list: %w", err)
	}
	for _, info := range infos {
		mark := " "
		if g29.Match(g29.DeviceInfo{
			VendorID:  info.VendorID,
			ProductID: info.ProductID,
			Product:   info.Product,
			UsagePage: info.UsagePage,
			Interface: info.Interface,
		}) {
			mark = "*"
		}
		fmt.Printf("%s %04x:%04x if=%d usage=%04x %s %s\n",
			mark, info.VendorID, info.ProductID, info.Interface, info.UsagePage,
			info.Manufacturer, info.Product)
	}

	if c.USB {
		devs, err := rawusb.List()
		if err != nil {
			logger.Warn("raw usb enumeration failed", slog.Any("error", err))
			return nil
		}
		for _, d := range devs {
			fmt.Printf("  usb %04x:%04x if=%d %s\n", d.VendorID, d.ProductID, d.Interface, d.Product)
		}
	}
	return nil
}
