// Command ledkeypad drives a 5x5 WS2812 matrix from a 4x4 matrix keypad.
//
// Keys:
//
//	0   clear the matrix
//	4   K L M N O in blue
//	5   P Q R S T in blue
//	8   5 6 7 8 9 in blue
//	9   closing animation
//	D   green at half intensity
//
// Other keys are logged and ignored.
//
// Hardware Setup:
//
//	Matrix     Raspberry Pi
//	DIN        GPIO10 (SPI0 MOSI)
//	GND        GND
//	Keypad     rows GPIO28, 27, 26, 22; columns GPIO21, 20, 19, 18
//
// Settings are read from .env and LEDMATRIX_* variables; see package config.
// With -sim, keys are read from stdin (one per line) and frames are printed as hex
// words instead of being sent to the LEDs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/flavioheleno/ledmatrix"
	"github.com/flavioheleno/ledmatrix/command"
	"github.com/flavioheleno/ledmatrix/config"
	"github.com/flavioheleno/ledmatrix/keypad"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	envFile = flag.String("env", ".env", "Settings file loaded before the environment")
	sim     = flag.Bool("sim", false, "Read keys from stdin and print frames to stdout")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledkeypad: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ledmatrix.SetLogger(logger)

	layout, err := ledmatrix.ParseLayout(cfg.Layout, 5, 5)
	if err != nil {
		return err
	}
	opts := &ledmatrix.Opts{W: 5, H: 5, Layout: layout}

	var (
		dev     *ledmatrix.Dev
		scanner command.Scanner
	)
	if *sim {
		if dev, err = ledmatrix.New(ledmatrix.NewWriterSink(os.Stdout), opts); err != nil {
			return err
		}
		scanner = keypad.NewReader(os.Stdin)
	} else {
		if _, err := host.Init(); err != nil {
			return fmt.Errorf("failed to initialize periph.io: %w", err)
		}
		bus, err := spireg.Open(cfg.SPIBus)
		if err != nil {
			return fmt.Errorf("failed to open SPI bus: %w", err)
		}
		defer bus.Close()

		if dev, err = ledmatrix.NewSPI(bus, opts); err != nil {
			return err
		}
		if scanner, err = keypad.Open(cfg.RowPins, cfg.ColPins); err != nil {
			return err
		}
	}
	defer dev.Halt()

	logger.Info("ready", "device", dev.String(), "sim", *sim)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &command.Loop{
		Scanner:    scanner,
		Dispatcher: command.NewDispatcher(dev, nil, nil),
		Debounce:   cfg.Debounce,
		Poll:       cfg.Poll,
	}
	if err := loop.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	logger.Info("stopped")
	return nil
}
