// Command scanner verifies a booking code at the gate, either from the camera
// spool directory or from a single still image.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qr-smart-parking/internal/domain/payload"
	"qr-smart-parking/internal/infra/camera"
	"qr-smart-parking/internal/infra/qrcode"
	"qr-smart-parking/internal/pkg/config"
	"qr-smart-parking/internal/pkg/errs"
	"qr-smart-parking/internal/pkg/logging"
	"qr-smart-parking/internal/usecase/scan"
)

const (
	exitFound = iota
	exitCancelled
	exitFailure
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	spoolDir := flag.String("dir", cfg.Scan.SpoolDir, "directory the camera daemon writes frames to")
	imagePath := flag.String("image", "", "decode a single still image instead of polling the camera")
	timeout := flag.Duration("timeout", cfg.Scan.Timeout, "give up after this long (0 waits until interrupted)")
	flag.Parse()

	logger := logging.NewWithWriter(cfg.Log, os.Stderr)
	transport := qrcode.NewTransport(qrcode.DefaultSize)

	if *imagePath != "" {
		fields, err := decodeFile(transport, *imagePath)
		if err != nil {
			logger.Error("Failed to verify image", slog.String("path", *imagePath), slog.String("error", err.Error()))
			return exitFailure
		}
		printFields(os.Stdout, fields)
		return exitFound
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	device := scan.NewDevice(func() (scan.FrameSource, error) {
		src, err := camera.OpenSpool(*spoolDir)
		if err != nil {
			return nil, err
		}
		return src, nil
	})
	session := scan.NewSession(device, transport, cfg.Scan.Interval, logger)

	started := time.Now()
	ev := <-session.Start(ctx)
	switch ev.State {
	case scan.StateFound:
		logger.Info("Booking verified",
			slog.String("booking_id", ev.Fields.BookingID()),
			slog.Duration("elapsed", time.Since(started)))
		printFields(os.Stdout, ev.Fields)
		return exitFound
	case scan.StateCancelled:
		logger.Info("Scan cancelled", slog.Duration("elapsed", time.Since(started)))
		return exitCancelled
	default:
		logger.Error("Camera unavailable", slog.String("dir", *spoolDir), slog.String("error", fmt.Sprint(ev.Err)))
		return exitFailure
	}
}

func decodeFile(reader scan.Reader, path string) (payload.Fields, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode image")
	}
	return scan.DecodeImage(reader, img)
}

func printFields(w io.Writer, fields payload.Fields) {
	for _, label := range payload.Labels() {
		if v, ok := fields[label]; ok {
			fmt.Fprintf(w, "%s: %s\n", label, v)
		}
	}
}
