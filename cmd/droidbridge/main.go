// cmd/droidbridge/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/droid-bridge/internal/config"
	"github.com/tamzrod/droid-bridge/internal/httpapi"
	"github.com/tamzrod/droid-bridge/internal/link"
	"github.com/tamzrod/droid-bridge/internal/sampler"
	"github.com/tamzrod/droid-bridge/internal/status"
)

var cfgFile = flag.String("c", "", "configuration `file` (yaml); defaults apply when omitted")
var httpServe = flag.String("s", "", "start http status server at [bindtohost][:]port, overrides http.listen")
var verbose = flag.Bool("v", false, "verbose logging")

// To be set via go build -ldflags "-X main.buildVersion=$(git describe --dirty) -X main.buildDate=$(date -u +%FT%TZ)"
var buildVersion = "unspecified"
var buildDate = "unknown"

// shutdownSignals cancel the session; no other signal is handled.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func main() {
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// --------------------
	// Logging
	// --------------------

	level, _ := log.ParseLevel(cfg.Log.Level)
	log.SetLevel(level)
	if *verbose {
		log.SetLevel(log.DebugLevel)
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}
	log.Infof("droidbridge %s (%s)", buildVersion, buildDate)

	// --------------------
	// Input (fail fast: no usable gamepad, no bridge)
	// --------------------

	smp, closeInput, err := sampler.Build(cfg.Input)
	if err != nil {
		log.Fatalf("input unavailable (device=%d): %v", cfg.Input.Device, err)
	}
	defer closeInput()

	// --------------------
	// Transport + session
	// --------------------

	tr, err := buildTransport(cfg.Transport)
	if err != nil {
		closeInput()
		log.Fatalf("transport build failed (kind=%s): %v", cfg.Transport.Kind, err)
	}

	tracker := status.NewTracker(link.Idle.String())

	sc := link.SessionConfig(cfg)
	sc.OnTransition = func(from, to link.State) {
		if to == link.Connected {
			log.WithField("peer", cfg.Peer.Name).Info("Streaming")
		}
	}

	session, err := link.NewSession(sc, tr, smp, tracker)
	if err != nil {
		closeInput()
		log.Fatalf("session build failed: %v", err)
	}

	// --------------------
	// Optional status surface
	// --------------------

	listen := cfg.HTTP.Listen
	if *httpServe != "" {
		listen = *httpServe
	}

	var h *http.Server
	if listen != "" {
		h = &http.Server{
			Addr:    httpapi.ListenAddr(listen),
			Handler: httpapi.New(tracker, httpapi.Build{Version: buildVersion, Date: buildDate}),
		}
		go func() {
			if err := h.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error(err)
			}
		}()
		log.Infof("Status server listening on %s", h.Addr)
	}

	// --------------------
	// Run until SIGINT / SIGTERM
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := session.Run(ctx); err != nil {
		log.Errorf("session ended: %v", err)
	}

	if h != nil {
		_ = h.Close()
	}
	log.Info("Bye.")
}
