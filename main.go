package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	logger = l.Sugar()

	LoadConfig()

	profile, err := profileByName(config.Device)
	if err != nil {
		logger.Panicw("unknown display device in config",
			"device", config.Device,
			"err", err)
	}
	if config.I2CAddr != 0 {
		profile.Addr = config.I2CAddr
	}

	var transport Transport
	var sim *simTransport
	if config.Simulator {
		sim = newSimTransport(profile)
		transport = sim
		logger.Info("running against the simulated panel")
	} else {
		transport, err = newI2CTransport(config.I2CBus, profile)
		if err != nil {
			logger.Panicw("unable to open display transport",
				"bus", config.I2CBus,
				"err", err)
		}
	}

	display, err := NewDisplay(profile, transport)
	if err != nil {
		logger.Panicw("unable to create display",
			"err", err)
	}

	if err := display.Init(); err != nil {
		logger.Panicw("display initialization failed",
			"device", profile.Name,
			"err", err)
	}

	logger.Infow("display initialized",
		"device", profile.Name,
		"width", profile.Width,
		"height", profile.Height)

	scr := newScreen(display)
	if err := scr.Redraw(); err != nil {
		logger.Warnw("initial redraw failed",
			"err", err)
	}
	go scr.poll(time.Duration(config.PollIntervalMs) * time.Millisecond)

	go discoveryResponder(config.DiscoveryPort, config.Name)

	logger.Infow("serving api",
		"addr", config.ListenAddr)
	r := newRouter(&apiServer{screen: scr, sim: sim})
	panic(http.ListenAndServe(config.ListenAddr, r))
}
