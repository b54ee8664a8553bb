package main

import (
	"encoding/json"
	"os"
)

type Config struct {
	ListenAddr     string `json:"listenAddr"`
	DiscoveryPort  int    `json:"discoveryPort"`
	Name           string `json:"name"`
	Device         string `json:"device"`
	I2CBus         string `json:"i2cBus"`
	I2CAddr        uint16 `json:"i2cAddr"`
	PollIntervalMs int    `json:"pollIntervalMs"`
	Simulator      bool   `json:"simulator"`
}

var config = Config{
	ListenAddr:     ":9001",
	DiscoveryPort:  3483,
	Name:           "OLEDStat",
	Device:         "ssd1306",
	I2CBus:         "",
	PollIntervalMs: 800,
	Simulator:      false,
}

const CONFIG_LOCATION = "oledstat.json"

func LoadConfig() {
	f, err := os.Open(CONFIG_LOCATION)
	if os.IsNotExist(err) {
		f, err = os.Create(CONFIG_LOCATION)
		if err != nil {
			logger.Panicw("unable to create config file",
				"location", CONFIG_LOCATION,
				"err", err)
		}

		e := json.NewEncoder(f)
		e.SetIndent("", "  ")
		e.Encode(config)
		f.Seek(0, 0)
	} else if err != nil {
		logger.Panicw("unable to open config file",
			"location", CONFIG_LOCATION,
			"err", err)
	}
	defer f.Close()

	d := json.NewDecoder(f)
	err = d.Decode(&config)
	if err != nil {
		logger.Panicw("unable to parse config",
			"location", CONFIG_LOCATION,
			"err", err)
	}
}
