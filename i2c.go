package main

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// i2cTransport frames writes the way the controllers expect: a control
// byte announcing command or data, then the payload.
type i2cTransport struct {
	dev         *i2c.Dev
	commandByte byte
	dataByte    byte
}

func newI2CTransport(busName string, profile Profile) (*i2cTransport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	logger.Infow("opened i2c bus",
		"bus", bus.String(),
		"addr", profile.Addr,
		"device", profile.Name)

	return &i2cTransport{
		dev:         &i2c.Dev{Bus: bus, Addr: profile.Addr},
		commandByte: profile.CommandByte,
		dataByte:    profile.DataByte,
	}, nil
}

func (t *i2cTransport) SendCommand(cmd byte) error {
	return t.dev.Tx([]byte{t.commandByte, cmd}, nil)
}

func (t *i2cTransport) SendData(data []byte) error {
	buf := make([]byte, len(data)+1)
	buf[0] = t.dataByte
	copy(buf[1:], data)
	return t.dev.Tx(buf, nil)
}
