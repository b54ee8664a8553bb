package main

import (
	"net"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// discoveryResponder answers 'd' probes on a UDP port with 'D' plus the
// Latin-1 encoded daemon name, so dashboards on the LAN can find the panel
// without configuration.
func discoveryResponder(port int, name string) {
	listener, err := net.ListenUDP("udp4", &net.UDPAddr{Port: port})
	if err != nil {
		logger.Panicw("unable to start discovery listener",
			"port", port,
			"err", err)
	}

	encoder := charmap.ISO8859_1.NewEncoder()
	resp, err := encoder.String(name)
	if err != nil {
		logger.DPanicw("unable to encode daemon name",
			"name", name,
			"err", err)
		resp = "oledstat"
	}
	resp = "D" + resp

	go announce(listener, port, resp)

	for {
		b := make([]byte, 1024)
		n, remote, err := listener.ReadFromUDP(b)
		if err != nil {
			logger.Errorw("unable to read discovery packet",
				"err", err)
			return
		}

		if n == 0 || b[0] != 'd' {
			continue
		}

		logger.Debugw("responding to discovery request",
			"from", remote.String())
		listener.WriteTo(append([]byte(resp), 0, 0, 0, 0), remote)
	}
}

// announce broadcasts presence once a minute for listeners that don't
// probe.
func announce(conn *net.UDPConn, port int, resp string) {
	target := &net.UDPAddr{IP: net.IPv4bcast, Port: port}

	for {
		conn.WriteTo(append([]byte(resp), 0, 0, 0, 0), target)
		time.Sleep(time.Minute)
	}
}
