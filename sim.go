package main

import (
	"sync"

	"github.com/gorilla/websocket"
)

// simTransport is a Transport with no hardware behind it: it decodes the
// page-select and column commands into a virtual panel and pushes changed
// pages to any attached websocket clients. Lets the daemon and its API run
// on a desk with no wiring.
type simTransport struct {
	mu sync.Mutex

	width          int
	pageSelectBase byte

	page   int
	column int
	vram   [][]byte

	clients []*websocket.Conn
}

type pageUpdate struct {
	Page  int    `json:"page"`
	Width int    `json:"width"`
	Data  []byte `json:"data"`
}

func newSimTransport(profile Profile) *simTransport {
	pages := (profile.Height + 7) / 8
	vram := make([][]byte, pages)
	for i := range vram {
		vram[i] = make([]byte, profile.Width)
	}

	return &simTransport{
		width:          profile.Width,
		pageSelectBase: profile.PageSelectBase,
		vram:           vram,
	}
}

func (s *simTransport) SendCommand(cmd byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case cmd&0xF8 == s.pageSelectBase:
		s.page = int(cmd & 0x07)
	case cmd < 0x10:
		s.column = s.column&0xF0 | int(cmd)
	case cmd < 0x20:
		s.column = s.column&0x0F | int(cmd&0x0F)<<4
	}
	// Remaining controller commands (contrast, scan direction, ...) don't
	// affect the simulated frame

	return nil
}

func (s *simTransport) SendData(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page >= len(s.vram) {
		return nil
	}

	row := s.vram[s.page]
	for i, b := range data {
		if s.column+i >= s.width {
			break
		}
		row[s.column+i] = b
	}

	// The controllers auto-increment the column pointer as data arrives
	s.column += len(data)
	if s.column > s.width {
		s.column = s.width
	}

	s.broadcast(s.page)
	return nil
}

// Attach registers a websocket client, sends it the full panel, and reads
// until it disconnects.
func (s *simTransport) Attach(conn *websocket.Conn) {
	s.mu.Lock()
	s.clients = append(s.clients, conn)
	for page := range s.vram {
		s.writeUpdate(conn, page)
	}
	s.mu.Unlock()

	go s.listener(conn)
}

func (s *simTransport) listener(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Debugw("panel client disconnected",
				"err", err)
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.clients {
		if v == conn {
			s.clients = append(s.clients[:k], s.clients[k+1:]...)
			break
		}
	}
	conn.Close()
}

// broadcast pushes one page to every client. Callers hold mu.
func (s *simTransport) broadcast(page int) {
	for _, conn := range s.clients {
		s.writeUpdate(conn, page)
	}
}

func (s *simTransport) writeUpdate(conn *websocket.Conn, page int) {
	row := make([]byte, s.width)
	copy(row, s.vram[page])

	err := conn.WriteJSON(pageUpdate{
		Page:  page,
		Width: s.width,
		Data:  row,
	})
	if err != nil {
		logger.Debugw("unable to push page update",
			"page", page,
			"err", err)
	}
}

// PageSnapshot copies one simulated page, for tests and the API.
func (s *simTransport) PageSnapshot(page int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 0 || page >= len(s.vram) {
		return nil
	}

	row := make([]byte, s.width)
	copy(row, s.vram[page])
	return row
}
