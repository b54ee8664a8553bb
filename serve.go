package main

import (
	"encoding/json"
	"net/http"

	"github.com/Jeffail/gabs/v2"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type apiServer struct {
	screen *screen
	sim    *simTransport // nil when real hardware is attached
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (a *apiServer) postState(w http.ResponseWriter, r *http.Request) {
	body, err := gabs.ParseJSONBuffer(r.Body)
	r.Body.Close()
	if err != nil {
		logger.Warnw("unable to parse state update",
			"err", err)
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var status machineStatus
	if state, ok := body.Path("state").Data().(string); ok {
		status.State = state
	}
	if ip, ok := body.Path("ip").Data().(string); ok {
		status.IP = ip
	}

	for _, axis := range body.Path("axes").Children() {
		ax := axisStatus{Endstop: -1}
		if label, ok := axis.Path("label").Data().(string); ok {
			ax.Label = label
		}
		if pos, ok := axis.Path("position").Data().(string); ok {
			ax.Position = pos
		}
		if endstop, ok := axis.Path("endstop").Data().(float64); ok {
			ax.Endstop = int(endstop)
		}
		status.Axes = append(status.Axes, ax)
	}

	a.screen.SetStatus(status)
	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) postText(w http.ResponseWriter, r *http.Request) {
	body, err := gabs.ParseJSONBuffer(r.Body)
	r.Body.Close()
	if err != nil {
		logger.Warnw("unable to parse text request",
			"err", err)
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	text, _ := body.Path("text").Data().(string)
	x, _ := body.Path("x").Data().(float64)
	y, _ := body.Path("y").Data().(float64)
	size, _ := body.Path("size").Data().(string)

	if err := a.screen.DrawMessage(int(x), int(y), text, size == "big"); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) postClear(w http.ResponseWriter, r *http.Request) {
	if err := a.screen.ClearPanel(); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *apiServer) getScreen(w http.ResponseWriter, r *http.Request) {
	frame := a.screen.Frame()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame)
}

func (a *apiServer) panel(w http.ResponseWriter, r *http.Request) {
	if a.sim == nil {
		http.Error(w, "no simulator attached", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warnw("unable to upgrade panel connection",
			"err", err)
		return
	}

	a.sim.Attach(conn)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Access-Control-Allow-Origin", "*")
		if r.Method == "OPTIONS" {
			w.Header().Add("Access-Control-Allow-Headers", "Content-Type")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func newRouter(a *apiServer) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Path("/state").Methods("POST", "OPTIONS").HandlerFunc(a.postState)
	r.Path("/text").Methods("POST", "OPTIONS").HandlerFunc(a.postText)
	r.Path("/clear").Methods("POST", "OPTIONS").HandlerFunc(a.postClear)
	r.Path("/screen").Methods("GET").HandlerFunc(a.getScreen)
	r.Path("/panel").HandlerFunc(a.panel)
	r.Path("/metrics").Handler(promhttp.Handler())
	return r
}
