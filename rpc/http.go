package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/storage"
	"github.com/dimfeld/httptreemux"
	"github.com/gorilla/handlers"
	"github.com/unrolled/render"
)

type R struct {
	custom *config.Custom
	store  storage.Store
}

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom, store storage.Store) *httptreemux.TreeMux {
	router, impl := httptreemux.New(), &R{custom: custom, store: store}
	router.POST("/", impl.handle)
	registerHandlers(router)
	return router
}

func registerHandlers(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{"error": "not found"})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{"error": "not found"})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("RPC PANIC %v %s\n", rcv, debug.Stack())
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": fmt.Sprint(rcv)})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.RPCRequestMaximumSize))
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Verbosef("RPC %s %v\n", call.Method, call.Params)

	data, err := Dispatch(impl.custom, impl.store, call.Method, call.Params)
	if err != nil {
		logger.Debugf("RPC %s %v => %s\n", call.Method, call.Params, err)
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": err.Error()})
		return
	}
	render.New().JSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST,DELETE")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}

func NewHandler(custom *config.Custom, store storage.Store) http.Handler {
	router := NewRouter(custom, store)
	handler := handleCORS(router)
	return handlers.ProxyHeaders(handler)
}

func NewServer(custom *config.Custom, store storage.Store, port int) *http.Server {
	return &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: NewHandler(custom, store)}
}
