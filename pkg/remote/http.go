package remote

import (
	_ "embed"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

//go:generate go run ../../cmd/webbuild

//go:embed web/index.html
var htmlIndex []byte

//go:embed web/client.js
var jsClient []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ListenAndServe 在 addr 上提供控制台页面与 WebSocket 接入，阻塞直到出错。
// 通常在独立协程里调用。
func (h *Hub) ListenAndServe(addr string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	mux.HandleFunc("/client.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(jsClient)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		h.serveWS(w, r)
	})

	log.Printf("[remote] 遥测控制台: http://%s/", addr)
	return http.ListenAndServe(addr, mux)
}

// serveWS 升级连接并启动读协程
func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[remote] 升级失败: %v", err)
		return
	}
	h.register(conn)
	go h.readLoop(conn)
}
