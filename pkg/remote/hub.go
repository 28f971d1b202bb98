// Package remote 提供骑行状态的 WebSocket 遥测与远程控制。
//
// 浏览器控制台连到 /ws 后会收到 10Hz 的状态快照，也可以发回
// JSON 指令信封调节播放。指令不直接改游戏状态，只投进缓冲
// 通道，由游戏循环里的遥测系统排空执行。
package remote

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ===== 指令与载荷 =====

// 指令类型
const (
	CmdSetSpeed     = "set_speed"
	CmdSetDirection = "set_direction"
	CmdTogglePause  = "toggle_pause"
	CmdSelectTrack  = "select_track"
	CmdSetCamera    = "set_camera"
)

// 相机模式字符串（快照与 set_camera 指令共用）
const (
	CameraModeOrbit   = "orbit"
	CameraModeOnboard = "onboard"
)

// Command 客户端发来的指令信封
type Command struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SetSpeedPayload set_speed 指令载荷
type SetSpeedPayload struct {
	MPS float64 `json:"mps"`
}

// SetDirectionPayload set_direction 指令载荷
type SetDirectionPayload struct {
	Dir int `json:"dir"`
}

// SelectTrackPayload select_track 指令载荷
type SelectTrackPayload struct {
	ID string `json:"id"`
}

// SetCameraPayload set_camera 指令载荷
type SetCameraPayload struct {
	Mode string `json:"mode"`
}

// StateSnapshot 广播给客户端的状态快照
type StateSnapshot struct {
	TrackID    string  `json:"trackId"`
	TrackName  string  `json:"trackName"`
	Progress   float64 `json:"progress"`
	SpeedMPS   float64 `json:"speedMps"`
	Direction  int     `json:"direction"`
	Paused     bool    `json:"paused"`
	Lap        int     `json:"lap"`
	OdometerM  float64 `json:"odometerM"`
	CameraMode string  `json:"cameraMode"`
	Wireframe  bool    `json:"wireframe"`
	TS         int64   `json:"ts"`
}

// stateEnvelope 发往客户端的信封，与指令信封同构
type stateEnvelope struct {
	Type    string        `json:"type"`
	Payload StateSnapshot `json:"payload"`
}

// ===== Hub =====

// commandBuffer 指令通道容量，塞满后丢弃新指令
const commandBuffer = 64

// writeTimeout 单个客户端的写超时，写不动的连接直接剔除
const writeTimeout = 2 * time.Second

// Hub 管理全部远程客户端连接
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	commands chan Command
}

// NewHub 创建遥测中枢
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*websocket.Conn]bool),
		commands: make(chan Command, commandBuffer),
	}
}

// Commands 返回只读指令通道，由游戏循环排空
func (h *Hub) Commands() <-chan Command {
	return h.commands
}

// ClientCount 当前连接的客户端数
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// PublishState 把快照发给所有客户端（游戏循环线程调用）。
// 写失败的连接当场关闭并移除。
func (h *Hub) PublishState(snap StateSnapshot) {
	data, err := json.Marshal(stateEnvelope{Type: "state", Payload: snap})
	if err != nil {
		log.Printf("[remote] 快照序列化失败: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// register 纳入一个新连接
func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	count := len(h.clients)
	h.mu.Unlock()
	log.Printf("[remote] 客户端接入 %s（当前 %d 个）", conn.RemoteAddr(), count)
}

// unregister 移除一个连接
func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
	}
	count := len(h.clients)
	h.mu.Unlock()
	conn.Close()
	log.Printf("[remote] 客户端断开 %s（当前 %d 个）", conn.RemoteAddr(), count)
}

// submit 把指令投进缓冲通道，通道满则丢弃
func (h *Hub) submit(cmd Command) {
	select {
	case h.commands <- cmd:
	default:
		log.Printf("[remote] 指令通道已满，丢弃 %s", cmd.Type)
	}
}

// readLoop 持续读取一个连接的指令，直到连接断开
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.unregister(conn)
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			log.Printf("[remote] 指令解析失败: %v", err)
			continue
		}
		if cmd.Type == "" {
			log.Printf("[remote] 忽略缺少类型的指令")
			continue
		}
		h.submit(cmd)
	}
}
