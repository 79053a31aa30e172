// internal/server/hub.go
package server

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"shareloom/internal/clipboard"
	"shareloom/internal/panel"
)

// upgrader is used to upgrade HTTP connections to WebSocket connections.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The panel server only ever serves localhost previews, so the
	// origin check is skipped.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wireEvent is one inbound message from a hosted panel page.
type wireEvent struct {
	Event    string `json:"event"`
	URL      string `json:"url,omitempty"`
	Widget   string `json:"widget,omitempty"`
	Key      string `json:"key,omitempty"`
	Width    string `json:"width,omitempty"`
	Height   string `json:"height,omitempty"`
	Target   string `json:"target,omitempty"`
	OK       bool   `json:"ok,omitempty"`
	Error    string `json:"error,omitempty"`
	Location string `json:"location,omitempty"`
	OGTitle  string `json:"ogTitle,omitempty"`
	DocTitle string `json:"docTitle,omitempty"`
}

// outbound is one message to a hosted panel page: either a batch of
// effects to apply or an instruction to reload the page.
type outbound struct {
	Effects []panel.Effect `json:"effects,omitempty"`
	Reload  bool           `json:"reload,omitempty"`
}

// Hub tracks the connected panel sessions so content reloads can reach
// all of them.
type Hub struct {
	mu       sync.Mutex
	sessions map[*session]bool
	log      *zap.Logger
}

func newHub(logger *zap.Logger) *Hub {
	return &Hub{
		sessions: make(map[*session]bool),
		log:      logger,
	}
}

func (h *Hub) add(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s] = true
	h.log.Info("panel client connected")
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s]; ok {
		delete(h.sessions, s)
		s.conn.Close()
		h.log.Info("panel client disconnected")
	}
}

// broadcastReload tells every connected page to reload itself after a
// content change.
func (h *Hub) broadcastReload() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.sessions {
		if err := s.write(outbound{Reload: true}); err != nil {
			s.conn.Close()
			delete(h.sessions, s)
		}
	}
}

// session is one connected panel page: its own controller instance
// (each tab owns its own selection), its clipboard feedback, and the
// text of copies awaiting a browser result.
type session struct {
	conn *websocket.Conn
	log  *zap.Logger

	writeMu sync.Mutex

	ctrl     *panel.Controller
	feedback *clipboard.Feedback

	pendingMu sync.Mutex
	pending   map[string]string
}

// Apply implements panel.Sink: effects are serialized to the page.
// Clipboard writes are remembered so the browser's copy-result can be
// matched back to the text that was copied.
func (s *session) Apply(effects []panel.Effect) {
	for _, e := range effects {
		if e.Op == panel.OpWriteClipboard {
			s.pendingMu.Lock()
			s.pending[e.Target] = e.Value
			s.pendingMu.Unlock()
		}
	}
	if err := s.write(outbound{Effects: effects}); err != nil {
		s.log.Warn("could not send effects to panel client", zap.Error(err))
	}
}

func (s *session) write(msg outbound) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(msg)
}

func (s *session) takePending(trigger string) string {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	text := s.pending[trigger]
	delete(s.pending, trigger)
	return text
}

// handle maps one wire event onto a controller transition or a
// clipboard acknowledgment.
func (s *session) handle(ev wireEvent, app *App) {
	if ev.Event == "panel-open" {
		cat, loc := app.snapshot()
		s.ctrl = panel.New(cat, loc, panel.PageContext{
			Location:    ev.Location,
			OGTitle:     ev.OGTitle,
			DocTitle:    ev.DocTitle,
			CatalogMode: cat.Len() > 0,
		}, s.log)
		s.feedback = clipboard.NewFeedback(s, loc, s.log)
		s.Apply(s.ctrl.Dispatch(panel.PanelOpen{}))
		return
	}

	if s.ctrl == nil {
		s.log.Debug("event before panel-open ignored", zap.String("event", ev.Event))
		return
	}

	switch ev.Event {
	case "story-selected":
		s.Apply(s.ctrl.Dispatch(panel.StorySelected{URL: ev.URL, SourceWidget: ev.Widget}))
	case "preset-chosen":
		s.Apply(s.ctrl.Dispatch(panel.PresetChosen{Key: ev.Key}))
	case "dimension-edited":
		s.Apply(s.ctrl.Dispatch(panel.DimensionEdited{Width: ev.Width, Height: ev.Height}))
	case "copy-requested":
		s.Apply(s.ctrl.Dispatch(panel.CopyRequested{Target: panel.CopyTarget(ev.Target)}))
	case "copy-result":
		text := s.takePending(ev.Target)
		var err error
		if !ev.OK {
			msg := ev.Error
			if msg == "" {
				msg = "clipboard write rejected"
			}
			err = errors.New(msg)
		}
		s.feedback.Acknowledge(ev.Target, text, err)
	default:
		s.log.Debug("unknown panel event", zap.String("event", ev.Event))
	}
}

// serveWs upgrades the connection and runs the session's read loop.
func serveWs(hub *Hub, app *App, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s := &session{
		conn:    conn,
		log:     hub.log,
		pending: make(map[string]string),
	}
	hub.add(s)
	defer hub.remove(s)

	for {
		var ev wireEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}
		s.handle(ev, app)
	}
}
