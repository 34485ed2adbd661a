package hand

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// wire format pushed by the external tracker process, one message per
// tracked frame, coordinates already in canvas pixel space
type wireFrame struct {
	Hands []wireHand `json:"hands"`
}

type wireHand struct {
	Handedness string      `json:"handedness"`
	Palm       wirePoint   `json:"palm"`
	Fingertips []wirePoint `json:"fingertips"`
	Spread     float64     `json:"spread"`
}

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	I int     `json:"i"`
}

// SocketSource receives hand frames over a websocket from an external
// pose tracker. Only the most recent message is retained; the render loop
// samples it with Poll. Connection loss is not an error: Poll degrades to
// "no hands" while a background goroutine redials.
type SocketSource struct {
	url string

	mu     sync.Mutex
	latest []*Frame
	stale  time.Time

	closed chan struct{}
}

// NewSocketSource starts reading frames from url (e.g. ws://localhost:9130)
func NewSocketSource(url string) *SocketSource {
	s := &SocketSource{
		url:    url,
		closed: make(chan struct{}),
	}
	go s.run()
	return s
}

// Poll returns the latest tracked hands, at most two. Frames older than
// a quarter second are treated as a lost tracker.
func (s *SocketSource) Poll() []*Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Since(s.stale) > 250*time.Millisecond {
		return nil
	}
	return s.latest
}

// Close stops the reader goroutine
func (s *SocketSource) Close() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
}

func (s *SocketSource) run() {
	for {
		select {
		case <-s.closed:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
		if err != nil {
			log.Printf("hand: tracker dial %s failed: %v (retrying)", s.url, err)
			select {
			case <-s.closed:
				return
			case <-time.After(time.Second):
			}
			continue
		}

		s.readLoop(conn)
		conn.Close()
	}
}

func (s *SocketSource) readLoop(conn *websocket.Conn) {
	for {
		select {
		case <-s.closed:
			return
		default:
		}

		var msg wireFrame
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("hand: tracker read failed: %v (reconnecting)", err)
			return
		}

		frames := decodeWire(&msg)
		s.mu.Lock()
		s.latest = frames
		s.stale = time.Now()
		s.mu.Unlock()
	}
}

// decodeWire converts a tracker message into frames, dropping anything
// beyond two hands or malformed landmark sets
func decodeWire(msg *wireFrame) []*Frame {
	out := make([]*Frame, 0, 2)
	for _, h := range msg.Hands {
		if len(out) == 2 {
			break
		}
		if len(h.Fingertips) != constants.FingerCount {
			continue
		}
		f := &Frame{
			Palm:   vmath.Vec2{X: h.Palm.X, Y: h.Palm.Y},
			Spread: vmath.Clamp01(h.Spread),
		}
		if h.Handedness == "right" {
			f.Handedness = Right
		}
		for i, p := range h.Fingertips {
			idx := p.I
			if idx < 0 || idx >= constants.FingerCount {
				idx = i
			}
			f.Fingertips[i] = Fingertip{
				Pos:   vmath.Vec2{X: p.X, Y: p.Y},
				Index: idx,
			}
		}
		out = append(out, f)
	}
	return out
}
