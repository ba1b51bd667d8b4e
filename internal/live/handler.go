package live

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"villa_site/internal/adapters/observability"
	"villa_site/internal/domain"
	"villa_site/internal/view"
	"villa_site/internal/widget"
)

const (
	readLimit    = 4 << 10
	writeTimeout = 5 * time.Second
	loopBacklog  = 64
)

// PageSource loads the content a session renders from.
type PageSource interface {
	Page(ctx context.Context) (domain.PageContent, error)
}

// Handler upgrades /live requests and runs one session per connection.
type Handler struct {
	content PageSource
	r       *view.Renderer
	origins []string
}

// NewHandler accepts connections from the page's own host plus any of
// origins (host patterns, e.g. "*.example.com").
func NewHandler(content PageSource, r *view.Renderer, origins []string) *Handler {
	return &Handler{content: content, r: r, origins: origins}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{
		Subprotocols:   []string{ProtoMsgpack, ProtoJSON},
		OriginPatterns: h.origins,
	})
	if err != nil {
		log.Warn().Err(err).Str("origin", req.Header.Get("Origin")).Msg("live upgrade rejected")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(readLimit)

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	page, err := h.content.Page(ctx)
	if err != nil {
		log.Error().Err(err).Msg("live: content fetch failed")
		conn.Close(websocket.StatusInternalError, "content unavailable")
		return
	}

	h.run(ctx, cancel, conn, page, CompactRequest(req))
}

func (h *Handler) run(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, page domain.PageContent, compact bool) {
	codec := CodecFor(conn.Subprotocol())
	loop := make(chan func(), loopBacklog)
	post := func(f func()) {
		select {
		case loop <- f:
		case <-ctx.Done():
		}
	}

	send := func(p Patch) {
		b, err := codec.Encode(p)
		if err != nil {
			log.Error().Err(err).Msg("live: encode patch")
			return
		}
		wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
		defer wcancel()
		if err := conn.Write(wctx, codec.MessageType(), b); err != nil {
			log.Debug().Err(err).Msg("live: write failed")
			cancel()
		}
	}

	id := uuid.NewString()
	sess := NewSession(id, h.r, page, widget.NewLoopScheduler(post), compact, send, log.Logger)

	observability.LiveSessions.Inc()
	defer observability.LiveSessions.Dec()
	log.Debug().Str("session", id).Str("codec", codec.Name()).Msg("live session open")

	go func() {
		defer cancel()
		for {
			_, b, err := conn.Read(ctx)
			if err != nil {
				if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
					log.Debug().Err(err).Str("session", id).Msg("live: read failed")
				}
				return
			}
			ev, err := codec.Decode(b)
			if err != nil {
				log.Debug().Err(err).Str("session", id).Msg("live: bad frame")
				return
			}
			post(func() { sess.Handle(ev) })
		}
	}()

	sess.Start()
	for {
		select {
		case f := <-loop:
			f()
		case <-ctx.Done():
			sess.Close()
			conn.Close(websocket.StatusNormalClosure, "")
			log.Debug().Str("session", id).Msg("live session closed")
			return
		}
	}
}
