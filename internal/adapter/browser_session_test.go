package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevTools answers the DevTools commands chromedp sends to attach to a
// page and capture it. Methods listed in stall are never answered.
type fakeDevTools struct {
	srv     *httptest.Server
	png     []byte
	stall   map[string]bool
	targets []map[string]any

	mu      sync.Mutex
	methods []string
	conns   []net.Conn
}

type devtoolsMessage struct {
	ID        int64           `json:"id,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Method    string          `json:"method,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Result    any             `json:"result,omitempty"`
}

func newFakeDevTools(t *testing.T, png []byte, stall ...string) *fakeDevTools {
	t.Helper()

	f := &fakeDevTools{
		png:   png,
		stall: map[string]bool{},
		targets: []map[string]any{
			{"targetId": "worker-1", "type": "service_worker", "title": "", "url": "", "attached": false},
			{"targetId": "page-1", "type": "page", "title": "login", "url": "about:blank", "attached": true},
		},
	}
	for _, method := range stall {
		f.stall[method] = true
	}

	return f
}

func (f *fakeDevTools) start(t *testing.T) *fakeDevTools {
	t.Helper()

	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(func() {
		f.mu.Lock()
		for _, conn := range f.conns {
			_ = conn.Close()
		}
		f.mu.Unlock()

		f.srv.Close()
	})

	return f
}

func (f *fakeDevTools) address() string {
	return "ws://" + strings.TrimPrefix(f.srv.URL, "http://") + "/devtools/browser/fake"
}

func (f *fakeDevTools) serve(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.conns = append(f.conns, conn)
	f.mu.Unlock()

	defer conn.Close()

	for {
		data, op, err := wsutil.ReadClientData(conn)
		if err != nil {
			return
		}

		if op != ws.OpText {
			continue
		}

		var req devtoolsMessage
		if err := json.Unmarshal(data, &req); err != nil {
			continue
		}

		f.mu.Lock()
		f.methods = append(f.methods, req.Method)
		f.mu.Unlock()

		if f.stall[req.Method] {
			continue
		}

		reply, err := json.Marshal(devtoolsMessage{ID: req.ID, SessionID: req.SessionID, Result: f.result(req.Method)})
		if err != nil {
			return
		}

		if err := wsutil.WriteServerMessage(conn, ws.OpText, reply); err != nil {
			return
		}
	}
}

func (f *fakeDevTools) result(method string) any {
	switch method {
	case "Target.getTargets":
		return map[string]any{"targetInfos": f.targets}
	case "Target.attachToTarget":
		return map[string]any{"sessionId": "session-1"}
	case "Runtime.evaluate":
		return map[string]any{"result": map[string]any{"type": "object", "className": "Window"}}
	case "Page.getFrameTree":
		return map[string]any{"frameTree": map[string]any{"frame": map[string]any{
			"id": "frame-1", "loaderId": "loader-1", "url": "about:blank", "securityOrigin": "null", "mimeType": "text/html",
		}}}
	case "DOM.getDocument":
		return map[string]any{"root": map[string]any{
			"nodeId": 1, "backendNodeId": 1, "nodeType": 9, "nodeName": "#document", "localName": "", "nodeValue": "",
		}}
	case "Page.captureScreenshot":
		return map[string]any{"data": base64.StdEncoding.EncodeToString(f.png)}
	}

	return map[string]any{}
}

func (f *fakeDevTools) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, m := range f.methods {
		if m == method {
			n++
		}
	}

	return n
}

func TestPickPage(t *testing.T) {
	worker := &target.Info{TargetID: "w", Type: "service_worker", Attached: true}
	idle := &target.Info{TargetID: "idle", Type: "page"}
	active := &target.Info{TargetID: "active", Type: "page", Attached: true}

	assert.Same(t, active, pickPage([]*target.Info{worker, idle, active}))
	assert.Same(t, idle, pickPage([]*target.Info{worker, idle}))
	assert.Nil(t, pickPage([]*target.Info{worker}))
}

func TestNewChromeSession(t *testing.T) {
	_, err := NewChromeSession(context.Background(), "")
	require.Error(t, err)

	session, err := NewChromeSession(context.Background(), "ws://127.0.0.1:9222/devtools/browser/abc")
	require.NoError(t, err)
	assert.NoError(t, session.Close())
}

func TestChromeSession_RepeatedScreenshots(t *testing.T) {
	devtools := newFakeDevTools(t, []byte("png-bytes")).start(t)

	session, err := NewChromeSession(context.Background(), devtools.address())
	require.NoError(t, err)

	for i := range 3 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		png, err := session.TakeScreenshot(ctx)
		cancel()

		require.NoError(t, err, "screenshot %d", i+1)
		assert.Equal(t, []byte("png-bytes"), png)
	}

	assert.Equal(t, 1, devtools.count("Target.attachToTarget"))
	assert.Equal(t, 3, devtools.count("Page.captureScreenshot"))

	require.NoError(t, session.Close())

	assert.Equal(t, 1, devtools.count("Target.detachFromTarget"))
	assert.Never(t, func() bool {
		return devtools.count("Target.closeTarget") > 0 || devtools.count("Browser.close") > 0
	}, 300*time.Millisecond, 20*time.Millisecond)

	_, err = session.TakeScreenshot(context.Background())
	require.ErrorIs(t, err, ErrSessionClosed)
	assert.NoError(t, session.Close())
}

func TestChromeSession_AttachHonorsCallerContext(t *testing.T) {
	devtools := newFakeDevTools(t, nil, "Target.getTargets").start(t)

	session, err := NewChromeSession(context.Background(), devtools.address())
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = session.TakeScreenshot(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestChromeSession_NoPageTarget(t *testing.T) {
	devtools := newFakeDevTools(t, nil)
	devtools.targets = devtools.targets[:1]
	devtools.start(t)

	session, err := NewChromeSession(context.Background(), devtools.address())
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = session.TakeScreenshot(ctx)
	require.ErrorIs(t, err, ErrNoPageTarget)
	assert.Zero(t, devtools.count("Target.attachToTarget"))
}
