package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

var (
	// ErrNoPageTarget is returned when the browser has no page to capture.
	ErrNoPageTarget = errors.New("browser has no page target")
	// ErrSessionClosed is returned by a ChromeSession after Close.
	ErrSessionClosed = errors.New("browser session closed")
)

const detachTimeout = time.Second

// BrowserSession is the handle the runner hands over for a worker's browser.
type BrowserSession interface {
	TakeScreenshot(ctx context.Context) ([]byte, error)
	Close() error
}

// SessionFactory opens a BrowserSession from the address the runner reports.
type SessionFactory func(ctx context.Context, address string) (BrowserSession, error)

// ChromeSession attaches to a running Chrome through its DevTools websocket.
type ChromeSession struct {
	address string

	// use is held for reading by screenshots in flight and for writing by Close.
	use sync.RWMutex

	mu         sync.Mutex
	connecting chan struct{}
	conn       *devtoolsConn
	connErr    error
	closed     bool
}

// NewChromeSession returns a session for the DevTools websocket at address.
// The connection is made lazily by the first screenshot.
func NewChromeSession(_ context.Context, address string) (BrowserSession, error) {
	if address == "" {
		return nil, errors.New("empty DevTools address")
	}

	return &ChromeSession{address: address}, nil
}

// TakeScreenshot captures the viewport of the runner's page as PNG.
// ctx bounds the call, including the first connection.
func (s *ChromeSession) TakeScreenshot(ctx context.Context) ([]byte, error) {
	tabCtx, err := s.attach(ctx)
	if err != nil {
		return nil, err
	}

	s.use.RLock()
	defer s.use.RUnlock()

	if s.isClosed() {
		return nil, ErrSessionClosed
	}

	runCtx, cancel := context.WithCancel(tabCtx)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var buf []byte
	if err := chromedp.Run(runCtx, chromedp.CaptureScreenshot(&buf)); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(context.Cause(ctx), "capture screenshot")
		}

		return nil, errors.Wrap(err, "capture screenshot")
	}

	return buf, nil
}

// attach returns the tab context of the runner's page, connecting once. A
// failed connection is retried by the next call.
func (s *ChromeSession) attach(ctx context.Context) (context.Context, error) {
	s.mu.Lock()

	switch {
	case s.closed:
		s.mu.Unlock()
		return nil, ErrSessionClosed
	case s.conn != nil:
		tabCtx := s.conn.tabCtx
		s.mu.Unlock()

		return tabCtx, nil
	case s.connecting == nil:
		s.connecting = make(chan struct{})
		go s.connect(s.connecting)
	}

	connecting := s.connecting
	s.mu.Unlock()

	select {
	case <-connecting:
	case <-ctx.Done():
		return nil, errors.Wrap(context.Cause(ctx), "attach to browser")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return nil, ErrSessionClosed
	case s.conn == nil:
		return nil, s.connErr
	}

	return s.conn.tabCtx, nil
}

func (s *ChromeSession) connect(done chan struct{}) {
	conn, err := dialDevTools(s.address)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer close(done)

	switch {
	case err != nil:
		s.connErr = err
		s.connecting = nil
	case s.closed:
		conn.release()
	default:
		s.conn = conn
	}
}

func (s *ChromeSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Close drops the DevTools connection. The page and the browser keep running.
func (s *ChromeSession) Close() error {
	s.use.Lock()
	defer s.use.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	if s.conn != nil {
		s.conn.release()
		s.conn = nil
	}

	return nil
}

type devtoolsConn struct {
	tabCtx      context.Context
	cancelAlloc context.CancelFunc
}

func dialDevTools(address string) (*devtoolsConn, error) {
	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(context.Background(), address)
	browserCtx, _ := chromedp.NewContext(allocCtx)

	conn := &devtoolsConn{cancelAlloc: cancelAlloc}

	targets, err := chromedp.Targets(browserCtx)
	if err != nil {
		conn.release()
		return nil, errors.Wrap(err, "list browser targets")
	}

	page := pickPage(targets)
	if page == nil {
		conn.release()
		return nil, ErrNoPageTarget
	}

	conn.tabCtx, _ = chromedp.NewContext(browserCtx, chromedp.WithTargetID(page.TargetID))

	// The first Run attaches the page; its event loop lives as long as tabCtx.
	if err := chromedp.Run(conn.tabCtx); err != nil {
		conn.release()
		return nil, errors.Wrap(err, "attach to page")
	}

	return conn, nil
}

// release detaches from the page and cancels the allocator. A cancelled tab
// context closes the target it is attached to, so the page is forgotten first.
func (c *devtoolsConn) release() {
	if c.tabCtx != nil {
		if tab := chromedp.FromContext(c.tabCtx); tab != nil && tab.Target != nil {
			ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
			_ = target.DetachFromTarget().WithSessionID(tab.Target.SessionID).Do(cdp.WithExecutor(ctx, tab.Browser))
			cancel()

			tab.Target = nil
		}
	}

	c.cancelAlloc()
}

func pickPage(targets []*target.Info) *target.Info {
	var fallback *target.Info

	for _, t := range targets {
		if t.Type != "page" {
			continue
		}

		if t.Attached {
			return t
		}

		if fallback == nil {
			fallback = t
		}
	}

	return fallback
}
