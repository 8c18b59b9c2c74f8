// satchel-server serves one inventory sandbox per SSH connection. Build:
//
//	go build -o satchel-server ./cmd/server
//
// Usage:
//
//	./satchel-server [--port 2222] [--key satchel_host_key]
//
// Then connect with:
//
//	ssh -t -p 2222 localhost
//
// Every SATCHEL_* variable understood by the sandbox applies here too; the
// flags override SATCHEL_SSH_PORT and SATCHEL_SSH_HOST_KEY.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"satchel/internal/config"
	"satchel/internal/game"
	internalssh "satchel/internal/ssh"
	"satchel/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitf("config: %v", err)
	}
	port := flag.Int("port", cfg.Port, "SSH server port")
	keyFile := flag.String("key", cfg.HostKeyPath, "Path to the PEM-encoded host key (generated if absent)")
	flag.Parse()
	cfg.Port, cfg.HostKeyPath = *port, *keyFile
	if err := cfg.Validate(); err != nil {
		exitf("config: %v", err)
	}

	level, _ := telemetry.ParseLevel(cfg.LogLevel)
	logger := telemetry.NewLogger(level, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("flush traces", "error", err)
		}
	}()

	gameCfg, err := cfg.Game()
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.HostKeyPath, logger)
	if err != nil {
		return err
	}

	h := newHub(gameCfg, cfg.MaxSessions, logger)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every sandbox is private and throwaway.
		HostSigners: []gossh.Signer{signer},
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("listening", "addr", srv.Addr, "max_sessions", cfg.MaxSessions)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", "open_sessions", h.open())
		h.quitAll()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return eg.Wait()
}

// ─── sessions ───────────────────────────────────────────────────────────────

// hub runs an independent sandbox for each SSH session, up to a fixed limit.
type hub struct {
	cfg   game.Config
	log   *slog.Logger
	slots chan struct{}

	mu    sync.Mutex
	games map[string]*game.Game
}

func newHub(cfg game.Config, maxSessions int, logger *slog.Logger) *hub {
	return &hub{
		cfg:   cfg,
		log:   logger,
		slots: make(chan struct{}, maxSessions),
		games: make(map[string]*game.Game),
	}
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the sandbox ends so the SSH session stays open.
func (h *hub) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "satchel needs a terminal. Connect with: ssh -t -p <port> <host>")
		_ = s.Exit(1)
		return
	}

	id := uuid.NewString()
	user := sanitizeName(s.User())
	if user == "" {
		user = "guest"
	}
	log := h.log.With("session_id", id, "user", user)

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The server is full. Try again later.")
		log.Warn("session rejected", "reason", "full")
		_ = s.Exit(1)
		return
	}

	_, span := telemetry.Tracer().Start(s.Context(), "ssh.session",
		trace.WithAttributes(
			attribute.String("session.id", id),
			attribute.String("user.name", user),
		))
	defer span.End()

	term, known := pickTerm(s.Environ())
	if !known {
		log.Warn("unsupported TERM, falling back", "term", term)
	}
	screen, err := newScreen(internalssh.NewSessionTty(s, pty, winCh), term)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "terminal setup")
		log.Error("terminal setup", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	cfg := h.cfg
	cfg.Seed = time.Now().UnixNano()
	g := game.NewWithScreen(screen, cfg, log)
	h.track(id, g)
	defer h.untrack(id)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-s.Context().Done():
			g.Quit()
		case <-done:
		}
	}()

	log.Info("sandbox started", "term", term, "width", pty.Window.Width, "height", pty.Window.Height)
	start := time.Now()
	g.Run()
	log.Info("sandbox ended", "duration", time.Since(start).Round(time.Millisecond))
}

func (h *hub) track(id string, g *game.Game) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.games[id] = g
}

func (h *hub) untrack(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.games, id)
}

func (h *hub) open() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.games)
}

// quitAll asks every running sandbox to stop.
func (h *hub) quitAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, g := range h.games {
		g.Quit()
	}
}

// ─── terminal ───────────────────────────────────────────────────────────────

// allowedTerms are the terminal types we hand to terminfo. Anything else is
// replaced by the default so client input never picks the database entry.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func pickTerm(environ []string) (term string, known bool) {
	term = internalssh.Term(environ)
	if !allowedTerms[term] {
		return internalssh.DefaultTerm, false
	}
	return term, true
}

// termMu serializes the TERM swap around screen creation; terminfo lookup
// reads it from the process environment.
var termMu sync.Mutex

func newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// maxNameBytes bounds user names in logs and spans.
const maxNameBytes = 16

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "satchel server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
