package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gliderlabs/ssh"

	"cityforge/internal/build"
	"cityforge/internal/render"
	"cityforge/internal/wfc"
)

// SSHServer serves interactive city previews over SSH. Each session owns
// its own generation state, so concurrent viewers never share grids.
type SSHServer struct {
	addr     string
	hostKey  string
	baseSeed int
	catalog  *wfc.Catalog
	sessions atomic.Int64
}

// NewSSHServer creates a server bound to addr. Sessions derive their seeds
// from baseSeed plus a session counter.
func NewSSHServer(addr, hostKey string, baseSeed int, catalog *wfc.Catalog) *SSHServer {
	return &SSHServer{addr: addr, hostKey: hostKey, baseSeed: baseSeed, catalog: catalog}
}

// Start begins listening for SSH connections. Blocks.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}
	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

type command int

const (
	cmdQuit command = iota
	cmdReroll
	cmdNextGenerator
	cmdRedraw
)

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	user := sess.User()
	if user == "" {
		user = "anonymous"
	}
	log.Printf("Viewer connected: %s", user)
	defer log.Printf("Viewer disconnected: %s", user)

	seed := s.baseSeed + int(s.sessions.Add(1))
	generators := build.GeneratorNames()
	genIdx := 0

	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	cmds := make(chan command, 8)

	go func() {
		buf := make([]byte, 16)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				cmds <- cmdQuit
				return
			}
			for _, b := range buf[:n] {
				switch b {
				case 'q', 'Q', 3: // Ctrl-C
					cmds <- cmdQuit
					return
				case 'n', 'N':
					cmds <- cmdReroll
				case 'g', 'G':
					cmds <- cmdNextGenerator
				}
			}
		}
	}()

	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case cmds <- cmdRedraw:
			default:
			}
		}
	}()

	draw := func() {
		opts := build.DefaultOptions(seed)
		opts.Generator = generators[genIdx]
		opts.Catalog = s.catalog
		snap, err := build.City(opts)
		if err != nil {
			fmt.Fprintf(sess, "generation error: %v\r\n", err)
			return
		}
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()

		status := fmt.Sprintf(" %s | seed %d | [n]ew seed [g]enerator [q]uit ",
			generators[genIdx], seed)
		io.WriteString(sess, render.Preview(snap.Plan, snap.Width, snap.Height, w, h, status))
	}

	draw()
	for cmd := range cmds {
		switch cmd {
		case cmdQuit:
			return
		case cmdReroll:
			seed++
		case cmdNextGenerator:
			genIdx = (genIdx + 1) % len(generators)
		case cmdRedraw:
		}
		draw()
	}
}
