package pkg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	MatchIdleTimeout  = 30 * time.Minute
	SshPort           = ":2222"
	ServerPort        = ":1998"
	MessageQueueSize  = 20
)

// Server hosts matches over raw TCP and wraps the terminal client behind SSH,
// so `ssh -p 2222 host` drops straight into a game.
type Server struct {
	*ssh.Server
	Matches map[string]*Match

	clientCmd string
	mu        sync.Mutex
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func (s *Server) sshHandle(session ssh.Session) {
	ptyReq, winCh, isPty := session.Pty()
	if !isPty {
		io.WriteString(session, "non-interactive terminals are not supported\n")
		session.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(session.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.clientCmd, "-connect", ServerPort)
	cmd.Env = append(session.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(session, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		session.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, session)
	}()
	io.Copy(session, f)

	f.Close()
	cmd.Wait()
}

// NewServer builds the SSH front. clientCmd is the client binary each SSH
// session runs; hostKeyPath is the server's SSH identity.
func NewServer(sshAddr, clientCmd, hostKeyPath string) (*Server, error) {
	server := &Server{
		Matches:   make(map[string]*Match),
		clientCmd: clientCmd,
	}
	s := &ssh.Server{
		Addr:        sshAddr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     server.sshHandle,
	}
	signer, err := loadHostKey(hostKeyPath)
	if err != nil {
		return nil, err
	}
	s.AddHostKey(signer)
	server.Server = s
	return server, nil
}

// loadHostKey parses the server's SSH identity up front so a bad key path
// fails at startup rather than on the first session.
func loadHostKey(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading host key: %w", err)
	}
	signer, err := gossh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %s: %w", path, err)
	}
	return signer, nil
}

// HandleConn reads the join request off a fresh TCP connection and seats it
// in the requested match, creating the match on first join.
func (s *Server) HandleConn(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		conn.Close()
		return
	}
	var messageTransport MessageTransport
	Decode(scanner.Bytes(), &messageTransport)
	if messageTransport.MsgType != TypeMessageConnect {
		log.Printf("Connection opened with %s, dropping", messageTransport.MsgType)
		conn.Close()
		return
	}
	var message MessageConnect
	Decode(messageTransport.Data, &message)
	s.AddConn(conn, message.MatchId, message.VsComputer)
}

// AddConn seats conn in the match with the given id. An empty id starts a
// fresh match.
func (s *Server) AddConn(conn net.Conn, matchId string, vsComputer bool) {
	s.mu.Lock()
	m, ok := s.Matches[matchId]
	if !ok {
		m = NewMatch(vsComputer)
		s.Matches[m.Id] = m
		log.Printf("New match %s (computer: %v)", m.Id, vsComputer)
	}
	s.mu.Unlock()
	m.AddConn(conn)
}

// CleanIdleMatches drops matches nobody has touched for MatchIdleTimeout.
func (s *Server) CleanIdleMatches() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		s.mu.Lock()
		for id, m := range s.Matches {
			if time.Since(m.LastActive) > MatchIdleTimeout {
				for _, p := range m.players() {
					p.Disconnect()
				}
				delete(s.Matches, id)
				log.Printf("Dropped idle match %s", id)
			}
		}
		s.mu.Unlock()
	}
}
