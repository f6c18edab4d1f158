package main

import (
	"flag"
	"log"
	"net"
	"os"
	"path"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"stepchess/pkg"
)

func main() {
	addr := flag.String("addr", pkg.ServerPort, "TCP address to host matches on")
	sshAddr := flag.String("ssh-addr", pkg.SshPort, "SSH address for terminal sessions")
	clientCmd := flag.String("client", "stepchess", "client binary SSH sessions run")
	hostKey := flag.String("host-key", defaultHostKey(), "SSH host key file")
	logPath := flag.String("log", "./stepchess-server.log", "path to log file")
	flag.Parse()

	pkg.InitLog(*logPath, "SERVER: ")
	log.Println("Server started")

	s, err := pkg.NewServer(*sshAddr, *clientCmd, *hostKey)
	if err != nil {
		color.Red("ssh setup failed: %v", err)
		os.Exit(1)
	}
	go s.CleanIdleMatches()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		color.Red("listen on %s failed: %v", *addr, err)
		os.Exit(1)
	}
	defer listener.Close()

	color.Green("matches on %s, ssh on %s", *addr, *sshAddr)

	var g errgroup.Group
	g.Go(func() error {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return err
			}
			go s.HandleConn(conn)
		}
	})
	g.Go(s.ListenAndServe)

	if err := g.Wait(); err != nil {
		color.Red("server stopped: %v", err)
		log.Fatal(err)
	}
}

func defaultHostKey() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "id_rsa"
	}
	return path.Join(homeDir, ".ssh", "id_rsa")
}
