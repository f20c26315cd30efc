package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/sexpr/debug"
	"github.com/signadot/sexpr/langdef"
	"github.com/signadot/sexpr/syntax"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const lsName = "sexpr-lsp"

var (
	version = "0.0.1"
)

type Config struct {
	Grammar string `cli:"name=g aliases=grammar desc='grammar description file'"`
	Patch   string `cli:"name=patch desc='json patch file applied to the grammar description'"`
	Gops    bool   `cli:"name=gops desc='start a gops agent'"`

	Cmd *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, lsName).
		WithSynopsis("sexpr-lsp [-g grammar] [-patch patch] [-gops]").
		WithDescription("sexpr-lsp serves the language server protocol over stdio.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lspMain(cfg, cc, args)
		})
}

func lspMain(cfg *Config, cc *cli.Context, args []string) error {
	_, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	g, err := cfg.graph()
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := NewServer(g, logger())
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, handler)
	<-conn.Done()
	return conn.Err()
}

func (cfg *Config) graph() (*syntax.Graph, error) {
	desc, err := langdef.LoadWithPatchFile(cfg.Grammar, cfg.Patch)
	if err != nil {
		return nil, err
	}
	return desc.Graph()
}

// logger logs to stderr when SEXPR_DEBUG_LSP is set; stdout carries the
// protocol.
func logger() *slog.Logger {
	if debug.LSP() {
		return debug.Logger()
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
