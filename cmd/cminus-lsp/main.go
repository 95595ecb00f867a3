// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"

	"cminus/internal/config"
	"cminus/internal/lsp"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

var version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	verbose := flag.Int("v", 1, "log verbosity")
	logFile := flag.String("log", "", "write logs to this file instead of stderr")
	flag.Parse()

	var logPath *string
	if *logFile != "" {
		logPath = logFile
	}
	commonlog.Configure(*verbose, logPath)
	log := commonlog.GetLogger("cminus.lsp")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	h := lsp.NewHandler(cfg, version)
	handler := protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsp.Name, false)

	log.Infof("starting %s language server %s", lsp.Name, version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err.Error())
		os.Exit(1)
	}
}
