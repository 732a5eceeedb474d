package server

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/chazu/celstep/compiler"
	"github.com/chazu/celstep/vm"

	_ "github.com/tliron/commonlog/simple"
)

const lspName = "celstep-lsp"

var lspLog = commonlog.GetLogger("celstep.lsp")

// LspServer offers parse diagnostics, hover evaluation and keyword
// completion for expression documents.
type LspServer struct {
	maxDepth int

	mu   sync.Mutex
	docs map[string]string // URI → full document content

	handler protocol.Handler
	server  *glspserver.Server
	version string
}

// NewLSP creates a new LSP server. maxDepth bounds expression nesting as in
// compiler.ParseWithDepth.
func NewLSP(maxDepth int) *LspServer {
	if maxDepth <= 0 {
		maxDepth = compiler.DefaultMaxDepth
	}
	s := &LspServer{
		maxDepth: maxDepth,
		docs:     make(map[string]string),
		version:  "0.1.0",
	}

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentCompletion: s.textDocumentCompletion,
		TextDocumentHover:      s.textDocumentHover,
	}

	s.server = glspserver.NewServer(&s.handler, lspName, false)

	return s
}

// Run starts the LSP server on stdio. Blocks until the client disconnects.
func (s *LspServer) Run() error {
	return s.server.RunStdio()
}

// --- LSP lifecycle handlers ---

func (s *LspServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	lspLog.Info("celstep LSP initializing")

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"."},
	}

	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lspName,
			Version: &s.version,
		},
	}, nil
}

func (s *LspServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *LspServer) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *LspServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// --- Document synchronization ---

func (s *LspServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	text := params.TextDocument.Text

	s.mu.Lock()
	s.docs[string(uri)] = text
	s.mu.Unlock()

	s.publishDiagnostics(ctx, uri, text)
	return nil
}

func (s *LspServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	// With Full sync, the last change event contains the full text
	if len(params.ContentChanges) > 0 {
		last := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := last.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.mu.Lock()
			s.docs[string(uri)] = whole.Text
			s.mu.Unlock()

			s.publishDiagnostics(ctx, uri, whole.Text)
		}
	}
	return nil
}

func (s *LspServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	delete(s.docs, string(uri))
	s.mu.Unlock()

	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// --- Language features ---

func (s *LspServer) document(uri protocol.DocumentUri) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.docs[string(uri)]
	return text, ok
}

func (s *LspServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	text, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return complete(extractPrefix(text, params.Position), afterPeriod(text, params.Position)), nil
}

func (s *LspServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return s.hover(text, offsetAt(text, params.Position)), nil
}

// complete offers the keywords, or after a period the index method, that
// start with prefix.
func complete(prefix string, member bool) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	if member {
		if strings.HasPrefix("get", prefix) {
			kind := protocol.CompletionItemKindMethod
			detail := "index lookup: x.get(key) is x[key]"
			label := "get"
			items = append(items, protocol.CompletionItem{
				Label:      label,
				Kind:       &kind,
				Detail:     &detail,
				InsertText: &label,
			})
		}
		return items
	}
	for _, kw := range compiler.Keywords() {
		if prefix == "" || !strings.HasPrefix(kw, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindKeyword
		detail := "keyword"
		label := kw
		items = append(items, protocol.CompletionItem{
			Label:      label,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &label,
		})
	}
	return items
}

// hover shows the subexpression under the cursor, its value when evaluated
// on its own, and its instructions.
func (s *LspServer) hover(text string, offset int) *protocol.Hover {
	root, err := compiler.ParseWithDepth(text, s.maxDepth)
	if err != nil {
		return nil
	}
	node := compiler.NodeAt(root, offset)
	if node == nil {
		return nil
	}

	code := compiler.Linearize(node)
	result := vm.New(code).Run()

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** `%s`\n\n", node.Op(), compiler.Format(node))
	fmt.Fprintf(&b, "= `%s`\n\n", result)
	b.WriteString("```\n")
	b.WriteString(vm.Disassemble(code))
	b.WriteString("```\n")

	span := node.Span()
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: b.String(),
		},
		Range: &protocol.Range{
			Start: lspPosition(span.Start),
			End:   lspPosition(span.End),
		},
	}
}

// --- Diagnostics ---

func (s *LspServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	diagnostics := s.diagnostics(text)
	lspLog.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (s *LspServer) diagnostics(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	_, err := compiler.ParseWithDepth(text, s.maxDepth)
	if err == nil {
		return diagnostics
	}
	perr, ok := err.(*compiler.ParseError)
	if !ok {
		return diagnostics
	}

	span := perr.Span()
	end := lspPosition(span.End)
	if span.End.Offset == span.Start.Offset {
		end.Character++
	}
	severity := protocol.DiagnosticSeverityError
	source := lspName
	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: lspPosition(span.Start),
			End:   end,
		},
		Severity: &severity,
		Source:   &source,
		Message:  perr.Error(),
	})
}

// --- Text position helpers ---

// lspPosition converts a 1-based source position to a 0-based LSP one.
func lspPosition(p compiler.Position) protocol.Position {
	line, col := p.Line-1, p.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}

// offsetAt converts an LSP position to a byte offset, counting characters
// as runes.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}
	for n := protocol.UInteger(0); n < pos.Character && offset < len(text); n++ {
		if text[offset] == '\n' {
			break
		}
		_, size := utf8.DecodeRuneInString(text[offset:])
		offset += size
	}
	return offset
}

// extractPrefix returns the word fragment before the cursor for completion.
func extractPrefix(text string, pos protocol.Position) string {
	end := offsetAt(text, pos)
	start := end
	for start > 0 {
		ch, size := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			start -= size
		} else {
			break
		}
	}
	return text[start:end]
}

// afterPeriod reports whether the word before the cursor follows a '.'.
func afterPeriod(text string, pos protocol.Position) bool {
	start := offsetAt(text, pos) - len(extractPrefix(text, pos))
	return start > 0 && text[start-1] == '.'
}

func boolPtr(b bool) *bool {
	return &b
}
