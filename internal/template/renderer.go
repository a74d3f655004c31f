package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"regexp"
	"text/template"
	"text/template/parse"

	"github.com/Masterminds/sprig/v3"
)

// localFuncs are helpers layered over sprig's text function map.
var localFuncs = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
}

// templateFuncMap returns sprig's TxtFuncMap plus localFuncs.
func templateFuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	maps.Copy(funcs, localFuncs)
	return funcs
}

// unexpandedTokenPattern detects leftover template tokens in template text.
// Matches {{ .X }} actions and EJS <% %> tags.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}|<%[=-]?[^%]*%>`)

// Renderer renders text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the source FS and executes it
	// with data. Returns ErrUnexpandedToken if the literal template text
	// carries a foreign token and ErrMissingTemplateKey if execution fails
	// on a missing key. Data values are never scanned.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys  fs.FS
	funcs template.FuncMap
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys, funcs: templateFuncMap()}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(r.funcs).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	if tok := findUnexpandedToken(tmpl); tok != "" {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, tok, templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.Bytes(), nil
}

// findUnexpandedToken returns the first foreign token in the literal text of
// tmpl and its associated templates, or "".
func findUnexpandedToken(tmpl *template.Template) string {
	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		if tok := scanNode(t.Tree.Root); tok != "" {
			return tok
		}
	}
	return ""
}

func scanNode(n parse.Node) string {
	switch n := n.(type) {
	case *parse.TextNode:
		return string(unexpandedTokenPattern.Find(n.Text))
	case *parse.ListNode:
		if n == nil {
			return ""
		}
		for _, child := range n.Nodes {
			if tok := scanNode(child); tok != "" {
				return tok
			}
		}
	case *parse.IfNode:
		return scanBranch(&n.BranchNode)
	case *parse.RangeNode:
		return scanBranch(&n.BranchNode)
	case *parse.WithNode:
		return scanBranch(&n.BranchNode)
	}
	return ""
}

func scanBranch(b *parse.BranchNode) string {
	if tok := scanNode(b.List); tok != "" {
		return tok
	}
	return scanNode(b.ElseList)
}
