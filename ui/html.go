package ui

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
	"github.com/chibuka/leetcode-cli/ui/theme"
)

const descriptionSection = "PROBLEM_DESCRIPTION"

// ToANSI renders an HTML fragment of a problem body as terminal text. Tags
// with a PROBLEM_DESCRIPTION.html_<tag> rule are styled, other tags only
// contribute their text.
func ToANSI(fragment string, b *theme.Bundle) (string, error) {
	nodes, err := html.ParseFragment(
		strings.NewReader(fragment),
		&html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body},
	)
	if err != nil {
		return "", fmt.Errorf("%w, problem html, %w", lcerrors.ErrDecode, err)
	}

	w := &ansiWriter{bundle: b}
	for _, n := range nodes {
		w.walk(n)
	}
	return w.sb.String(), nil
}

type ansiWriter struct {
	bundle *theme.Bundle
	sb     strings.Builder
	stack  []theme.Style
}

func (w *ansiWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.sb.WriteString(strings.ReplaceAll(n.Data, "\u00a0", " "))
	case html.ElementNode:
		w.element(n)
	default:
		w.children(n)
	}
}

func (w *ansiWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *ansiWriter) element(n *html.Node) {
	switch n.DataAtom {
	case atom.Sup:
		w.sb.WriteString("^")
		w.children(n)
		return
	case atom.Sub:
		w.sb.WriteString("_")
		w.children(n)
		return
	case atom.Br:
		w.sb.WriteString("\n")
		return
	case atom.P:
		if onlyNbsp(n) {
			return
		}
	}

	style, ok := w.bundle.Lookup(descriptionSection, "html_"+n.Data)
	if !ok {
		w.children(n)
		return
	}

	w.sb.WriteString(style.ANSI)
	w.sb.WriteString(style.Left)
	w.stack = append(w.stack, style)
	w.children(n)
	w.stack = w.stack[:len(w.stack)-1]
	w.sb.WriteString(style.Right)

	if style.ANSI != "" {
		// the reset clears every attribute, so ancestors are re-applied
		w.sb.WriteString(style.Reset)
		for _, outer := range w.stack {
			w.sb.WriteString(outer.ANSI)
		}
	}
}

// onlyNbsp reports whether the text of n is nothing but non-breaking spaces.
func onlyNbsp(n *html.Node) bool {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	text := strings.Trim(sb.String(), " \t\r\n")
	return text != "" && strings.Trim(text, "\u00a0") == ""
}
