package leetcode

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

// Content is the structured form of a problem body.
type Content struct {
	Description string
	Examples    []Example
	Constraints []string
}

// block is one top-level element of the body and where it starts in the source.
type block struct {
	start int
	node  *html.Node
}

var (
	exampleHeader = regexp.MustCompile(`(?i)^example\s*\d*\s*:?$`)
	paramStart    = regexp.MustCompile(`^\s*[A-Za-z_]\w*\s*=`)
)

// ParseContent splits a problem body into description, examples and
// constraints. The description is the source text before the first example
// or constraints header, with only surrounding newlines trimmed.
func ParseContent(content string) (*Content, error) {
	blocks, err := topLevelBlocks(content)
	if err != nil {
		return nil, err
	}

	out := &Content{}
	stop := -1
	markStop := func(b block) {
		if stop < 0 {
			stop = b.start
		}
	}

	pendingTitle := ""
	for i, b := range blocks {
		if title, ok := exampleTitle(b.node); ok {
			markStop(b)
			pendingTitle = title
			continue
		}

		if isConstraintsHeader(b.node) {
			markStop(b)
			for _, next := range blocks[i+1:] {
				if next.node.DataAtom == atom.Ul {
					out.Constraints = listItems(next.node)
					break
				}
			}
			continue
		}

		if isExampleBody(b.node) && (pendingTitle != "" || hasFieldLabel(b.node)) {
			markStop(b)
			title := pendingTitle
			if title == "" {
				title = fmt.Sprintf("Example %d", len(out.Examples)+1)
			}
			out.Examples = append(out.Examples, parseExample(b.node, title))
			pendingTitle = ""
		}
	}

	description := content
	if stop >= 0 {
		description = content[:stop]
	}
	out.Description = strings.Trim(description, "\r\n")
	return out, nil
}

// topLevelBlocks parses content as a body fragment, so implicitly closed
// elements end where a browser would end them, and pairs every top-level
// element with the offset of its start tag in the source.
func topLevelBlocks(content string) ([]block, error) {
	nodes, err := html.ParseFragment(
		strings.NewReader(content),
		&html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body},
	)
	if err != nil {
		return nil, fmt.Errorf("%w, problem content, %w", lcerrors.ErrDecode, err)
	}
	tags, err := startTags(content)
	if err != nil {
		return nil, err
	}

	var elems []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			elems = append(elems, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	offsets := alignStartTags(elems, tags)

	var blocks []block
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		// elements the parser made up (a stray </p>, an implied tbody) have no source
		start, ok := offsets[n]
		if !ok {
			continue
		}
		blocks = append(blocks, block{start: start, node: n})
	}
	return blocks, nil
}

type sourceTag struct {
	name   string
	offset int
}

// startTags lists the start tags of content in source order with their byte offsets.
func startTags(content string) ([]sourceTag, error) {
	z := html.NewTokenizer(strings.NewReader(content))

	var tags []sourceTag
	offset := 0
	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return tags, nil
			}
			return nil, fmt.Errorf("%w, problem content, %w", lcerrors.ErrDecode, z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tags = append(tags, sourceTag{name: string(name), offset: start})
		}
	}
}

// alignStartTags matches parsed elements, in document order, to source start
// tags along a longest common subsequence of tag names. Elements the parser
// inserted and tags it dropped stay unmatched. On a tie an empty element
// without attributes is assumed inserted.
func alignStartTags(elems []*html.Node, tags []sourceTag) map[*html.Node]int {
	n, m := len(elems), len(tags)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if elems[i].Data == tags[j].name {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	offsets := make(map[*html.Node]int, n)
	for i, j := 0, 0; i < n && j < m; {
		e := elems[i]
		switch {
		case e.Data == tags[j].name && !(isBare(e) && lcs[i+1][j] == lcs[i][j]):
			offsets[e] = tags[j].offset
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			i++
		default:
			j++
		}
	}
	return offsets
}

func isBare(n *html.Node) bool {
	return n.FirstChild == nil && len(n.Attr) == 0
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func isBold(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Strong || n.DataAtom == atom.B)
}

// boldTexts returns the trimmed text of every <strong>/<b> at or below n.
func boldTexts(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isBold(n) {
			out = append(out, strings.TrimSpace(textContent(n)))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func exampleTitle(n *html.Node) (string, bool) {
	if n.DataAtom != atom.P && !isBold(n) {
		return "", false
	}
	for _, text := range boldTexts(n) {
		text = strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))
		if exampleHeader.MatchString(text) {
			return strings.TrimSuffix(text, ":"), true
		}
	}
	return "", false
}

func isConstraintsHeader(n *html.Node) bool {
	if n.DataAtom != atom.P && !isBold(n) {
		return false
	}
	for _, text := range boldTexts(n) {
		if strings.Contains(text, "Constraints") {
			return true
		}
	}
	return false
}

func isExampleBody(n *html.Node) bool {
	return n.DataAtom == atom.Pre || (n.DataAtom == atom.Div && hasClass(n, "example-block"))
}

func fieldLabel(n *html.Node) string {
	if !isBold(n) {
		return ""
	}
	text := strings.ToLower(strings.TrimSpace(textContent(n)))
	text = strings.TrimSpace(strings.TrimSuffix(text, ":"))
	switch text {
	case "input", "output", "explanation":
		return text
	}
	return ""
}

func hasFieldLabel(n *html.Node) bool {
	found := false
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if fieldLabel(n) == "input" {
			found = true
			return
		}
		for c := n.FirstChild; c != nil && !found; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func renderNode(w io.Writer, n *html.Node) {
	_ = html.Render(w, n)
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&buf, c)
	}
	return buf.String()
}

func listItems(ul *html.Node) []string {
	var items []string
	for c := ul.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			items = append(items, strings.TrimSpace(innerHTML(c)))
		}
	}
	return items
}

// exampleFields accumulates the HTML following each Input/Output/Explanation label.
type exampleFields struct {
	current string
	fields  map[string]*strings.Builder
}

func (f *exampleFields) writer() io.Writer {
	if f.current == "" {
		return io.Discard
	}
	sb, ok := f.fields[f.current]
	if !ok {
		sb = &strings.Builder{}
		f.fields[f.current] = sb
	}
	return sb
}

func (f *exampleFields) get(name string) string {
	sb, ok := f.fields[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(sb.String())
}

func (f *exampleFields) collect(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if label := fieldLabel(c); label != "" {
			f.current = label
			continue
		}
		if c.Type == html.ElementNode {
			switch {
			case c.DataAtom == atom.P || c.DataAtom == atom.Div:
				f.collect(c)
				_, _ = io.WriteString(f.writer(), "\n")
				continue
			case c.DataAtom == atom.Span && hasClass(c, "example-io"):
				f.collect(c)
				continue
			}
		}
		renderNode(f.writer(), c)
	}
}

func parseExample(n *html.Node, title string) Example {
	fields := &exampleFields{fields: make(map[string]*strings.Builder)}
	fields.collect(n)

	ex := Example{
		Title:       title,
		Output:      fields.get("output"),
		Explanation: fields.get("explanation"),
	}
	if input := fields.get("input"); input != "" {
		ex.Input = splitParams(input)
	}
	return ex
}

// splitParams splits "a = [1,2], b = 3" on the commas that start a new
// "name =" assignment outside of brackets.
func splitParams(input string) []string {
	var (
		parts []string
		depth int
		last  int
	)
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 && paramStart.MatchString(input[i+1:]) {
				parts = append(parts, strings.TrimSpace(input[last:i]))
				last = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(input[last:]))
	return parts
}
