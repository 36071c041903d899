package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/txledger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	csvInput  = "csv input"
	csvReport = "csv report"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file
	// (except readme.md itself) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error: %v", err)
	}
	for _, title := range []string{"# Transactions file", "# Accounts report", "# Disputes", "# Configuration"} {
		if !strings.Contains(content, title) {
			t.Errorf("GetTopics(*) does not contain %q", title)
		}
	}
	if strings.Contains(content, "# txproc") {
		t.Error("GetTopics(*) should not contain the readme")
	}

	if _, err := GetTopics("input", "unknown"); err == nil {
		t.Error("GetTopics() expected an error for an unknown topic")
	}
}

// codeBlocks returns the content of fenced code blocks by info string.
func codeBlocks(t *testing.T, file string) []struct{ info, content string } {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []struct{ info, content string }
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, struct{ info, content string }{
			info:    string(fcb.Info.Segment.Value(content)),
			content: b.String(),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// TestDisputesExamples checks that each "csv input" example produces the
// following "csv report".
func TestDisputesExamples(t *testing.T) {
	blocks := codeBlocks(t, "disputes.md")
	examples := 0
	for i, b := range blocks {
		if b.info != csvInput {
			continue
		}
		if i+1 >= len(blocks) || blocks[i+1].info != csvReport {
			t.Fatalf("example #%d has no report", examples)
		}
		examples++

		e := txledger.NewEngine(nil)
		if err := e.Process(txledger.NewDecoder(strings.NewReader(b.content)).Transactions()); err != nil {
			t.Fatalf("example #%d: %v", examples, err)
		}
		if got, want := e.Ledger().Serialize(), blocks[i+1].content; got != want {
			t.Errorf("example #%d report mismatch.\nGot:\n%s\nWant:\n%s", examples, got, want)
		}
	}
	if examples == 0 {
		t.Error("no example found in disputes.md")
	}
}
