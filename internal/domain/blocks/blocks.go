// Package blocks models the CMS rich-text block format as a tagged union
// with an explicit plain-text renderer per variant.
package blocks

import (
	"encoding/json"
	"strings"
)

type Block interface {
	BlockType() string
	PlainText() string
}

type Paragraph struct {
	Text string
}

func (Paragraph) BlockType() string { return "paragraph" }
func (p Paragraph) PlainText() string { return p.Text }

type Heading struct {
	Level int
	Text  string
}

func (Heading) BlockType() string { return "heading" }
func (h Heading) PlainText() string { return h.Text }

type List struct {
	Ordered bool
	Items   []string
}

func (List) BlockType() string { return "list" }
func (l List) PlainText() string {
	return strings.Join(l.Items, "\n")
}

// BlockList decodes either the CMS block array or a bare string; a bare
// string becomes a single paragraph. Unknown block types are skipped.
type BlockList []Block

func (b BlockList) PlainText() string {
	parts := make([]string, 0, len(b))
	for _, blk := range b {
		t := strings.TrimSpace(blk.PlainText())
		if t == "" {
			continue
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, "\n\n")
}

type wireChild struct {
	Type     string      `json:"type"`
	Text     string      `json:"text"`
	Children []wireChild `json:"children"`
}

type wireBlock struct {
	Type     string      `json:"type"`
	Level    int         `json:"level"`
	Format   string      `json:"format"`
	Children []wireChild `json:"children"`
}

func (b *BlockList) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*b = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*b = nil
			return nil
		}
		*b = BlockList{Paragraph{Text: s}}
		return nil
	}

	var raw []wireBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(BlockList, 0, len(raw))
	for _, wb := range raw {
		switch wb.Type {
		case "paragraph":
			out = append(out, Paragraph{Text: childText(wb.Children)})
		case "heading":
			level := wb.Level
			if level <= 0 {
				level = 1
			}
			out = append(out, Heading{Level: level, Text: childText(wb.Children)})
		case "list":
			items := make([]string, 0, len(wb.Children))
			for _, item := range wb.Children {
				t := childText(item.Children)
				if t == "" {
					t = item.Text
				}
				if t == "" {
					continue
				}
				items = append(items, t)
			}
			out = append(out, List{Ordered: wb.Format == "ordered", Items: items})
		}
	}
	*b = out
	return nil
}

func (b BlockList) MarshalJSON() ([]byte, error) {
	raw := make([]wireBlock, 0, len(b))
	for _, blk := range b {
		switch v := blk.(type) {
		case Paragraph:
			raw = append(raw, wireBlock{Type: "paragraph", Children: textChildren(v.Text)})
		case Heading:
			raw = append(raw, wireBlock{Type: "heading", Level: v.Level, Children: textChildren(v.Text)})
		case List:
			format := "unordered"
			if v.Ordered {
				format = "ordered"
			}
			children := make([]wireChild, 0, len(v.Items))
			for _, item := range v.Items {
				children = append(children, wireChild{Type: "list-item", Children: textChildren(item)})
			}
			raw = append(raw, wireBlock{Type: "list", Format: format, Children: children})
		}
	}
	return json.Marshal(raw)
}

func childText(children []wireChild) string {
	var sb strings.Builder
	for _, c := range children {
		if c.Text != "" {
			sb.WriteString(c.Text)
			continue
		}
		if len(c.Children) > 0 {
			sb.WriteString(childText(c.Children))
		}
	}
	return sb.String()
}

func textChildren(text string) []wireChild {
	return []wireChild{{Type: "text", Text: text}}
}
