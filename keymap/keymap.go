// Package keymap reads and writes shortcut modes as YAML:
//
//	modes:
//	  - title: Editor
//	    shortcuts:
//	      - key: ctrl+s             # joined form
//	        title: Save
//	      - key: [ctrl, shift, z]   # sequence form
//	        titles: [Redo]
package keymap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/markovic-nikola/keyhint/shortcut"
)

type file struct {
	Modes []modeDoc `yaml:"modes"`
}

type modeDoc struct {
	Title     string        `yaml:"title"`
	Shortcuts []shortcutDoc `yaml:"shortcuts"`
}

type shortcutDoc struct {
	Key    keyDoc   `yaml:"key"`
	Title  string   `yaml:"title,omitempty"`
	Titles []string `yaml:"titles,omitempty"`
}

// keyDoc carries the key in whichever form the document used.
type keyDoc struct {
	key shortcut.Key
}

func (k *keyDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		k.key = shortcut.Joined(node.Value)
		return nil
	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return fmt.Errorf("line %d: key tokens: %w", node.Line, err)
		}
		k.key = shortcut.Sequence(tokens...)
		return nil
	}
	return fmt.Errorf("line %d: key must be a string or a list of tokens", node.Line)
}

func (k keyDoc) MarshalYAML() (any, error) {
	if k.key.IsSequence() {
		node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, t := range k.key.Tokens() {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: t})
		}
		return node, nil
	}
	return k.key.Text(), nil
}

// Parse decodes a keymap document. Modes repeating a title are merged into
// the first one. Shortcuts are otherwise returned as written; the popup
// normalizes titles itself.
func Parse(data []byte) ([]shortcut.Mode, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}

	modes := make([]shortcut.Mode, 0, len(f.Modes))
	for _, md := range f.Modes {
		m := shortcut.Mode{Title: md.Title}
		for _, sd := range md.Shortcuts {
			m.Shortcuts = append(m.Shortcuts, shortcut.Shortcut{
				Key:    sd.Key.key,
				Title:  sd.Title,
				Titles: sd.Titles,
			})
		}
		modes = append(modes, m)
	}
	return shortcut.MergeModes(modes), nil
}

func Load(path string) ([]shortcut.Mode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Marshal encodes modes as a keymap document that Parse reads back.
func Marshal(modes []shortcut.Mode) ([]byte, error) {
	f := file{Modes: make([]modeDoc, 0, len(modes))}
	for _, m := range modes {
		md := modeDoc{Title: m.Title}
		for _, s := range m.Shortcuts {
			md.Shortcuts = append(md.Shortcuts, shortcutDoc{
				Key:    keyDoc{key: s.Key},
				Title:  s.Title,
				Titles: s.Titles,
			})
		}
		f.Modes = append(f.Modes, md)
	}
	return yaml.Marshal(f)
}
