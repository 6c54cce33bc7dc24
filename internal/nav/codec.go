package nav

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireEntry is the on-disk shape shared by items and groups. An entry with a
// link is an item; anything else is a group.
type wireEntry struct {
	Label        string        `json:"label" yaml:"label"`
	Link         *string       `json:"link,omitempty" yaml:"link,omitempty"`
	Items        *Entries      `json:"items,omitempty" yaml:"items,omitempty"`
	Collapsed    bool          `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Autogenerate *Autogenerate `json:"autogenerate,omitempty" yaml:"autogenerate,omitempty"`
}

func toWire(entries Entries) []wireEntry {
	out := make([]wireEntry, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case *Item:
			link := v.Link
			out = append(out, wireEntry{Label: v.Label, Link: &link})
		case *Group:
			w := wireEntry{Label: v.Label, Collapsed: v.Collapsed, Autogenerate: v.Autogenerate}
			if v.Autogenerate == nil || len(v.Items) > 0 {
				items := v.Items
				if items == nil {
					items = Entries{}
				}
				w.Items = &items
			}
			out = append(out, w)
		}
	}
	return out
}

func fromWire(in []wireEntry) (Entries, error) {
	out := make(Entries, 0, len(in))
	for i, w := range in {
		if w.Link != nil {
			if w.Items != nil || w.Autogenerate != nil {
				return nil, fmt.Errorf("entry %d (%q): an entry has either a link or items, not both", i, w.Label)
			}
			out = append(out, &Item{Label: w.Label, Link: *w.Link})
			continue
		}
		g := &Group{Label: w.Label, Collapsed: w.Collapsed, Autogenerate: w.Autogenerate}
		// An empty items list decodes to nil, as NewGroup builds it.
		if w.Items != nil && len(*w.Items) > 0 {
			g.Items = *w.Items
		}
		out = append(out, g)
	}
	return out, nil
}

// MarshalJSON encodes entries in the Starlight sidebar shape.
func (es Entries) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(es))
}

// UnmarshalJSON decodes the Starlight sidebar shape, preserving order.
func (es *Entries) UnmarshalJSON(data []byte) error {
	var wire []wireEntry
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	decoded, err := fromWire(wire)
	if err != nil {
		return err
	}
	*es = decoded
	return nil
}

// MarshalYAML encodes entries with the same keys as the JSON form.
func (es Entries) MarshalYAML() (any, error) {
	return toWire(es), nil
}

// UnmarshalYAML decodes entries from a YAML sequence.
func (es *Entries) UnmarshalYAML(node *yaml.Node) error {
	var wire []wireEntry
	if err := node.Decode(&wire); err != nil {
		return err
	}
	decoded, err := fromWire(wire)
	if err != nil {
		return err
	}
	*es = decoded
	return nil
}
