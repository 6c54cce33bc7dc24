package nav

// Kind discriminates the two entry variants.
type Kind int

const (
	KindItem Kind = iota
	KindGroup
)

func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "item"
}

// Entry is one sidebar entry: *Item or *Group.
type Entry interface {
	Kind() Kind
	entry()
}

// Item is a leaf link.
type Item struct {
	Label string
	Link  string
}

// Group is a labeled, ordered collection of entries.
type Group struct {
	Label     string
	Items     Entries
	Collapsed bool
	// Autogenerate asks the renderer to fill the group from a content directory.
	Autogenerate *Autogenerate
}

// Autogenerate names the content directory a group is generated from.
type Autogenerate struct {
	Directory string `json:"directory" yaml:"directory"`
	Collapsed bool   `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
}

// Entries is an ordered list of sidebar entries.
type Entries []Entry

func (*Item) Kind() Kind  { return KindItem }
func (*Item) entry()      {}
func (*Group) Kind() Kind { return KindGroup }
func (*Group) entry()     {}

// NewItem returns a link entry.
func NewItem(label, link string) *Item {
	return &Item{Label: label, Link: link}
}

// NewGroup returns a group holding entries in the given order.
func NewGroup(label string, entries ...Entry) *Group {
	return &Group{Label: label, Items: Entries(entries)}
}

// NewAutogenerated returns a group filled from the content directory dir.
func NewAutogenerated(label, dir string) *Group {
	return &Group{Label: label, Autogenerate: &Autogenerate{Directory: dir}}
}

// LabelOf returns the display label of e.
func LabelOf(e Entry) string {
	switch v := e.(type) {
	case *Item:
		return v.Label
	case *Group:
		return v.Label
	default:
		return ""
	}
}
