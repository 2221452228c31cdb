package domain

// Tag labels posts. Name is unique.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewTag returns an unsaved tag with the given name.
func NewTag(name string) *Tag {
	return &Tag{Name: name}
}

func (t *Tag) String() string { return t.Name }
