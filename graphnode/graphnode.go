package graphnode

// Entity is the common contract of every persisted record. An entity is
// addressed by its string ID within its table; Exists reports whether the
// last Load found a stored row.
type Entity interface {
	GetID() string
	SetID(id string)
	Exists() bool
	SetExists(exists bool)
}

type Base struct {
	ID     string `json:"id" db:"id"`
	exists bool
}

func NewBase(id string) Base {
	return Base{ID: id}
}

func (b *Base) GetID() string          { return b.ID }
func (b *Base) SetID(id string)        { b.ID = id }
func (b *Base) Exists() bool           { return b.exists }
func (b *Base) SetExists(exists bool)  { b.exists = exists }
