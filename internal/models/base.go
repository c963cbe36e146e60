package models

// Base carries the identifier shared by every stored entity. The embedded
// backend allocates ids monotonically; the remote service assigns its own and
// the adapter maps the document-native `_id` key onto this field.
type Base struct {
	ID uint `gorm:"primaryKey" json:"id"`
}

func (b *Base) EntityID() uint      { return b.ID }
func (b *Base) SetEntityID(id uint) { b.ID = id }

// Record is satisfied by a pointer to any entity embedding Base.
type Record[T any] interface {
	*T
	EntityID() uint
	SetEntityID(uint)
}

// Patch is a typed partial update. Nil fields leave the stored value untouched.
type Patch[T any] interface {
	Apply(*T)
}
