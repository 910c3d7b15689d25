// Package actor is a fixed-layout view onto the host's live player actor.
// The actor block is owned by the host; this package never allocates it and
// only touches the bytes of the fields declared below.
package actor

// Byte offsets of the modeled fields, relative to the actor base. The host
// stores every field big-endian.
const (
	OffsetVtable          = 0x60
	OffsetAngle           = 0xB8
	OffsetPos             = 0xC0
	OffsetForwardSpeed    = 0x144
	OffsetForwardAccel    = 0x148
	OffsetForwardMaxSpeed = 0x14C
	OffsetVelocity        = 0x150
	OffsetStamina         = 0x4498

	// Size is the smallest block that covers every modeled field. The host
	// object continues past it.
	Size = 0x449C
)

// FieldID names a modeled field.
type FieldID int

const (
	FieldVtable FieldID = iota
	FieldAngle
	FieldPos
	FieldForwardSpeed
	FieldForwardAccel
	FieldForwardMaxSpeed
	FieldVelocity
	FieldStamina
	FieldCount
)

// Field describes where a modeled field lives.
type Field struct {
	ID       FieldID
	Name     string
	Offset   int
	Size     int
	Writable bool
}

// End is the first byte past the field.
func (f Field) End() int { return f.Offset + f.Size }

// fields is ordered by offset.
var fields = [FieldCount]Field{
	{ID: FieldVtable, Name: "vtable", Offset: OffsetVtable, Size: 4},
	{ID: FieldAngle, Name: "angle", Offset: OffsetAngle, Size: 6, Writable: true},
	{ID: FieldPos, Name: "pos", Offset: OffsetPos, Size: 12, Writable: true},
	{ID: FieldForwardSpeed, Name: "forward_speed", Offset: OffsetForwardSpeed, Size: 4, Writable: true},
	{ID: FieldForwardAccel, Name: "forward_accel", Offset: OffsetForwardAccel, Size: 4, Writable: true},
	{ID: FieldForwardMaxSpeed, Name: "forward_max_speed", Offset: OffsetForwardMaxSpeed, Size: 4, Writable: true},
	{ID: FieldVelocity, Name: "velocity", Offset: OffsetVelocity, Size: 12, Writable: true},
	{ID: FieldStamina, Name: "stamina", Offset: OffsetStamina, Size: 4, Writable: true},
}

// Fields returns the declared field table, ordered by offset.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields[:])
	return out
}

// FieldByID returns the layout entry for id.
func FieldByID(id FieldID) (Field, bool) {
	if id < 0 || id >= FieldCount {
		return Field{}, false
	}
	return fields[id], true
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.End - s.Start }

// OpaqueSpans returns every byte range inside [0, Size) that no declared
// field covers.
func OpaqueSpans() []Span {
	var spans []Span
	pos := 0
	for _, f := range fields {
		if f.Offset > pos {
			spans = append(spans, Span{Start: pos, End: f.Offset})
		}
		if f.End() > pos {
			pos = f.End()
		}
	}
	if pos < Size {
		spans = append(spans, Span{Start: pos, End: Size})
	}
	return spans
}
