package domain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Ref is a reference to another document. Data written through the old CMS
// stores relationships either as a bare id string or as a fully resolved
// (depth-populated) document; both shapes decode into the same Ref so that
// business logic only ever compares identifiers and never inspects the
// representation at the use site.
type Ref struct {
	ID string
}

// NewRef builds a reference to the document with the given id.
func NewRef(id string) Ref {
	return Ref{ID: id}
}

// MarshalBSONValue always writes the bare id string. Resolved documents are
// never persisted back; resolution happens on read only.
func (r Ref) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.ID)
}

// UnmarshalBSONValue accepts a string id, an ObjectID, or an embedded
// document carrying an _id field.
func (r *Ref) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		return bson.UnmarshalValue(t, data, &r.ID)
	case bsontype.ObjectID:
		raw := bson.RawValue{Type: t, Value: data}
		r.ID = raw.ObjectID().Hex()
		return nil
	case bsontype.EmbeddedDocument:
		id, err := bson.Raw(data).LookupErr("_id")
		if err != nil {
			return fmt.Errorf("ref: resolved document without _id: %w", err)
		}
		switch id.Type {
		case bsontype.String:
			r.ID = id.StringValue()
		case bsontype.ObjectID:
			r.ID = id.ObjectID().Hex()
		default:
			return fmt.Errorf("ref: unsupported _id type %s", id.Type)
		}
		return nil
	case bsontype.Null:
		r.ID = ""
		return nil
	default:
		return fmt.Errorf("ref: cannot decode BSON type %s", t)
	}
}

// IsZero reports whether the reference points nowhere.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return r.ID
}

// MarshalJSON renders the reference as its bare id.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts a bare id string.
func (r *Ref) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.ID)
}
