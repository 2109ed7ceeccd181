package store

import (
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is a document identifier: the hex form of a 12-byte ObjectId.
type ID string

// NewID returns a fresh ObjectId-compatible identifier.
func NewID() ID {
	return ID(primitive.NewObjectID().Hex())
}

func (id ID) String() string { return string(id) }

// AsID reports whether v holds a document identifier and returns it.
// Plain strings are accepted when they are valid ObjectId hex.
func AsID(v any) (ID, bool) {
	switch t := v.(type) {
	case ID:
		return t, t != ""
	case primitive.ObjectID:
		return ID(t.Hex()), true
	case string:
		if primitive.IsValidObjectID(t) {
			return ID(t), true
		}
	}
	return "", false
}

// now returns the current UTC time truncated to the millisecond precision
// BSON dates carry.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// toBSON converts a document value into the types the BSON encoder should
// see: IDs become ObjectIds and nested documents become bson.M.
func toBSON(v any) any {
	switch t := v.(type) {
	case ID:
		if oid, err := primitive.ObjectIDFromHex(string(t)); err == nil {
			return oid
		}
		return string(t)
	case Document:
		return mapToBSON(t)
	case map[string]any:
		return mapToBSON(t)
	case Filter:
		return mapToBSON(t)
	case []ID:
		out := make(bson.A, len(t))
		for i := range t {
			out[i] = toBSON(t[i])
		}
		return out
	case []Document:
		out := make(bson.A, len(t))
		for i := range t {
			out[i] = toBSON(t[i])
		}
		return out
	case []any:
		out := make(bson.A, len(t))
		for i := range t {
			out[i] = toBSON(t[i])
		}
		return out
	default:
		return v
	}
}

func mapToBSON(m map[string]any) bson.M {
	out := make(bson.M, len(m))
	for k, v := range m {
		out[k] = toBSON(v)
	}
	return out
}

// fromBSON is the inverse of toBSON for decoded values. Integers collapse to
// int, dates to UTC time.Time, and arrays to []any.
func fromBSON(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return ID(t.Hex())
	case primitive.M:
		return mapFromBSON(t)
	case map[string]any:
		return mapFromBSON(t)
	case primitive.D:
		out := make(Document, len(t))
		for _, e := range t {
			out[e.Key] = fromBSON(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i := range t {
			out[i] = fromBSON(t[i])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = fromBSON(t[i])
		}
		return out
	case int32:
		return int(t)
	case int64:
		return int(t)
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}

func mapFromBSON(m map[string]any) Document {
	out := make(Document, len(m))
	for k, v := range m {
		out[k] = fromBSON(v)
	}
	return out
}

// normalize maps a caller-supplied value onto the shape it has after a
// store round trip.
func normalize(v any) any {
	return fromBSON(toBSON(v))
}

// matches reports whether doc satisfies filter.
func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		want = normalize(want)
		got, ok := doc[k]
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if reflect.DeepEqual(got, want) {
			continue
		}
		arr, isArr := got.([]any)
		if !isArr {
			return false
		}
		found := false
		for _, el := range arr {
			if reflect.DeepEqual(el, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
