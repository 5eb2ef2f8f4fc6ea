// Package memstore is an in-memory database.Collection used by tests.
// It evaluates the narrow filter/update dialect the action layer produces:
// field equality, $or, $regex, $in, $ne, $gte, $set, $inc and $setOnInsert.
package memstore

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio/database"
)

type Collection struct {
	mu     sync.Mutex
	docs   []bson.M
	unique []string

	// FailNext makes the next operation return this error, then clears it.
	// Used to simulate store outages.
	FailNext error
}

var _ database.Collection = (*Collection)(nil)

// New returns an empty collection enforcing uniqueness on the given fields.
func New(uniqueFields ...string) *Collection {
	return &Collection{unique: uniqueFields}
}

// Len reports the number of stored documents.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func (c *Collection) takeErr() error {
	err := c.FailNext
	c.FailNext = nil
	return err
}

func (c *Collection) InsertOne(_ context.Context, doc any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.takeErr(); err != nil {
		return err
	}

	m, err := toDoc(doc)
	if err != nil {
		return err
	}
	if err := c.checkUnique(m, -1); err != nil {
		return err
	}
	c.docs = append(c.docs, m)
	return nil
}

func (c *Collection) FindOne(_ context.Context, filter bson.M, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.takeErr(); err != nil {
		return err
	}

	for _, d := range c.docs {
		if matches(d, filter) {
			return decode(d, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (c *Collection) FindAll(_ context.Context, filter bson.M, sortSpec bson.D, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.takeErr(); err != nil {
		return err
	}

	var matched []bson.M
	for _, d := range c.docs {
		if matches(d, filter) {
			matched = append(matched, d)
		}
	}
	if len(sortSpec) > 0 {
		key := sortSpec[0].Key
		desc := false
		if dir, ok := sortSpec[0].Value.(int); ok && dir < 0 {
			desc = true
		}
		sort.SliceStable(matched, func(i, j int) bool {
			less := compare(matched[i][key], matched[j][key]) < 0
			if desc {
				return !less && compare(matched[i][key], matched[j][key]) != 0
			}
			return less
		})
	}
	return decodeAll(matched, out)
}

func (c *Collection) UpdateOne(_ context.Context, filter bson.M, update bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.takeErr(); err != nil {
		return 0, err
	}

	for i, d := range c.docs {
		if matches(d, filter) {
			next := applyUpdate(d, update, false)
			if err := c.checkUnique(next, i); err != nil {
				return 0, err
			}
			c.docs[i] = next
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Collection) UpsertOne(ctx context.Context, filter bson.M, update bson.M) error {
	matched, err := c.UpdateOne(ctx, filter, update)
	if err != nil || matched > 0 {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	base := bson.M{}
	for k, v := range filter {
		if _, isOp := v.(bson.M); !isOp && k != "$or" {
			base[k] = normalize(v)
		}
	}
	doc := applyUpdate(base, update, true)
	if err := c.checkUnique(doc, -1); err != nil {
		return err
	}
	c.docs = append(c.docs, doc)
	return nil
}

func (c *Collection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.takeErr(); err != nil {
		return 0, err
	}

	for i, d := range c.docs {
		if matches(d, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Collection) Count(_ context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.takeErr(); err != nil {
		return 0, err
	}

	var n int64
	for _, d := range c.docs {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (c *Collection) checkUnique(doc bson.M, skip int) error {
	for _, field := range c.unique {
		value, ok := doc[field]
		if !ok {
			continue
		}
		for i, other := range c.docs {
			if i == skip {
				continue
			}
			if equals(other[field], value) {
				return mongo.WriteException{WriteErrors: []mongo.WriteError{{
					Code:    11000,
					Message: fmt.Sprintf("E11000 duplicate key error: %s=%v", field, value),
				}}}
			}
		}
	}
	return nil
}

// --- filter evaluation ---

func matches(doc bson.M, filter bson.M) bool {
	for key, cond := range filter {
		if key == "$or" {
			if !matchOr(doc, cond) {
				return false
			}
			continue
		}
		if !matchField(doc[key], cond) {
			return false
		}
	}
	return true
}

func matchOr(doc bson.M, cond any) bool {
	var branches []bson.M
	switch v := cond.(type) {
	case []bson.M:
		branches = v
	case bson.A:
		for _, b := range v {
			if m, ok := b.(bson.M); ok {
				branches = append(branches, m)
			}
		}
	default:
		return false
	}
	for _, b := range branches {
		if matches(doc, b) {
			return true
		}
	}
	return false
}

func matchField(value any, cond any) bool {
	switch cond := cond.(type) {
	case primitive.Regex:
		re, err := regexp.Compile("(?" + cond.Options + ")" + cond.Pattern)
		if err != nil {
			return false
		}
		return anyElement(value, func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		})
	case bson.M:
		for op, arg := range cond {
			switch op {
			case "$in":
				set := elements(normalize(arg))
				ok := anyElement(value, func(v any) bool {
					for _, want := range set {
						if equals(v, want) {
							return true
						}
					}
					return false
				})
				if !ok {
					return false
				}
			case "$ne":
				if anyElement(value, func(v any) bool { return equals(v, normalize(arg)) }) {
					return false
				}
			case "$gte":
				if compare(value, normalize(arg)) < 0 {
					return false
				}
			case "$regex":
				if !matchField(value, arg) {
					return false
				}
			default:
				return false
			}
		}
		return true
	default:
		return anyElement(value, func(v any) bool { return equals(v, normalize(cond)) })
	}
}

// anyElement applies fn to value, or to each element when value is an array.
func anyElement(value any, fn func(any) bool) bool {
	if arr, ok := value.(bson.A); ok {
		for _, v := range arr {
			if fn(v) {
				return true
			}
		}
		return false
	}
	return fn(value)
}

func elements(value any) []any {
	if arr, ok := value.(bson.A); ok {
		return arr
	}
	return []any{value}
}

// --- update evaluation ---

func applyUpdate(doc bson.M, update bson.M, inserting bool) bson.M {
	next := bson.M{}
	for k, v := range doc {
		next[k] = v
	}
	for op, fieldsAny := range update {
		fields, ok := fieldsAny.(bson.M)
		if !ok {
			continue
		}
		switch op {
		case "$set":
			for k, v := range fields {
				next[k] = normalize(v)
			}
		case "$setOnInsert":
			if inserting {
				for k, v := range fields {
					next[k] = normalize(v)
				}
			}
		case "$inc":
			for k, v := range fields {
				next[k] = toInt64(next[k]) + toInt64(normalize(v))
			}
		}
	}
	return next
}

// --- value helpers ---

func toDoc(v any) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode(m bson.M, out any) error {
	b, err := bson.Marshal(m)
	if err != nil {
		return err
	}
	return bson.Unmarshal(b, out)
}

func decodeAll(docs []bson.M, out any) error {
	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, d := range docs {
		ev := reflect.New(elemType)
		if err := decode(d, ev.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, ev.Elem())
	}
	slice.Set(result)
	return nil
}

// normalize round-trips v through bson so stored and queried values share
// one representation (structs become bson.M, slices become bson.A, ...).
func normalize(v any) any {
	b, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return v
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return v
	}
	return m["v"]
}

func equals(a, b any) bool {
	if na, oka := asFloat(a); oka {
		if nb, okb := asFloat(b); okb {
			return na == nb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func compare(a, b any) int {
	if na, oka := asFloat(a); oka {
		if nb, okb := asFloat(b); okb {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}
	sa := fmt.Sprintf("%v", a)
	sb := fmt.Sprintf("%v", b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func toInt64(v any) int64 {
	f, _ := asFloat(v)
	return int64(f)
}
