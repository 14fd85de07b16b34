package pdfmeta

import (
	"fmt"
	"sort"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfmeta/pdftext"
)

// Entry is one Info dictionary entry decoded to text. Lossy reports that
// the stored value did not conform to its declared encoding and parts of
// it were substituted during decoding.
type Entry struct {
	Key   string
	Value string
	Lossy bool
}

// ReadAll returns every entry of the document's Info dictionary, sorted
// by key. A document without an Info dictionary, or whose Info reference
// does not resolve to a dictionary, yields no entries rather than an
// error.
func ReadAll(ctx *model.Context) []Entry {
	d := lookupInfoDict(ctx)
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		text, lossy := decodeValue(ctx, d[k])
		entries = append(entries, Entry{Key: k, Value: text, Lossy: lossy})
	}
	return entries
}

// ReadOne returns the decoded value stored under key, reporting whether
// the entry exists.
func ReadOne(ctx *model.Context, key string) (string, bool) {
	d := lookupInfoDict(ctx)
	if d == nil {
		return "", false
	}
	obj, found := d.Find(key)
	if !found {
		return "", false
	}
	text, _ := decodeValue(ctx, obj)
	return text, true
}

// lookupInfoDict resolves the trailer's Info reference for reading.
// Anything short of a resolvable dictionary reads as absent.
func lookupInfoDict(ctx *model.Context) types.Dict {
	if ctx == nil || ctx.Info == nil {
		return nil
	}
	d, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil {
		return nil
	}
	return d
}

// decodeValue renders a single dictionary value as text. Values stored
// behind an indirect reference are resolved first; a reference that does
// not resolve degrades to an empty lossy value.
func decodeValue(ctx *model.Context, obj types.Object) (string, bool) {
	if ir, ok := obj.(types.IndirectRef); ok {
		o, err := ctx.Dereference(ir)
		if err != nil || o == nil {
			return "", true
		}
		obj = o
	}
	return pdftext.Decode(obj)
}

// An Editor mutates a document's Info dictionary in memory. Every
// mutation also stamps ModDate with the current time taken from Now,
// or time.Now when Now is nil. The zero value is ready to use.
type Editor struct {
	Now func() time.Time
}

// Set inserts or overwrites the entry for key. A document without an
// Info dictionary gets one allocated and registered on the trailer
// first. The document is modified in memory only.
func (e *Editor) Set(ctx *model.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	d, err := e.infoDict(ctx)
	if err != nil {
		return err
	}
	d[key] = pdftext.Encode(value)
	e.stamp(d)
	return nil
}

// Remove deletes the entry for key and stamps ModDate. It returns
// ErrKeyNotFound when the document has no Info dictionary or no entry
// for key.
func (e *Editor) Remove(ctx *model.Context, key string) error {
	d, err := e.existingInfoDict(ctx)
	if err != nil {
		return err
	}
	if _, found := d.Find(key); !found {
		return ErrKeyNotFound
	}
	d.Delete(key)
	e.stamp(d)
	return nil
}

// Rename moves the entry stored under oldKey to newKey, keeping the raw
// stored value untouched, and stamps ModDate. An existing entry under
// newKey is overwritten. It returns ErrKeyNotFound when there is no
// entry for oldKey.
func (e *Editor) Rename(ctx *model.Context, oldKey, newKey string) error {
	if err := checkKey(newKey); err != nil {
		return err
	}
	d, err := e.existingInfoDict(ctx)
	if err != nil {
		return err
	}
	obj, found := d.Find(oldKey)
	if !found {
		return ErrKeyNotFound
	}
	if oldKey == newKey {
		return nil
	}
	d[newKey] = obj
	d.Delete(oldKey)
	e.stamp(d)
	return nil
}

// infoDict resolves the trailer's Info dictionary, allocating a fresh
// one when the trailer has none or its reference points at a free
// object. A reference that resolves to something other than a
// dictionary is a StructureError: overwriting an object we cannot
// interpret is not safe.
func (e *Editor) infoDict(ctx *model.Context) (types.Dict, error) {
	if ctx.Info != nil {
		d, err := ctx.DereferenceDict(*ctx.Info)
		if err != nil {
			return nil, &StructureError{Reason: "trailer Info is not a dictionary", Err: err}
		}
		if d != nil {
			return d, nil
		}
	}
	d := types.Dict{}
	ir, err := ctx.IndRefForNewObject(d)
	if err != nil {
		return nil, &StructureError{Reason: "allocating Info dictionary", Err: err}
	}
	ctx.Info = ir
	return d, nil
}

// existingInfoDict resolves the trailer's Info dictionary without
// creating one; absence reads as ErrKeyNotFound.
func (e *Editor) existingInfoDict(ctx *model.Context) (types.Dict, error) {
	if ctx.Info == nil {
		return nil, ErrKeyNotFound
	}
	d, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil {
		return nil, &StructureError{Reason: "trailer Info is not a dictionary", Err: err}
	}
	if d == nil {
		return nil, ErrKeyNotFound
	}
	return d, nil
}

func (e *Editor) stamp(d types.Dict) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	d["ModDate"] = pdftext.Encode(pdftext.FormatDate(now()))
}

// checkKey accepts keys writable as a PDF name: non-empty printable
// ASCII without whitespace, delimiters, or '#'.
func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for i := 0; i < len(key); i++ {
		switch c := key[i]; {
		case c <= ' ' || c > '~':
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		case c == '(' || c == ')' || c == '<' || c == '>' || c == '[' || c == ']' ||
			c == '{' || c == '}' || c == '/' || c == '%' || c == '#':
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
