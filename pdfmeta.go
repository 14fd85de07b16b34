// Package pdfmeta reads and edits the document information metadata of
// PDF files: the key/value entries of the Info dictionary referenced
// from the file's trailer (Title, Author, Subject, Keywords, Creator,
// Producer, CreationDate, ModDate, and any custom keys).
//
// Parsing and serializing the PDF object graph is delegated to pdfcpu;
// this package locates the Info dictionary through the trailer, decodes
// its string values to plain text, encodes new values back into PDF
// string form, and persists the result. Every write also stamps ModDate
// with the current time. pdfcpu adds stamps of its own when it
// serializes: each save refreshes Producer, CreationDate, and ModDate,
// so a written file carries those three entries besides the keys set
// here, and the stored ModDate takes pdfcpu's clock and offset form.
// In-place updates are staged in a temporary file
// in the target's directory and renamed over the original only after a
// fully successful save, so a failed write never corrupts the original.
//
// Each call loads its own document, applies one logical transaction, and
// releases it on return; nothing is shared across calls. Concurrent
// in-place updates of the same path are the caller's responsibility.
package pdfmeta

// Get returns the Info dictionary entries of the PDF at path, sorted by
// key. A document without an Info dictionary yields an empty list and no
// error.
func Get(path string) ([]Entry, error) {
	ctx, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadAll(ctx), nil
}

// Set loads the PDF at srcPath, inserts or overwrites the entry for key,
// stamps ModDate, and writes the document to dstPath. When dstPath names
// the source file itself the write goes through the same staged
// temporary file as UpdateInPlace, so the source is never overwritten by
// a partial result. The written file also carries pdfcpu's save stamps:
// every serialization refreshes Producer, CreationDate, and ModDate.
func Set(srcPath, dstPath, key, value string) error {
	if srcPath == dstPath {
		return UpdateInPlace(srcPath, key, value)
	}
	ctx, err := loadFile(srcPath)
	if err != nil {
		return err
	}
	var ed Editor
	if err := ed.Set(ctx, key, value); err != nil {
		return err
	}
	return saveFile(ctx, dstPath)
}

// UpdateInPlace rewrites the PDF at path with the entry for key inserted
// or overwritten and ModDate stamped. The document is serialized to a
// temporary file in the same directory first and atomically renamed over
// the original; on any failure before the rename the original file is
// left byte-for-byte unchanged. The rewritten file also carries pdfcpu's
// save stamps: every serialization refreshes Producer, CreationDate, and
// ModDate.
func UpdateInPlace(path, key, value string) error {
	ctx, err := loadFile(path)
	if err != nil {
		return err
	}
	var ed Editor
	if err := ed.Set(ctx, key, value); err != nil {
		return err
	}
	return saveInPlace(ctx, path)
}

// Remove rewrites the PDF at path with the entry for key deleted and
// ModDate stamped, using the same staged in-place write as
// UpdateInPlace. It returns ErrKeyNotFound when the document has no
// entry for key.
func Remove(path, key string) error {
	ctx, err := loadFile(path)
	if err != nil {
		return err
	}
	var ed Editor
	if err := ed.Remove(ctx, key); err != nil {
		return err
	}
	return saveInPlace(ctx, path)
}

// Rename rewrites the PDF at path with the entry for oldKey moved to
// newKey, keeping the stored value bytes untouched, and ModDate stamped.
// It returns ErrKeyNotFound when the document has no entry for oldKey.
func Rename(path, oldKey, newKey string) error {
	ctx, err := loadFile(path)
	if err != nil {
		return err
	}
	var ed Editor
	if err := ed.Rename(ctx, oldKey, newKey); err != nil {
		return err
	}
	return saveInPlace(ctx, path)
}

// GetBytes is Get for a PDF held in memory.
func GetBytes(b []byte) ([]Entry, error) {
	ctx, err := loadBytes(b)
	if err != nil {
		return nil, err
	}
	return ReadAll(ctx), nil
}

// SetBytes is Set for a PDF held in memory: it returns the serialized
// document with the entry for key inserted or overwritten and ModDate
// stamped. The input slice is not modified.
func SetBytes(b []byte, key, value string) ([]byte, error) {
	ctx, err := loadBytes(b)
	if err != nil {
		return nil, err
	}
	var ed Editor
	if err := ed.Set(ctx, key, value); err != nil {
		return nil, err
	}
	return saveBytes(ctx)
}
