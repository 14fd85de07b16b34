package pdfmeta

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Seams for the two filesystem steps of an in-place update, replaceable
// in tests to simulate save and rename failures.
var (
	writeContextFile = api.WriteContextFile
	renameFile       = os.Rename
)

func loadFile(path string) (*model.Context, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ctx, nil
}

func loadBytes(b []byte) (*model.Context, error) {
	ctx, err := api.ReadContext(bytes.NewReader(b), model.NewDefaultConfiguration())
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return ctx, nil
}

func saveFile(ctx *model.Context, path string) error {
	if err := writeContextFile(ctx, path); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func saveBytes(ctx *model.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, &IOError{Op: "save", Path: "buffer", Err: err}
	}
	return buf.Bytes(), nil
}

// saveInPlace serializes ctx to a fresh temporary file next to path and
// renames it over the original, so the original is only ever swapped for
// a complete replacement. When the serialize step fails the temporary
// file is removed and the original stays untouched. When the rename
// itself fails the temporary file is left behind for inspection: the
// original is known good at that point and the serialized result may be
// the only copy of the edit.
func saveInPlace(ctx *model.Context, path string) error {
	tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixMicro())
	if err := writeContextFile(ctx, tmp); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "save", Path: tmp, Err: err}
	}
	if err := renameFile(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: tmp, Err: err}
	}
	return nil
}
