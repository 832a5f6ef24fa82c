package goexpr

import (
	"fmt"
	"path"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/goexpr/statik"
)

//go:generate statik -src=lib -f

const libExt = ".expr"

// LoadLib binds every prelude function under lib/ into b. Each file holds
// one expression and is bound to its base name.
func LoadLib(b Binder) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != libExt {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		node, err := NewParser(f).Parse()
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", fi.Name(), err)
		}
		b.Bind(strings.TrimSuffix(fi.Name(), libExt), node)
	}

	return nil
}
