package export

import (
	"fmt"
	"io"
	"path/filepath"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/internal/script"
	"github.com/twshades/twshades/log"
	"github.com/twshades/twshades/util"
	"github.com/twshades/twshades/where"
	lua "github.com/yuin/gopher-lua"
)

// Customs returns an exporter for every .lua file in where.Exporters().
func Customs() []Exporter {
	dir := where.Exporters()
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		log.Warnf("reading exporters from %s: %v", dir, err)
		return nil
	}

	var exporters []Exporter
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		exporters = append(exporters, luaExporter{
			name: util.FileStem(f.Name()),
			path: filepath.Join(dir, f.Name()),
		})
	}
	return exporters
}

type luaExporter struct {
	name, path string
}

func (e luaExporter) Name() string        { return e.name }
func (e luaExporter) Description() string { return "Custom exporter " + e.path }

func (e luaExporter) Export(w io.Writer, doc *Document) error {
	L := lua.NewState()
	defer L.Close()
	libs.Preload(L)

	if err := script.Load(L, e.path); err != nil {
		return fmt.Errorf("load exporter %s: %w", e.name, err)
	}

	if L.GetGlobal(constant.ExportFn).Type() != lua.LTFunction {
		return fmt.Errorf("function %s is required but not defined in %s", constant.ExportFn, e.name)
	}

	out, err := script.Call(L, constant.ExportFn, lua.LTString, documentTable(L, doc))
	if err != nil {
		return fmt.Errorf("exporter %s: %w", e.name, err)
	}

	_, err = io.WriteString(w, out.String())
	return err
}

func documentTable(L *lua.LState, doc *Document) *lua.LTable {
	table := L.NewTable()
	table.RawSetString("name", lua.LString(doc.Name))
	table.RawSetString("input", lua.LString(doc.Input))

	scale, ok := doc.Scale()
	if !ok {
		table.RawSetString("value", lua.LString(doc.Value))
		return table
	}

	shades := L.NewTable()
	for i, swatch := range scale {
		entry := L.NewTable()
		entry.RawSetString("shade", lua.LNumber(swatch.Shade))
		entry.RawSetString("value", lua.LString(swatch.String()))
		entry.RawSetString("hex", lua.LString(swatch.Color.Hex()))
		entry.RawSetString("r", lua.LNumber(swatch.Color.R))
		entry.RawSetString("g", lua.LNumber(swatch.Color.G))
		entry.RawSetString("b", lua.LNumber(swatch.Color.B))
		shades.RawSetInt(i+1, entry)
	}
	table.RawSetString("shades", shades)

	return table
}
