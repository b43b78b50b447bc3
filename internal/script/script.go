// Package script compiles Lua scripts once and runs them in caller-provided states.
package script

import (
	"fmt"
	"sync"

	"github.com/twshades/twshades/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// bytecodeCache holds compiled prototypes keyed by path and modification time.
var bytecodeCache sync.Map

// Load executes the script at path within L, compiling it on first use.
func Load(L *lua.LState, path string) error {
	proto, err := compile(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

func compile(path string) (*lua.FunctionProto, error) {
	stat, err := filesystem.API().Stat(path)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s@%d", path, stat.ModTime().UnixNano())
	if cached, ok := bytecodeCache.Load(cacheKey); ok {
		return cached.(*lua.FunctionProto), nil
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	bytecodeCache.Store(cacheKey, proto)
	return proto, nil
}

// Call invokes the global function fn and checks the type of its single result.
func Call(L *lua.LState, fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := L.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := L.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := L.Get(-1)
	L.Pop(1)

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}
