//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-biquad/internal/hostapi"
)

// funcs holds the module-level callbacks, which live as long as the module.
var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()
	api.Set("createLowpassFilter", exportGlobal(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		h := hostapi.Default.CreateLowpassFilter(args[0].Float(), args[1].Float())
		return newFilterObject(h)
	}))

	js.Global().Set("AlgoBiquad", api)
	select {}
}

// newFilterObject wraps a handle in a JS object. Its methods are released
// together with the filter when free is called.
func newFilterObject(h hostapi.Handle) js.Value {
	obj := js.Global().Get("Object").New()

	var methods []js.Func
	method := func(name string, fn func([]js.Value) any) {
		f := wrap(fn)
		methods = append(methods, f)
		obj.Set(name, f)
	}

	method("process", func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return float64(hostapi.Default.Process(h, float32(args[0].Float())))
	})

	method("setCutoff", func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		hostapi.Default.SetCutoff(h, args[0].Float())
		return js.Null()
	})

	method("changeToLowpass", func(_ []js.Value) any {
		hostapi.Default.ChangeToLowpass(h)
		return js.Null()
	})

	method("changeToHighpass", func(_ []js.Value) any {
		hostapi.Default.ChangeToHighpass(h)
		return js.Null()
	})

	method("free", func(_ []js.Value) any {
		hostapi.Default.Release(h)
		return js.Null()
	})

	hostapi.Default.OnRelease(h, func() {
		for _, f := range methods {
			f.Release()
		}
	})

	return obj
}

func exportGlobal(fn func([]js.Value) any) js.Func {
	f := wrap(fn)
	funcs = append(funcs, f)
	return f
}

func wrap(fn func([]js.Value) any) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
}
