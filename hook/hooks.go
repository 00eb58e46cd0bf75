package hook

import "fmt"

type HookSet map[Phase]Hook
type Hook func()

type Phase string

const (
	ParentBeforeSpawn Phase = "parent-before-spawn"
	ParentAfterSpawn  Phase = "parent-after-spawn"
	ChildAfterReroot  Phase = "child-after-reroot"
	ChildBeforeExec   Phase = "child-before-exec"
)

var DefaultHookSet HookSet = make(map[Phase]Hook)

func Register(name Phase, fn Hook) {
	DefaultHookSet.Register(name, fn)
}

func (h HookSet) Register(name Phase, fn Hook) {
	if _, exists := h[name]; exists {
		panic(fmt.Sprintf("hooks: already registered hook: %s", name))
	}

	h[name] = fn
}

// Main runs the named hook and panics if it does not exist; it is the entry
// point for externally driven phases.
func (h HookSet) Main(phase Phase) {
	fn, ok := h[phase]
	if !ok {
		panic(fmt.Sprintf("hooks: no such hook: %s", phase))
	}

	fn()
}

// Fire runs the named hook if one is registered. Lifecycle phases are
// optional, so a missing hook is not an error.
func (h HookSet) Fire(phase Phase) {
	if fn, ok := h[phase]; ok {
		fn()
	}
}
