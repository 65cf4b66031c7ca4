package bifrost

import (
	"fmt"
	"sync"

	"github.com/orneryd/bifrost/pkg/mgp"
)

// Type describes a declared parameter or result field type. Types are plain
// values composed ahead of registration; the matching foreign descriptors
// are resolved only when the procedure is declared to the host.
type Type struct {
	kind typeKind
	elem *Type
}

type typeKind int

const (
	typeAny typeKind = iota
	typeBool
	typeInt
	typeFloat
	typeString
	typeMap
	typeNode
	typeRelationship
	typePath
	typeDate
	typeLocalTime
	typeLocalDateTime
	typeDuration
	typeList
	typeNullable
)

var typeKindNames = map[typeKind]string{
	typeAny:           "any",
	typeBool:          "bool",
	typeInt:           "int",
	typeFloat:         "float",
	typeString:        "string",
	typeMap:           "map",
	typeNode:          "node",
	typeRelationship:  "relationship",
	typePath:          "path",
	typeDate:          "date",
	typeLocalTime:     "local_time",
	typeLocalDateTime: "local_date_time",
	typeDuration:      "duration",
}

func TypeAny() Type           { return Type{kind: typeAny} }
func TypeBool() Type          { return Type{kind: typeBool} }
func TypeInt() Type           { return Type{kind: typeInt} }
func TypeFloat() Type         { return Type{kind: typeFloat} }
func TypeString() Type        { return Type{kind: typeString} }
func TypeMap() Type           { return Type{kind: typeMap} }
func TypeNode() Type          { return Type{kind: typeNode} }
func TypeRelationship() Type  { return Type{kind: typeRelationship} }
func TypePath() Type          { return Type{kind: typePath} }
func TypeDate() Type          { return Type{kind: typeDate} }
func TypeLocalTime() Type     { return Type{kind: typeLocalTime} }
func TypeLocalDateTime() Type { return Type{kind: typeLocalDateTime} }
func TypeDuration() Type      { return Type{kind: typeDuration} }

// TypeListOf declares a homogeneous list of elem.
func TypeListOf(elem Type) Type { return Type{kind: typeList, elem: &elem} }

// TypeNullable declares that null is accepted alongside inner.
func TypeNullable(inner Type) Type { return Type{kind: typeNullable, elem: &inner} }

func (t Type) String() string {
	switch t.kind {
	case typeList:
		return "list of " + t.elem.String()
	case typeNullable:
		return "nullable " + t.elem.String()
	default:
		return typeKindNames[t.kind]
	}
}

// resolve obtains the foreign descriptor for t. Descriptors are host-owned
// singletons; nothing to release.
func (t Type) resolve(api mgp.API) (mgp.TypePtr, error) {
	var (
		ptr mgp.TypePtr
		st  mgp.Status
	)
	switch t.kind {
	case typeAny:
		ptr, st = api.TypeAny()
	case typeBool:
		ptr, st = api.TypeBool()
	case typeInt:
		ptr, st = api.TypeInt()
	case typeFloat:
		ptr, st = api.TypeFloat()
	case typeString:
		ptr, st = api.TypeString()
	case typeMap:
		ptr, st = api.TypeMap()
	case typeNode:
		ptr, st = api.TypeNode()
	case typeRelationship:
		ptr, st = api.TypeRelationship()
	case typePath:
		ptr, st = api.TypePath()
	case typeDate:
		ptr, st = api.TypeDate()
	case typeLocalTime:
		ptr, st = api.TypeLocalTime()
	case typeLocalDateTime:
		ptr, st = api.TypeLocalDateTime()
	case typeDuration:
		ptr, st = api.TypeDuration()
	case typeList:
		elem, err := t.elem.resolve(api)
		if err != nil {
			return 0, err
		}
		ptr, st = api.TypeList(elem)
	case typeNullable:
		inner, err := t.elem.resolve(api)
		if err != nil {
			return 0, err
		}
		ptr, st = api.TypeNullable(inner)
	}
	if !st.OK() {
		return 0, statusError(ErrAddProcedureParameterType, st)
	}
	return ptr, nil
}

// Parameter is a required procedure argument.
type Parameter struct {
	Name string
	Type Type
}

// OptionalParameter is an argument with a declared default, supplied by the
// host when the caller omits it.
type OptionalParameter struct {
	Name    string
	Type    Type
	Default *Value
}

// ResultField is one named column of the procedure's result rows.
type ResultField struct {
	Name string
	Type Type
}

// Procedure is a read procedure as declared to the host. Handler runs once
// per invocation against a fresh Graph; every wrapper the handler creates
// is released when the invocation ends, however it ends.
type Procedure struct {
	Name    string
	Args    []Parameter
	OptArgs []OptionalParameter
	Results []ResultField
	Handler func(*Graph) error
}

// Module is a registry of procedures plus the glue that declares them to
// the host and routes invocations back to their handlers.
type Module struct {
	mu       sync.Mutex
	order    []string
	procs    map[string]*Procedure
	shutdown []func()
	once     sync.Once
}

func NewModule() *Module {
	return &Module{procs: make(map[string]*Procedure)}
}

// Register adds p to the module. Procedure names must be unique and free of
// interior NUL bytes.
func (m *Module) Register(p *Procedure) error {
	if _, err := cString(p.Name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.procs[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProcedure, p.Name)
	}
	m.procs[p.Name] = p
	m.order = append(m.order, p.Name)
	return nil
}

// Procedures returns the registered procedures in registration order.
func (m *Module) Procedures() []*Procedure {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Procedure, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.procs[name])
	}
	return out
}

// Lookup finds a registered procedure by name.
func (m *Module) Lookup(name string) (*Procedure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.procs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcedure, name)
	}
	return p, nil
}

// OnShutdown registers fn to run once when the module shuts down.
func (m *Module) OnShutdown(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shutdown = append(m.shutdown, fn)
}

// Shutdown runs the registered shutdown hooks. Later calls are no-ops.
func (m *Module) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		hooks := m.shutdown
		m.mu.Unlock()
		for i := len(hooks) - 1; i >= 0; i-- {
			hooks[i]()
		}
	})
}

// Init declares every registered procedure to the host. Called from the
// module's mgp_init_module entry point.
func (m *Module) Init(api mgp.API, mod mgp.ModulePtr, mem mgp.MemoryPtr) error {
	for _, p := range m.Procedures() {
		if err := declare(api, mod, mem, p); err != nil {
			return err
		}
	}
	return nil
}

func declare(api mgp.API, mod mgp.ModulePtr, mem mgp.MemoryPtr, p *Procedure) error {
	proc, st := api.ModuleAddReadProcedure(mod, p.Name)
	if !st.OK() {
		return fmt.Errorf("%w: %s: %s", ErrAddProcedure, p.Name, st)
	}
	for _, arg := range p.Args {
		if _, err := cString(arg.Name); err != nil {
			return err
		}
		t, err := arg.Type.resolve(api)
		if err != nil {
			return err
		}
		if st := api.ProcAddArg(proc, arg.Name, t); !st.OK() {
			return fmt.Errorf("%w: %s.%s: %s", ErrAddProcedure, p.Name, arg.Name, st)
		}
	}
	// Defaults are encoded through a scratch graph so the foreign values
	// they allocate are destroyed once the host has copied them.
	g := NewGraph(api, 0, 0, 0, mem)
	defer g.ReleaseAll()
	for _, opt := range p.OptArgs {
		if _, err := cString(opt.Name); err != nil {
			return err
		}
		t, err := opt.Type.resolve(api)
		if err != nil {
			return err
		}
		def := opt.Default
		if def == nil {
			def = NullValue()
		}
		ptr, err := encodeValue(g, def)
		if err != nil {
			return err
		}
		st := api.ProcAddOptArg(proc, opt.Name, t, ptr)
		api.ValueDestroy(ptr)
		if !st.OK() {
			return fmt.Errorf("%w: %s.%s: %s", ErrAddProcedure, p.Name, opt.Name, st)
		}
	}
	for _, res := range p.Results {
		if _, err := cString(res.Name); err != nil {
			return err
		}
		t, err := res.Type.resolve(api)
		if err != nil {
			return err
		}
		if st := api.ProcAddResult(proc, res.Name, t); !st.OK() {
			return fmt.Errorf("%w: %s.%s: %s", ErrAddProcedure, p.Name, res.Name, st)
		}
	}
	return nil
}

// Invoke runs the named procedure's handler against a fresh Graph. Handler
// errors and panics are reported to the host through the result's error
// message; either way every wrapper created during the invocation is
// released before Invoke returns.
func (m *Module) Invoke(api mgp.API, name string, args mgp.ListPtr, graph mgp.GraphPtr, result mgp.ResultPtr, mem mgp.MemoryPtr) (err error) {
	p, err := m.Lookup(name)
	if err != nil {
		api.ResultSetErrorMsg(result, err.Error())
		return err
	}
	g := NewGraph(api, graph, args, result, mem)
	defer g.ReleaseAll()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("procedure %s panicked: %v", name, r)
		}
		if err != nil {
			api.ResultSetErrorMsg(result, err.Error())
		}
	}()
	err = p.Handler(g)
	return err
}

// Dispatch adapts Invoke to the host callback shape so a Host can route
// foreign invocations into this module.
func (m *Module) Dispatch(api mgp.API) func(string, mgp.ListPtr, mgp.GraphPtr, mgp.ResultPtr, mgp.MemoryPtr) {
	return func(name string, args mgp.ListPtr, graph mgp.GraphPtr, result mgp.ResultPtr, mem mgp.MemoryPtr) {
		m.Invoke(api, name, args, graph, result, mem)
	}
}
