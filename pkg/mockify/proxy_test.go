package mockify

import (
	"errors"
	"slices"
	"testing"

	"mercator-hq/promock/pkg/config"
	"mercator-hq/promock/pkg/object"
)

func TestWrap_Idempotent(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})

	tests := []struct {
		name     string
		value    any
		wantType string
	}{
		{name: "plain object", value: object.NewPlain(nil).With("a", 1), wantType: "*mockify.Proxy"},
		{name: "function", value: object.NewFunction("f", nil), wantType: "*mockify.FunctionProxy"},
		{name: "class", value: object.NewClass("C", nil), wantType: "*mockify.ClassProxy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Wrap(tt.value)
			if !IsWrapped(w) {
				t.Fatal("expected wrapped value")
			}
			if Wrap(w) != w {
				t.Error("wrapping a wrapped entity must return it unchanged")
			}
			if got := typeName(w); got != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, got)
			}
			if IsWrapped(tt.value) {
				t.Error("the original must not be reported as wrapped")
			}
		})
	}
}

func TestWrap_PassesThroughPrimitives(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})

	for _, v := range []any{nil, 1, "text", true, 2.5} {
		got := Wrap(v)
		if got != v {
			t.Errorf("expected %v to pass through, got %v", v, got)
		}
		if IsWrapped(got) {
			t.Errorf("expected %v not to be wrapped", v)
		}
	}
}

func TestProxy_Passthrough(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	orig := object.NewPlain(nil).With("a", 1)
	w := Wrap(orig).(object.Object)

	if got := mustGet(t, w, "a"); got != 1 {
		t.Errorf("expected a=1, got %v", got)
	}
	if err := object.Set(w, "b", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := orig.Get("b", nil); got != 2 {
		t.Errorf("writes must reach the original, got %v", got)
	}
	if keys := w.OwnKeys(); !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", keys)
	}
	if err := w.Delete("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orig.HasProperty("b") {
		t.Error("delete must reach the original")
	}
	if err := w.PreventExtensions(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orig.IsExtensible() {
		t.Error("preventExtensions must reach the original")
	}
}

func TestProxy_ReceiverCorrection(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	orig := object.NewPlain(nil).With("count", 0)
	orig.With("inc", object.NewFunction("inc", func(this any, args []any) (any, error) {
		o, ok := this.(*object.Plain)
		if !ok {
			return nil, errors.New("receiver lost its storage")
		}
		n := o.Get("count", o).(int) + 1
		return n, o.Set("count", n, o)
	}))
	w := Wrap(orig)

	if got := mustInvoke(t, w, "inc"); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	if got := orig.Get("count", nil); got != 1 {
		t.Errorf("expected the original's state to change, got %v", got)
	}

	other := object.NewPlain(nil).With("count", 10)
	inc := mustGet(t, w, "inc")
	got, err := object.Call(inc, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 11 || other.Get("count", nil) != 11 {
		t.Errorf("an explicit receiver must be kept, got %v", got)
	}
}

func TestProxy_ReceiverFollowsOverride(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	Greeter := Wrap(greeterClass("hello")).(object.Constructor)
	g := mustNew(t, Greeter)

	if got := mustInvoke(t, g, "storage"); got != true {
		t.Error("methods read through the proxy must run against the instance storage")
	}

	replacement := object.NewPlain(nil).With("greeting", "hi")
	replacement.With("greet", object.NewFunction("greet", func(this any, args []any) (any, error) {
		if this != any(replacement) {
			return nil, errors.New("expected the replacement as receiver")
		}
		return object.Get(this, "greeting")
	}))
	mustOverride(t, g, replacement)

	if got := mustInvoke(t, g, "greet"); got != "hi" {
		t.Errorf("expected hi, got %v", got)
	}
}

func TestProxy_ConstructorsAreNotBound(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	inner := object.NewClass("Inner", nil)
	ns := Wrap(object.NewPlain(nil).With("Inner", inner))

	got := mustGet(t, ns, "Inner")
	if got != any(inner) {
		t.Fatalf("expected the constructor itself, got %T", got)
	}
	if _, err := object.New(got); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProxy_ConfigKey(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	w := Wrap(object.NewPlain(nil).With("a", 1)).(object.Object)

	if !w.HasProperty(ConfigKey) {
		t.Error("expected the configuration key to be present")
	}
	if got := w.Get(ConfigKey, nil); got != nil {
		t.Errorf("expected the configuration key to read as nil, got %v", got)
	}
	if slices.Contains(w.OwnKeys(), ConfigKey) {
		t.Error("the configuration key must not be enumerated")
	}
	if _, ok := w.GetOwnProperty(ConfigKey); ok {
		t.Error("the configuration key must not be described")
	}

	ops := map[string]func() error{
		"set":    func() error { return w.Set(ConfigKey, 1, nil) },
		"define": func() error { return w.DefineOwnProperty(ConfigKey, object.Data(1)) },
		"delete": func() error { return w.Delete(ConfigKey) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			var invErr *InvariantError
			if !errors.As(err, &invErr) || invErr.Op != name {
				t.Fatalf("expected InvariantError for %s, got %v", name, err)
			}
			if !errors.Is(err, ErrReservedKey) {
				t.Error("expected ErrReservedKey in the chain")
			}
		})
	}
}

func TestProxy_ReentrantResolution(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	source := Wrap(object.NewPlain(nil).With("v", "one"))

	reader := object.NewPlain(nil)
	_ = reader.DefineOwnProperty("v", object.Accessor(func(this any) any {
		v, _ := object.Get(source, "v")
		return v
	}, nil))
	_ = reader.DefineOwnProperty("swap", object.Accessor(func(this any) any {
		if _, err := Override(source, object.NewPlain(nil).With("v", "three")); err != nil {
			return err
		}
		v, _ := object.Get(source, "v")
		return v
	}, nil))
	w := Wrap(reader)

	if got := mustGet(t, w, "v"); got != "one" {
		t.Errorf("expected one, got %v", got)
	}
	mustOverride(t, source, object.NewPlain(nil).With("v", "two"))
	if got := mustGet(t, w, "v"); got != "two" {
		t.Errorf("nested read must see the current override, got %v", got)
	}
	if got := mustGet(t, w, "swap"); got != "three" {
		t.Errorf("an override made during a read must be visible to the same read, got %v", got)
	}
}

func TestFunctionProxy_Call(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	double := Wrap(object.NewFunction("double", func(this any, args []any) (any, error) {
		return args[0].(int) * 2, nil
	}))

	call := func() any {
		t.Helper()
		got, err := object.Call(double, nil, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return got
	}

	if got := call(); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}

	h := mustOverride(t, double, object.NewFunction("triple", func(this any, args []any) (any, error) {
		return args[0].(int) * 3, nil
	}))
	if got := call(); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
	if object.NameOf(double) != "triple" {
		t.Errorf("expected the replacement's name, got %q", object.NameOf(double))
	}
	h.Release()

	if _, err := PartialOverride(double, object.NewPlain(nil).With("extra", true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := call(); got != 10 {
		t.Errorf("a non-callable partial override must leave calls on the original, got %v", got)
	}
	if got := mustGet(t, double, "extra"); got != true {
		t.Errorf("expected partial member, got %v", got)
	}

	if _, err := Override(double, object.NewPlain(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var typeErr *object.TypeError
	if _, err := object.Call(double, nil, 1); !errors.As(err, &typeErr) {
		t.Errorf("expected TypeError calling a non-callable override, got %v", err)
	}
}

func TestClassProxy_ConstructWrapsAndTracks(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	raw := greeterClass("hello")
	Greeter := Wrap(raw).(object.Constructor)

	g := mustNew(t, Greeter)
	if !IsWrapped(g) {
		t.Error("instances built through a wrapped class must be wrapped")
	}
	if !object.InstanceOf(g, Greeter) || !object.InstanceOf(g, raw) {
		t.Error("expected instance of both the wrapped and the raw class")
	}
	if got := mustInvoke(t, g, "greet"); got != "hello" {
		t.Errorf("expected hello, got %v", got)
	}
	if n := configOf(Greeter).instances.len(); n != 1 {
		t.Errorf("expected 1 tracked instance, got %d", n)
	}

	h, err := Override(g, object.NewPlain(nil).With("greet", object.NewFunction("greet", func(any, []any) (any, error) {
		return "instance override", nil
	})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer h.Release()
	if got := mustInvoke(t, g, "greet"); got != "instance override" {
		t.Errorf("instances must be independently overridable, got %v", got)
	}
	if got := mustInvoke(t, mustNew(t, Greeter), "greet"); got != "hello" {
		t.Errorf("other instances must be unaffected, got %v", got)
	}
}

func TestClassProxy_SubclassConstruction(t *testing.T) {
	newTestEngine(t, config.EngineConfig{})
	Greeter := Wrap(greeterClass("hello")).(object.Constructor)
	Loud := object.NewClass("Loud", Greeter).
		Method("shout", func(this any, args []any) (any, error) {
			g, err := object.Get(this, "greeting")
			return g.(string) + "!", err
		})

	inst := mustNew(t, Loud)
	if IsWrapped(inst) {
		t.Error("a subclass instance must not be wrapped by its parent")
	}
	if !object.InstanceOf(inst, Loud) {
		t.Error("expected instance of the subclass")
	}
	if got := mustInvoke(t, inst, "shout"); got != "hello!" {
		t.Errorf("expected hello!, got %v", got)
	}
	if n := configOf(Greeter).instances.len(); n != 0 {
		t.Errorf("subclass instances must not be tracked, got %d", n)
	}

	mustOverride(t, Greeter, greeterClass("hey"))
	if got := mustInvoke(t, mustNew(t, Loud), "shout"); got != "hey!" {
		t.Errorf("the super call must reach the override, got %v", got)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ClassProxy:
		return "*mockify.ClassProxy"
	case *FunctionProxy:
		return "*mockify.FunctionProxy"
	case *Proxy:
		return "*mockify.Proxy"
	}
	return "unknown"
}
