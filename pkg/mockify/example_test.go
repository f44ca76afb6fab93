package mockify_test

import (
	"fmt"

	"mercator-hq/promock/pkg/mockify"
	"mercator-hq/promock/pkg/object"
)

func ExampleOverride() {
	config := mockify.Wrap(object.NewPlain(nil).With("env", "production")).(object.Object)

	h, _ := mockify.Override(config, object.NewPlain(nil).With("env", "test"))
	fmt.Println(config.Get("env", nil))

	h.Release()
	fmt.Println(config.Get("env", nil))
	// Output:
	// test
	// production
}

func ExamplePartialOverride() {
	client := mockify.Wrap(object.NewPlain(nil).
		With("host", "api.example.com").
		With("port", 443)).(object.Object)

	h, _ := mockify.PartialOverride(client, object.NewPlain(nil).With("host", "localhost"))
	defer h.Release()

	fmt.Println(client.Get("host", nil), client.Get("port", nil))
	// Output: localhost 443
}

func ExampleOverride_existingInstances() {
	Clock := mockify.Wrap(object.NewClass("Clock", nil).
		Method("now", func(this any, args []any) (any, error) {
			return "12:00", nil
		})).(object.Constructor)
	clock, _ := object.New(Clock)

	frozen := object.NewClass("FrozenClock", Clock).
		Method("now", func(this any, args []any) (any, error) {
			return "00:00", nil
		})
	h, _ := mockify.Override(Clock, frozen)

	now, _ := object.Invoke(clock, "now")
	fmt.Println(now)

	h.Release()
	now, _ = object.Invoke(clock, "now")
	fmt.Println(now)
	// Output:
	// 00:00
	// 12:00
}

func ExampleGetActual() {
	raw := object.NewFunction("fetch", nil)
	fetch := mockify.Wrap(raw)

	actual, _ := mockify.GetActual(fetch)
	fmt.Println(actual == any(raw))

	_, err := mockify.GetActual(raw)
	fmt.Println(err)
	// Output:
	// true
	// promock: cannot getActual: *object.Function was not produced by Wrap
}
