package tools

import (
	"context"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// New builds a tool whose raw arguments decode into P before the handler
// runs. Decode failures become a failed envelope, never an error.
func New[P any](name, component, description string, params []ParamSpec, fn func(ctx context.Context, deps *Deps, p P) Result) Tool {
	var zero P
	return Tool{
		Name:        name,
		Component:   component,
		Description: description,
		Params:      params,
		ParamsType:  reflect.TypeOf(zero),
		Run: func(ctx context.Context, deps *Deps, args map[string]interface{}) Result {
			var p P
			if err := decode(args, &p); err != nil {
				return Failf("Invalid arguments for %s: %s", name, err.Error())
			}
			return fn(ctx, deps, p)
		},
	}
}

func decode(args map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return decoder.Decode(args)
}
