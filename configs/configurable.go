package configs

import "reflect"

// Configurable is implemented by provided types that may be set from config files.
type Configurable interface {
	ConfigExpr() string
}

var ConfigurableType = reflect.TypeFor[Configurable]()
