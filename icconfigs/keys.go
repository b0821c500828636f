package icconfigs

import (
	"reflect"
	"slices"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
)

// Key maps a config path to the provided type it sets.
type Key struct {
	Path string
	Type reflect.Type
	// Values holds the setting of each config file that has one, in
	// precedence order.
	Values []any
}

// Keys lists the configurable types defined in scope, sorted by path.
func Keys(scope dscope.Scope, loader configs.Loader) ([]Key, error) {
	var ret []Key
	for t := range scope.AllTypes() {
		if !t.Implements(configs.ConfigurableType) {
			continue
		}
		configurable := reflect.Zero(t).Interface().(configs.Configurable)
		key := Key{
			Path: configurable.ConfigExpr(),
			Type: t,
		}
		for value, err := range configs.All[any](loader, key.Path) {
			if err != nil {
				return nil, err
			}
			key.Values = append(key.Values, value)
		}
		ret = append(ret, key)
	}
	slices.SortFunc(ret, func(a, b Key) int {
		return strings.Compare(a.Path, b.Path)
	})
	return ret, nil
}
