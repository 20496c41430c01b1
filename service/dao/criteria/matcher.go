package criteria

import (
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/dao"
)

// FilterByState reports whether state satisfies the State parameter (if any)
func FilterByState(state process.State, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != dao.StateParameter {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			return string(state) == actual
		case process.State:
			return state == actual
		case []string:
			for _, s := range actual {
				if string(state) == s {
					return true
				}
			}
			return false
		case []process.State:
			for _, s := range actual {
				if state == s {
					return true
				}
			}
			return false
		}
	}
	return true
}
