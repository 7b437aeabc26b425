package app

import (
	"github.com/vk/rpncalc/internal/operator"
	"github.com/vk/rpncalc/modules/extraops"
)

// coreGroups is the definitive list of operator groups that are compiled
// into the binary on top of the standard set. Each is an ordinary group:
// evictable at the prompt, reloadable only by restarting.
var coreGroups = []operator.Group{
	&extraops.Module{},
}
