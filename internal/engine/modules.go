package engine

import (
	"github.com/specialistvlad/rpncalc/internal/registry"
	"github.com/specialistvlad/rpncalc/modules/arithmetic"
	"github.com/specialistvlad/rpncalc/modules/roots"
)

// CoreModules is the list of operation modules an Engine knows by default.
var CoreModules = []registry.Module{
	&arithmetic.Module{},
	&roots.Module{},
}
