package material

import "github.com/df07/go-raycaster/pkg/core"

// Named colors used by the built-in scenes, as RGB in [0, 1]
// (CSS color values divided by 255).
var (
	Gray           = core.NewVec3(128.0/255.0, 128.0/255.0, 128.0/255.0)
	LightGray      = core.NewVec3(211.0/255.0, 211.0/255.0, 211.0/255.0)
	DarkBlue       = core.NewVec3(0, 0, 139.0/255.0)
	Blue           = core.NewVec3(0, 0, 1)
	DarkGreen      = core.NewVec3(0, 100.0/255.0, 0)
	DarkOliveGreen = core.NewVec3(85.0/255.0, 107.0/255.0, 47.0/255.0)
	Purple         = core.NewVec3(128.0/255.0, 0, 128.0/255.0)
	Black          = core.NewVec3(0, 0, 0)
	White          = core.NewVec3(1, 1, 1)
)
