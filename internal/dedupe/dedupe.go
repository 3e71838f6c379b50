// Package dedupe provides shared singleflight groups used to collapse
// concurrent identical requests into one unit of work.
package dedupe

import "golang.org/x/sync/singleflight"

// FusionGroup deduplicates fusion-lab discoveries keyed by the canonical
// fusion key, so concurrent A+B and B+A requests share one codex write.
var FusionGroup singleflight.Group
