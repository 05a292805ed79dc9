package near

import (
	"strconv"
	"strings"

	"github.com/viant/vec3/index"
	"github.com/viant/vec3/index/bruteforce"
	"github.com/viant/vec3/index/cover"
)

const defaultK = 10

type options struct {
	k         int
	kind      string
	base      float32
	metric    cover.DistanceFunction
	bestFirst bool
}

// parseOptions reads key=value module arguments. Unknown keys and malformed
// values are ignored.
func parseOptions(args []string) options {
	opts := options{k: defaultK, kind: "cover", metric: cover.Euclidean}
	for _, raw := range args {
		parts := strings.SplitN(strings.TrimSpace(raw), "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.Trim(strings.TrimSpace(parts[1]), `'"`)
		switch key {
		case "k":
			if n, err := strconv.Atoi(val); err == nil {
				opts.k = n
			}
		case "index":
			switch strings.ToLower(val) {
			case "brute", "cover":
				opts.kind = strings.ToLower(val)
			}
		case "base":
			if f, err := strconv.ParseFloat(val, 32); err == nil && f > 1 {
				opts.base = float32(f)
			}
		case "search":
			switch strings.ToLower(val) {
			case "bestfirst", "best_first":
				opts.bestFirst = true
			case "depthfirst", "depth_first":
				opts.bestFirst = false
			}
		case "metric":
			switch strings.ToLower(val) {
			case "cos", "cosine":
				opts.metric = cover.Cosine
			case "l2", "euclidean":
				opts.metric = cover.Euclidean
			}
		}
	}
	return opts
}

// newIndex returns an empty index for opts. Cosine ranking needs the cover
// index, so it wins over index=brute.
func (o options) newIndex() index.Index {
	if o.kind == "brute" && o.metric == cover.Euclidean {
		return &bruteforce.Index{}
	}
	var coverOpts []cover.Option
	if o.base > 1 {
		coverOpts = append(coverOpts, cover.WithBase(o.base))
	}
	if o.bestFirst {
		coverOpts = append(coverOpts, cover.WithBestFirst())
	}
	coverOpts = append(coverOpts, cover.WithDistance(o.metric))
	return cover.New(coverOpts...)
}
