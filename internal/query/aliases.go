package query

import (
	"github.com/gpulens/gpulens/internal/dataset"
)

// Exported sheets disagree on metadata header spellings ("attn tp" vs
// "attnTP"), so every logical metadata field resolves through an ordered
// alias list; the first alias with a non-null cell wins.
var (
	gpuAliases    = []string{"GPU", "Gpu", "gpu"}
	batchAliases  = []string{"Batch", "batch"}
	attnTPAliases = []string{"attn tp", "attnTP", "attn_tp"}
	ffnTPAliases  = []string{"ffn tp", "ffnTP", "ffn_tp"}
	attnDPAliases = []string{"attn dp", "attnDP", "attn_dp"}
	ffnDPAliases  = []string{"ffn dp", "ffnDP", "ffn_dp"}
)

// resolveAlias returns the first non-null cell among the aliases, or nil.
func resolveAlias(row dataset.Record, aliases []string) interface{} {
	for _, col := range aliases {
		if val, ok := row[col]; ok && val != nil {
			return val
		}
	}
	return nil
}
