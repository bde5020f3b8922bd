package query

// Spreadsheet headers the engine depends on. Spelling and case must match
// the exported sheets bit-for-bit.
const (
	ColTPSPerUser = "TPS per user"
	ColTPSPerGPU  = "TPS per gpu"
	ColGPU        = "GPU"
	ColModel      = "model"
	ColGPUNum     = "Gpu num"
	ColBatch      = "Batch"
	ColPP         = "pp"
	ColAttnTP     = "attn tp"
	ColFfnTP      = "ffn tp"
	ColAttnDP     = "attn dp"
	ColFfnDP      = "ffn dp"
	ColAttnEP     = "attn ep"
	ColFfnEP      = "ffn ep"
	ColConfigName = "Config_Name"
)

// UnknownGroup is the group key substituted when the category column is
// absent or null on a row.
const UnknownGroup = "Unknown"
