package handler

import (
	"fmt"
	"sort"

	"github.com/gpulens/gpulens/internal/dataset"
	"github.com/gpulens/gpulens/internal/query"
)

// secondsPerHour converts a per-second throughput into tokens per rental
// hour for TPS-per-dollar scoring.
const secondsPerHour = 3600.0

// RankOptions configures one ranking computation. All fields are explicit;
// nothing is read from ambient state.
type RankOptions struct {
	// PrimaryColumn is the throughput metric being maximized per hardware.
	PrimaryColumn string
	// SecondaryColumn and MinSecondary gate candidacy: a row whose secondary
	// metric is present and strictly below MinSecondary is excluded, rows at
	// or above the threshold (or with no secondary cell) stay in.
	SecondaryColumn string
	MinSecondary    float64
	// HardwareColumn identifies the hardware unit rows are grouped under.
	HardwareColumn string
	// Model, when set, restricts candidacy to rows of that model.
	Model string
	// Prices enables TPS-per-dollar scoring. When nil, entries are scored by
	// the raw primary metric.
	Prices       PriceBook
	DefaultPrice float64
}

func (o *RankOptions) applyDefaults() {
	if o.PrimaryColumn == "" {
		o.PrimaryColumn = query.ColTPSPerGPU
	}
	if o.SecondaryColumn == "" {
		o.SecondaryColumn = query.ColTPSPerUser
	}
	if o.HardwareColumn == "" {
		o.HardwareColumn = query.ColGPU
	}
}

// Entry is one leaderboard line: the best configuration found for a hardware
// unit together with its ranking score.
type Entry struct {
	Hardware      string      `json:"hardwareId"`
	Quantity      interface{} `json:"quantity"`
	Config        string      `json:"configDescriptor"`
	PrimaryMetric float64     `json:"primaryMetric"`
	Secondary     interface{} `json:"secondaryMetric"`
	Score         float64     `json:"score"`
}

type candidate struct {
	hardware string
	row      dataset.Record
	primary  float64
}

// Rank selects, per hardware unit, the row maximizing the primary metric
// among rows passing the secondary threshold, then orders hardware by score
// descending. One linear scan; recomputed in full on every call. An empty
// input or an all-filtered input yields an empty, non-nil list.
func Rank(rows []dataset.Record, opts RankOptions) []Entry {
	opts.applyDefaults()

	best := make(map[string]int)
	order := make([]candidate, 0)

	for _, row := range rows {
		hardware, ok := row.Text(opts.HardwareColumn)
		if !ok || hardware == "" {
			continue
		}
		primary, ok := row.Numeric(opts.PrimaryColumn)
		if !ok {
			continue
		}
		if opts.Model != "" {
			model, ok := row.Text(query.ColModel)
			if !ok || model != opts.Model {
				continue
			}
		}
		if secondary, ok := row.Numeric(opts.SecondaryColumn); ok && secondary < opts.MinSecondary {
			continue
		}

		i, seen := best[hardware]
		if !seen {
			best[hardware] = len(order)
			order = append(order, candidate{hardware: hardware, row: row, primary: primary})
			continue
		}
		// strict >: the earlier-seen row keeps ties
		if primary > order[i].primary {
			order[i] = candidate{hardware: hardware, row: row, primary: primary}
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, c := range order {
		score := c.primary
		if opts.Prices != nil {
			price := opts.Prices.HourlyPrice(c.hardware, opts.DefaultPrice)
			score = c.primary * secondsPerHour / price
		}
		entries = append(entries, Entry{
			Hardware:      c.hardware,
			Quantity:      c.row[query.ColGPUNum],
			Config:        configDescriptor(c.row),
			PrimaryMetric: c.primary,
			Secondary:     c.row[opts.SecondaryColumn],
			Score:         score,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// configDescriptor renders the parallelism combination of a row as a human
// readable label, e.g. "4TP-2TP-8PP".
func configDescriptor(row dataset.Record) string {
	attnTP := cellOrDash(row, query.ColAttnTP)
	ffnTP := cellOrDash(row, query.ColFfnTP)
	pp := cellOrDash(row, query.ColPP)
	return fmt.Sprintf("%sTP-%sTP-%sPP", attnTP, ffnTP, pp)
}

func cellOrDash(row dataset.Record, col string) string {
	if text, ok := row.Text(col); ok && text != "" {
		return text
	}
	return "-"
}
