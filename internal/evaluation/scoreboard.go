package evaluation

import (
	"sort"

	"gowrangle/domain/core"
)

// Scoreboard collects the latest stats of registered models
type Scoreboard struct {
	entries map[core.ModelName]*Stats
}

// NewScoreboard creates a scoreboard for the given models
func NewScoreboard(models ...core.ModelName) *Scoreboard {
	sb := &Scoreboard{entries: make(map[core.ModelName]*Stats)}
	for _, m := range models {
		sb.Register(m)
	}
	return sb
}

// Register adds a model with empty stats. Registering twice keeps the stats.
func (sb *Scoreboard) Register(model core.ModelName) {
	if _, ok := sb.entries[model]; !ok {
		sb.entries[model] = nil
	}
}

// Update stores the stats of a supported outcome for a registered model
// and reports whether it did
func (sb *Scoreboard) Update(o Outcome) bool {
	if !o.Supported {
		return false
	}
	if _, ok := sb.entries[o.Model]; !ok {
		return false
	}
	s := o.Stats
	sb.entries[o.Model] = &s
	return true
}

// Get returns the stats of a model, false if unregistered or never updated
func (sb *Scoreboard) Get(model core.ModelName) (Stats, bool) {
	s, ok := sb.entries[model]
	if !ok || s == nil {
		return Stats{}, false
	}
	return *s, true
}

// Models lists the registered models, sorted
func (sb *Scoreboard) Models() []core.ModelName {
	models := make([]core.ModelName, 0, len(sb.entries))
	for m := range sb.entries {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i] < models[j] })
	return models
}
