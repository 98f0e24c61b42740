package planner

import (
	"fmt"

	"github.com/julianstephens/joblit/internal/constants"
	"github.com/julianstephens/joblit/internal/logger"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

// ScheduleConfig is the resolved schedule configuration the generator runs
// on: plain minute values, already parsed from the user's settings.
type ScheduleConfig struct {
	DayStartMinutes int // 0-1439
	DayEndMinutes   int // 0-1439, exclusive truncation boundary
	BlockOrder      []string
}

// Block is a generated time block. Blocks are derived fresh on every
// generator call and never persisted.
type Block struct {
	ID           string
	Title        string
	Description  string
	StartMinutes int    // normalized to [0, 1440); meaningful only when Timed
	EndMinutes   int    // normalized to [0, 1440); meaningful only when Timed
	Timed        bool
	Display      string // "HH:MM–HH:MM", or empty for untimed blocks
}

// ConfigFromSettings parses the stored settings into a ScheduleConfig.
// An empty block order falls back to the catalog's canonical order.
func ConfigFromSettings(s models.Settings) (ScheduleConfig, error) {
	start, err := utils.ParseTimeToMinutes(s.DayStart)
	if err != nil {
		return ScheduleConfig{}, fmt.Errorf("invalid day start %q: %w", s.DayStart, err)
	}
	end, err := utils.ParseTimeToMinutes(s.DayEnd)
	if err != nil {
		return ScheduleConfig{}, fmt.Errorf("invalid day end %q: %w", s.DayEnd, err)
	}
	order := s.BlockOrder
	if len(order) == 0 {
		order = DefaultBlockOrder()
	}
	return ScheduleConfig{
		DayStartMinutes: start,
		DayEndMinutes:   end,
		BlockOrder:      order,
	}, nil
}

// Generate produces the day's time blocks for the given configuration.
//
// Every timed definition is shifted by the same offset, computed so that the
// morning-routine anchor lands on the configured day start; durations and
// relative gaps are preserved. Shifted minute values are normalized into
// [0, 1440), and any timed block whose normalized end lies strictly after the
// day end is dropped whole. Untimed definitions pass through unshifted and
// are always retained. Blocks come back in block-order order, not sorted.
//
// Malformed configuration yields an empty list, never an error: the callers
// render "no preview" instead of crashing.
func (p *Planner) Generate(config ScheduleConfig) []Block {
	if config.DayStartMinutes < 0 || config.DayStartMinutes >= constants.MinutesPerDay {
		logger.Warn("day start out of range, skipping schedule generation", "minutes", config.DayStartMinutes)
		return []Block{}
	}
	if config.DayEndMinutes < 0 || config.DayEndMinutes >= constants.MinutesPerDay {
		logger.Warn("day end out of range, skipping schedule generation", "minutes", config.DayEndMinutes)
		return []Block{}
	}

	anchor := catalog[0]
	shift := config.DayStartMinutes - anchor.DefaultStart

	blocks := make([]Block, 0, len(config.BlockOrder))
	for _, id := range config.BlockOrder {
		def, ok := Definition(id)
		if !ok {
			logger.Warn("unknown block id in schedule order", "id", id)
			continue
		}

		if !def.Timed {
			blocks = append(blocks, Block{
				ID:          def.ID,
				Title:       def.Title,
				Description: def.Description,
			})
			continue
		}

		start := utils.NormalizeMinutes(def.DefaultStart + shift)
		end := utils.NormalizeMinutes(def.DefaultEnd + shift)

		// Whole-block truncation at the day end boundary; a block ending
		// exactly at the day end survives.
		if end > config.DayEndMinutes {
			continue
		}

		blocks = append(blocks, Block{
			ID:           def.ID,
			Title:        def.Title,
			Description:  def.Description,
			StartMinutes: start,
			EndMinutes:   end,
			Timed:        true,
			Display:      fmt.Sprintf("%s–%s", utils.FormatMinutes(start), utils.FormatMinutes(end)),
		})
	}

	return blocks
}

// GenerateFromSettings is the settings-string entry point used by the setup
// preview: unparseable day start/end times degrade to an empty block list.
func (p *Planner) GenerateFromSettings(s models.Settings) []Block {
	config, err := ConfigFromSettings(s)
	if err != nil {
		logger.Warn("invalid schedule settings, no preview", "error", err)
		return []Block{}
	}
	return p.Generate(config)
}
