package loader

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/napolitain/exped-planner/internal/models"
)

// File names of the dataset inside a data directory
const (
	ExpedInfoFile = "exped-info.json"
	MissionsFile  = "missions.json"
)

//go:embed data/exped-info.json data/missions.json
var defaultData embed.FS

// Options controls how strictly data problems are treated
type Options struct {
	// Strict turns unknown item codes and missing compositions into errors
	Strict bool
	// Warnf reports non-fatal data problems. Defaults to log.Printf.
	Warnf func(format string, args ...any)
}

func (o Options) warnf(format string, args ...any) {
	if o.Warnf != nil {
		o.Warnf(format, args...)
		return
	}
	log.Printf("Warning: "+format, args...)
}

// Load builds one ExpeditionInfo per raw entry, in input order
func Load(raw []RawExpedition, meta map[int]MissionMeta, compos map[int]models.FleetCompo, opts Options) ([]*models.ExpeditionInfo, error) {
	infos := make([]*models.ExpeditionInfo, 0, len(raw))
	seen := make(map[int]bool, len(raw))

	for _, r := range raw {
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate expedition id %d", r.ID)
		}
		seen[r.ID] = true

		mission, ok := meta[r.ID]
		if !ok {
			return nil, &models.MissingMissionError{ID: r.ID}
		}

		itemProb, err := fromRawItem(mission.WinItem1, opts)
		if err != nil {
			return nil, fmt.Errorf("expedition %d: %w", r.ID, err)
		}
		itemGS, err := fromRawItem(mission.WinItem2, opts)
		if err != nil {
			return nil, fmt.Errorf("expedition %d: %w", r.ID, err)
		}

		minCompo, ok := compos[r.ID]
		if !ok {
			if opts.Strict {
				return nil, fmt.Errorf("expedition %d: no minimum fleet composition", r.ID)
			}
			opts.warnf("no minimum fleet composition for expedition %d", r.ID)
			minCompo = models.FleetCompo{}
		}

		infos = append(infos, &models.ExpeditionInfo{
			ID:       r.ID,
			Name:     mission.Name,
			Time:     mission.Time,
			Resource: models.ResourcesFromSlice(r.Resource),
			ItemProb: itemProb,
			ItemGS:   itemGS,
			MinCompo: minCompo.Clone(),
			Cost: models.CostPercent{
				FuelPercent: toPercent(mission.UseFuel),
				AmmoPercent: toPercent(mission.UseBull),
			},
		})
	}

	return infos, nil
}

// fromRawItem converts a [code, maxCount] pair. Unknown codes become no
// reward unless opts.Strict is set.
func fromRawItem(pair [2]int, opts Options) (models.Item, error) {
	name, err := models.ItemFromCode(pair[0])
	if err != nil {
		var unknown *models.UnknownItemCodeError
		if opts.Strict || !errors.As(err, &unknown) {
			return models.Item{}, err
		}
		opts.warnf("%v, treating as no reward", err)
		return models.Item{Name: models.NoItem, MaxCount: pair[1]}, nil
	}
	return models.Item{Name: name, MaxCount: pair[1]}, nil
}

// toPercent rounds a use fraction to a whole percentage, halves away from zero
func toPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// LoadDir loads exped-info.json and missions.json from dataDir
func LoadDir(dataDir string, opts Options) ([]*models.ExpeditionInfo, error) {
	rawData, err := os.ReadFile(filepath.Join(dataDir, ExpedInfoFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ExpedInfoFile, err)
	}
	metaData, err := os.ReadFile(filepath.Join(dataDir, MissionsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", MissionsFile, err)
	}
	return loadBytes(rawData, metaData, opts)
}

// LoadDefault loads the dataset embedded in the binary
func LoadDefault(opts Options) ([]*models.ExpeditionInfo, error) {
	rawData, err := defaultData.ReadFile("data/" + ExpedInfoFile)
	if err != nil {
		return nil, err
	}
	metaData, err := defaultData.ReadFile("data/" + MissionsFile)
	if err != nil {
		return nil, err
	}
	return loadBytes(rawData, metaData, opts)
}

func loadBytes(rawData, metaData []byte, opts Options) ([]*models.ExpeditionInfo, error) {
	raw, err := ParseRawExpeditions(rawData)
	if err != nil {
		return nil, err
	}
	meta, err := ParseMissionMeta(metaData)
	if err != nil {
		return nil, err
	}
	return Load(raw, meta, MinimalFleetCompos(), opts)
}
